package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pricebook/internal/log"
	"pricebook/internal/repos"
	"pricebook/internal/services"
	"pricebook/internal/session"
	"pricebook/internal/validate"
)

type DisplayHandler struct {
	Products *repos.ProductRepo
	Sessions *session.Manager
}

// List returns the merged display sequence: ad-hoc selections and search
// history first (deduplicated, alphabetical), favorites always last.
// Selected products are passed as a comma-separated id list.
func (h *DisplayHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)

	favs, err := h.Sessions.Favorites(sid)
	if err != nil {
		applog.Error(c, "display.favorites.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load favorites"})
	}

	selectedIDs := validate.IDList(c.Query("selected"))
	selectedProducts, err := h.Products.GetMany(selectedIDs)
	if err != nil {
		applog.Error(c, "display.selected.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load selection"})
	}

	items := services.BuildDisplayList(favs, h.Sessions.History(sid), selectedProducts)
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

// ClearHistory drops the session's accumulated search history.
func (h *DisplayHandler) ClearHistory(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Sessions.ClearHistory(sid)
	return c.JSON(fiber.Map{"ok": true})
}
