package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pricebook/internal/domain"
	applog "pricebook/internal/log"
	"pricebook/internal/repos"
	"pricebook/internal/services"
	"pricebook/internal/session"
	"pricebook/internal/validate"
)

type FavoritesHandler struct {
	Products *repos.ProductRepo
	Sessions *session.Manager
}

// parseUsage reads the optional usage form fields; absent fields fall back
// to "0 times per week".
func parseUsage(c *fiber.Ctx) (domain.UsageDescriptor, bool) {
	usage := domain.UsageDescriptor{Frequency: 0, Period: domain.PerWeek}
	if raw := c.FormValue("frequency"); raw != "" {
		n, ok := validate.Frequency(raw)
		if !ok {
			return usage, false
		}
		usage.Frequency = n
	}
	if raw := c.FormValue("period"); raw != "" {
		p, ok := validate.Period(raw)
		if !ok {
			return usage, false
		}
		usage.Period = p
	}
	return usage, true
}

func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	favs, err := h.Sessions.Favorites(sid)
	if err != nil {
		applog.Error(c, "favorites.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load favorites"})
	}

	type favView struct {
		session.Entry
		YearlyCost float64 `json:"yearlyCost"`
	}
	out := make([]favView, 0, len(favs))
	for _, f := range favs {
		out = append(out, favView{Entry: f, YearlyCost: services.YearlyCost(f.Product, f.Usage)})
	}
	return c.JSON(fiber.Map{"favorites": out, "count": len(out)})
}

func (h *FavoritesHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	usage, ok := parseUsage(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid usage"})
	}

	p, err := h.Products.Get(pid)
	if err != nil || p.ID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err := h.Sessions.AddFavorite(sid, p, usage); err != nil {
		applog.Error(c, "favorites.save.fail", err, map[string]any{"product": pid})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save favorite"})
	}
	applog.Audit(c, "favorites.save", map[string]any{"product": pid})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *FavoritesHandler) Delete(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Sessions.RemoveFavorite(sid, pid); err != nil {
		applog.Error(c, "favorites.delete.fail", err, map[string]any{"product": pid})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not remove favorite"})
	}
	applog.Audit(c, "favorites.delete", map[string]any{"product": pid})
	return c.JSON(fiber.Map{"ok": true})
}

// Usage updates a favorite's usage descriptor in place.
func (h *FavoritesHandler) Usage(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	usage, ok := parseUsage(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid usage"})
	}
	if err := h.Sessions.SetUsage(sid, pid, usage); err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		applog.Error(c, "favorites.usage.fail", err, map[string]any{"product": pid})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update usage"})
	}
	return c.JSON(fiber.Map{"ok": true})
}
