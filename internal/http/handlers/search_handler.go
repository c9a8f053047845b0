package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pricebook/internal/domain"
	applog "pricebook/internal/log"
	"pricebook/internal/repos"
	"pricebook/internal/services"
	"pricebook/internal/session"
)

type SearchHandler struct {
	Search   *services.SearchService
	Sessions *session.Manager
}

// Query resolves the submitted criteria and records the hits into the
// session's search history. Empty criteria are a no-op, not "everything".
func (h *SearchHandler) Query(c *fiber.Ctx) error {
	sid := ensureSID(c)

	criteria := domain.SearchCriteria{
		OrderCode: c.Query("orderCode"),
		Supplier:  c.Query("supplier"),
		Colour:    c.Query("colour"),
		Name:      c.Query("name"),
	}

	products, err := h.Search.Search(criteria)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameTooManyWords):
			applog.Warn(c, "search.validation.fail", map[string]any{"name": criteria.Name})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrSuperseded):
			applog.Info(c, "search.superseded", nil)
			return c.JSON(fiber.Map{"superseded": true, "products": []any{}, "count": 0})
		default:
			se := repos.Classify(err)
			applog.Error(c, "search.error", err, map[string]any{"category": string(se.Category)})
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": se.Message, "category": string(se.Category),
			})
		}
	}

	if len(products) > 0 {
		h.Sessions.RecordHistory(sid, products)
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}
