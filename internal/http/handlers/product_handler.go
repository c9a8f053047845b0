package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pricebook/internal/log"
	"pricebook/internal/repos"
	"pricebook/internal/services"
	"pricebook/internal/validate"
)

type ProductHandler struct {
	Products *repos.ProductRepo
	Search   *services.SearchService
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Warn(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	p, err := h.Products.Get(id)
	if err != nil || p.ID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

// Count backs the "N products in database" footer.
func (h *ProductHandler) Count(c *fiber.Ctx) error {
	n, err := h.Search.Count()
	if err != nil {
		se := repos.Classify(err)
		applog.Error(c, "catalog.count.fail", err, map[string]any{"category": string(se.Category)})
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": se.Message, "category": string(se.Category),
		})
	}
	return c.JSON(fiber.Map{"count": n})
}
