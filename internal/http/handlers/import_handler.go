package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pricebook/internal/domain"
	applog "pricebook/internal/log"
	"pricebook/internal/repos"
	"pricebook/internal/services"
)

type ImportHandler struct {
	Importer *services.Importer
}

// Upload ingests a CSV export: parse, normalize against the alias tables,
// then batch-insert. Batches before a failure stay committed; the response
// says so explicitly so the caller can reconcile.
func (h *ImportHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file provided"})
	}

	f, err := fh.Open()
	if err != nil {
		applog.Error(c, "import.open.fail", err, map[string]any{"file": fh.Filename})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read upload"})
	}
	defer f.Close()

	rawRows, err := services.ReadCSV(f)
	if err != nil {
		applog.Warn(c, "import.parse.fail", map[string]any{"file": fh.Filename, "err": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rows := services.NormalizeRows(rawRows)
	report, err := h.Importer.Run(rows, func(pct int) {
		applog.Info(c, "import.progress", map[string]any{"file": fh.Filename, "pct": pct})
	})
	if err != nil {
		var pie *domain.PartialImportError
		switch {
		case errors.Is(err, domain.ErrNothingToImport):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &pie):
			se := repos.Classify(pie.Err)
			applog.Error(c, "import.batch.fail", err, map[string]any{
				"file": fh.Filename, "batch": pie.Batch, "category": string(se.Category),
			})
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":       se.Message,
				"category":    string(se.Category),
				"failedBatch": pie.Batch,
				"batches":     pie.Batches,
				"imported":    pie.Imported,
			})
		default:
			applog.Error(c, "import.fail", err, map[string]any{"file": fh.Filename})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "import failed"})
		}
	}

	applog.Audit(c, "import.done", map[string]any{
		"file": fh.Filename, "rows": report.Rows, "batches": report.Batches,
	})
	return c.JSON(report)
}
