package services

import (
	"math"

	"pricebook/internal/domain"
)

// BatchSize is how many normalized rows each store insert carries.
const BatchSize = 100

// ImportReport summarizes a finished import.
type ImportReport struct {
	Rows     int `json:"rows"`
	Batches  int `json:"batches"`
	Imported int `json:"imported"`
}

// Importer drives batched inserts against the record store. Batches run
// strictly one after another; the first failure aborts the rest and earlier
// batches stay committed.
type Importer struct {
	Store domain.ProductStore
	Cache domain.QueryCache
}

func NewImporter(store domain.ProductStore, cache domain.QueryCache) *Importer {
	return &Importer{Store: store, Cache: cache}
}

// Run imports rows in batches of BatchSize. After each committed batch the
// progress callback (if any) receives the completed percentage as an
// integer. A zero-row import is a validation error; a mid-run failure comes
// back as a *domain.PartialImportError naming the failed batch.
func (im *Importer) Run(rows []domain.ProductInsert, progress func(pct int)) (ImportReport, error) {
	if len(rows) == 0 {
		return ImportReport{}, domain.ErrNothingToImport
	}

	batches := (len(rows) + BatchSize - 1) / BatchSize
	report := ImportReport{Rows: len(rows), Batches: batches}

	for i := 0; i < batches; i++ {
		start := i * BatchSize
		end := start + BatchSize
		if end > len(rows) {
			end = len(rows)
		}

		if err := im.Store.InsertBatch(rows[start:end]); err != nil {
			return report, &domain.PartialImportError{
				Batch:    i + 1,
				Batches:  batches,
				Imported: report.Imported,
				Err:      err,
			}
		}
		report.Imported += end - start

		if progress != nil {
			progress(int(math.Round(float64(i+1) / float64(batches) * 100)))
		}
	}

	// The catalog changed, cached search results are stale.
	if im.Cache != nil {
		im.Cache.Clear()
	}
	return report, nil
}
