package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNameTooManyWords is returned when a product-name phrase has more
	// than three words. Rejected before any query runs.
	ErrNameTooManyWords = errors.New("product name phrase must be 1 to 3 words")

	// ErrNothingToImport is returned when an import is attempted with zero
	// normalized rows.
	ErrNothingToImport = errors.New("nothing to import")

	// ErrSuperseded marks a search whose results arrived after a newer
	// submission started. Callers discard these quietly.
	ErrSuperseded = errors.New("search superseded by a newer submission")

	// ErrFavoriteNotFound is returned when a usage update targets a product
	// the session has not favorited.
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// PartialImportError reports a batch insert failure mid-import. Batches
// before Batch stay committed; nothing after it was attempted.
type PartialImportError struct {
	Batch    int // 1-based index of the failed batch
	Batches  int // total batches planned
	Imported int // rows committed by earlier batches
	Err      error
}

func (e *PartialImportError) Error() string {
	return fmt.Sprintf("import failed at batch %d of %d (%d rows committed): %v",
		e.Batch, e.Batches, e.Imported, e.Err)
}

func (e *PartialImportError) Unwrap() error { return e.Err }
