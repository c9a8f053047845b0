package repos

import (
	"fmt"
	"strings"
)

// Category buckets store failures so callers can show a meaningful retry
// message instead of a raw driver error.
type Category string

const (
	CategoryAuth    Category = "authentication"
	CategoryNetwork Category = "network"
	CategorySchema  Category = "missing-schema"
	CategoryUnknown Category = "unknown"
)

// StoreError wraps a store failure with its human-readable category.
type StoreError struct {
	Category Category
	Message  string
	Err      error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

type errorPattern struct {
	pattern  string
	category Category
	message  string
}

// connPatterns maps driver error substrings (case-insensitive) to
// categories. First match wins, so specific patterns come before general
// ones.
var connPatterns = []errorPattern{
	{"access denied", CategoryAuth, "store rejected the credential"},
	{"authentication failed", CategoryAuth, "store rejected the credential"},
	{"invalid credential", CategoryAuth, "store rejected the credential"},
	{"noauth", CategoryAuth, "store requires a credential"},
	{"permission denied", CategoryAuth, "store rejected the credential"},

	{"no such table", CategorySchema, "store schema is missing"},
	{"no such column", CategorySchema, "store schema is out of date"},

	{"connection refused", CategoryNetwork, "store is unreachable"},
	{"connection reset", CategoryNetwork, "store connection was interrupted"},
	{"no such host", CategoryNetwork, "store endpoint could not be resolved"},
	{"i/o timeout", CategoryNetwork, "store did not respond in time"},
	{"database is locked", CategoryNetwork, "store is busy"},
	{"unable to open database", CategoryNetwork, "store endpoint could not be opened"},
}

// Classify wraps err with the matching connectivity category. Unrecognized
// errors come back as CategoryUnknown rather than nil so callers always have
// something presentable.
func Classify(err error) *StoreError {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, p := range connPatterns {
		if strings.Contains(msg, p.pattern) {
			return &StoreError{Category: p.category, Message: p.message, Err: err}
		}
	}
	return &StoreError{Category: CategoryUnknown, Message: "store operation failed", Err: err}
}
