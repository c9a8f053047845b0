package domain

// MatchKind selects how a predicate compares its field.
type MatchKind int

const (
	// MatchExact compares the stored value as-is (case-sensitive).
	MatchExact MatchKind = iota
	// MatchContains is a case-insensitive substring match.
	MatchContains
)

// Predicate is one clause of a conjunctive filter over named product fields.
type Predicate struct {
	Field string
	Kind  MatchKind
	Value string
}

// Exact builds a case-sensitive equality predicate.
func Exact(field, value string) Predicate {
	return Predicate{Field: field, Kind: MatchExact, Value: value}
}

// Contains builds a case-insensitive substring predicate.
func Contains(field, value string) Predicate {
	return Predicate{Field: field, Kind: MatchContains, Value: value}
}

// OrderByName is the only ordering the store supports: ascending product
// name, case-insensitive.
const OrderByName = "name"

// Query is an AND of predicates, ordered and limited.
type Query struct {
	Predicates []Predicate
	OrderBy    string
	Limit      int
}

// ProductStore is the record-store capability the core needs. Implementations
// run conjunctive filtered queries and all-or-nothing batch inserts.
type ProductStore interface {
	Find(q Query) ([]Product, error)
	Get(id string) (Product, error)
	GetMany(ids []string) ([]Product, error)
	InsertBatch(rows []ProductInsert) error
	Count(preds []Predicate) (int, error)
}

// QueryCache caches search results keyed by the canonical rendering of the
// resolved criteria. Any successful import clears it.
type QueryCache interface {
	Get(key string) ([]Product, bool)
	Set(key string, products []Product)
	Clear()
}
