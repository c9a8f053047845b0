package services

import (
	"strings"
	"sync/atomic"

	"pricebook/internal/domain"
)

// ResultLimit caps every search at 100 products.
const ResultLimit = 100

// MaxNameWords bounds the product-name phrase.
const MaxNameWords = 3

// SearchService resolves search criteria into an ordered product list.
//
// Strategy selection is priority, not combination: a non-empty order code
// wins and every other field is ignored; otherwise the populated fields
// combine into one conjunctive query. Empty criteria run no query at all.
type SearchService struct {
	Store domain.ProductStore
	Cache domain.QueryCache

	// seq implements last-submitted-wins: results that finish after a newer
	// submission has started are discarded.
	seq atomic.Uint64
}

func NewSearchService(store domain.ProductStore, cache domain.QueryCache) *SearchService {
	return &SearchService{Store: store, Cache: cache}
}

// Search executes the criteria and returns products ascending by name,
// case-insensitive. A phrase of more than MaxNameWords is rejected before
// any I/O. Superseded submissions return domain.ErrSuperseded.
func (s *SearchService) Search(c domain.SearchCriteria) ([]domain.Product, error) {
	seq := s.seq.Add(1)

	if c.Empty() {
		return []domain.Product{}, nil
	}

	query, words, err := buildQuery(c)
	if err != nil {
		return nil, err
	}

	key := cacheKey(c)
	if s.Cache != nil {
		if hit, ok := s.Cache.Get(key); ok {
			return hit, nil
		}
	}

	products, err := s.Store.Find(query)
	if err != nil {
		return nil, err
	}
	if s.seq.Load() != seq {
		return nil, domain.ErrSuperseded
	}

	// The store's substring predicates can be satisfied by overlapping
	// matches that do not all hold together, so the multi-word AND is
	// re-verified here. Correctness, not an optimization.
	if len(words) > 0 {
		products = filterByWords(products, words)
	}

	if s.Cache != nil {
		s.Cache.Set(key, products)
	}
	return products, nil
}

// Count reports how many products the catalog holds.
func (s *SearchService) Count() (int, error) {
	return s.Store.Count(nil)
}

// buildQuery selects the filter strategy. The returned words are non-empty
// only for the combined strategy with a name phrase, and drive the local
// re-verification pass.
func buildQuery(c domain.SearchCriteria) (domain.Query, []string, error) {
	q := domain.Query{OrderBy: domain.OrderByName, Limit: ResultLimit}

	if code := strings.TrimSpace(c.OrderCode); code != "" {
		q.Predicates = []domain.Predicate{domain.Contains("order_code", code)}
		return q, nil, nil
	}

	var words []string
	if supplier := strings.TrimSpace(c.Supplier); supplier != "" {
		q.Predicates = append(q.Predicates, domain.Exact("supplier", supplier))
	}
	if colour := strings.TrimSpace(c.Colour); colour != "" {
		q.Predicates = append(q.Predicates, domain.Exact("colour", colour))
	}
	if name := strings.TrimSpace(c.Name); name != "" {
		words = strings.Fields(name)
		if len(words) > MaxNameWords {
			return domain.Query{}, nil, domain.ErrNameTooManyWords
		}
		for _, w := range words {
			q.Predicates = append(q.Predicates, domain.Contains("name", w))
		}
	}
	return q, words, nil
}

// filterByWords keeps only products whose name contains every word,
// case-insensitive.
func filterByWords(products []domain.Product, words []string) []domain.Product {
	out := products[:0]
	for _, p := range products {
		name := strings.ToLower(p.Name)
		all := true
		for _, w := range words {
			if !strings.Contains(name, strings.ToLower(w)) {
				all = false
				break
			}
		}
		if all {
			out = append(out, p)
		}
	}
	return out
}

// cacheKey renders the resolved criteria canonically so equal searches
// share one cache entry. Under the order-code strategy the other fields are
// ignored, so they stay out of the key too.
func cacheKey(c domain.SearchCriteria) string {
	if code := strings.TrimSpace(c.OrderCode); code != "" {
		return "code=" + strings.ToLower(code)
	}
	return strings.Join([]string{
		"supplier=" + strings.TrimSpace(c.Supplier),
		"colour=" + strings.TrimSpace(c.Colour),
		"name=" + strings.ToLower(strings.TrimSpace(c.Name)),
	}, "|")
}
