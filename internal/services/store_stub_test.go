package services_test

import (
	"fmt"

	"pricebook/internal/domain"
)

// stubStore is an in-memory domain.ProductStore that records what the
// services ask of it.
type stubStore struct {
	products []domain.Product

	findCalls   int
	lastQuery   domain.Query
	findErr     error
	onFind      func()
	insertCalls [][]domain.ProductInsert
	failBatchAt int // 1-based insert call to fail, 0 = never
}

func (s *stubStore) Find(q domain.Query) ([]domain.Product, error) {
	s.findCalls++
	s.lastQuery = q
	if s.onFind != nil {
		s.onFind()
	}
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.products, nil
}

func (s *stubStore) Get(id string) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("not found")
}

func (s *stubStore) GetMany(ids []string) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		if p, err := s.Get(id); err == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubStore) InsertBatch(rows []domain.ProductInsert) error {
	s.insertCalls = append(s.insertCalls, rows)
	if s.failBatchAt > 0 && len(s.insertCalls) == s.failBatchAt {
		return fmt.Errorf("connection refused")
	}
	return nil
}

func (s *stubStore) Count(preds []domain.Predicate) (int, error) {
	return len(s.products), nil
}

// stubCache counts cache traffic.
type stubCache struct {
	entries map[string][]domain.Product
	cleared int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]domain.Product)}
}

func (c *stubCache) Get(key string) ([]domain.Product, bool) {
	ps, ok := c.entries[key]
	return ps, ok
}

func (c *stubCache) Set(key string, ps []domain.Product) { c.entries[key] = ps }

func (c *stubCache) Clear() {
	c.cleared++
	c.entries = make(map[string][]domain.Product)
}
