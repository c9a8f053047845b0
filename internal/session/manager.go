// Package session holds per-session interactive state: favorites with their
// usage descriptors, and the session's recent search results. Favorites are
// kept sorted by product name at every insertion and written through to the
// persistence adapter on each mutation; search history is ephemeral.
package session

import (
	"sort"
	"strings"
	"sync"

	"pricebook/internal/domain"
)

// HistoryLimit caps how many products a session's search history retains.
const HistoryLimit = 50

// Entry is one favorited product together with its usage.
type Entry struct {
	Product domain.Product         `json:"product"`
	Usage   domain.UsageDescriptor `json:"usage"`
}

// Adapter persists a session's favorites. Load runs once per session on
// first access; Save runs after every mutation.
type Adapter interface {
	Load(sessionID string) ([]Entry, error)
	Save(sessionID string, favorites []Entry) error
}

type state struct {
	loaded    bool
	favorites []Entry // sorted by product name, case-insensitive
	history   []domain.Product
}

// Manager is the explicit state container for all sessions.
type Manager struct {
	mu       sync.Mutex
	adapter  Adapter
	sessions map[string]*state
}

func NewManager(adapter Adapter) *Manager {
	return &Manager{adapter: adapter, sessions: make(map[string]*state)}
}

// get loads the session's persisted favorites on first access.
func (m *Manager) get(sid string) (*state, error) {
	st, ok := m.sessions[sid]
	if !ok {
		st = &state{}
		m.sessions[sid] = st
	}
	if !st.loaded {
		if m.adapter != nil {
			favs, err := m.adapter.Load(sid)
			if err != nil {
				return nil, err
			}
			st.favorites = favs
			sortEntries(st.favorites)
		}
		st.loaded = true
	}
	return st, nil
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Product.Name) < strings.ToLower(entries[j].Product.Name)
	})
}

func (m *Manager) save(sid string, st *state) error {
	if m.adapter == nil {
		return nil
	}
	return m.adapter.Save(sid, st.favorites)
}

// AddFavorite inserts or replaces the favorite for p, keeping the list
// sorted. Adding an already-favorited product updates its usage in place.
func (m *Manager) AddFavorite(sid string, p domain.Product, usage domain.UsageDescriptor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.get(sid)
	if err != nil {
		return err
	}
	replaced := false
	for i := range st.favorites {
		if st.favorites[i].Product.ID == p.ID {
			st.favorites[i].Usage = usage
			replaced = true
			break
		}
	}
	if !replaced {
		st.favorites = append(st.favorites, Entry{Product: p, Usage: usage})
		sortEntries(st.favorites)
	}
	return m.save(sid, st)
}

// RemoveFavorite drops the favorite; the underlying product is untouched.
func (m *Manager) RemoveFavorite(sid, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.get(sid)
	if err != nil {
		return err
	}
	kept := st.favorites[:0]
	for _, e := range st.favorites {
		if e.Product.ID != productID {
			kept = append(kept, e)
		}
	}
	st.favorites = kept
	return m.save(sid, st)
}

// SetUsage mutates the usage descriptor of an existing favorite in place.
func (m *Manager) SetUsage(sid, productID string, usage domain.UsageDescriptor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.get(sid)
	if err != nil {
		return err
	}
	for i := range st.favorites {
		if st.favorites[i].Product.ID == productID {
			st.favorites[i].Usage = usage
			return m.save(sid, st)
		}
	}
	return domain.ErrFavoriteNotFound
}

// Favorites returns a copy of the session's sorted favorites.
func (m *Manager) Favorites(sid string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.get(sid)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(st.favorites))
	copy(out, st.favorites)
	return out, nil
}

// RecordHistory appends search results the session has not seen yet,
// trimming the oldest entries beyond HistoryLimit. Never persisted.
func (m *Manager) RecordHistory(sid string, products []domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.get(sid)
	if err != nil {
		return
	}
	seen := make(map[string]bool, len(st.history))
	for _, p := range st.history {
		seen[p.ID] = true
	}
	for _, p := range products {
		if !seen[p.ID] {
			st.history = append(st.history, p)
			seen[p.ID] = true
		}
	}
	if over := len(st.history) - HistoryLimit; over > 0 {
		st.history = append([]domain.Product(nil), st.history[over:]...)
	}
}

// History returns a copy of the session's recorded search results.
func (m *Manager) History(sid string) []domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, err := m.get(sid)
	if err != nil {
		return nil
	}
	out := make([]domain.Product, len(st.history))
	copy(out, st.history)
	return out
}

// ClearHistory drops the session's search history.
func (m *Manager) ClearHistory(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, err := m.get(sid); err == nil {
		st.history = nil
	}
}
