package services

import (
	"sort"
	"strings"

	"pricebook/internal/domain"
	"pricebook/internal/session"
)

// DisplayItem is one row of the merged product list. YearlyCost is only
// meaningful for favorites, which carry a usage descriptor.
type DisplayItem struct {
	Product    domain.Product          `json:"product"`
	Favorite   bool                    `json:"favorite"`
	Usage      *domain.UsageDescriptor `json:"usage,omitempty"`
	YearlyCost float64                 `json:"yearlyCost,omitempty"`
}

// BuildDisplayList merges the session's favorites, its search history, and
// any freshly selected products into one deduplicated sequence:
//
//	unfavorited items (selected first, then history), alphabetical,
//	followed by favorites, alphabetical, always last.
//
// A product favorited since the last render therefore leaves the
// unfavorited group entirely instead of appearing twice.
func BuildDisplayList(favorites []session.Entry, history, selected []domain.Product) []DisplayItem {
	favIDs := make(map[string]bool, len(favorites))
	for _, f := range favorites {
		favIDs[f.Product.ID] = true
	}

	seen := make(map[string]bool)
	var unfavorited []domain.Product

	for _, p := range selected {
		if !favIDs[p.ID] && !seen[p.ID] {
			unfavorited = append(unfavorited, p)
			seen[p.ID] = true
		}
	}
	for _, p := range history {
		if !favIDs[p.ID] && !seen[p.ID] {
			unfavorited = append(unfavorited, p)
			seen[p.ID] = true
		}
	}

	sort.SliceStable(unfavorited, func(i, j int) bool {
		return strings.ToLower(unfavorited[i].Name) < strings.ToLower(unfavorited[j].Name)
	})

	out := make([]DisplayItem, 0, len(unfavorited)+len(favorites))
	for _, p := range unfavorited {
		out = append(out, DisplayItem{Product: p})
	}
	// Favorites arrive sorted from the session container.
	for _, f := range favorites {
		usage := f.Usage
		out = append(out, DisplayItem{
			Product:    f.Product,
			Favorite:   true,
			Usage:      &usage,
			YearlyCost: YearlyCost(f.Product, f.Usage),
		})
	}
	return out
}
