package services

import (
	"strconv"
	"strings"

	"pricebook/internal/domain"
)

// periodUses converts a usage period into uses per year.
var periodUses = map[domain.Period]int{
	domain.PerDay:   365,
	domain.PerWeek:  52,
	domain.PerMonth: 12,
}

// YearlyUses normalizes a usage descriptor to an annual count.
func YearlyUses(u domain.UsageDescriptor) int {
	if u.Frequency < 0 {
		return 0
	}
	return u.Frequency * periodUses[u.Period]
}

// PerUsePrice returns the cost of a single use in pounds.
//
// Volume-denominated packs ("250ml" and friends) are consumed as a whole, so
// the pack price applies verbatim; otherwise the pack price is split across
// the pack quantity. A missing or malformed quantity degrades the price to 0
// instead of dividing by zero.
func PerUsePrice(p domain.Product) float64 {
	priceMajor := float64(p.PricePence) / 100

	if strings.Contains(strings.ToLower(p.UOMQty), "ml") {
		return priceMajor
	}

	qty, err := strconv.Atoi(strings.TrimSpace(p.PackQty))
	if err != nil || qty == 0 {
		return 0
	}
	return priceMajor / float64(qty)
}

// YearlyCost projects the yearly spend on p under the given usage. It never
// fails: malformed numeric fields degrade to 0.
func YearlyCost(p domain.Product, u domain.UsageDescriptor) float64 {
	return float64(YearlyUses(u)) * PerUsePrice(p)
}
