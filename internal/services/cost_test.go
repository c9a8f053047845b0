package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pricebook/internal/domain"
	"pricebook/internal/services"
)

func TestYearlyUses(t *testing.T) {
	assert.Equal(t, 365, services.YearlyUses(domain.UsageDescriptor{Frequency: 1, Period: domain.PerDay}))
	assert.Equal(t, 104, services.YearlyUses(domain.UsageDescriptor{Frequency: 2, Period: domain.PerWeek}))
	assert.Equal(t, 36, services.YearlyUses(domain.UsageDescriptor{Frequency: 3, Period: domain.PerMonth}))
	assert.Equal(t, 0, services.YearlyUses(domain.UsageDescriptor{Frequency: 0, Period: domain.PerDay}))
}

func TestYearlyCost_WorkedExample(t *testing.T) {
	// 12.50 a box of 5, used twice a week: 104 uses * 2.50 = 260.00
	p := domain.Product{PricePence: 1250, PackQty: "5", UOMQty: "box"}
	u := domain.UsageDescriptor{Frequency: 2, Period: domain.PerWeek}
	assert.InDelta(t, 260.0, services.YearlyCost(p, u), 1e-9)
}

func TestYearlyCost_LinearInFrequency(t *testing.T) {
	p := domain.Product{PricePence: 899, PackQty: "10", UOMQty: "pair"}
	single := services.YearlyCost(p, domain.UsageDescriptor{Frequency: 3, Period: domain.PerMonth})
	double := services.YearlyCost(p, domain.UsageDescriptor{Frequency: 6, Period: domain.PerMonth})
	assert.InDelta(t, 2*single, double, 1e-9)
}

func TestPerUsePrice_VolumeUnitUsesPackPrice(t *testing.T) {
	// A "250ml" pack is consumed whole: pack quantity must not divide the
	// price, whatever it says.
	for _, qty := range []string{"1", "5", "0"} {
		p := domain.Product{PricePence: 499, PackQty: qty, UOMQty: "250ml"}
		assert.InDelta(t, 4.99, services.PerUsePrice(p), 1e-9, "pack_qty=%s", qty)
	}
}

func TestPerUsePrice_VolumeUnitCaseInsensitive(t *testing.T) {
	p := domain.Product{PricePence: 250, PackQty: "3", UOMQty: "500ML"}
	assert.InDelta(t, 2.50, services.PerUsePrice(p), 1e-9)
}

func TestPerUsePrice_ZeroPackQty(t *testing.T) {
	p := domain.Product{PricePence: 1000, PackQty: "0", UOMQty: "box"}
	assert.Zero(t, services.PerUsePrice(p))
}

func TestPerUsePrice_MalformedPackQty(t *testing.T) {
	for _, qty := range []string{"", "a box", "5.5"} {
		p := domain.Product{PricePence: 1000, PackQty: qty, UOMQty: "box"}
		assert.Zero(t, services.PerUsePrice(p), "pack_qty=%q", qty)
	}
}
