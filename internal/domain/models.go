package domain

import "strings"

// Product is a canonical catalog entry. Rows are created by import and are
// immutable afterwards; price and the identifiers carry typed values,
// everything else is free text straight from the source spreadsheet.
type Product struct {
	ID           string `db:"id" json:"id"`
	Supplier     string `db:"supplier" json:"supplier"`
	Category     string `db:"category" json:"category"`
	Name         string `db:"name" json:"name"`
	Colour       string `db:"colour" json:"colour"`
	Size         string `db:"size" json:"size"`
	PackQty      string `db:"pack_qty" json:"packQty"`
	UOMQty       string `db:"uom_qty" json:"uomQty"`
	Amount       string `db:"amount" json:"amount"`
	OrderCode    string `db:"order_code" json:"orderCode"`
	PricePence   int64  `db:"price_pence" json:"pricePence"`
	PriceDisplay string `db:"price_display" json:"priceDisplay,omitempty"`
	CreatedAt    string `db:"created_at" json:"createdAt"`
	UpdatedAt    string `db:"updated_at" json:"updatedAt"`
}

// ProductInsert is a Product before the store assigns identity and
// timestamps. Produced by the CSV normalizer.
type ProductInsert struct {
	Supplier     string
	Category     string
	Name         string
	Colour       string
	Size         string
	PackQty      string
	UOMQty       string
	Amount       string
	OrderCode    string
	PricePence   int64
	PriceDisplay string
}

// Period is the unit a usage frequency is expressed in.
type Period string

const (
	PerDay   Period = "day"
	PerWeek  Period = "week"
	PerMonth Period = "month"
)

// ValidPeriod reports whether p is one of the three supported periods.
func ValidPeriod(p Period) bool {
	return p == PerDay || p == PerWeek || p == PerMonth
}

// UsageDescriptor means "used Frequency times per Period".
type UsageDescriptor struct {
	Frequency int    `json:"frequency"`
	Period    Period `json:"period"`
}

// Favorite bookmarks a product for a session together with its usage.
// At most one Favorite exists per (session, product) pair.
type Favorite struct {
	SessionID string          `db:"session_id" json:"-"`
	ProductID string          `db:"product_id" json:"productId"`
	Usage     UsageDescriptor `json:"usage"`
	Position  int             `db:"position" json:"position"`
}

// SearchCriteria carries the user's search form. A non-empty OrderCode takes
// priority over every other field; otherwise the populated fields combine.
type SearchCriteria struct {
	OrderCode string
	Supplier  string
	Colour    string
	Name      string
}

// Empty reports whether no field carries a usable value. An empty criteria
// must be treated as "search nothing", never "match everything".
func (c SearchCriteria) Empty() bool {
	return strings.TrimSpace(c.OrderCode) == "" &&
		strings.TrimSpace(c.Supplier) == "" &&
		strings.TrimSpace(c.Colour) == "" &&
		strings.TrimSpace(c.Name) == ""
}
