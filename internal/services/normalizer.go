package services

import (
	"math"
	"strconv"
	"strings"

	"pricebook/internal/domain"
)

// fieldSpec maps one canonical product field onto the spreadsheet headers
// that may carry it. Aliases are tried in order and the first one present
// with a non-empty value wins; otherwise the default applies. New source
// formats are supported by extending these tables, not by new code.
type fieldSpec struct {
	aliases  []string
	fallback string
}

var productFields = map[string]fieldSpec{
	"supplier": {
		aliases: []string{"Supplier", "Supplier Name", "supplier_name", "supplier"},
	},
	"category": {
		aliases: []string{"Category", "Product Category", "category", "Type"},
	},
	"name": {
		aliases: []string{"Product Name", "Product", "Name", "Description", "product_name", "name"},
	},
	"colour": {
		aliases: []string{"Colour", "Color", "colour", "color"},
	},
	"size": {
		aliases: []string{"Size", "Size/Weight", "Weight", "size"},
	},
	"packQty": {
		aliases:  []string{"Pack Qty", "Pack Quantity", "Qty Per Pack", "pack_qty", "Pack"},
		fallback: "0",
	},
	"uomQty": {
		aliases: []string{"UOM Qty", "UOM", "Unit Quantity", "uom_qty", "Unit"},
	},
	"amount": {
		aliases: []string{"Amount", "amount", "Quantity"},
	},
	"orderCode": {
		aliases: []string{"Order Code", "Order Number", "Code", "order_code", "Product Code"},
	},
	"price": {
		aliases: []string{"Price", "Unit Price", "Pack Price", "price", "Cost"},
	},
	"priceDisplay": {
		aliases: []string{"Price (£)", "Display Price", "price_display"},
	},
}

// resolveField looks up the first alias present in the row with a non-empty
// value. Header comparison is case-insensitive and whitespace-tolerant so
// the alias lists stay short.
func resolveField(row map[string]string, field string) string {
	spec := productFields[field]
	for _, alias := range spec.aliases {
		for header, value := range row {
			if strings.EqualFold(strings.TrimSpace(header), alias) && strings.TrimSpace(value) != "" {
				return strings.TrimSpace(value)
			}
		}
	}
	return spec.fallback
}

// parsePrice converts the price cell into pence. Prices arrive in major
// units ("12.50"); currency symbols are tolerated and any parse failure
// degrades to 0 rather than failing the row.
func parsePrice(raw string) int64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimLeft(s, "£$€ ")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return int64(math.Round(v * 100))
}

// NormalizeRow maps one raw CSV row onto the canonical product shape.
// Unrecognized columns are ignored; missing fields take their defaults.
func NormalizeRow(row map[string]string) domain.ProductInsert {
	return domain.ProductInsert{
		Supplier:     resolveField(row, "supplier"),
		Category:     resolveField(row, "category"),
		Name:         resolveField(row, "name"),
		Colour:       resolveField(row, "colour"),
		Size:         resolveField(row, "size"),
		PackQty:      resolveField(row, "packQty"),
		UOMQty:       resolveField(row, "uomQty"),
		Amount:       resolveField(row, "amount"),
		OrderCode:    resolveField(row, "orderCode"),
		PricePence:   parsePrice(resolveField(row, "price")),
		PriceDisplay: resolveField(row, "priceDisplay"),
	}
}

// NormalizeRows maps a whole parsed CSV onto product inserts.
func NormalizeRows(rows []map[string]string) []domain.ProductInsert {
	out := make([]domain.ProductInsert, 0, len(rows))
	for _, row := range rows {
		out = append(out, NormalizeRow(row))
	}
	return out
}
