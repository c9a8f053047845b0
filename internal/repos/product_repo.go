package repos

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pricebook/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `
  id, supplier, category, name, colour, size, pack_qty, uom_qty, amount,
  order_code, price_pence, price_display,
  created_at, COALESCE(updated_at,'') AS updated_at`

// columns whitelists predicate fields; anything else is rejected.
var columns = map[string]string{
	"supplier":   "supplier",
	"category":   "category",
	"name":       "name",
	"colour":     "colour",
	"order_code": "order_code",
}

func buildWhere(preds []domain.Predicate) (string, []any, error) {
	where := "1=1"
	args := []any{}
	for _, p := range preds {
		col, ok := columns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter field %q", p.Field)
		}
		switch p.Kind {
		case domain.MatchExact:
			where += ` AND ` + col + ` = ?`
			args = append(args, p.Value)
		case domain.MatchContains:
			where += ` AND LOWER(` + col + `) LIKE ?`
			args = append(args, "%"+strings.ToLower(p.Value)+"%")
		default:
			return "", nil, fmt.Errorf("unknown match kind %d", p.Kind)
		}
	}
	return where, args, nil
}

// Find runs an AND of predicates, ordered and limited.
func (r *ProductRepo) Find(q domain.Query) ([]domain.Product, error) {
	where, args, err := buildWhere(q.Predicates)
	if err != nil {
		return nil, err
	}

	sql := `SELECT` + productColumns + ` FROM products WHERE ` + where
	if q.OrderBy == domain.OrderByName {
		sql += ` ORDER BY LOWER(name) ASC`
	}
	if q.Limit > 0 {
		sql += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	out := []domain.Product{}
	err = r.db.Select(&out, sql, args...)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productColumns+` FROM products WHERE id = ?`, id)
	return p, err
}

// GetMany fetches the given ids, silently skipping ones that do not exist.
func (r *ProductRepo) GetMany(ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	sql, args, err := sqlx.In(`SELECT`+productColumns+` FROM products WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	out := []domain.Product{}
	err = r.db.Select(&out, r.db.Rebind(sql), args...)
	return out, err
}

// InsertBatch persists one batch in a single transaction: all rows commit or
// none do. Identifiers and creation timestamps are assigned here.
func (r *ProductRepo) InsertBatch(rows []domain.ProductInsert) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, row := range rows {
		_, err := tx.Exec(`
		  INSERT INTO products(
		    id, supplier, category, name, colour, size, pack_qty, uom_qty,
		    amount, order_code, price_pence, price_display, created_at
		  ) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
		`, uuid.NewString(), row.Supplier, row.Category, row.Name, row.Colour,
			row.Size, row.PackQty, row.UOMQty, row.Amount, row.OrderCode,
			row.PricePence, row.PriceDisplay, now)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *ProductRepo) Count(preds []domain.Predicate) (int, error) {
	where, args, err := buildWhere(preds)
	if err != nil {
		return 0, err
	}
	var n int
	err = r.db.Get(&n, `SELECT COUNT(*) FROM products WHERE `+where, args...)
	return n, err
}
