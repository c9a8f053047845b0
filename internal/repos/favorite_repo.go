package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"pricebook/internal/domain"
	"pricebook/internal/session"
)

// FavoriteRepo persists session favorites. It implements session.Adapter:
// the whole favorites list is rewritten on every mutation, which keeps the
// stored positions in step with the sorted in-memory list.
type FavoriteRepo struct{ db *sqlx.DB }

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

type favoriteRow struct {
	ProductID string `db:"product_id"`
	Frequency int    `db:"frequency"`
	Period    string `db:"period"`
	Position  int    `db:"position"`

	Supplier     string `db:"supplier"`
	Category     string `db:"category"`
	Name         string `db:"name"`
	Colour       string `db:"colour"`
	Size         string `db:"size"`
	PackQty      string `db:"pack_qty"`
	UOMQty       string `db:"uom_qty"`
	Amount       string `db:"amount"`
	OrderCode    string `db:"order_code"`
	PricePence   int64  `db:"price_pence"`
	PriceDisplay string `db:"price_display"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
}

func (r *FavoriteRepo) Load(sessionID string) ([]session.Entry, error) {
	var rows []favoriteRow
	err := r.db.Select(&rows, `
	  SELECT f.product_id, f.frequency, f.period, f.position,
	         p.supplier, p.category, p.name, p.colour, p.size, p.pack_qty,
	         p.uom_qty, p.amount, p.order_code, p.price_pence, p.price_display,
	         p.created_at, COALESCE(p.updated_at,'') AS updated_at
	  FROM favorites f
	  JOIN products p ON p.id = f.product_id
	  WHERE f.session_id = ?
	  ORDER BY f.position ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]session.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, session.Entry{
			Product: domain.Product{
				ID:           row.ProductID,
				Supplier:     row.Supplier,
				Category:     row.Category,
				Name:         row.Name,
				Colour:       row.Colour,
				Size:         row.Size,
				PackQty:      row.PackQty,
				UOMQty:       row.UOMQty,
				Amount:       row.Amount,
				OrderCode:    row.OrderCode,
				PricePence:   row.PricePence,
				PriceDisplay: row.PriceDisplay,
				CreatedAt:    row.CreatedAt,
				UpdatedAt:    row.UpdatedAt,
			},
			Usage: domain.UsageDescriptor{
				Frequency: row.Frequency,
				Period:    domain.Period(row.Period),
			},
		})
	}
	return out, nil
}

func (r *FavoriteRepo) Save(sessionID string, favorites []session.Entry) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM favorites WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for i, e := range favorites {
		_, err := tx.Exec(`
		  INSERT INTO favorites(session_id, product_id, frequency, period, position, created_at)
		  VALUES (?,?,?,?,?,?)
		`, sessionID, e.Product.ID, e.Usage.Frequency, string(e.Usage.Period), i, now)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
