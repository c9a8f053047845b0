package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog. Rows arrive via CSV import and are immutable afterwards.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  supplier TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  name TEXT NOT NULL DEFAULT '',
  colour TEXT NOT NULL DEFAULT '',
  size TEXT NOT NULL DEFAULT '',
  pack_qty TEXT NOT NULL DEFAULT '0',
  uom_qty TEXT NOT NULL DEFAULT '',
  amount TEXT NOT NULL DEFAULT '',
  order_code TEXT NOT NULL DEFAULT '',
  price_pence INTEGER NOT NULL DEFAULT 0 CHECK (price_pence >= 0),
  price_display TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_name       ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_order_code ON products(LOWER(order_code));
CREATE INDEX IF NOT EXISTS idx_products_supplier   ON products(supplier);
CREATE INDEX IF NOT EXISTS idx_products_colour     ON products(colour);

-- Session favorites with their usage descriptors.
CREATE TABLE IF NOT EXISTS favorites(
  session_id TEXT NOT NULL,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  frequency INTEGER NOT NULL DEFAULT 0 CHECK (frequency >= 0),
  period TEXT NOT NULL DEFAULT 'week' CHECK (period IN ('day','week','month')),
  position INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (session_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_favorites_session ON favorites(session_id);
`
	_, err := db.Exec(schema)
	return err
}
