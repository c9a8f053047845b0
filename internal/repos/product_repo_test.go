package repos_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"pricebook/internal/domain"
	"pricebook/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedProducts(t *testing.T, r *repos.ProductRepo) {
	t.Helper()
	err := r.InsertBatch([]domain.ProductInsert{
		{Supplier: "Acme", Name: "Blue Nitrile Gloves", Colour: "Blue", OrderCode: "AC-1001", PackQty: "200", PricePence: 1250},
		{Supplier: "Acme", Name: "apron heavy duty", Colour: "White", OrderCode: "AC-2002", PackQty: "10", PricePence: 899},
		{Supplier: "Beta", Name: "Cleaning Spray 250ml", Colour: "Blue", OrderCode: "BT-77", PackQty: "1", UOMQty: "250ml", PricePence: 499},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestProductRepo_FindOrderCodeSubstring(t *testing.T) {
	r := repos.NewProductRepo(memdb(t))
	seedProducts(t, r)

	out, err := r.Find(domain.Query{
		Predicates: []domain.Predicate{domain.Contains("order_code", "ac-")},
		OrderBy:    domain.OrderByName,
		Limit:      100,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 products, got %d", len(out))
	}
	// ascending by name, case-insensitive: "apron..." before "Blue..."
	if out[0].Name != "apron heavy duty" || out[1].Name != "Blue Nitrile Gloves" {
		t.Fatalf("wrong order: %q, %q", out[0].Name, out[1].Name)
	}
}

func TestProductRepo_FindCombinedPredicates(t *testing.T) {
	r := repos.NewProductRepo(memdb(t))
	seedProducts(t, r)

	out, err := r.Find(domain.Query{
		Predicates: []domain.Predicate{
			domain.Exact("supplier", "Acme"),
			domain.Exact("colour", "Blue"),
			domain.Contains("name", "gloves"),
		},
		OrderBy: domain.OrderByName,
		Limit:   100,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].OrderCode != "AC-1001" {
		t.Fatalf("want the blue gloves, got %+v", out)
	}
}

func TestProductRepo_ExactMatchIsCaseSensitive(t *testing.T) {
	r := repos.NewProductRepo(memdb(t))
	seedProducts(t, r)

	out, err := r.Find(domain.Query{
		Predicates: []domain.Predicate{domain.Exact("supplier", "acme")},
		Limit:      100,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("supplier match must be exact as stored, got %d rows", len(out))
	}
}

func TestProductRepo_FindLimit(t *testing.T) {
	r := repos.NewProductRepo(memdb(t))
	seedProducts(t, r)

	out, err := r.Find(domain.Query{OrderBy: domain.OrderByName, Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("want limit 2, got %d", len(out))
	}
}

func TestProductRepo_FindRejectsUnknownField(t *testing.T) {
	r := repos.NewProductRepo(memdb(t))
	_, err := r.Find(domain.Query{
		Predicates: []domain.Predicate{domain.Exact("id; DROP TABLE products", "x")},
	})
	if err == nil {
		t.Fatal("unknown fields must be rejected")
	}
}

func TestProductRepo_InsertBatchAllOrNothing(t *testing.T) {
	r := repos.NewProductRepo(memdb(t))

	err := r.InsertBatch([]domain.ProductInsert{
		{Name: "ok row", PackQty: "1"},
		{Name: "bad row", PackQty: "1", PricePence: -5}, // violates price check
	})
	if err == nil {
		t.Fatal("want batch failure")
	}
	n, err := r.Count(nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("failed batch must commit nothing, got %d rows", n)
	}
}

func TestProductRepo_CountAndGetMany(t *testing.T) {
	r := repos.NewProductRepo(memdb(t))
	seedProducts(t, r)

	n, err := r.Count(nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("want 3 products, got %d", n)
	}

	all, err := r.Find(domain.Query{OrderBy: domain.OrderByName, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.GetMany([]string{all[0].ID, "missing-id"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != all[0].ID {
		t.Fatalf("GetMany should skip unknown ids: %+v", got)
	}

	p, err := r.Get(all[0].ID)
	if err != nil || p.ID != all[0].ID {
		t.Fatalf("Get failed: %v %+v", err, p)
	}
}
