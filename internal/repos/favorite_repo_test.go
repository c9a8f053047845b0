package repos_test

import (
	"testing"

	"pricebook/internal/domain"
	"pricebook/internal/repos"
	"pricebook/internal/session"
)

func TestFavoriteRepo_SaveLoadRoundtrip(t *testing.T) {
	db := memdb(t)
	prods := repos.NewProductRepo(db)
	seedProducts(t, prods)

	all, err := prods.Find(domain.Query{OrderBy: domain.OrderByName, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}

	favRepo := repos.NewFavoriteRepo(db)
	entries := []session.Entry{
		{Product: all[0], Usage: domain.UsageDescriptor{Frequency: 2, Period: domain.PerWeek}},
		{Product: all[1], Usage: domain.UsageDescriptor{Frequency: 1, Period: domain.PerMonth}},
	}
	if err := favRepo.Save("sess-1", entries); err != nil {
		t.Fatal(err)
	}

	got, err := favRepo.Load("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 favorites, got %d", len(got))
	}
	if got[0].Product.ID != all[0].ID || got[1].Product.ID != all[1].ID {
		t.Fatalf("position order lost: %+v", got)
	}
	if got[0].Usage.Frequency != 2 || got[0].Usage.Period != domain.PerWeek {
		t.Fatalf("usage lost: %+v", got[0].Usage)
	}
	if got[0].Product.Name != all[0].Name {
		t.Fatalf("product fields not joined: %+v", got[0].Product)
	}
}

func TestFavoriteRepo_SaveReplaces(t *testing.T) {
	db := memdb(t)
	prods := repos.NewProductRepo(db)
	seedProducts(t, prods)

	all, _ := prods.Find(domain.Query{OrderBy: domain.OrderByName, Limit: 10})
	favRepo := repos.NewFavoriteRepo(db)

	usage := domain.UsageDescriptor{Frequency: 1, Period: domain.PerDay}
	if err := favRepo.Save("sess-1", []session.Entry{{Product: all[0], Usage: usage}}); err != nil {
		t.Fatal(err)
	}
	if err := favRepo.Save("sess-1", []session.Entry{{Product: all[1], Usage: usage}}); err != nil {
		t.Fatal(err)
	}

	got, err := favRepo.Load("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Product.ID != all[1].ID {
		t.Fatalf("save must replace the whole list: %+v", got)
	}
}

func TestFavoriteRepo_SessionsIsolated(t *testing.T) {
	db := memdb(t)
	prods := repos.NewProductRepo(db)
	seedProducts(t, prods)

	all, _ := prods.Find(domain.Query{OrderBy: domain.OrderByName, Limit: 10})
	favRepo := repos.NewFavoriteRepo(db)
	usage := domain.UsageDescriptor{Frequency: 1, Period: domain.PerDay}

	_ = favRepo.Save("sess-a", []session.Entry{{Product: all[0], Usage: usage}})

	got, err := favRepo.Load("sess-b")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("sessions must not share favorites: %+v", got)
	}
}
