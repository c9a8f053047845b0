package handlers

import (
	"github.com/jmoiron/sqlx"

	"pricebook/internal/domain"
	"pricebook/internal/repos"
	"pricebook/internal/services"
	"pricebook/internal/session"
)

type Deps struct {
	SearchHandler    *SearchHandler
	ProductHandler   *ProductHandler
	ImportHandler    *ImportHandler
	FavoritesHandler *FavoritesHandler
	DisplayHandler   *DisplayHandler
}

func NewDeps(db *sqlx.DB, cache domain.QueryCache) *Deps {
	prodRepo := repos.NewProductRepo(db)
	favRepo := repos.NewFavoriteRepo(db)

	searchSvc := services.NewSearchService(prodRepo, cache)
	importer := services.NewImporter(prodRepo, cache)
	sessions := session.NewManager(favRepo)

	return &Deps{
		SearchHandler:    &SearchHandler{Search: searchSvc, Sessions: sessions},
		ProductHandler:   &ProductHandler{Products: prodRepo, Search: searchSvc},
		ImportHandler:    &ImportHandler{Importer: importer},
		FavoritesHandler: &FavoritesHandler{Products: prodRepo, Sessions: sessions},
		DisplayHandler:   &DisplayHandler{Products: prodRepo, Sessions: sessions},
	}
}
