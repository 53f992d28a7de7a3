package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storefront/cart"
	"storefront/catalog"
	"storefront/config"
	"storefront/service"
	"storefront/store"
	"storefront/submit"
)

// app is the composed storefront: one catalog and one cart, passed
// explicitly to everything that needs them.
type app struct {
	catalog *catalog.Catalog
	cart    *cart.Store
	svc     *service.Service
	db      *store.PostgresStore
}

func (a *app) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func build(ctx context.Context, cfg config.Config, log *zap.Logger) (*app, error) {
	a := &app{}

	if cfg.DatabaseURL != "" {
		db, err := store.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		a.db = db
	}

	cat, err := loadCatalog(ctx, cfg, a.db, log)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.catalog = cat

	var sub service.Submitter
	switch {
	case cfg.FulfillmentURL != "":
		sub = submit.NewHTTP(cfg.FulfillmentURL, cfg.SubmitTimeout)
	case a.db != nil:
		sub = a.db
	default:
		sub = submit.Log{Logger: log}
	}

	a.cart = cart.NewStore(cart.USD())
	a.svc = service.NewService(a.catalog, a.cart, sub, log)
	return a, nil
}

// loadCatalog picks the catalog source: an explicit file wins, then the
// products table, then the built-in list.
func loadCatalog(ctx context.Context, cfg config.Config, db *store.PostgresStore, log *zap.Logger) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		cat, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", cfg.CatalogPath, err)
		}
		log.Info("catalog loaded", zap.String("source", cfg.CatalogPath), zap.Int("products", cat.Len()))
		return cat, nil
	}
	if db != nil {
		cat, err := catalog.Load(ctx, db)
		if err != nil {
			return nil, err
		}
		if cat.Len() > 0 {
			log.Info("catalog loaded", zap.String("source", "postgres"), zap.Int("products", cat.Len()))
			return cat, nil
		}
		log.Warn("products table is empty, using built-in catalog")
	}
	return catalog.Default(), nil
}
