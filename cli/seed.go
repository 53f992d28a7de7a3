package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/catalog"
	"storefront/store"
)

func newSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the configured catalog into the products table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.Config
			if cfg.DatabaseURL == "" {
				return errors.New("seed needs a database_url")
			}

			cat := catalog.Default()
			if cfg.CatalogPath != "" {
				var err error
				if cat, err = catalog.LoadFile(cfg.CatalogPath); err != nil {
					return err
				}
			}

			db, err := store.NewPostgresStore(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()

			return seed(cmd, db, cat, opts.Logger)
		},
	}
}

func seed(cmd *cobra.Command, st store.Store, cat *catalog.Catalog, log *zap.Logger) error {
	ctx := cmd.Context()
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	for _, p := range cat.List() {
		if err := st.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed %s: %w", p.SKU, err)
		}
	}
	log.Info("catalog seeded", zap.Int("products", cat.Len()))
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", cat.Len())
	return nil
}
