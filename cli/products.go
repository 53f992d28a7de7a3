package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newProductsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build(cmd.Context(), opts.Config, opts.Logger)
			if err != nil {
				return err
			}
			defer a.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SKU\tNAME\tPRICE")
			for _, p := range a.svc.ListProducts() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.SKU, p.Name, p.DisplayPrice)
			}
			return w.Flush()
		},
	}
}
