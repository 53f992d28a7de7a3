package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	models "storefront/model"
	"storefront/service"
)

// Script is a list of cart actions run in order:
//
//	steps:
//	  - add: item0001
//	  - quantity: {sku: item0001, qty: 3}
//	  - remove: item0001
//	  - checkout: true
type Script struct {
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Add      string        `yaml:"add,omitempty"`
	Remove   string        `yaml:"remove,omitempty"`
	Quantity *QuantityStep `yaml:"quantity,omitempty"`
	Checkout bool          `yaml:"checkout,omitempty"`
}

type QuantityStep struct {
	SKU string `yaml:"sku"`
	Qty *int   `yaml:"qty"`
}

var (
	errAmbiguousStep = errors.New("step must set exactly one of add, remove, quantity, checkout")
	errMissingQty    = errors.New("quantity step needs qty")
)

func (s Step) kind() (string, error) {
	var kinds []string
	if s.Add != "" {
		kinds = append(kinds, "add")
	}
	if s.Remove != "" {
		kinds = append(kinds, "remove")
	}
	if s.Quantity != nil {
		kinds = append(kinds, "quantity")
	}
	if s.Checkout {
		kinds = append(kinds, "checkout")
	}
	if len(kinds) != 1 {
		return "", errAmbiguousStep
	}
	if s.Quantity != nil && s.Quantity.Qty == nil {
		return "", errMissingQty
	}
	return kinds[0], nil
}

// ParseScript decodes a YAML script.
func ParseScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, st := range s.Steps {
		if _, err := st.kind(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func newRunCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a cart script and print the resulting cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			script, err := ParseScript(f)
			if err != nil {
				return err
			}

			a, err := build(cmd.Context(), opts.Config, opts.Logger)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := runScript(cmd, a.svc, script, opts.Logger); err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.svc.GetCart())
		},
	}
}

func runScript(cmd *cobra.Command, svc service.ServiceInterface, script *Script, log *zap.Logger) error {
	for i, st := range script.Steps {
		kind, _ := st.kind()
		var err error
		switch kind {
		case "add":
			_, err = svc.AddToCart(st.Add)
		case "remove":
			_, err = svc.RemoveFromCart(st.Remove)
		case "quantity":
			_, err = svc.UpdateQuantity(st.Quantity.SKU, *st.Quantity.Qty)
		case "checkout":
			var order models.Order
			order, err = svc.Checkout(cmd.Context())
			if err == nil {
				log.Debug("script checkout", zap.Int("step", i+1), zap.String("order_id", order.ID))
			}
		}
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, kind, err)
		}
	}
	return nil
}
