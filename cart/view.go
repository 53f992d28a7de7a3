package cart

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	models "storefront/model"
)

// View is the read-only summary the view layer renders. It is recomputed from
// State on every read.
type View struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	Total      decimal.Decimal   `json:"total"`
	TotalPrice string            `json:"total_price"`
}

// NewView derives the display view of s.
func NewView(s State, money Money) View {
	items := s.Items()
	SortBySKU(items)

	total := decimal.Zero
	count := 0
	for _, it := range items {
		count += it.Qty
		total = total.Add(it.Subtotal())
	}

	return View{
		Items:      items,
		TotalItems: count,
		Total:      total,
		TotalPrice: money.Format(total),
	}
}

// SortBySKU orders items by the number at the end of their sku ("item0002"
// sorts as 2). Skus with no trailing digits go last. Ties keep their order.
func SortBySKU(items []models.CartItem) {
	slices.SortStableFunc(items, func(a, b models.CartItem) int {
		ka, oka := skuOrder(a.SKU)
		kb, okb := skuOrder(b.SKU)
		switch {
		case oka && !okb:
			return -1
		case !oka && okb:
			return 1
		case !oka && !okb:
			return 0
		}
		return cmp.Compare(ka, kb)
	})
}

func skuOrder(sku string) (uint64, bool) {
	i := len(sku)
	for i > 0 && sku[i-1] >= '0' && sku[i-1] <= '9' {
		i--
	}
	if i == len(sku) {
		return 0, false
	}
	n, err := strconv.ParseUint(sku[i:], 10, 64)
	if err != nil {
		// only overflow can fail here
		return math.MaxUint64, true
	}
	return n, true
}
