package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/cart"
	"storefront/catalog"
	models "storefront/model"
)

var (
	ErrSKURequired    = errors.New("sku required")
	ErrUnknownProduct = errors.New("unknown product")
	ErrCartEmpty      = cart.ErrCartEmpty
	ErrSubmitFailed   = errors.New("order submission failed")
)

type Service struct {
	catalog   *catalog.Catalog
	cart      *cart.Store
	submitter Submitter
	log       *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewService(c *catalog.Catalog, st *cart.Store, sub Submitter, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		catalog:   c,
		cart:      st,
		submitter: sub,
		log:       log,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

func (s *Service) ListProducts() []ProductDTO {
	money := s.cart.Money()
	products := s.catalog.List()
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductDTO{
			SKU:          p.SKU,
			Name:         p.Name,
			Price:        p.Price,
			DisplayPrice: money.Format(p.Price),
		})
	}
	return out
}

// AddToCart puts one unit of the catalog product sku into the cart.
func (s *Service) AddToCart(sku string) (cart.View, error) {
	if sku == "" {
		return cart.View{}, ErrSKURequired
	}
	p, ok := s.catalog.Lookup(sku)
	if !ok {
		return cart.View{}, fmt.Errorf("%w: %s", ErrUnknownProduct, sku)
	}
	s.log.Info("adding item", zap.String("sku", sku))
	return s.dispatch(cart.Add{Item: p.CartItem()})
}

func (s *Service) RemoveFromCart(sku string) (cart.View, error) {
	if sku == "" {
		return cart.View{}, ErrSKURequired
	}
	s.log.Info("removing item", zap.String("sku", sku))
	return s.dispatch(cart.Remove{Item: &models.CartItem{SKU: sku}})
}

// UpdateQuantity sets the quantity of a line item already in the cart.
// A qty of zero or less removes it.
func (s *Service) UpdateQuantity(sku string, qty int) (cart.View, error) {
	if sku == "" {
		return cart.View{}, ErrSKURequired
	}
	s.log.Info("updating quantity", zap.String("sku", sku), zap.Int("qty", qty))
	return s.dispatch(cart.SetQuantity{Item: &models.CartItem{SKU: sku, Qty: qty}})
}

func (s *Service) GetCart() cart.View {
	return s.cart.View()
}

// Checkout submits the cart as an order. The cart is emptied only after the
// submitter accepts the order; on failure it is left as it was.
func (s *Service) Checkout(ctx context.Context) (models.Order, error) {
	var order models.Order
	_, err := s.cart.Checkout(ctx, func(ctx context.Context, v cart.View) error {
		order = models.Order{
			ID:         s.newID(),
			Items:      v.Items,
			TotalItems: v.TotalItems,
			Total:      v.Total,
			TotalPrice: v.TotalPrice,
			CreatedAt:  s.now(),
		}
		if err := s.submitter.Submit(ctx, order); err != nil {
			return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("checkout failed", zap.Error(err))
		return models.Order{}, err
	}
	s.log.Info("checked out",
		zap.String("order_id", order.ID),
		zap.Int("total_items", order.TotalItems),
		zap.String("total", order.TotalPrice),
	)
	return order, nil
}

func (s *Service) dispatch(cmd cart.Command) (cart.View, error) {
	if err := s.cart.Dispatch(cmd); err != nil {
		s.log.Warn("command rejected", zap.String("command", cmd.Name()), zap.Error(err))
		return cart.View{}, err
	}
	return s.cart.View(), nil
}

// DTOs
type ProductDTO struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DisplayPrice string          `json:"display_price"`
}
