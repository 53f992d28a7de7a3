package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sebdah/goldie/v2"

	"storefront/cart"
	"storefront/catalog"
	models "storefront/model"
	"storefront/service"
)

type submitFunc func(ctx context.Context, order models.Order) error

func (f submitFunc) Submit(ctx context.Context, order models.Order) error { return f(ctx, order) }

func newRouter(sub service.Submitter) *mux.Router {
	svc := service.NewService(catalog.Default(), cart.NewStore(cart.USD()), sub, nil)
	r := mux.NewRouter()
	NewHandler(svc, nil).RegisterRoutes(r)
	return r
}

func okSubmitter() service.Submitter {
	return submitFunc(func(context.Context, models.Order) error { return nil })
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) cart.View {
	t.Helper()
	var v cart.View
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	return v
}

func TestListProductsGolden(t *testing.T) {
	r := newRouter(okSubmitter())

	rec := do(t, r, http.MethodGet, "/products/list", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	g := goldie.New(t)
	g.Assert(t, "products", rec.Body.Bytes())
}

func TestCartRoutes(t *testing.T) {
	r := newRouter(okSubmitter())

	rec := do(t, r, http.MethodPost, "/cart/add", `{"sku":"item0001"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	do(t, r, http.MethodPost, "/cart/add", `{"sku":"item0001"}`)

	v := decodeView(t, do(t, r, http.MethodGet, "/cart/list", ""))
	if v.TotalItems != 2 || v.TotalPrice != "$19.98" {
		t.Fatalf("unexpected cart after adds: %+v", v)
	}

	rec = do(t, r, http.MethodPost, "/cart/quantity", `{"sku":"item0001","qty":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("quantity: expected 200, got %d", rec.Code)
	}
	v = decodeView(t, rec)
	if v.TotalItems != 5 || v.TotalPrice != "$49.95" {
		t.Fatalf("unexpected cart after quantity: %+v", v)
	}

	rec = do(t, r, http.MethodPost, "/cart/remove", `{"sku":"item0001"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", rec.Code)
	}
	v = decodeView(t, rec)
	if v.TotalItems != 0 || v.TotalPrice != "$0.00" || len(v.Items) != 0 {
		t.Fatalf("unexpected cart after remove: %+v", v)
	}
}

func TestCartRouteErrors(t *testing.T) {
	r := newRouter(okSubmitter())

	cases := []struct {
		name string
		path string
		body string
		code int
	}{
		{"invalid json", "/cart/add", `{`, http.StatusBadRequest},
		{"missing sku", "/cart/add", `{}`, http.StatusBadRequest},
		{"unknown product", "/cart/add", `{"sku":"item9999"}`, http.StatusNotFound},
		{"quantity of absent item", "/cart/quantity", `{"sku":"item0002","qty":2}`, http.StatusNotFound},
		{"quantity without qty", "/cart/quantity", `{"sku":"item0002"}`, http.StatusBadRequest},
		{"remove missing sku", "/cart/remove", `{"qty":1}`, http.StatusBadRequest},
		{"checkout empty cart", "/checkout/order", ``, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, r, http.MethodPost, tc.path, tc.body)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, rec.Code, rec.Body)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body["error"] == "" {
				t.Fatalf("expected error body, got %v (%v)", body, err)
			}
		})
	}
}

func TestQuantityRequiresQty(t *testing.T) {
	r := newRouter(okSubmitter())
	do(t, r, http.MethodPost, "/cart/add", `{"sku":"item0001"}`)

	rec := do(t, r, http.MethodPost, "/cart/quantity", `{"sku":"item0001"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body)
	}
	v := decodeView(t, do(t, r, http.MethodGet, "/cart/list", ""))
	if v.TotalItems != 1 {
		t.Fatalf("line item should survive a request without qty: %+v", v)
	}

	// an explicit zero still removes the line item
	v = decodeView(t, do(t, r, http.MethodPost, "/cart/quantity", `{"sku":"item0001","qty":0}`))
	if v.TotalItems != 0 {
		t.Fatalf("expected qty 0 to remove the line item: %+v", v)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	r := newRouter(okSubmitter())
	rec := do(t, r, http.MethodGet, "/cart/add", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestCheckout(t *testing.T) {
	var submitted models.Order
	r := newRouter(submitFunc(func(_ context.Context, o models.Order) error {
		submitted = o
		return nil
	}))
	do(t, r, http.MethodPost, "/cart/add", `{"sku":"item0003"}`)

	rec := do(t, r, http.MethodPost, "/checkout/order", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var ord models.Order
	if err := json.NewDecoder(rec.Body).Decode(&ord); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if ord.ID == "" || ord.ID != submitted.ID || ord.TotalPrice != "$39.99" {
		t.Fatalf("unexpected order: %+v", ord)
	}

	v := decodeView(t, do(t, r, http.MethodGet, "/cart/list", ""))
	if v.TotalItems != 0 {
		t.Fatalf("expected empty cart after checkout, got %+v", v)
	}
}

func TestCheckoutSubmitFailure(t *testing.T) {
	r := newRouter(submitFunc(func(context.Context, models.Order) error { return errors.New("down") }))
	do(t, r, http.MethodPost, "/cart/add", `{"sku":"item0001"}`)

	rec := do(t, r, http.MethodPost, "/checkout/order", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	v := decodeView(t, do(t, r, http.MethodGet, "/cart/list", ""))
	if v.TotalItems != 1 {
		t.Fatalf("cart should survive a failed checkout, got %+v", v)
	}
}

func TestHealth(t *testing.T) {
	rec := do(t, newRouter(okSubmitter()), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body)
	}
}

func TestStatusFor(t *testing.T) {
	if got := statusFor(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown error, got %d", got)
	}
	if got := statusFor(cart.ErrUnknownCommand); got != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown command, got %d", got)
	}
}
