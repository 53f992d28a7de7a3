package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"storefront/cart"
	"storefront/service"
)

// Handler is the HTTP layer that talks to service.Service
type Handler struct {
	svc service.ServiceInterface
	log *zap.Logger
}

// NewHandler returns a Handler instance
func NewHandler(s service.ServiceInterface, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: s, log: log}
}

// RegisterRoutes registers all routes on the provided router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", h.Health).Methods("GET")

	// Products
	r.HandleFunc("/products/list", h.ListProducts).Methods("GET")

	// Cart
	r.HandleFunc("/cart/list", h.ListCart).Methods("GET")
	r.HandleFunc("/cart/add", h.AddToCart).Methods("POST")
	r.HandleFunc("/cart/remove", h.RemoveFromCart).Methods("POST")
	r.HandleFunc("/cart/quantity", h.UpdateQuantity).Methods("POST")

	// Checkout
	r.HandleFunc("/checkout/order", h.Checkout).Methods("POST")
}

// --- request / response shapes ---
type cartItemReq struct {
	SKU string `json:"sku"`
	Qty *int   `json:"qty,omitempty"` // only used by /cart/quantity
}

// --- helpers ---
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// statusFor maps service and cart errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSKURequired),
		errors.Is(err, service.ErrCartEmpty),
		errors.Is(err, cart.ErrMissingPayload),
		errors.Is(err, cart.ErrUnknownCommand):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownProduct),
		errors.Is(err, cart.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSubmitFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeErr(w, code, err.Error())
}

func decodeItem(w http.ResponseWriter, r *http.Request) (cartItemReq, bool) {
	var req cartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return req, false
	}
	if req.SKU == "" {
		writeErr(w, http.StatusBadRequest, "sku is required")
		return req, false
	}
	return req, true
}

// --- Handler ---

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListProducts handles GET /products/list
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListProducts())
}

// ListCart handles GET /cart/list
func (h *Handler) ListCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GetCart())
}

// AddToCart handles POST /cart/add
// body: { "sku": "item0001" }
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeItem(w, r)
	if !ok {
		return
	}
	v, err := h.svc.AddToCart(req.SKU)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// RemoveFromCart handles POST /cart/remove
// body: { "sku": "item0001" }
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeItem(w, r)
	if !ok {
		return
	}
	v, err := h.svc.RemoveFromCart(req.SKU)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// UpdateQuantity handles POST /cart/quantity
// body: { "sku": "item0001", "qty": 5 }
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeItem(w, r)
	if !ok {
		return
	}
	if req.Qty == nil {
		writeErr(w, http.StatusBadRequest, "qty is required")
		return
	}
	v, err := h.svc.UpdateQuantity(req.SKU, *req.Qty)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Checkout handles POST /checkout/order
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ord, err := h.svc.Checkout(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ord)
}
