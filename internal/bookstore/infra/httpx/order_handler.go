package httpx

import (
	"log/slog"
	"net/http"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/ports"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/infra/httpx/middlewares"
)

// OrderHandler adapts the order service to HTTP. Orders are never cached:
// their responses embed book and customer records whose staleness would be
// hard to reason about.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrdersToResponse(orders))
}

func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	slog.InfoContext(r.Context(), "creating order",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"book_id", req.Book.ID,
		"customer_id", req.Customer.ID,
	)

	order, err := h.orders.Create(r.Context(), req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapOrderToResponse(order))
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	order, err := h.orders.Update(r.Context(), id, req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "order deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
