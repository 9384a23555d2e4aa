package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/ports"
	"github.com/mruizdev/bookstore-backoffice/internal/pkg/cache"
)

// CustomerHandler adapts the customer service to HTTP. The cache is
// optional; nil disables it.
type CustomerHandler struct {
	customers ports.CustomerService
	cache     cache.Cache
}

func NewCustomerHandler(customers ports.CustomerService, c cache.Cache) *CustomerHandler {
	return &CustomerHandler{customers: customers, cache: c}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCustomersToResponse(customers))
}

func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	key := ""
	if h.cache != nil {
		key = h.cache.GenerateKey("customer", strconv.FormatInt(id, 10))
		if cached, err := h.cache.Get(r.Context(), key); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(cached))
			return
		}
	}

	customer, err := h.customers.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := mapCustomerToResponse(customer)
	if h.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := h.cache.Set(r.Context(), key, payload, cacheTTL); err != nil {
				slog.WarnContext(r.Context(), "customer cache set failed", "id", id, "error", err)
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	customer, err := h.customers.Create(r.Context(), req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "customer created", "id", customer.ID)
	writeJSON(w, http.StatusCreated, mapCustomerToResponse(customer))
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	customer, err := h.customers.Update(r.Context(), id, req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.invalidate(r, id)
	writeJSON(w, http.StatusOK, mapCustomerToResponse(customer))
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.customers.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	h.invalidate(r, id)
	slog.InfoContext(r.Context(), "customer deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) invalidate(r *http.Request, id int64) {
	if h.cache == nil {
		return
	}
	key := h.cache.GenerateKey("customer", strconv.FormatInt(id, 10))
	if err := h.cache.Del(r.Context(), key); err != nil {
		slog.WarnContext(r.Context(), "customer cache invalidation failed", "id", id, "error", err)
	}
}
