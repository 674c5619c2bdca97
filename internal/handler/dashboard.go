package handler

import (
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Statistics route names understood by the upstream API.
const (
	statOrdersCount    = "count-orders"
	statCustomersCount = "count-customers"
	statItemsCount     = "count-items"
	statRevenue        = "amount-orders"
)

type dashboardResponse struct {
	OrdersCount    int `json:"ordersCount"`
	CustomersCount int `json:"customersCount"`
	ItemsCount     int `json:"itemsCount"`
	RevenueInCents int `json:"revenueInCents"`
}

// Dashboard fans out over the statistics routes concurrently; each aggregate
// is cached under its own (route, restaurant) key.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.store.Restaurant(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var out dashboardResponse
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		stat, err := h.store.Statistics(ctx, statOrdersCount, restaurant.ID)
		if err == nil {
			out.OrdersCount = stat.Count
		}
		return err
	})
	g.Go(func() error {
		stat, err := h.store.Statistics(ctx, statCustomersCount, restaurant.ID)
		if err == nil {
			out.CustomersCount = stat.Count
		}
		return err
	})
	g.Go(func() error {
		stat, err := h.store.Statistics(ctx, statItemsCount, restaurant.ID)
		if err == nil {
			out.ItemsCount = stat.Count
		}
		return err
	})
	g.Go(func() error {
		stat, err := h.store.Statistics(ctx, statRevenue, restaurant.ID)
		if err == nil {
			out.RevenueInCents = stat.AmountInCents
		}
		return err
	})

	if err := g.Wait(); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}
