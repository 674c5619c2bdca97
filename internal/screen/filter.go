// Package screen applies the list-screen filters. Filter state lives in URL
// query parameters so filtered views stay shareable and survive reloads;
// the filtering itself runs over the already fetched collection, never as
// server-side query parameters.
package screen

import (
	"net/url"
	"strings"

	"github.com/Lucas-2000/obreron-admin/internal/model"
)

// All is the sentinel select value that removes a filter instead of
// storing it.
const All = "Todos"

// ActiveOnly keeps only orders that are not yet delivered.
const ActiveOnly = "Ativos"

// Query parameter names shared by the list screens.
const (
	ParamName   = "name"
	ParamActive = "active"
	ParamStatus = "status"
)

// SetParam updates one filter in the query string. Empty values and the
// "Todos" sentinel delete the parameter rather than storing it.
func SetParam(q url.Values, key, value string) {
	if value == "" || value == All {
		q.Del(key)
		return
	}
	q.Set(key, value)
}

// FilterItems keeps items whose name contains the name parameter.
// Containment is case-sensitive, not fuzzy.
func FilterItems(items []model.Item, q url.Values) []model.Item {
	name := q.Get(ParamName)
	if name == "" {
		return items
	}
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(it.Name, name) {
			out = append(out, it)
		}
	}
	return out
}

// FilterCustomers keeps customers whose name contains the name parameter.
func FilterCustomers(customers []model.Customer, q url.Values) []model.Customer {
	name := q.Get(ParamName)
	if name == "" {
		return customers
	}
	out := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(c.Name, name) {
			out = append(out, c)
		}
	}
	return out
}

// FilterOrders applies the three order filters: customer-name containment,
// "Ativos" (excludes delivered orders) and an exact delivery-status match.
func FilterOrders(orders []model.Order, q url.Values) []model.Order {
	name := q.Get(ParamName)
	active := q.Get(ParamActive)
	status := q.Get(ParamStatus)

	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if name != "" && !strings.Contains(o.Customer.Name, name) {
			continue
		}
		if active != "" && active != All && o.DeliveryStatus.Terminal() {
			continue
		}
		if status != "" && status != All && string(o.DeliveryStatus) != status {
			continue
		}
		out = append(out, o)
	}
	return out
}
