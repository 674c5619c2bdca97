// Package query holds the read and mutation bindings over the upstream API.
// Reads are cached under a composite key of resource name and parameters;
// concurrent reads of the same key share one in-flight request. A successful
// mutation invalidates every cached entry of the affected resource, so the
// next read refetches instead of serving stale data.
package query

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Lucas-2000/obreron-admin/internal/form"
	"github.com/Lucas-2000/obreron-admin/internal/model"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
)

// Resource names used as cache key prefixes.
const (
	ResourceRestaurant = "restaurant"
	ResourceItems      = "items"
	ResourceCustomers  = "customers"
	ResourceOrders     = "orders"
	ResourceUser       = "user"
	ResourceStatistics = "statistics"
)

var resources = []string{
	ResourceRestaurant,
	ResourceItems,
	ResourceCustomers,
	ResourceOrders,
	ResourceUser,
	ResourceStatistics,
}

type Store struct {
	api *obreron.Client

	mu    sync.RWMutex
	cache map[string]any
	gen   map[string]uint64
	group singleflight.Group
}

func NewStore(api *obreron.Client) *Store {
	return &Store{
		api:   api,
		cache: make(map[string]any),
		gen:   make(map[string]uint64),
	}
}

// keyResource is the resource prefix of a cache key.
func keyResource(key string) string {
	if i := strings.Index(key, ":"); i >= 0 {
		return key[:i]
	}
	return key
}

// fetch returns the cached value for key or runs fn once, no matter how many
// callers ask concurrently. Only successful results are cached, and only if
// the resource was not invalidated while the request was in flight: a late
// pre-mutation result must not overwrite post-mutation state.
func (s *Store) fetch(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, error) {
	resource := keyResource(key)

	s.mu.RLock()
	v, ok := s.cache[key]
	gen := s.gen[resource]
	s.mu.RUnlock()
	if ok {
		return v, nil
	}

	// The flight is scoped to the generation observed above, so a reader
	// arriving after an invalidation starts a fresh request instead of
	// joining one that predates the mutation.
	flight := key + "#" + strconv.FormatUint(gen, 10)
	v, err, _ := s.group.Do(flight, func() (any, error) {
		// Double check: an earlier flight may have filled the cache.
		s.mu.RLock()
		v, ok := s.cache[key]
		s.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		if s.gen[resource] == gen {
			s.cache[key] = v
		}
		s.mu.Unlock()
		return v, nil
	})
	return v, err
}

// Invalidate drops every cached entry of the resource, whatever parameters
// it was keyed with, and bumps the resource generation so in-flight reads
// cannot repopulate the cache with stale data. The next read refetches from
// the server.
func (s *Store) Invalidate(resource string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[resource]++
	for key := range s.cache {
		if key == resource || strings.HasPrefix(key, resource+":") {
			delete(s.cache, key)
		}
	}
}

// InvalidateAll discards the whole cache, e.g. after the session ends.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]any)
	for _, r := range resources {
		s.gen[r]++
	}
}

// --- read bindings ---

func (s *Store) Restaurant(ctx context.Context) (model.Restaurant, error) {
	v, err := s.fetch(ctx, ResourceRestaurant, func(ctx context.Context) (any, error) {
		return s.api.Restaurant(ctx)
	})
	if err != nil {
		return model.Restaurant{}, err
	}
	return v.(model.Restaurant), nil
}

func (s *Store) Items(ctx context.Context) ([]model.Item, error) {
	v, err := s.fetch(ctx, ResourceItems, func(ctx context.Context) (any, error) {
		return s.api.Items(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Item), nil
}

func (s *Store) Customers(ctx context.Context) ([]model.Customer, error) {
	v, err := s.fetch(ctx, ResourceCustomers, func(ctx context.Context) (any, error) {
		return s.api.Customers(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Customer), nil
}

func (s *Store) Orders(ctx context.Context) ([]model.Order, error) {
	v, err := s.fetch(ctx, ResourceOrders, func(ctx context.Context) (any, error) {
		return s.api.Orders(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Order), nil
}

func (s *Store) User(ctx context.Context) (model.User, error) {
	v, err := s.fetch(ctx, ResourceUser, func(ctx context.Context) (any, error) {
		return s.api.CurrentUser(ctx)
	})
	if err != nil {
		return model.User{}, err
	}
	return v.(model.User), nil
}

// Statistics is keyed by route name and restaurant id, so each aggregate is
// cached independently.
func (s *Store) Statistics(ctx context.Context, routeName, restaurantID string) (model.Statistic, error) {
	key := ResourceStatistics + ":" + routeName + ":" + restaurantID
	v, err := s.fetch(ctx, key, func(ctx context.Context) (any, error) {
		return s.api.Statistics(ctx, routeName, restaurantID)
	})
	if err != nil {
		return model.Statistic{}, err
	}
	return v.(model.Statistic), nil
}

// --- mutation bindings ---
// Each performs exactly one request with an already validated form, then
// invalidates the affected resource on success. The returned string is the
// server's confirmation message.

// SaveRestaurant creates the restaurant when the form is in create mode,
// updates it otherwise. One restaurant per account.
func (s *Store) SaveRestaurant(ctx context.Context, f form.RestaurantForm) (string, error) {
	req, err := f.Request()
	if err != nil {
		return "", err
	}

	var out obreron.MessageResponse
	if f.Mode == form.ModeCreate {
		out, err = s.api.CreateRestaurant(ctx, req)
	} else {
		out, err = s.api.UpdateRestaurant(ctx, req)
	}
	if err != nil {
		return "", err
	}
	s.Invalidate(ResourceRestaurant)
	s.Invalidate(ResourceStatistics)
	return out.Message, nil
}

func (s *Store) SaveItem(ctx context.Context, f form.ItemForm) (string, error) {
	req, err := f.Request()
	if err != nil {
		return "", err
	}

	var out obreron.MessageResponse
	if f.Mode == form.ModeCreate {
		out, err = s.api.CreateItem(ctx, req)
	} else {
		out, err = s.api.UpdateItem(ctx, req)
	}
	if err != nil {
		return "", err
	}
	s.Invalidate(ResourceItems)
	s.Invalidate(ResourceStatistics)
	return out.Message, nil
}

func (s *Store) DeleteItem(ctx context.Context, id string) (string, error) {
	out, err := s.api.DeleteItem(ctx, id)
	if err != nil {
		return "", err
	}
	s.Invalidate(ResourceItems)
	s.Invalidate(ResourceStatistics)
	return out.Message, nil
}

func (s *Store) SaveCustomer(ctx context.Context, f form.CustomerForm) (string, error) {
	req, err := f.Request()
	if err != nil {
		return "", err
	}

	var out obreron.MessageResponse
	if f.Mode == form.ModeCreate {
		out, err = s.api.CreateCustomer(ctx, req)
	} else {
		out, err = s.api.UpdateCustomer(ctx, req)
	}
	if err != nil {
		return "", err
	}
	s.Invalidate(ResourceCustomers)
	s.Invalidate(ResourceStatistics)
	return out.Message, nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) (string, error) {
	out, err := s.api.DeleteCustomer(ctx, id)
	if err != nil {
		return "", err
	}
	s.Invalidate(ResourceCustomers)
	s.Invalidate(ResourceStatistics)
	return out.Message, nil
}

func (s *Store) CreateOrder(ctx context.Context, f form.OrderForm, restaurantID string) (string, error) {
	req, err := f.Request(restaurantID)
	if err != nil {
		return "", err
	}

	out, err := s.api.CreateOrder(ctx, req)
	if err != nil {
		return "", err
	}
	s.Invalidate(ResourceOrders)
	s.Invalidate(ResourceStatistics)
	return out.Message, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, f form.OrderStatusForm) (string, error) {
	out, err := s.api.UpdateOrder(ctx, f.Request())
	if err != nil {
		return "", err
	}
	s.Invalidate(ResourceOrders)
	s.Invalidate(ResourceStatistics)
	return out.Message, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id string) (string, error) {
	out, err := s.api.DeleteOrder(ctx, id)
	if err != nil {
		return "", err
	}
	s.Invalidate(ResourceOrders)
	s.Invalidate(ResourceStatistics)
	return out.Message, nil
}
