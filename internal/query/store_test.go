package query

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucas-2000/obreron-admin/internal/form"
	"github.com/Lucas-2000/obreron-admin/internal/model"
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
	"github.com/Lucas-2000/obreron-admin/internal/session"
)

// fakeAPI is a minimal upstream holding mutable item state.
type fakeAPI struct {
	mu       sync.Mutex
	items    []model.Item
	getCount atomic.Int32
	delay    time.Duration
}

func (f *fakeAPI) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/items":
			f.getCount.Add(1)
			if f.delay > 0 {
				time.Sleep(f.delay)
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			json.NewEncoder(w).Encode(f.items)
		case r.Method == http.MethodPost && r.URL.Path == "/items":
			var req obreron.ItemRequest
			json.NewDecoder(r.Body).Decode(&req)
			f.mu.Lock()
			f.items = append(f.items, model.Item{
				ID:           "new",
				Name:         req.Name,
				PriceInCents: req.PriceInCents,
				Ingredients:  req.Ingredients,
			})
			f.mu.Unlock()
			json.NewEncoder(w).Encode(obreron.MessageResponse{Message: "Item criado com sucesso"})
		case r.Method == http.MethodGet && r.URL.Path == "/statistics/count-orders/r-1":
			json.NewEncoder(w).Encode(model.Statistic{Count: 3})
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"rota não encontrada"}`))
		}
	}
}

func newTestStore(t *testing.T, api *fakeAPI) *Store {
	t.Helper()

	ts := httptest.NewServer(api.handler())
	t.Cleanup(ts.Close)

	sessions := session.NewMemStore()
	require.NoError(t, sessions.SetToken("tok"))
	return NewStore(obreron.NewClient(obreron.Config{APIURL: ts.URL}, sessions))
}

func TestItemsCached(t *testing.T) {
	api := &fakeAPI{items: []model.Item{{ID: "1", Name: "Pizza"}}}
	store := newTestStore(t, api)

	ctx := context.Background()
	first, err := store.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 1)

	// Second read is served from cache.
	_, err = store.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), api.getCount.Load())
}

func TestConcurrentReadsShareOneRequest(t *testing.T) {
	api := &fakeAPI{items: []model.Item{{ID: "1"}}, delay: 50 * time.Millisecond}
	store := newTestStore(t, api)

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := store.Items(ctx)
			assert.NoError(t, err)
			assert.Len(t, items, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), api.getCount.Load(), "concurrent same-key reads must share one in-flight request")
}

func TestMutationInvalidatesCache(t *testing.T) {
	api := &fakeAPI{items: []model.Item{{ID: "1", Name: "Pizza"}}}
	store := newTestStore(t, api)
	ctx := context.Background()

	before, err := store.Items(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	f := form.NewItemForm()
	f.Name = "Lasanha"
	f.Description = "desc"
	f.Price = "45.99"
	f.PreparationTime = "30"
	f.Ingredients = "massa, molho"
	require.True(t, f.Validate().Ok())

	msg, err := store.SaveItem(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, "Item criado com sucesso", msg)

	// The next read must reflect the new server state, not the stale cache.
	after, err := store.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
	assert.Equal(t, int32(2), api.getCount.Load())
}

// A read that was already in flight when a mutation succeeds must neither
// serve its pre-mutation snapshot to post-mutation readers nor write it into
// the cache after the invalidation.
func TestInFlightReadDoesNotOvertakeMutation(t *testing.T) {
	var (
		mu    sync.Mutex
		items = []model.Item{{ID: "1", Name: "Pizza"}}
		gated atomic.Bool
	)
	started := make(chan struct{})
	release := make(chan struct{})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/items":
			mu.Lock()
			snapshot := append([]model.Item(nil), items...)
			mu.Unlock()
			// The first read snapshots pre-mutation state, then stalls
			// until after the mutation completed.
			if gated.CompareAndSwap(false, true) {
				close(started)
				<-release
			}
			json.NewEncoder(w).Encode(snapshot)
		case r.Method == http.MethodPost && r.URL.Path == "/items":
			var req obreron.ItemRequest
			json.NewDecoder(r.Body).Decode(&req)
			mu.Lock()
			items = append(items, model.Item{ID: "2", Name: req.Name})
			mu.Unlock()
			json.NewEncoder(w).Encode(obreron.MessageResponse{Message: "Item criado com sucesso"})
		}
	}))
	t.Cleanup(ts.Close)

	sessions := session.NewMemStore()
	require.NoError(t, sessions.SetToken("tok"))
	store := NewStore(obreron.NewClient(obreron.Config{APIURL: ts.URL}, sessions))
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		stale, err := store.Items(ctx)
		assert.NoError(t, err)
		assert.Len(t, stale, 1, "snapshot was taken before the mutation")
	}()
	<-started

	f := form.NewItemForm()
	f.Name = "Lasanha"
	f.Description = "desc"
	f.Price = "45.99"
	f.PreparationTime = "30"
	f.Ingredients = "massa"
	_, err := store.SaveItem(ctx, f)
	require.NoError(t, err)

	// The stale read is still blocked; a read issued now must not join its
	// flight and must see the new state.
	after, err := store.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)

	close(release)
	<-done

	// The stale result finished after the invalidation and must not have
	// replaced the fresh cache entry.
	again, err := store.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 2)
}

func TestFailedFetchIsNotCached(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token inválido"}`))
	}))
	t.Cleanup(ts.Close)

	sessions := session.NewMemStore()
	store := NewStore(obreron.NewClient(obreron.Config{APIURL: ts.URL}, sessions))

	_, err := store.Items(context.Background())
	require.Error(t, err)

	var apiErr *obreron.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Unauthorized())

	// The error was not cached; the next read goes out again.
	_, err = store.Items(context.Background())
	assert.Error(t, err)
}

func TestStatisticsKeyedByParams(t *testing.T) {
	api := &fakeAPI{}
	store := newTestStore(t, api)

	stat, err := store.Statistics(context.Background(), "count-orders", "r-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stat.Count)

	// A different restaurant id is a different key and misses the cache.
	_, err = store.Statistics(context.Background(), "count-orders", "r-2")
	assert.Error(t, err)
}

func TestInvalidatePrefix(t *testing.T) {
	s := NewStore(nil)
	s.cache["items"] = []model.Item{}
	s.cache["statistics:count-orders:r-1"] = model.Statistic{}
	s.cache["statistics:count-items:r-1"] = model.Statistic{}
	s.cache["customers"] = []model.Customer{}

	s.Invalidate(ResourceStatistics)
	assert.NotContains(t, s.cache, "statistics:count-orders:r-1")
	assert.NotContains(t, s.cache, "statistics:count-items:r-1")
	assert.Contains(t, s.cache, "items")
	assert.Contains(t, s.cache, "customers")

	s.InvalidateAll()
	assert.Empty(t, s.cache)
}
