package obreron

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucas-2000/obreron-admin/internal/model"
	"github.com/Lucas-2000/obreron-admin/internal/session"
)

func newTestClient(t *testing.T, upstream http.HandlerFunc, token string) *Client {
	t.Helper()

	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	sessions := session.NewMemStore()
	if token != "" {
		require.NoError(t, sessions.SetToken(token))
	}
	return NewClient(Config{APIURL: ts.URL}, sessions)
}

func TestItems_BearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]model.Item{{ID: "1", Name: "Pizza", PriceInCents: 4500}})
	}, "tok-123")

	items, err := client.Items(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	require.Len(t, items, 1)
	assert.Equal(t, 4500, items[0].PriceInCents)
}

func TestLogin_NoBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req AuthRequest
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "admin", req.Username)

		json.NewEncoder(w).Encode(AuthResponse{Token: "fresh-token", User: model.User{Username: "admin"}})
	}, "stale-token")

	out, err := client.Login(context.Background(), "admin", "secret-pass")
	assert.NoError(t, err)
	assert.Empty(t, gotAuth, "login must not carry the stored credential")
	assert.Equal(t, "fresh-token", out.Token)
}

func TestDo_StructuredErrorShownVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Restaurante já cadastrado"}`))
	}, "tok")

	_, err := client.CreateRestaurant(context.Background(), RestaurantRequest{Name: "X"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Restaurante já cadastrado", apiErr.Message)
}

func TestDo_UnstructuredErrorBecomesUnknown(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}, "tok")

	_, err := client.DeleteItem(context.Background(), "1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, UnknownErrorMessage, apiErr.Message)
}

func TestDo_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token inválido"}`))
	}, "")

	_, err := client.Orders(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Unauthorized())
}

func TestDo_BrotliResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "br", r.Header.Get("Accept-Encoding"))

		w.Header().Set("Content-Encoding", "br")
		bw := brotli.NewWriter(w)
		json.NewEncoder(bw).Encode([]model.Customer{{ID: "c1", Name: "Maria"}})
		bw.Close()
	}, "tok")

	customers, err := client.Customers(context.Background())
	assert.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Maria", customers[0].Name)
}

func TestDeleteSendsIDInBody(t *testing.T) {
	var got deleteRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Cliente removido"})
	}, "tok")

	out, err := client.DeleteCustomer(context.Background(), "c-9")
	assert.NoError(t, err)
	assert.Equal(t, "c-9", got.ID)
	assert.Equal(t, "Cliente removido", out.Message)
}

func TestStatisticsPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/statistics/count-orders/r-1", r.URL.Path)
		json.NewEncoder(w).Encode(model.Statistic{Count: 7})
	}, "tok")

	stat, err := client.Statistics(context.Background(), "count-orders", "r-1")
	assert.NoError(t, err)
	assert.Equal(t, 7, stat.Count)
}
