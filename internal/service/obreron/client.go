package obreron

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/Lucas-2000/obreron-admin/internal/model"
	"github.com/Lucas-2000/obreron-admin/internal/session"
)

// UnknownErrorMessage is shown when the API fails without a structured body.
const UnknownErrorMessage = "Erro desconhecido ao processar a solicitação."

// APIError is a failure reported by the upstream API. When the response body
// carried a structured {"error": ...} object, Message holds it verbatim;
// otherwise Message is UnknownErrorMessage.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("obreron api error (status %d): %s", e.Status, e.Message)
}

// Unauthorized reports whether the failure was an authentication one.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

type Config struct {
	APIURL string
}

// Client talks to the remote Obreron REST API. It holds no entity state of
// its own; the server is the single source of truth.
type Client struct {
	client *http.Client
	config Config
	tokens session.Store
}

func NewClient(cfg Config, tokens session.Store) *Client {
	return &Client{
		client: &http.Client{
			Transport: &apiTransport{Base: http.DefaultTransport},
			Timeout:   10 * time.Second,
		},
		config: cfg,
		tokens: tokens,
	}
}

// apiTransport sets the JSON/brotli headers and transparently decodes
// brotli-encoded responses.
type apiTransport struct {
	Base http.RoundTripper
}

func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")

	resp, err := t.Base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.Header.Get("Content-Encoding") == "br" {
		resp.Body = &readCloserWrapper{Reader: brotli.NewReader(resp.Body), Closer: resp.Body}
		resp.Header.Del("Content-Encoding")
	}
	return resp, nil
}

type readCloserWrapper struct {
	io.Reader
	io.Closer
}

func (r *readCloserWrapper) Read(p []byte) (n int, err error) {
	return r.Reader.Read(p)
}

func (r *readCloserWrapper) Close() error {
	return r.Closer.Close()
}

// do performs one request. Exactly one request per invocation, no retries.
// authed attaches the bearer credential; login, registration and the reset
// request go out without one.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	u := c.config.APIURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decodeError classifies a failed response: a JSON body with a non-empty
// "error" field is surfaced verbatim, anything else becomes the generic
// unknown-error message.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: UnknownErrorMessage}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}
	return apiErr
}

// --- session ---

func (c *Client) Login(ctx context.Context, username, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/users/auth", nil, AuthRequest{Username: username, Password: password}, &out, false)
	return out, err
}

// --- account ---

func (c *Client) Register(ctx context.Context, req RegisterRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/users", nil, req, &out, false)
	return out, err
}

func (c *Client) CurrentUser(ctx context.Context) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodGet, "/users", nil, nil, &out, true)
	return out, err
}

func (c *Client) UpdatePassword(ctx context.Context, req UpdateUserRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPatch, "/users", nil, req, &out, true)
	return out, err
}

// UpdatePasswordByID serves the reset-password flow, where the caller holds
// a reset token instead of a session.
func (c *Client) UpdatePasswordByID(ctx context.Context, userID string, req UpdateUserRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPatch, "/users/"+userID, nil, req, &out, false)
	return out, err
}

func (c *Client) DeleteAccount(ctx context.Context) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodDelete, "/users", nil, nil, &out, true)
	return out, err
}

// --- password reset ---

func (c *Client) RequestPasswordReset(ctx context.Context, email string) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/reset-password", nil, ResetPasswordRequest{Email: email}, &out, false)
	return out, err
}

func (c *Client) PasswordResetToken(ctx context.Context, token string) (ResetTokenInfo, error) {
	var out ResetTokenInfo
	err := c.do(ctx, http.MethodGet, "/reset-password", url.Values{"token": {token}}, nil, &out, false)
	return out, err
}

// --- restaurant ---

func (c *Client) Restaurant(ctx context.Context) (model.Restaurant, error) {
	var out model.Restaurant
	err := c.do(ctx, http.MethodGet, "/restaurants", nil, nil, &out, true)
	return out, err
}

func (c *Client) CreateRestaurant(ctx context.Context, req RestaurantRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/restaurants", nil, req, &out, true)
	return out, err
}

func (c *Client) UpdateRestaurant(ctx context.Context, req RestaurantRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPatch, "/restaurants", nil, req, &out, true)
	return out, err
}

// --- items ---

func (c *Client) Items(ctx context.Context) ([]model.Item, error) {
	var out []model.Item
	err := c.do(ctx, http.MethodGet, "/items", nil, nil, &out, true)
	return out, err
}

func (c *Client) CreateItem(ctx context.Context, req ItemRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/items", nil, req, &out, true)
	return out, err
}

func (c *Client) UpdateItem(ctx context.Context, req ItemRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPatch, "/items", nil, req, &out, true)
	return out, err
}

func (c *Client) DeleteItem(ctx context.Context, id string) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodDelete, "/items", nil, deleteRequest{ID: id}, &out, true)
	return out, err
}

// --- customers ---

func (c *Client) Customers(ctx context.Context) ([]model.Customer, error) {
	var out []model.Customer
	err := c.do(ctx, http.MethodGet, "/customers", nil, nil, &out, true)
	return out, err
}

func (c *Client) CreateCustomer(ctx context.Context, req CustomerRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/customers", nil, req, &out, true)
	return out, err
}

func (c *Client) UpdateCustomer(ctx context.Context, req CustomerRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPatch, "/customers", nil, req, &out, true)
	return out, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodDelete, "/customers", nil, deleteRequest{ID: id}, &out, true)
	return out, err
}

// --- orders ---

func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	err := c.do(ctx, http.MethodGet, "/orders/user", nil, nil, &out, true)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/orders", nil, req, &out, true)
	return out, err
}

func (c *Client) UpdateOrder(ctx context.Context, req OrderRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPatch, "/orders", nil, req, &out, true)
	return out, err
}

func (c *Client) DeleteOrder(ctx context.Context, id string) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodDelete, "/orders", nil, deleteRequest{ID: id}, &out, true)
	return out, err
}

// --- statistics ---

func (c *Client) Statistics(ctx context.Context, routeName, restaurantID string) (model.Statistic, error) {
	var out model.Statistic
	err := c.do(ctx, http.MethodGet, "/statistics/"+routeName+"/"+restaurantID, nil, nil, &out, true)
	return out, err
}
