// Package api is a cookie-carrying HTTP client for the storefront API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// Error is a rejected call: either a business failure or a gate rejection.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// User is the session owner as returned by is-auth.
type User struct {
	ID        string         `json:"_id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	CartItems map[string]int `json:"cartItems"`
	Addresses []Address      `json:"addresses"`
}

// Address is one delivery address.
type Address struct {
	ID        string `json:"_id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Product is one catalog entry.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description []string `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	OfferPrice  float64  `json:"offerPrice"`
	Images      []string `json:"image"`
	InStock     bool     `json:"inStock"`
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport client. Its cookie jar carries the sessions.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithTimeout bounds every call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// Client talks to the storefront API. Session cookies persist in its jar across calls.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cookie jar")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Register creates an account and opens a user session.
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.call(ctx, http.MethodPost, "/api/user/register", body, &out); err != nil {
		return nil, err
	}

	return out.User, nil
}

// Login opens a user session.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.call(ctx, http.MethodPost, "/api/user/login", body, &out); err != nil {
		return nil, err
	}

	return out.User, nil
}

// IsAuth returns the user behind the current session.
func (c *Client) IsAuth(ctx context.Context) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/user/is-auth", nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, errors.New("is-auth returned no user")
	}

	return out.User, nil
}

// Logout clears the user session cookie.
func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/api/user/logout", nil, nil)
}

// AddAddress appends an address and returns the full address book.
func (c *Client) AddAddress(ctx context.Context, address Address) ([]Address, error) {
	var out struct {
		Addresses []Address `json:"addresses"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/user/add-address", map[string]any{"address": address}, &out); err != nil {
		return nil, err
	}

	return out.Addresses, nil
}

// GetAddresses returns the address book of the session user.
func (c *Client) GetAddresses(ctx context.Context) ([]Address, error) {
	var out struct {
		Addresses []Address `json:"addresses"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/user/get-address", nil, &out); err != nil {
		return nil, err
	}

	return out.Addresses, nil
}

// SellerLogin opens a seller session.
func (c *Client) SellerLogin(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	return c.call(ctx, http.MethodPost, "/api/seller/login", body, nil)
}

// SellerIsAuth succeeds when the current seller session is valid.
func (c *Client) SellerIsAuth(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/api/seller/is-auth", nil, nil)
}

// SellerLogout clears the seller session cookie.
func (c *Client) SellerLogout(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/api/seller/logout", nil, nil)
}

// ListProducts returns the catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out struct {
		Products []Product `json:"products"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/product/list", nil, &out); err != nil {
		return nil, err
	}

	return out.Products, nil
}

// UpdateCart replaces the server-side cart with the snapshot.
func (c *Client) UpdateCart(ctx context.Context, cartItems map[string]int) error {
	return c.call(ctx, http.MethodPost, "/api/cart/update", map[string]any{"cartItems": cartItems}, nil)
}

// call sends body as JSON and decodes the envelope into out. A false success flag becomes *Error.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	if !env.Success {
		message := env.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}

		return &Error{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrap(err, "failed to decode response")
		}
	}

	return nil
}
