// Package bookingsdk is a small Go client for the booking service HTTP API.
// It mirrors the server's request and response types so the two cannot
// drift apart silently.
package bookingsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to one booking service instance.
type Client struct {
	baseURL string
	http    *http.Client

	// token, when set, is sent as a bearer credential on every request.
	token string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken pre-sets the bearer token, for callers that already hold one.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the bearer token currently held by the client.
func (c *Client) Token() string { return c.token }

// Register creates a customer identity.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (IdentityResponse, error) {
	var out IdentityResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &out)
	return out, err
}

// Login exchanges credentials for a session token and stores it on the
// client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return TokenResponse{}, err
	}
	c.token = out.AccessToken
	return out, nil
}

// Bootstrap mints the first admin identity on a fresh deployment.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (IdentityResponse, error) {
	var out IdentityResponse
	err := c.do(ctx, http.MethodPost, "/v1/bootstrap", req, &out)
	return out, err
}

// Me returns the identity behind the client's token.
func (c *Client) Me(ctx context.Context) (IdentityResponse, error) {
	var out IdentityResponse
	err := c.do(ctx, http.MethodGet, "/v1/auth/me", nil, &out)
	return out, err
}

// Slots lists the free slot starts of the given day.
func (c *Client) Slots(ctx context.Context, date time.Time) (SlotsResponse, error) {
	var out SlotsResponse
	path := "/v1/slots?date=" + url.QueryEscape(date.Format("2006-01-02"))
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Book reserves a slot.
func (c *Client) Book(ctx context.Context, serviceID int64, startAt time.Time) (AppointmentResponse, error) {
	var out AppointmentResponse
	err := c.do(ctx, http.MethodPost, "/v1/appointments", BookRequest{ServiceID: serviceID, StartAt: startAt}, &out)
	return out, err
}

// Upcoming lists the caller's future reservations, soonest first.
func (c *Client) Upcoming(ctx context.Context) (AppointmentListResponse, error) {
	var out AppointmentListResponse
	err := c.do(ctx, http.MethodGet, "/v1/appointments/upcoming", nil, &out)
	return out, err
}

// History lists all of the caller's reservations, newest first.
func (c *Client) History(ctx context.Context) (AppointmentListResponse, error) {
	var out AppointmentListResponse
	err := c.do(ctx, http.MethodGet, "/v1/appointments", nil, &out)
	return out, err
}

// Cancel cancels one of the caller's reservations.
func (c *Client) Cancel(ctx context.Context, appointmentID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/appointments/"+url.PathEscape(appointmentID), nil, nil)
}

// Healthy reports whether the service's readiness probe passes.
func (c *Client) Healthy(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
