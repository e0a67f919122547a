package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paseo-app/paseo-cli/internal/domain"
	"github.com/paseo-app/paseo-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client talks to the walker REST API. One instance serves all callers; the
// bearer token is read from the session store on every authenticated call,
// never cached at construction.
type Client struct {
	baseURL        *url.URL
	httpClient     *http.Client
	sessions       ports.SessionStore
	requestTimeout time.Duration
}

type Config struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.WalkerAPI = (*Client)(nil)

func NewClient(cfg Config, sessions ports.SessionStore) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api base url is required")
	}
	if sessions == nil {
		return nil, errors.New("session store is required")
	}

	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return &Client{
		baseURL:        parsed,
		httpClient:     httpClient,
		sessions:       sessions,
		requestTimeout: requestTimeout,
	}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	var resp loginResponse
	if err := c.call(ctx, http.MethodPost, "auth/walkerlogin", bytes.NewReader(payload), "application/json", false, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login response missing token")
	}

	return resp.Token, nil
}

func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (ports.RegisterResult, error) {
	fields := map[string]string{
		"email":      in.Email,
		"password":   in.Password,
		"name":       in.Name,
		"price_hour": in.PriceHour,
	}
	body, contentType, err := encodeMultipart(fields, "photo", in.PhotoName, in.Photo)
	if err != nil {
		return ports.RegisterResult{}, err
	}

	var resp registerResponse
	if err := c.call(ctx, http.MethodPost, "auth/walkerregister", body, contentType, false, &resp); err != nil {
		return ports.RegisterResult{}, err
	}

	result := ports.RegisterResult{Message: resp.Message}
	if resp.Walker != nil {
		walker := resp.Walker.toDomain()
		result.Walker = &walker
	}
	return result, nil
}

func (c *Client) SetAvailability(ctx context.Context, available bool) error {
	payload, err := json.Marshal(availabilityRequest{IsAvailable: available})
	if err != nil {
		return fmt.Errorf("encode availability request: %w", err)
	}

	return c.call(ctx, http.MethodPost, "walkers/availability", bytes.NewReader(payload), "application/json", true, nil)
}

func (c *Client) SendLocation(ctx context.Context, sample domain.LocationSample) error {
	payload, err := json.Marshal(locationRequest{Latitude: sample.Latitude, Longitude: sample.Longitude})
	if err != nil {
		return fmt.Errorf("encode location request: %w", err)
	}

	return c.call(ctx, http.MethodPost, "walkers/location", bytes.NewReader(payload), "application/json", true, nil)
}

func (c *Client) PendingWalks(ctx context.Context) ([]domain.Walk, error) {
	return c.fetchWalks(ctx, "walks/pending")
}

func (c *Client) AcceptedWalks(ctx context.Context) ([]domain.Walk, error) {
	return c.fetchWalks(ctx, "walks/accepted")
}

func (c *Client) WalkHistory(ctx context.Context) ([]domain.Walk, error) {
	return c.fetchWalks(ctx, "walks")
}

func (c *Client) fetchWalks(ctx context.Context, path string) ([]domain.Walk, error) {
	var schemas []walkSchema
	if err := c.call(ctx, http.MethodGet, path, nil, "", true, &schemas); err != nil {
		return nil, err
	}
	return walksToDomain(schemas), nil
}

func (c *Client) WalkDetail(ctx context.Context, walkID int) (domain.Walk, error) {
	var schema walkSchema
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("walks/%d", walkID), nil, "", true, &schema); err != nil {
		return domain.Walk{}, err
	}
	return schema.toDomain(), nil
}

func (c *Client) AcceptWalk(ctx context.Context, walkID int) error {
	return c.call(ctx, http.MethodPost, fmt.Sprintf("walks/%d/accept", walkID), nil, "", true, nil)
}

func (c *Client) RejectWalk(ctx context.Context, walkID int) error {
	return c.call(ctx, http.MethodPost, fmt.Sprintf("walks/%d/reject", walkID), nil, "", true, nil)
}

func (c *Client) StartWalk(ctx context.Context, walkID int) error {
	return c.call(ctx, http.MethodPost, fmt.Sprintf("walks/%d/start", walkID), nil, "", true, nil)
}

func (c *Client) EndWalk(ctx context.Context, walkID int) error {
	return c.call(ctx, http.MethodPost, fmt.Sprintf("walks/%d/end", walkID), nil, "", true, nil)
}

func (c *Client) UploadWalkPhoto(ctx context.Context, walkID int, photo io.Reader, filename string) error {
	if photo == nil {
		return errors.New("walk photo is required")
	}
	body, contentType, err := encodeMultipart(nil, "photo", filename, photo)
	if err != nil {
		return err
	}
	return c.call(ctx, http.MethodPost, fmt.Sprintf("walks/%d/photo", walkID), body, contentType, true, nil)
}

func (c *Client) UploadWalkerPhoto(ctx context.Context, photo io.Reader, filename string) error {
	if photo == nil {
		return errors.New("walker photo is required")
	}
	body, contentType, err := encodeMultipart(nil, "photo", filename, photo)
	if err != nil {
		return err
	}
	return c.call(ctx, http.MethodPost, "walkers/photo", body, contentType, true, nil)
}

func (c *Client) WalkPhotos(ctx context.Context, walkID int) ([]domain.WalkPhoto, error) {
	var schemas []walkPhotoSchema
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("walks/%d/photos", walkID), nil, "", true, &schemas); err != nil {
		return nil, err
	}

	photos := make([]domain.WalkPhoto, 0, len(schemas))
	for _, s := range schemas {
		photos = append(photos, s.toDomain())
	}
	return photos, nil
}

func (c *Client) CurrentUser(ctx context.Context) (domain.WalkerProfile, error) {
	var schema profileSchema
	if err := c.call(ctx, http.MethodGet, "me", nil, "", true, &schema); err != nil {
		return domain.WalkerProfile{}, err
	}
	return schema.toDomain(), nil
}

func (c *Client) Reviews(ctx context.Context) ([]domain.Review, error) {
	var schemas []reviewSchema
	if err := c.call(ctx, http.MethodGet, "reviews", nil, "", true, &schemas); err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(schemas))
	for _, s := range schemas {
		reviews = append(reviews, s.toDomain())
	}
	return reviews, nil
}

func (c *Client) ReviewDetail(ctx context.Context, reviewID int) (domain.Review, error) {
	var schema reviewSchema
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("reviews/%d", reviewID), nil, "", true, &schema); err != nil {
		return domain.Review{}, err
	}
	return schema.toDomain(), nil
}

// call performs one request. A non-nil out is decoded from a 2xx body; any
// non-2xx status becomes a *StatusError and a failed round trip a
// *TransportError.
func (c *Client) call(ctx context.Context, method, path string, body io.Reader, contentType string, authed bool, out any) error {
	endpoint, err := c.baseURL.Parse(path)
	if err != nil {
		return fmt.Errorf("build endpoint for %q: %w", path, err)
	}

	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if authed {
		// Attach whatever token is present, even empty, and let the
		// server reject it. Keeps the 401 path uniform.
		token, err := c.sessions.Token(ctx)
		if err != nil {
			token = ""
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &StatusError{Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.requestTimeout)
}
