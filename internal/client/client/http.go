package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gamefolio/internal/client/models"
	"github.com/dmitrijs2005/gamefolio/internal/common"
)

// HTTPClient talks JSON to the store service. Mutation requests carry a
// bearer token from the TokenSource; read requests go out bare.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient constructs an adapter for the store at baseURL. tokens may
// be nil for a read-only consumer. A zero timeout disables the client-side
// deadline; the core itself enforces none (that is the transport's job).
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// do issues one round trip. Any transport-level failure becomes
// ErrStoreUnavailable; HTTP error statuses are translated by status().
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if c.tokens == nil {
			return common.ErrUnauthorized
		}
		token, err := c.tokens.Token()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if err := status(resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", common.ErrStoreUnavailable, err)
		}
	}
	return nil
}

// status maps HTTP error codes onto the sentinel taxonomy.
func status(resp *http.Response) error {
	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", common.ErrValidationRejected, readErrorBody(resp))
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return common.ErrUnauthorized
	default:
		return fmt.Errorf("%w: status %d", common.ErrStoreUnavailable, resp.StatusCode)
	}
}

func readErrorBody(resp *http.Response) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
		return resp.Status
	}
	return e.Error
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/ping", nil, false, nil)
}

func (c *HTTPClient) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := c.do(ctx, http.MethodGet, "/api/games", nil, false, &games); err != nil {
		return nil, err
	}
	if games == nil {
		games = []models.Game{}
	}
	return games, nil
}

func (c *HTTPClient) InsertGame(ctx context.Context, fields models.GameFields) error {
	return c.do(ctx, http.MethodPost, "/api/games", fields, true, nil)
}

func (c *HTTPClient) UpdateGame(ctx context.Context, id string, fields models.GameFields) error {
	return c.do(ctx, http.MethodPut, "/api/games/"+id, fields, true, nil)
}

func (c *HTTPClient) DeleteGame(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/games/"+id, nil, true, nil)
}

// GetProfile returns (nil, nil) when no override is stored: the remote 404
// means "use defaults", not a failure.
func (c *HTTPClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	err := c.do(ctx, http.MethodGet, "/api/profile", nil, false, &p)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) PutProfile(ctx context.Context, p models.Profile) error {
	return c.do(ctx, http.MethodPut, "/api/profile", p, true, nil)
}

func (c *HTTPClient) DeleteProfile(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/profile", nil, true, nil)
}

func (c *HTTPClient) PresignImage(ctx context.Context) (string, string, error) {
	var out struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/images/presign", nil, true, &out); err != nil {
		return "", "", err
	}
	return out.Key, out.URL, nil
}
