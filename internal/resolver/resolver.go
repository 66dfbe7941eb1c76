package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	codePath        = "/1/kmeet/rooms/code/"
	maxResponseSize = 64 * 1024 // 64KB
)

// ErrCodeNotFound is returned for every failed lookup. Callers do not
// distinguish unknown codes from unreachable services.
var ErrCodeNotFound = errors.New("room code not found")

// Resolver turns a room code into the canonical room name.
type Resolver interface {
	RoomNameFromCode(ctx context.Context, code string) (string, error)
}

// HTTPResolver looks room codes up on the remote meeting API.
type HTTPResolver struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPResolver creates a resolver for the API at baseURL.
func NewHTTPResolver(baseURL string, timeout time.Duration) *HTTPResolver {
	return &HTTPResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type roomNameResponse struct {
	Result string `json:"result"`
	Data   struct {
		Name string `json:"name"`
	} `json:"data"`
}

// RoomNameFromCode fetches the room name for a code without separators.
func (r *HTTPResolver) RoomNameFromCode(ctx context.Context, code string) (string, error) {
	endpoint := r.baseURL + codePath + url.PathEscape(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCodeNotFound, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCodeNotFound, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrCodeNotFound, resp.StatusCode)
	}

	var body roomNameResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrCodeNotFound, err)
	}

	if body.Result != "success" || body.Data.Name == "" {
		return "", fmt.Errorf("%w: result %q", ErrCodeNotFound, body.Result)
	}

	slog.Debug("room code resolved", "code", code, "room", body.Data.Name)
	return body.Data.Name, nil
}
