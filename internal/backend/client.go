// Package backend is a thin client of the order-management API. It forwards
// the caller's bearer token and maps HTTP failures onto apperr.
package backend

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

	"github.com/MikeMC777/vidros-portal/internal/apperr"
	"github.com/MikeMC777/vidros-portal/internal/session"
)

const maxErrorBody = 64 << 10

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// bearer is the backend token of the session carried by ctx.
func bearer(ctx context.Context) string {
	if s, ok := session.FromContext(ctx); ok {
		return s.BackendToken
	}
	return ""
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

// do sends in as JSON (when not nil) and decodes the response into out
// (when not nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := bearer(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %s %s: %v", apperr.ErrNetwork, method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		if out == nil || res.StatusCode == http.StatusNoContent {
			_, _ = io.Copy(io.Discard, res.Body)
			return nil
		}
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode %s %s: %v", apperr.ErrServer, method, path, err)
		}
		return nil
	}
	return statusError(res)
}

// statusError maps a non-2xx answer onto the portal error taxonomy, keeping
// the backend's message.
func statusError(res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	msg := eb.Error
	if msg == "" {
		msg = eb.Message
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = res.Status
	}

	switch {
	case res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusUnprocessableEntity:
		return apperr.Invalid(eb.Field, msg)
	case res.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", apperr.ErrUnauthorized, msg)
	case res.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", apperr.ErrForbidden, msg)
	case res.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperr.ErrNotFound, msg)
	case res.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", apperr.ErrInvalidTransition, msg)
	default:
		return fmt.Errorf("%w: status %d: %s", apperr.ErrServer, res.StatusCode, msg)
	}
}
