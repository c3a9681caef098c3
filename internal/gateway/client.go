// Package gateway holds the HTTP client for the attendance platform backend.
// All browser-facing handlers go through it: it attaches the session's bearer
// token, decodes the upstream response envelope, and classifies failures so
// callers can react uniformly.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
	"github.com/davomat/attendance-ui-api/internal/domain/model"
)

// maxErrorBody caps how much of an upstream error response we read when
// extracting a message.
const maxErrorBody = 64 << 10

// AuthFailureHook is invoked when the upstream rejects a request with 401 or
// 403 while a session was attached. Implementations tear the local session
// down; the hook must not block on user interaction.
type AuthFailureHook func(ctx context.Context, sess *domainauth.Session)

// Options groups dependencies for Client.
type Options struct {
	BaseURL string
	// HTTPClient is optional. The default client carries no timeout;
	// callers bound requests through their context deadlines.
	HTTPClient    *http.Client
	OnAuthFailure AuthFailureHook
	Logger        *slog.Logger
}

// Client talks to the attendance backend. Requests are never retried: every
// operation here is either user-initiated or cheap to re-issue, and blind
// retries would double-apply deletes.
type Client struct {
	baseURL       string
	client        *http.Client
	onAuthFailure AuthFailureHook
	logger        *slog.Logger
}

// NewClient constructs a gateway client.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("gateway: base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("gateway: invalid base URL %q", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:       base,
		client:        hc,
		onAuthFailure: opts.OnAuthFailure,
		logger:        logger,
	}, nil
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

// DeleteWithBody issues a DELETE carrying a JSON body. The bulk-delete
// endpoints expect their ID lists in the request body.
func (c *Client) DeleteWithBody(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("gateway: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	sess, hasSession := domainauth.FromContext(ctx)
	if hasSession {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{
			Kind:    KindUnreachable,
			Message: "attendance backend unreachable",
			err:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gerr := c.errorFromResponse(resp)
		if gerr.Kind == KindAuth && hasSession && c.onAuthFailure != nil {
			c.logger.InfoContext(ctx, "upstream rejected session, tearing it down",
				"status", resp.StatusCode,
				"session_id", sess.ID,
			)
			c.onAuthFailure(ctx, sess)
		}
		return gerr
	}

	return decodeSuccess(resp, out)
}

// errorFromResponse builds a classified error from a non-2xx response,
// preferring the upstream envelope's message when one is present.
func (c *Client) errorFromResponse(resp *http.Response) *Error {
	defer closeBody(c.logger, resp)

	gerr := &Error{
		Kind:    classifyStatus(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return gerr
	}
	var envelope model.Envelope
	if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
		gerr.Message = envelope.Message
	}
	return gerr
}

func decodeSuccess(resp *http.Response, out any) error {
	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.Body.Close()
	}

	raw, err := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if err != nil {
		return &Error{
			Kind:    KindUnreachable,
			Status:  resp.StatusCode,
			Message: "read response body",
			err:     err,
		}
	}
	if closeErr != nil {
		return fmt.Errorf("gateway: close response body: %w", closeErr)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{
			Kind:    KindUnexpected,
			Status:  resp.StatusCode,
			Message: "malformed response from attendance backend",
			err:     err,
		}
	}
	return nil
}

func closeBody(logger *slog.Logger, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		logger.Warn("failed to close upstream response body", "error", err)
	}
}
