// Package apiclient is the single HTTP entry point for the VoltMate API:
// JSON codec, bearer-token injection, and a one-shot 401 refresh-and-retry.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const refreshPath = "/Auth/refresh-token"

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  TokenStore
	Logger  *slog.Logger

	refresh singleflight.Group
}

func New(baseURL string, timeout time.Duration, tokens TokenStore, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Tokens:  tokens,
		Logger:  logger,
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Do performs one API call and returns the raw data field of the response
// envelope. A 401 on a fresh request triggers exactly one token refresh and
// one replay; a 401 on the replay propagates as an APIError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	pair, err := c.Tokens.Load()
	if err != nil {
		return nil, fmt.Errorf("load tokens: %w", err)
	}

	start := time.Now()
	status, raw, err := c.send(ctx, method, path, query, payload, pair.Token)
	// A 401 from the auth endpoints is a credential problem, not an expired
	// session; only non-auth requests go through refresh-and-retry.
	if err == nil && status == http.StatusUnauthorized && !strings.HasPrefix(path, "/Auth/") {
		var token string
		token, err = c.refreshTokens(ctx, pair.Token)
		if err == nil {
			status, raw, err = c.send(ctx, method, path, query, payload, token)
		}
	}
	c.observe(method, path, status, start)
	if err != nil {
		return nil, err
	}
	return parseEnvelope(status, raw)
}

// send performs one HTTP round trip without any retry behavior.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, token string) (int, []byte, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

// refreshTokens exchanges the persisted refresh token for a new access token.
// Concurrent callers share a single in-flight refresh; every caller gets the
// same outcome. Any failure clears the stored pair and reports
// ErrSessionExpired.
func (c *Client) refreshTokens(ctx context.Context, stale string) (string, error) {
	v, err, _ := c.refresh.Do("refresh", func() (any, error) {
		pair, err := c.Tokens.Load()
		if err != nil {
			return "", fmt.Errorf("load tokens: %w", err)
		}
		// Another caller already rotated the pair; reuse its result.
		if pair.Token != "" && pair.Token != stale {
			return pair.Token, nil
		}
		if pair.RefreshToken == "" {
			refreshTotal.WithLabelValues("missing").Inc()
			return "", fmt.Errorf("%w: no refresh token", ErrSessionExpired)
		}

		payload, _ := json.Marshal(map[string]string{"refreshToken": pair.RefreshToken})
		status, raw, err := c.send(ctx, http.MethodPost, refreshPath, nil, payload, "")
		if err != nil {
			refreshTotal.WithLabelValues("error").Inc()
			return "", fmt.Errorf("refresh token: %w", err)
		}
		data, err := parseEnvelope(status, raw)
		if err != nil {
			refreshTotal.WithLabelValues("rejected").Inc()
			_ = c.Tokens.Clear()
			c.Logger.Warn("token refresh rejected", "status", status)
			return "", fmt.Errorf("%w: %v", ErrSessionExpired, err)
		}

		var next TokenPair
		if err := json.Unmarshal(data, &next); err != nil {
			refreshTotal.WithLabelValues("error").Inc()
			return "", fmt.Errorf("decode refresh response: %w", err)
		}
		if next.RefreshToken == "" {
			next.RefreshToken = pair.RefreshToken
		}
		if err := c.Tokens.Save(next); err != nil {
			return "", fmt.Errorf("save tokens: %w", err)
		}
		refreshTotal.WithLabelValues("ok").Inc()
		return next.Token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func parseEnvelope(status int, raw []byte) (json.RawMessage, error) {
	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && status < 400 {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	if status >= 400 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		return nil, &APIError{StatusCode: status, Message: msg}
	}
	return env.Data, nil
}

func (c *Client) observe(method, path string, status int, start time.Time) {
	resource := path
	if i := strings.Index(path[1:], "/"); i >= 0 {
		resource = path[:i+1]
	}
	requestsTotal.WithLabelValues(resource, method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
}
