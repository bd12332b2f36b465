// Package api provides the shared HTTP client for the restaurant platform's
// REST API: base URL, JSON headers, bearer-token injection and a single
// silent refresh-and-retry when the access credential has expired.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/chakula-app/chakula-client/config"
	"github.com/chakula-app/chakula-client/models"
	"github.com/chakula-app/chakula-client/stores"
)

const refreshPath = "/api/v1/auth/jwt/refresh/"

type Client struct {
	http    *resty.Client
	session *stores.Session
	baseURL string

	refreshMu sync.Mutex
}

func New(cfg config.Config, session *stores.Session) *Client {
	c := &Client{
		session: session,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}

	c.http = resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := session.AccessToken(); token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})

	return c
}

// R builds a request bound to ctx. Callers set body and query parameters,
// then hand the request to Execute.
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// Execute runs the request and decodes a successful JSON response into out
// (out may be nil when no body is expected). A 401 triggers one silent token
// refresh and a single retry; if the refresh fails the session is cleared
// and the caller gets an auth-expired error. Transport failures, timeouts
// included, surface as network errors for the caller to decide rollback.
func (c *Client) Execute(op string, req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return models.NetworkError(op, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized && !strings.Contains(path, "/auth/jwt/") {
		if rerr := c.refresh(req.Context()); rerr != nil {
			c.session.Clear()
			return &models.APIError{Op: op, Message: "session expired, sign in again", Err: models.ErrAuthExpired}
		}
		if resp, err = req.Execute(method, path); err != nil {
			return models.NetworkError(op, err)
		}
	}

	if resp.IsError() {
		return statusError(op, resp)
	}

	if out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return models.NetworkError(op, fmt.Errorf("failed to parse response: %w", err))
		}
	}
	return nil
}

// refresh exchanges the refresh token for a new access token. Serialized so
// concurrent 401s cause one refresh, not a stampede.
func (c *Client) refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		return fmt.Errorf("no refresh token available")
	}

	resp, err := resty.New().
		SetTimeout(c.http.GetClient().Timeout).
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(map[string]string{"refresh": refreshToken}).
		Post(c.baseURL + refreshPath)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("token refresh failed with status %d", resp.StatusCode())
	}

	var body struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return fmt.Errorf("failed to parse refresh response: %w", err)
	}
	if body.Access == "" {
		return fmt.Errorf("access token missing from refresh response")
	}

	c.session.SetAccessToken(body.Access)
	return nil
}

// statusError maps a non-2xx response to one of the client's error kinds.
func statusError(op string, resp *resty.Response) error {
	detail := serverDetail(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if detail == "" {
			detail = "invalid request"
		}
		return &models.APIError{Op: op, Message: detail, Err: models.ErrValidation}
	case http.StatusUnauthorized:
		return &models.APIError{Op: op, Message: "session expired, sign in again", Err: models.ErrAuthExpired}
	case http.StatusForbidden:
		if detail == "" {
			detail = "access denied"
		}
		return &models.APIError{Op: op, Message: detail, Err: models.ErrForbidden}
	default:
		log.Printf("%s: server responded %d: %s", op, resp.StatusCode(), detail)
		return &models.APIError{
			Op:      op,
			Message: fmt.Sprintf("server responded with status %d", resp.StatusCode()),
			Err:     fmt.Errorf("%w: status %d", models.ErrNetwork, resp.StatusCode()),
		}
	}
}

// serverDetail pulls the human-readable message from an error body. The API
// uses {"detail": ...}; a few endpoints use {"message": ...}.
func serverDetail(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}
