package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/DmitruNS/kuc/internal/ports"
)

// Client talks to the remote listing API. The bearer token is read from
// the local settings store on every request so login/logout take effect
// without rebuilding the client. No request timeout is set: a hung request
// stays pending until the server answers, and the caller's view keeps its
// loading state.
type Client struct {
	http     *resty.Client
	settings ports.SettingsRepository
	log      *slog.Logger
}

const tokenKey = "token"

func New(baseURL string, settings ports.SettingsRepository, log *slog.Logger) *Client {
	c := &Client{
		http:     resty.New().SetBaseURL(baseURL),
		settings: settings,
		log:      log,
	}
	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		if tok := c.token(req.Context()); tok != "" {
			req.SetHeader("Authorization", "Bearer "+tok)
		}
		return nil
	})
	return c
}

func (c *Client) token(ctx context.Context) string {
	tok, err := c.settings.Get(ctx, tokenKey)
	if err != nil {
		return ""
	}
	return tok
}

// apiError converts a non-2xx response into an error carrying the
// server's message when the body is the usual {"error": "..."} JSON, or
// the HTTP status otherwise.
func apiError(op string, resp *resty.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return fmt.Errorf("%s: %s", op, body.Error)
	}
	return fmt.Errorf("%s: %s", op, resp.Status())
}
