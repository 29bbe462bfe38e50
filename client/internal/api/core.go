package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	clienterrors "github.com/gymtrack/gymtrack-web/client/internal/errors"
	"github.com/gymtrack/gymtrack-web/client/internal/types"
)

// UserAgent identifies the SDK to the backend.
const UserAgent = "gymtrack-web-client"

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Observer is notified once per request with its final outcome (nil on success).
type Observer interface {
	Observe(method string, err error)
}

// Config wires a Core.
type Config struct {
	BaseURL     string
	HTTPClient  *http.Client
	Credentials types.CredentialProvider // nil means requests are never authenticated
	Logger      zerolog.Logger
	Observer    Observer
}

// Core is the single place where requests are built, sent and normalized.
// Every resource function in this package goes through it.
type Core struct {
	rc       *resty.Client
	baseURL  string
	creds    types.CredentialProvider
	log      zerolog.Logger
	observer Observer
}

// NewCore constructs a Core on top of cfg.HTTPClient. Transport wrappers and
// the cookie jar installed on that client stay in effect.
func NewCore(cfg Config) *Core {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	rc := resty.NewWithClient(hc).
		SetLogger(restyLogger{log: cfg.Logger}).
		SetHeader("User-Agent", UserAgent)

	return &Core{
		rc:       rc,
		baseURL:  cfg.BaseURL,
		creds:    cfg.Credentials,
		log:      cfg.Logger,
		observer: cfg.Observer,
	}
}

// BaseURL returns the URL every endpoint is appended to.
func (c *Core) BaseURL() string { return c.baseURL }

// Get issues a GET to endpoint with params appended in order and returns the
// JSON body unchanged.
func (c *Core) Get(ctx context.Context, endpoint string, params types.Params) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodGet, endpoint, params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Post issues a POST to endpoint with data encoded as JSON and returns the
// JSON body unchanged. A nil data is sent as an empty object.
func (c *Core) Post(ctx context.Context, endpoint string, data any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.call(ctx, http.MethodPost, endpoint, nil, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// call performs a single attempt and decodes a 2xx body into out.
// Failures are logged and reported to the observer before being returned.
func (c *Core) call(ctx context.Context, method, endpoint string, params types.Params, data any, out any) error {
	reqID := uuid.NewString()
	err := c.exchange(ctx, method, endpoint, params, data, out, reqID)
	if c.observer != nil {
		c.observer.Observe(method, err)
	}
	if err != nil {
		c.log.Error().
			Err(err).
			Str("method", method).
			Str("endpoint", endpoint).
			Str("request_id", reqID).
			Int("status_code", clienterrors.StatusCode(err)).
			Msgf("%s request to %s failed", method, endpoint)
		return err
	}
	return nil
}

func (c *Core) exchange(ctx context.Context, method, endpoint string, params types.Params, data any, out any, reqID string) error {
	target, err := buildURL(c.baseURL, endpoint, params.Encode())
	if err != nil {
		return clienterrors.NewTransportError(method, endpoint, err)
	}

	req := c.rc.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, reqID)

	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return fmt.Errorf("resolve credentials: %w", err)
		}
		if token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}

	if method == http.MethodPost {
		if data == nil {
			data = struct{}{}
		}
		body, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, target)
	if err != nil {
		return clienterrors.NewTransportError(method, endpoint, err)
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		return clienterrors.NewHTTPError(method, endpoint, resp.StatusCode(), body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return clienterrors.NewMalformedError(method, endpoint, resp.StatusCode(), body, err)
	}
	return nil
}

// buildURL appends endpoint to baseURL verbatim, then appends query after any
// query string already present in endpoint.
func buildURL(baseURL, endpoint, query string) (string, error) {
	u, err := url.Parse(baseURL + endpoint)
	if err != nil {
		return "", err
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("invalid URL %q: base URL must be absolute", baseURL+endpoint)
	}
	if query != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + query
		} else {
			u.RawQuery = query
		}
	}
	return u.String(), nil
}

// restyLogger routes resty's own diagnostics into zerolog.
type restyLogger struct{ log zerolog.Logger }

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
