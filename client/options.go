package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options are applied in order, so transport wrappers installed by a later
// option sit on top of the transport of an earlier WithHTTPClient.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// By default no timeout is enforced and requests are bounded only by the
// caller's context. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The client is copied;
// when it has no cookie jar the default jar is kept so credentials are still
// included.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		cp := *hc
		if cp.Jar == nil {
			cp.Jar = c.http.Jar
		}
		c.http = &cp
		return nil
	}
}

// WithCookieJar replaces the default cookie jar.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) error {
		if jar == nil {
			return errors.New("cookie jar cannot be nil")
		}
		c.http.Jar = jar
		return nil
	}
}

// WithCredentials sets the provider consulted for a bearer token on every
// request. Without it, requests are sent unauthenticated.
func WithCredentials(p CredentialProvider) Option {
	return func(c *Client) error {
		c.creds = p
		return nil
	}
}

// WithLogger sets the logger that receives request failures.
// Defaults to the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and dumps headers, including Authorization, into the logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if _, wrapped := c.http.Transport.(*debugTransport); enabled && !wrapped {
			c.http.Transport = &debugTransport{base: c.http.Transport, log: c.log}
		}
		return nil
	}
}

// WithMetrics controls whether requests are counted in the package's
// Prometheus collectors. Enabled by default.
func WithMetrics(enabled bool) Option {
	return func(c *Client) error {
		c.metrics = enabled
		return nil
	}
}
