package client

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPClientAndDebugLogging(t *testing.T) {
	// timeout option sets http timeout
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatalf("expected error for zero timeout")
	}

	// debug logging wraps transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c2, err := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithHTTPTimeout(2*time.Second), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c2.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport on top of the custom transport")
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c2.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestNew_DefaultsToNoTimeoutAndCookieJar(t *testing.T) {
	c, err := New("http://example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 0 {
		t.Fatalf("expected no client timeout, got %v", c.http.Timeout)
	}
	if c.http.Jar == nil {
		t.Fatalf("expected default cookie jar")
	}
}

func TestWithHTTPClient_KeepsJarAndDoesNotMutateCaller(t *testing.T) {
	hc := &http.Client{}
	c, err := New("http://example.com", WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if hc.Jar != nil {
		t.Fatalf("caller's client was mutated")
	}
	if c.http.Jar == nil {
		t.Fatalf("expected default jar to be kept")
	}
	if _, err := New("http://example.com", WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil http client")
	}
}

func TestWithCookieJar(t *testing.T) {
	jar, _ := cookiejar.New(nil)
	c, err := New("http://example.com", WithCookieJar(jar))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Jar != jar {
		t.Fatalf("cookie jar not installed")
	}
	if _, err := New("http://example.com", WithCookieJar(nil)); err == nil {
		t.Fatalf("expected error for nil jar")
	}
}

func TestNew_EmptyBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatalf("expected error for empty baseURL")
	}
}

func TestWithDebugLogging_WrapsOnce(t *testing.T) {
	c, err := New("http://example.com", WithDebugLogging(true), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dt, ok := c.http.Transport.(*debugTransport)
	if !ok {
		t.Fatalf("expected debugTransport")
	}
	if _, nested := dt.base.(*debugTransport); nested {
		t.Fatalf("debug transport wrapped twice")
	}
}
