package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gymtrack/gymtrack-web/client/internal/types"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// syncBuffer lets the logger be written while a test reads it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// recordingObserver keeps every outcome reported by the core.
type recordingObserver struct {
	mu       sync.Mutex
	methods  []string
	failures int
}

func (o *recordingObserver) Observe(method string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.methods = append(o.methods, method)
	if err != nil {
		o.failures++
	}
}

func newTestCore(t *testing.T, baseURL string, hc *http.Client, creds types.CredentialProvider) (*Core, *syncBuffer) {
	t.Helper()
	logs := &syncBuffer{}
	c := NewCore(Config{
		BaseURL:     baseURL,
		HTTPClient:  hc,
		Credentials: creds,
		Logger:      zerolog.New(logs),
	})
	return c, logs
}

func staticToken(tok string) types.CredentialProvider {
	return types.CredentialFunc(func(context.Context) (string, error) { return tok, nil })
}
