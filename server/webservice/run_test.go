package webservice

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymtrack/gymtrack-web/server/internal/config"
)

type gymAPI struct {
	mu      sync.Mutex
	created []map[string]string
	auth    []string
	gets    []string

	// createDelay stalls POST /users; createStarted, when set, is closed as
	// such a request arrives.
	createDelay   time.Duration
	createStarted chan struct{}
}

func (g *gymAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/users" && r.Method == http.MethodPost {
		if g.createStarted != nil {
			close(g.createStarted)
		}
		time.Sleep(g.createDelay)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if r.Method == http.MethodGet {
		g.gets = append(g.gets, r.URL.Path)
	}
	switch {
	case r.URL.Path == "/users" && r.Method == http.MethodPost:
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		g.created = append(g.created, body)
		g.auth = append(g.auth, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"email":"` + body["email"] + `"}`))
	case r.URL.Path == "/users":
		_, _ = w.Write([]byte(`[]`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func startService(t *testing.T, apiURL string) (string, func() error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, config.NewForTesting(apiURL), zerolog.Nop(), ln) }()

	stop := func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatalf("server did not stop")
			return nil
		}
	}
	return "http://" + ln.Addr().String(), stop
}

func TestServe_RegisterAgainstAPI(t *testing.T) {
	backend := &gymAPI{}
	apiSrv := httptest.NewServer(backend)
	defer apiSrv.Close()

	base, stop := startService(t, apiSrv.URL)

	hc := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	req, err := http.NewRequest(http.MethodPost, base+"/register", strings.NewReader(url.Values{
		"email":           {"a@b.com"},
		"password":        {"secret"},
		"confirmPassword": {"secret"},
	}.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "token", Value: "t0k"})

	resp, err := hc.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	backend.mu.Lock()
	require.Len(t, backend.created, 1)
	assert.Equal(t, map[string]string{"email": "a@b.com", "password": "secret"}, backend.created[0])
	assert.Equal(t, "Bearer t0k", backend.auth[0])
	backend.mu.Unlock()

	require.NoError(t, stop())
}

func TestServe_HealthFollowsAPI(t *testing.T) {
	apiSrv := httptest.NewServer(&gymAPI{})
	base, stop := startService(t, apiSrv.URL)
	defer func() { _ = stop() }()

	status := func() string {
		resp, err := http.Get(base + "/api/health")
		if err != nil {
			return ""
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		var body struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(b, &body)
		return body.Status
	}

	require.Eventually(t, func() bool { return status() == "healthy" }, 3*time.Second, 50*time.Millisecond)
	apiSrv.Close()
	require.Eventually(t, func() bool { return status() == "unhealthy" }, 5*time.Second, 100*time.Millisecond)
}

func TestNewAPIClient_UnboundedByDefault(t *testing.T) {
	cfg := config.NewForTesting("http://api.local")
	cfg.HTTPTimeout = 0
	c, err := newAPIClient(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://api.local", c.BaseURL())
}

func TestServe_DrainsInFlightRegistrationOnShutdown(t *testing.T) {
	backend := &gymAPI{createDelay: 500 * time.Millisecond, createStarted: make(chan struct{})}
	apiSrv := httptest.NewServer(backend)
	defer apiSrv.Close()

	base, stop := startService(t, apiSrv.URL)

	type result struct {
		status   int
		location string
		err      error
	}
	resCh := make(chan result, 1)
	go func() {
		hc := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
		resp, err := hc.PostForm(base+"/register", url.Values{
			"email":           {"a@b.com"},
			"password":        {"secret"},
			"confirmPassword": {"secret"},
		})
		if err != nil {
			resCh <- result{err: err}
			return
		}
		_ = resp.Body.Close()
		resCh <- result{status: resp.StatusCode, location: resp.Header.Get("Location")}
	}()

	select {
	case <-backend.createStarted:
	case <-time.After(5 * time.Second):
		t.Fatalf("registration never reached the API")
	}
	require.NoError(t, stop())

	res := <-resCh
	require.NoError(t, res.err)
	assert.Equal(t, http.StatusSeeOther, res.status)
	assert.Equal(t, "/", res.location)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Len(t, backend.created, 1)
}

func TestServe_HealthCheckAvoidsResourceEndpoints(t *testing.T) {
	backend := &gymAPI{}
	apiSrv := httptest.NewServer(backend)
	defer apiSrv.Close()

	base, stop := startService(t, apiSrv.URL)
	defer func() { _ = stop() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/api/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		var body struct {
			Status string `json:"status"`
		}
		return json.NewDecoder(resp.Body).Decode(&body) == nil && body.Status == "healthy"
	}, 3*time.Second, 50*time.Millisecond)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	require.NotEmpty(t, backend.gets)
	for _, p := range backend.gets {
		assert.Equal(t, healthCheckPath, p)
	}
}
