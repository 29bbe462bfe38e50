//go:build e2e
// +build e2e

package e2e

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

// Runs against a gymtrack-web started with a reachable gym API, e.g.
//
//	GYMTRACK_API_URL=http://localhost:8000 go run ./server/cmd/gymtrack-web
//	go test -tags e2e ./server/dev_env_e2e_tests
func TestDevEnv_RegisterPage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	web := env("GYMTRACK_WEB_URL", "http://localhost:3000")
	if err := ping(web + "/api/health"); err != nil {
		t.Skipf("service %s unreachable: %v", web, err)
	}
	waitForHealthy(t, web, 30*time.Second)

	resp, err := http.Get(web + "/register")
	if err != nil {
		t.Fatalf("get register: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "Sign up") {
		t.Fatalf("unexpected register page %d: %s", resp.StatusCode, body)
	}

	resp, err = http.PostForm(web+"/register", url.Values{
		"email":           {"e2e@example.com"},
		"password":        {"one"},
		"confirmPassword": {"two"},
	})
	if err != nil {
		t.Fatalf("post register: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity || !strings.Contains(string(body), "Passwords do not match") {
		t.Fatalf("expected mismatch banner, got %d: %s", resp.StatusCode, body)
	}
}

func TestDevEnv_Metrics(t *testing.T) {
	web := env("GYMTRACK_WEB_URL", "http://localhost:3000")
	if err := ping(web + "/api/health"); err != nil {
		t.Skipf("service %s unreachable: %v", web, err)
	}

	resp, err := http.Get(web + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(body), "gymtrack_client_requests_total") {
		t.Fatalf("client metrics missing from /metrics")
	}
}
