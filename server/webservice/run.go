// Package webservice assembles and runs the gymtrack web front-end.
package webservice

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/gymtrack/gymtrack-web/client"
	"github.com/gymtrack/gymtrack-web/pkg/session"
	"github.com/gymtrack/gymtrack-web/server/internal/api"
	"github.com/gymtrack/gymtrack-web/server/internal/config"
	"github.com/gymtrack/gymtrack-web/server/internal/health"
	"github.com/gymtrack/gymtrack-web/server/internal/logger"
)

const serviceName = "gymtrack-web"

// Run starts the web front-end and blocks until SIGINT/SIGTERM or a server error.
func Run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	log := logger.New(serviceName, cfg.Level())
	if !cfg.IsProduction() {
		log = logger.NewConsole(serviceName, cfg.Level())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.GetHTTPAddr())
	if err != nil {
		log.Error().Stack().Err(err).Str("addr", cfg.GetHTTPAddr()).Msg("listen failed")
		return err
	}
	return Serve(ctx, cfg, log, ln)
}

// Serve runs the front-end on ln until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, cfg *config.Config, log zerolog.Logger, ln net.Listener) error {
	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("api_url", cfg.APIURL).
		Str("addr", ln.Addr().String()).
		Msg("web front-end starting")

	gym, err := newAPIClient(cfg, log)
	if err != nil {
		_ = ln.Close()
		log.Error().Stack().Err(err).Msg("API client unavailable")
		return err
	}
	defer func() { _ = gym.Close() }()

	quiet, err := newHealthClient(cfg)
	if err != nil {
		_ = ln.Close()
		log.Error().Stack().Err(err).Msg("API health client unavailable")
		return err
	}
	defer func() { _ = quiet.Close() }()

	svcHealth := startHealthCheckers(ctx, cfg, log, quiet)

	server := newHTTPServer(ctx, api.NewRouter(api.Deps{
		Users:  gym,
		Health: svcHealth,
		Log:    log,
	}))
	errCh := serveHTTP(server, ln, log)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newAPIClient builds the gym API client shared by every request. Tokens come
// from each incoming request's context and cookies stay with the browser.
func newAPIClient(cfg *config.Config, log zerolog.Logger) (*client.Client, error) {
	opts := []client.Option{
		client.WithLogger(log),
		client.WithCredentials(session.ContextProvider{}),
		client.WithCookieJar(discardJar{}),
		client.WithDebugLogging(cfg.Debug),
	}
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(cfg.HTTPTimeout))
	}
	gym, err := client.New(cfg.APIURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("create API client: %w", err)
	}
	return gym, nil
}

// newHealthClient builds an anonymous client for health checks. Its failures
// are judged by the checker, so it neither logs them nor counts them.
func newHealthClient(cfg *config.Config) (*client.Client, error) {
	quiet, err := client.New(cfg.APIURL,
		client.WithLogger(zerolog.Nop()),
		client.WithMetrics(false),
		client.WithCookieJar(discardJar{}),
	)
	if err != nil {
		return nil, fmt.Errorf("create API health client: %w", err)
	}
	return quiet, nil
}

// startHealthCheckers checks the gym API in the background and returns the
// aggregated service health.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, quiet *client.Client) *health.ServiceChecker {
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second
	timeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second

	apiChecker := health.NewUpstreamChecker("gym-api", apiPinger(quiet), log, timeout)
	go apiChecker.Start(ctx, interval)

	svcHealth := health.NewServiceChecker(log, apiChecker)
	go svcHealth.Start(ctx, interval)
	return svcHealth
}

// healthCheckPath is requested by health checks; any HTTP answer will do.
const healthCheckPath = "/"

// apiPinger treats any HTTP answer from the gym API as reachable; only
// transport failures count against it.
func apiPinger(quiet *client.Client) health.Pinger {
	return health.PingerFunc(func(ctx context.Context) error {
		_, err := quiet.Get(ctx, healthCheckPath, nil)
		if err != nil && client.IsTransport(err) {
			return err
		}
		return nil
	})
}

func newHTTPServer(ctx context.Context, handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		// Requests outlive the signal context so Shutdown can drain them.
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
}

func serveHTTP(server *http.Server, ln net.Listener, log zerolog.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("HTTP server starting")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

// discardJar drops every cookie. The front-end serves many users, so API
// cookies must not be shared between them.
type discardJar struct{}

func (discardJar) SetCookies(*url.URL, []*http.Cookie) {}
func (discardJar) Cookies(*url.URL) []*http.Cookie     { return nil }
