package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gymtrack/gymtrack-web/server/internal/api/recovery"
	"github.com/gymtrack/gymtrack-web/server/internal/register"
)

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gymtrack_web_http_requests_total",
	Help: "HTTP requests served by the front-end, by route, method and status code.",
}, []string{"route", "method", "code"})

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Users  register.UserCreator
	Health HealthReporter
	Log    zerolog.Logger
	// Gatherer backs /metrics; nil means the default registry.
	Gatherer prometheus.Gatherer
}

// NewRouter creates the front-end router.
func NewRouter(d Deps) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware(d.Log))
	root.Use(WithSessionToken)

	home := NewHomeHandler()
	reg := NewRegisterHandler(d.Users, d.Log)
	health := NewHealthHandler(d.Health)

	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	root.Handle("/", instrument("/", home.Show)).Methods(http.MethodGet)
	root.Handle("/register", instrument("/register", reg.Show)).Methods(http.MethodGet)
	root.Handle("/register", instrument("/register", reg.Submit)).Methods(http.MethodPost)
	root.Handle("/api/health", instrument("/api/health", health.CheckHealth)).Methods(http.MethodGet)
	root.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return root
}

func instrument(route string, h http.HandlerFunc) http.Handler {
	return promhttp.InstrumentHandlerCounter(httpRequests.MustCurryWith(prometheus.Labels{"route": route}), h)
}
