package http

import (
	"net/http"

	"github.com/mverbeek/firefight/internal/combat"
	"github.com/mverbeek/firefight/internal/config"
	"github.com/mverbeek/firefight/internal/metrics"
	"github.com/mverbeek/firefight/internal/notifier"
	"github.com/mverbeek/firefight/internal/resolver"
)

func NewServer(store combat.CombatStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, resolver *resolver.Resolver) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Resolver:       resolver,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/attack", Chain(s.AttackHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.UserStatsHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/weapons", Chain(s.WeaponsHandler(), paramsMiddleware))
	s.Router.Handle("/fights", Chain(s.RecentFightsHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
