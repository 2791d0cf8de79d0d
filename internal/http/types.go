package http

import (
	"net/http"

	"github.com/mverbeek/firefight/internal/combat"
	"github.com/mverbeek/firefight/internal/config"
	"github.com/mverbeek/firefight/internal/metrics"
	"github.com/mverbeek/firefight/internal/notifier"
	"github.com/mverbeek/firefight/internal/resolver"
)

type Server struct {
	Store          combat.CombatStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Resolver       *resolver.Resolver
	Router         *http.ServeMux
}
