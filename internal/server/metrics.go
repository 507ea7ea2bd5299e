package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
)

// #region metrics
var (
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guard_checks_total",
		Help: "Guard checks by decision.",
	}, []string{"decision"})

	violationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guard_violations_total",
		Help: "Breached bounds by kind.",
	}, []string{"kind"})
)

func observeCheck(decision guard.Decision) {
	if decision.Allowed {
		checksTotal.WithLabelValues("allow").Inc()
		return
	}
	checksTotal.WithLabelValues("reject").Inc()
	for _, v := range decision.Violations {
		violationsTotal.WithLabelValues(string(v.Kind)).Inc()
	}
}

// #endregion metrics
