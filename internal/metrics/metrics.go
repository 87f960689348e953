package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeDropped     = "dropped"
	OutcomeError       = "error"
)

var (
	Calculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "toolkit",
		Name:      "calculations_total",
		Help:      "Calculator invocations by calculator and outcome.",
	}, []string{"calculator", "outcome"})

	BridgeMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "toolkit",
		Name:      "bridge_messages_total",
		Help:      "Raw analog messages handled by the scaling bridge.",
	}, []string{"outcome"})

	SheetExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "toolkit",
		Name:      "sheet_exports_total",
		Help:      "Calculation sheet uploads by outcome.",
	}, []string{"outcome"})
)
