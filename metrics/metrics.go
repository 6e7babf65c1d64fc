// Package metrics exposes prometheus instrumentation for predicate
// evaluations performed by embedding hosts.
package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Set holds the evaluation counters. A nil *Set is a valid no-op receiver so
// instrumentation stays optional for embedders.
type Set struct {
	Evaluations *prometheus.CounterVec
	Failures    *prometheus.CounterVec
}

// NewSet creates the counters and registers them on reg when it is non-nil.
func NewSet(reg prometheus.Registerer) *Set {
	s := &Set{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datefilter_evaluations_total",
				Help: "Predicate evaluations by filter name and boolean result.",
			},
			[]string{"filter", "result"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datefilter_failures_total",
				Help: "Failed predicate evaluations by failure reason.",
			},
			[]string{"reason"},
		),
	}
	if reg != nil {
		registerCollector(reg, s.Evaluations)
		registerCollector(reg, s.Failures)
	}
	return s
}

// ObserveEvaluation counts one successful evaluation of the named filter.
func (s *Set) ObserveEvaluation(filter string, result bool) {
	if s == nil {
		return
	}
	s.Evaluations.WithLabelValues(filter, strconv.FormatBool(result)).Inc()
}

// ObserveFailure counts one failed evaluation by machine-readable reason.
func (s *Set) ObserveFailure(reason string) {
	if s == nil {
		return
	}
	s.Failures.WithLabelValues(reason).Inc()
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return
		}
	}
}
