// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Gesture outcomes, used as the outcome label of the gestures counter.
const (
	OutcomeCommit = "commit"
	OutcomeNoOp   = "noop"
	OutcomeCancel = "cancel"
)

// Metrics counts what the tools do. A nil *Metrics counts nothing.
type Metrics struct {
	// Gestures counts completed gestures by outcome.
	Gestures *prometheus.CounterVec

	// Ops counts operations added to the history, by operation name.
	Ops *prometheus.CounterVec
}

// NewMetrics returns new metrics registered with reg, if it is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Gestures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xform_gestures_total",
				Help: "Total number of manipulation handle gestures, by outcome",
			},
			[]string{"outcome"},
		),
		Ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xform_history_ops_total",
				Help: "Total number of operations added to the undo history, by operation",
			},
			[]string{"op"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Gestures, m.Ops)
	}
	return m
}

func (m *Metrics) gesture(outcome string) {
	if m == nil {
		return
	}
	m.Gestures.WithLabelValues(outcome).Inc()
}

func (m *Metrics) op(name string) {
	if m == nil {
		return
	}
	m.Ops.WithLabelValues(name).Inc()
}
