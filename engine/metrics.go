package engine

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/lightcycle/cycle"
)

const instrumentationName = "github.com/lixenwraith/lightcycle/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// roundMetrics records round lifecycle through the global OTel meter (no-op if not configured)
type roundMetrics struct {
	started      metric.Int64Counter
	finished     metric.Int64Counter
	eliminations metric.Int64Counter
	ticks        metric.Int64Histogram
}

func newRoundMetrics() *roundMetrics {
	m := meter()
	fallback := noop.Meter{}
	rm := &roundMetrics{}

	var err error
	if rm.started, err = m.Int64Counter(
		"lightcycle.rounds.started",
		metric.WithDescription("Rounds created"),
	); err != nil {
		rm.started, _ = fallback.Int64Counter("lightcycle.rounds.started")
	}
	if rm.finished, err = m.Int64Counter(
		"lightcycle.rounds.finished",
		metric.WithDescription("Rounds finished, by outcome"),
	); err != nil {
		rm.finished, _ = fallback.Int64Counter("lightcycle.rounds.finished")
	}
	if rm.eliminations, err = m.Int64Counter(
		"lightcycle.eliminations",
		metric.WithDescription("Vehicles eliminated by collision"),
	); err != nil {
		rm.eliminations, _ = fallback.Int64Counter("lightcycle.eliminations")
	}
	if rm.ticks, err = m.Int64Histogram(
		"lightcycle.round.ticks",
		metric.WithDescription("Running ticks per finished round"),
		metric.WithUnit("{tick}"),
	); err != nil {
		rm.ticks, _ = fallback.Int64Histogram("lightcycle.round.ticks")
	}
	return rm
}

func (m *roundMetrics) roundStarted(vehicles int) {
	m.started.Add(context.Background(), 1,
		metric.WithAttributes(attribute.Int("vehicles", vehicles)))
}

func (m *roundMetrics) eliminated(id cycle.ID) {
	m.eliminations.Add(context.Background(), 1,
		metric.WithAttributes(attribute.Int("vehicle", int(id))))
}

func (m *roundMetrics) roundFinished(s Status) {
	attrs := metric.WithAttributes(
		attribute.String("outcome", s.Outcome.String()),
		attribute.Bool("timeout", s.Timeout),
	)
	m.finished.Add(context.Background(), 1, attrs)
	m.ticks.Record(context.Background(), int64(s.Tick), attrs)
}
