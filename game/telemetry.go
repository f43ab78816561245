package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "voidsweep/game"

// Telemetry holds the simulation's metric instruments.
// Instruments come from the global meter provider and are no-ops unless one is installed.
type Telemetry struct {
	projectilesFired metric.Int64Counter
	vesselsDestroyed metric.Int64Counter
	basesCollected   metric.Int64Counter
}

// NewTelemetry creates the simulation counters
func NewTelemetry() (*Telemetry, error) {
	m := otel.Meter(instrumentationName)

	fired, err := m.Int64Counter("voidsweep.projectiles.fired",
		metric.WithDescription("Projectiles spawned by weapons"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating projectiles fired counter: %w", err)
	}

	destroyed, err := m.Int64Counter("voidsweep.vessels.destroyed",
		metric.WithDescription("Hostile vessels destroyed by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating vessels destroyed counter: %w", err)
	}

	collected, err := m.Int64Counter("voidsweep.bases.collected",
		metric.WithDescription("Bases claimed by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating bases collected counter: %w", err)
	}

	return &Telemetry{
		projectilesFired: fired,
		vesselsDestroyed: destroyed,
		basesCollected:   collected,
	}, nil
}

// Record adds one tick's counts
func (t *Telemetry) Record(ctx context.Context, level string, r TickReport) {
	if t == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("level", level))
	if r.Fired > 0 {
		t.projectilesFired.Add(ctx, int64(r.Fired), attrs)
	}
	if r.Destroyed > 0 {
		t.vesselsDestroyed.Add(ctx, int64(r.Destroyed), attrs)
	}
	if r.Collected > 0 {
		t.basesCollected.Add(ctx, int64(r.Collected), attrs)
	}
}
