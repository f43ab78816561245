package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelemetry_Record(t *testing.T) {
	tel, err := NewTelemetry()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		tel.Record(context.Background(), "test", TickReport{Fired: 3, Destroyed: 1, Collected: 1})
	})

	var none *Telemetry
	assert.NotPanics(t, func() {
		none.Record(context.Background(), "test", TickReport{Fired: 1})
	})
}

func TestWorld_WithTelemetry(t *testing.T) {
	tel, err := NewTelemetry()
	require.NoError(t, err)

	w := newTestWorld(t, &Level{Name: "empty"}, WithTelemetry(tel))
	assert.NotPanics(t, func() { w.Tick(0.016) })
}
