// Package engine resolves proposed events into immutable trees of completed
// events, running modifier hooks and applying effects to the world.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/delver-sim/internal/engine Engine,Dispatcher

import (
	"context"

	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/world"
)

// Engine resolves events against a world
type Engine interface {
	// Complete resolves one event and everything it causes
	Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error)

	// CompleteAll resolves events one after another in the given order
	CompleteAll(ctx context.Context, input *CompleteAllInput) (*CompleteAllOutput, error)
}

// Dispatcher runs the reactive hooks of every participant's modifiers.
// modifiers.Catalogue is the production implementation.
type Dispatcher interface {
	PreEvent(p *world.Participant, ev *events.Event) []events.Event
	PostEvent(p *world.Participant, ev events.Event) []events.Event
}
