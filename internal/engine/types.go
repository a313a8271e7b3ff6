package engine

import (
	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/world"
)

// CompleteInput contains the event to resolve and the world it acts on
type CompleteInput struct {
	World *world.World
	Event events.Event
}

// CompleteOutput contains the resolved tree
type CompleteOutput struct {
	Completed events.Completed
}

// CompleteAllInput contains events to resolve in order
type CompleteAllInput struct {
	World  *world.World
	Events []events.Event
}

// CompleteAllOutput contains one tree per input event
type CompleteAllOutput struct {
	Completed []events.Completed
}
