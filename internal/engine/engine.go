package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/world"
)

// DefaultMaxDepth bounds how deeply responses may nest
const DefaultMaxDepth = 32

// MaxDepthLimit is the largest accepted MaxDepth
const MaxDepthLimit = 1024

// Config configures the engine
type Config struct {
	Dispatcher Dispatcher

	// MaxDepth is the deepest nesting level allowed below a top level event.
	// Zero selects DefaultMaxDepth.
	MaxDepth int
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Dispatcher == nil {
		vb.RequiredField("dispatcher")
	}
	if cfg.MaxDepth != 0 {
		errors.ValidateRange("max_depth", cfg.MaxDepth, 1, MaxDepthLimit, vb)
	}
	return vb.Build()
}

type engine struct {
	dispatcher Dispatcher
	maxDepth   int
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	maxDepth := cfg.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	return &engine{
		dispatcher: cfg.Dispatcher,
		maxDepth:   maxDepth,
	}, nil
}

func (e *engine) Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error) {
	if input == nil || input.World == nil {
		return nil, errors.InvalidArgument("world is required")
	}
	if input.Event == nil {
		return nil, errors.InvalidArgument("event is required")
	}

	completed, err := e.complete(ctx, input.World, input.Event, 0)
	if err != nil {
		return nil, err
	}
	return &CompleteOutput{Completed: completed}, nil
}

func (e *engine) CompleteAll(ctx context.Context, input *CompleteAllInput) (*CompleteAllOutput, error) {
	if input == nil || input.World == nil {
		return nil, errors.InvalidArgument("world is required")
	}

	completed, err := e.completeAll(ctx, input.World, input.Events, 0)
	if err != nil {
		return nil, err
	}
	return &CompleteAllOutput{Completed: completed}, nil
}

// complete runs pre hooks, executes the (possibly altered) event, resolves
// what it derived and finally runs post hooks. Effects already applied stay
// applied when a nested resolution fails.
func (e *engine) complete(ctx context.Context, w *world.World, ev events.Event, depth int) (events.Completed, error) {
	if depth > e.maxDepth {
		return events.Completed{}, errors.Aborted("event resolution exceeded max depth").
			WithMeta("depth", depth).
			WithMeta("max_depth", e.maxDepth).
			WithMeta("event", string(ev.Kind()))
	}

	var reactions []events.Event
	for _, p := range w.Participants() {
		reactions = append(reactions, e.dispatcher.PreEvent(p, &ev)...)
	}
	pre, err := e.completeAll(ctx, w, reactions, depth+1)
	if err != nil {
		return events.Completed{}, err
	}

	derived, err := execute(w, ev)
	if err != nil {
		return events.Completed{}, err
	}
	outcomes, err := e.completeAll(ctx, w, derived, depth+1)
	if err != nil {
		return events.Completed{}, err
	}

	reactions = nil
	for _, p := range w.Participants() {
		reactions = append(reactions, e.dispatcher.PostEvent(p, ev)...)
	}
	post, err := e.completeAll(ctx, w, reactions, depth+1)
	if err != nil {
		return events.Completed{}, err
	}

	slog.DebugContext(ctx, "Event resolved",
		"kind", ev.Kind(),
		"depth", depth,
		"pre_responses", len(pre),
		"outcomes", len(outcomes),
		"post_responses", len(post))

	return events.Completed{
		Event:         ev,
		PreResponses:  pre,
		Outcomes:      outcomes,
		PostResponses: post,
	}, nil
}

func (e *engine) completeAll(ctx context.Context, w *world.World, evs []events.Event, depth int) ([]events.Completed, error) {
	var out []events.Completed
	for _, ev := range evs {
		c, err := e.complete(ctx, w, ev, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// execute applies the primary effect of ev and returns the events it derives
func execute(w *world.World, ev events.Event) ([]events.Event, error) {
	switch ev := ev.(type) {
	case events.Attack:
		for _, id := range []entities.ParticipantID{ev.Attacker, ev.Target} {
			if _, err := w.Participant(id); err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "attack references unknown participant").
					WithMeta("participant_id", id.String())
			}
		}
		return []events.Event{
			events.ProgressGauge{Location: events.HP(ev.Target), Amount: events.BaseDamage},
		}, nil
	case events.CreateGauge:
		return nil, w.SetGauge(ev.Location, ev.Gauge)
	case events.ProgressGauge:
		_, err := w.IncrementGauge(ev.Location, ev.Amount)
		return nil, err
	case events.Announce:
		return nil, nil
	default:
		return nil, errors.Internalf("unhandled event %T", ev)
	}
}
