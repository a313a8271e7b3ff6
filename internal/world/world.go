// Package world owns the participants of a running game and the gauges
// events act on.
package world

import (
	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/gauge"
)

// World holds every participant in join order
type World struct {
	participants map[entities.ParticipantID]*Participant
	order        []entities.ParticipantID
}

// New creates an empty world
func New() *World {
	return &World{
		participants: make(map[entities.ParticipantID]*Participant),
	}
}

// Add places a participant in the world
func (w *World) Add(p *Participant) error {
	if p == nil {
		return errors.InvalidArgument("participant is required")
	}
	if p.ID.IsZero() {
		return errors.InvalidArgument("participant id is required")
	}
	if _, ok := w.participants[p.ID]; ok {
		return errors.AlreadyExistsf("participant %s already exists", p.ID)
	}
	w.participants[p.ID] = p.clone()
	w.order = append(w.order, p.ID)
	return nil
}

// Len is the number of participants
func (w *World) Len() int {
	return len(w.order)
}

// Participant returns a copy of the participant with id
func (w *World) Participant(id entities.ParticipantID) (*Participant, error) {
	p, ok := w.participants[id]
	if !ok {
		return nil, errors.NotFoundf("participant %s not found", id)
	}
	return p.clone(), nil
}

// Participants returns copies of every participant in join order
func (w *World) Participants() []*Participant {
	out := make([]*Participant, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.participants[id].clone())
	}
	return out
}

// IDs returns participant ids in join order
func (w *World) IDs() []entities.ParticipantID {
	out := make([]entities.ParticipantID, len(w.order))
	copy(out, w.order)
	return out
}

// Gauge returns the gauge at loc
func (w *World) Gauge(loc events.Location) (gauge.Gauge, error) {
	p, err := w.owner(loc)
	if err != nil {
		return gauge.Gauge{}, err
	}
	g, ok := p.Gauge(loc.Gauge)
	if !ok {
		return gauge.Gauge{}, missingGauge(loc)
	}
	return g, nil
}

// SetGauge inserts g at loc, replacing any gauge already there. The
// gauge takes the location's name and its progress is clamped to [0, max].
func (w *World) SetGauge(loc events.Location, g gauge.Gauge) error {
	p, err := w.owner(loc)
	if err != nil {
		return err
	}
	progress := g.Progress
	g = gauge.New(g.Max, loc.Gauge, g.Colour, g.Style)
	g.Increment(progress)
	if i := p.gaugeIndex(loc.Gauge); i >= 0 {
		p.Gauges[i] = g
		return nil
	}
	p.Gauges = append(p.Gauges, g)
	return nil
}

// IncrementGauge adds delta to the gauge at loc and returns its new value
func (w *World) IncrementGauge(loc events.Location, delta int) (gauge.Gauge, error) {
	p, err := w.owner(loc)
	if err != nil {
		return gauge.Gauge{}, err
	}
	i := p.gaugeIndex(loc.Gauge)
	if i < 0 {
		return gauge.Gauge{}, missingGauge(loc)
	}
	p.Gauges[i].Increment(delta)
	return p.Gauges[i], nil
}

func (w *World) owner(loc events.Location) (*Participant, error) {
	p, ok := w.participants[loc.ParticipantID]
	if !ok {
		return nil, errors.FailedPreconditionf("gauge location references unknown participant %s", loc.ParticipantID).
			WithMeta("participant_id", loc.ParticipantID.String())
	}
	return p, nil
}

func missingGauge(loc events.Location) error {
	return errors.FailedPreconditionf("participant %s has no %s gauge", loc.ParticipantID, loc.Gauge).
		WithMeta("participant_id", loc.ParticipantID.String()).
		WithMeta("gauge", string(loc.Gauge))
}
