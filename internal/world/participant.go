package world

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/gauge"
)

// EntityType is the core.Entity type reported by participants
const EntityType = "participant"

var _ core.Entity = (*Participant)(nil)

// Participant is a character seated in a running game. Name and modifiers
// are copied from the character sheet when the participant joins.
type Participant struct {
	ID          entities.ParticipantID  `json:"id"`
	CharacterID entities.CharacterID    `json:"character_id"`
	TeamID      entities.GameTeamID     `json:"team_id"`
	Name        string                  `json:"name"`
	Modifiers   []entities.ModifierKind `json:"modifiers,omitempty"`
	Gauges      []gauge.Gauge           `json:"gauges,omitempty"`
}

// GetID implements core.Entity
func (p *Participant) GetID() string {
	return p.ID.String()
}

// GetType implements core.Entity
func (p *Participant) GetType() string {
	return EntityType
}

// Gauge returns the gauge called name
func (p *Participant) Gauge(name gauge.Name) (gauge.Gauge, bool) {
	if i := p.gaugeIndex(name); i >= 0 {
		return p.Gauges[i], true
	}
	return gauge.Gauge{}, false
}

// HasModifier reports whether the participant carries kind
func (p *Participant) HasModifier(kind entities.ModifierKind) bool {
	return slices.Contains(p.Modifiers, kind)
}

func (p *Participant) gaugeIndex(name gauge.Name) int {
	return slices.IndexFunc(p.Gauges, func(g gauge.Gauge) bool { return g.Name == name })
}

func (p *Participant) clone() *Participant {
	c := *p
	c.Modifiers = slices.Clone(p.Modifiers)
	c.Gauges = slices.Clone(p.Gauges)
	return &c
}
