// Package events defines the closed set of game events and the immutable
// tree a resolved event produces.
package events

import (
	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/gauge"
)

// Kind tags an event variant
type Kind string

// Event kinds
const (
	KindAttack        Kind = "attack"
	KindCreateGauge   Kind = "create_gauge"
	KindProgressGauge Kind = "progress_gauge"
	KindAnnounce      Kind = "announce"
)

// BaseDamage is the amount an attack drains from its target's HP
const BaseDamage = 2

// Event is one of Attack, CreateGauge, ProgressGauge or Announce.
// Variants are plain values; hooks that need to alter an in-flight event
// replace it through a pointer.
type Event interface {
	Kind() Kind
	sealed()
}

// Location addresses one gauge on one participant
type Location struct {
	ParticipantID entities.ParticipantID `json:"participant_id"`
	Gauge         gauge.Name             `json:"gauge"`
}

// HP returns the hit point location of p
func HP(p entities.ParticipantID) Location {
	return Location{ParticipantID: p, Gauge: gauge.NameHP}
}

// XP returns the experience location of p
func XP(p entities.ParticipantID) Location {
	return Location{ParticipantID: p, Gauge: gauge.NameXP}
}

// Attack has one participant strike another
type Attack struct {
	Attacker entities.ParticipantID `json:"attacker"`
	Target   entities.ParticipantID `json:"target"`
}

// CreateGauge inserts a gauge, replacing any gauge already at the location
type CreateGauge struct {
	Location Location    `json:"location"`
	Gauge    gauge.Gauge `json:"gauge"`
}

// ProgressGauge increments an existing gauge
type ProgressGauge struct {
	Location Location `json:"location"`
	Amount   int      `json:"amount"`
}

// Announce carries text with no effect on the world
type Announce struct {
	Text string `json:"text"`
}

// Kind implements Event
func (Attack) Kind() Kind { return KindAttack }

// Kind implements Event
func (CreateGauge) Kind() Kind { return KindCreateGauge }

// Kind implements Event
func (ProgressGauge) Kind() Kind { return KindProgressGauge }

// Kind implements Event
func (Announce) Kind() Kind { return KindAnnounce }

func (Attack) sealed()        {}
func (CreateGauge) sealed()   {}
func (ProgressGauge) sealed() {}
func (Announce) sealed()      {}
