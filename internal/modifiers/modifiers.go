// Package modifiers evaluates the closed catalogue of character abilities at
// the four points of an event's life: when a participant enters, when its
// team starts a turn, before an event executes and after it has executed.
package modifiers

import (
	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/gauge"
	"github.com/KirkDiggler/delver-sim/internal/world"
)

// Catalogue dispatches hooks for every modifier kind in entities.ModifierKinds
type Catalogue struct{}

// Validate rejects kinds outside the catalogue
func Validate(kinds []entities.ModifierKind) error {
	for _, kind := range kinds {
		if !kind.Valid() {
			return errors.InvalidArgumentf("unknown modifier %q", kind).
				WithMeta("modifier", string(kind))
		}
	}
	return nil
}

// OnEnter returns the events p's modifiers emit when p joins the world
func (Catalogue) OnEnter(p *world.Participant) []events.Event {
	var out []events.Event
	for _, kind := range p.Modifiers {
		switch kind {
		case entities.ModifierGrinder:
			out = append(out, events.CreateGauge{Location: events.XP(p.ID), Gauge: gauge.XPBar()})
		case entities.ModifierResilient, entities.ModifierHerald, entities.ModifierVengeful:
		}
	}
	return out
}

// StartTurn returns the events p's modifiers emit when p is about to attack
func (Catalogue) StartTurn(p *world.Participant) []events.Event {
	var out []events.Event
	for _, kind := range p.Modifiers {
		switch kind {
		case entities.ModifierHerald:
			out = append(out, events.Announce{Text: p.Name + " rallies the team"})
		case entities.ModifierGrinder, entities.ModifierResilient, entities.ModifierVengeful:
		}
	}
	return out
}

// PreEvent lets p's modifiers alter ev before it executes. Any replacement
// is written back through ev.
func (Catalogue) PreEvent(p *world.Participant, ev *events.Event) []events.Event {
	var out []events.Event
	for _, kind := range p.Modifiers {
		switch kind {
		case entities.ModifierResilient:
			pg, ok := (*ev).(events.ProgressGauge)
			if ok && pg.Location == events.HP(p.ID) && pg.Amount > 1 {
				pg.Amount--
				*ev = pg
			}
		case entities.ModifierGrinder, entities.ModifierHerald, entities.ModifierVengeful:
		}
	}
	return out
}

// PostEvent returns p's reactions to an executed event
func (Catalogue) PostEvent(p *world.Participant, ev events.Event) []events.Event {
	var out []events.Event
	attack, isAttack := ev.(events.Attack)
	for _, kind := range p.Modifiers {
		switch kind {
		case entities.ModifierGrinder:
			if isAttack && attack.Attacker == p.ID {
				out = append(out, events.ProgressGauge{Location: events.XP(p.ID), Amount: 1})
			}
		case entities.ModifierVengeful:
			if isAttack && attack.Target == p.ID {
				out = append(out, events.Announce{Text: p.Name + " swears vengeance"})
			}
		case entities.ModifierResilient, entities.ModifierHerald:
		}
	}
	return out
}
