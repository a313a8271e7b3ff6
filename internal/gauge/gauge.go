// Package gauge implements bounded resource bars such as hit points and experience.
package gauge

import (
	"github.com/KirkDiggler/delver-sim/internal/entities"
)

// Name identifies a gauge on a participant
type Name string

// Well known gauges
const (
	NameHP Name = "HP"
	NameXP Name = "XP"
)

// Style decides which cells of a bar count as filled
type Style string

const (
	// StyleFill fills cells from the left as progress grows
	StyleFill Style = "fill"
	// StyleDrain empties cells from the right as progress grows
	StyleDrain Style = "drain"
)

// Gauge is a bounded counter. Progress is always within [0, Max].
type Gauge struct {
	Name     Name            `json:"name"`
	Max      int             `json:"max"`
	Progress int             `json:"progress"`
	Colour   entities.Colour `json:"colour"`
	Style    Style           `json:"style"`
}

// New creates a gauge with no progress. A negative max is treated as zero.
func New(maxValue int, name Name, colour entities.Colour, style Style) Gauge {
	if maxValue < 0 {
		maxValue = 0
	}
	return Gauge{
		Name:   name,
		Max:    maxValue,
		Colour: colour,
		Style:  style,
	}
}

// HealthBar is the hit point gauge every participant receives on entry
func HealthBar() Gauge {
	return New(4, NameHP, entities.ColourRed, StyleDrain)
}

// XPBar is the experience gauge created by the grinder modifier
func XPBar() Gauge {
	return New(4, NameXP, entities.ColourBlue, StyleFill)
}

// Increment adds delta to progress, saturating at both ends
func (g *Gauge) Increment(delta int) {
	g.Progress = clamp(g.Progress+delta, 0, g.Max)
}

// IsComplete reports whether the gauge is full
func (g *Gauge) IsComplete() bool {
	return g.Progress >= g.Max
}

// FilledCells is the number of cells drawn as filled
func (g *Gauge) FilledCells() int {
	if g.Style == StyleDrain {
		return g.Max - g.Progress
	}
	return g.Progress
}

// Cells returns one entry per cell, true where the cell is filled.
// Drain gauges lose their leftmost cells first.
func (g *Gauge) Cells() []bool {
	cells := make([]bool, g.Max)
	switch g.Style {
	case StyleDrain:
		for i := g.Progress; i < g.Max; i++ {
			cells[i] = true
		}
	default:
		for i := 0; i < g.Progress; i++ {
			cells[i] = true
		}
	}
	return cells
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
