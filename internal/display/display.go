// Package display renders completed event trees, gauges and team line-ups
// as text.
package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/gauge"
	"github.com/KirkDiggler/delver-sim/internal/roster"
	"github.com/KirkDiggler/delver-sim/internal/world"
)

// Lookup resolves participants referenced by events
type Lookup interface {
	Participant(id entities.ParticipantID) (*world.Participant, error)
}

// Config configures a Renderer
type Config struct {
	// Colour enables ANSI colour output. Without it bars use # and . cells.
	Colour bool
}

// Renderer turns game state into text
type Renderer struct {
	colour bool
}

// New creates a renderer
func New(cfg *Config) *Renderer {
	r := &Renderer{}
	if cfg != nil {
		r.colour = cfg.Colour
	}
	return r
}

// Short renders a one line description of ev
func (r *Renderer) Short(lookup Lookup, ev events.Event) string {
	switch ev := ev.(type) {
	case events.Attack:
		return fmt.Sprintf("%s attacks %s", name(lookup, ev.Attacker), name(lookup, ev.Target))
	case events.CreateGauge:
		return fmt.Sprintf("Created %s's %s", name(lookup, ev.Location.ParticipantID), ev.Location.Gauge)
	case events.ProgressGauge:
		return fmt.Sprintf("%s's %s %s by %d",
			name(lookup, ev.Location.ParticipantID), ev.Location.Gauge, verb(lookup, ev.Location), ev.Amount)
	case events.Announce:
		return ev.Text
	default:
		return fmt.Sprintf("%T", ev)
	}
}

// Long renders the tree rooted at c, one event per line. Each nesting level
// adds a "- " prefix. Gauge lines show the gauge's current bar.
func (r *Renderer) Long(lookup Lookup, c events.Completed) string {
	var b strings.Builder
	_ = c.Walk(func(depth int, node events.Completed) error {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("- ", depth))
		b.WriteString(r.Short(lookup, node.Event))
		if loc, ok := location(node.Event); ok {
			if g, ok := gaugeAt(lookup, loc); ok {
				b.WriteString(" => ")
				b.WriteString(r.Bar(g))
			}
		}
		return nil
	})
	return b.String()
}

// Bar renders a gauge as a row of cells
func (r *Renderer) Bar(g gauge.Gauge) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, filled := range g.Cells() {
		switch {
		case r.colour && filled:
			b.WriteString(paint(g.Colour, "o"))
		case r.colour:
			b.WriteString(paint(entities.ColourGray, "o"))
		case filled:
			b.WriteByte('#')
		default:
			b.WriteByte('.')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// TeamView is a team as shown by Teams
type TeamView struct {
	Name    string
	Colour  entities.Colour
	Members []MemberView
}

// MemberView is one seated participant
type MemberView struct {
	Seat        roster.Seat
	Participant *world.Participant
}

// Teams renders each team's name followed by its seated members and their
// gauges, in the order given
func (r *Renderer) Teams(teams ...TeamView) string {
	var lines []string
	for _, t := range teams {
		lines = append(lines, r.paintIf(t.Colour, t.Name))
		for _, m := range t.Members {
			line := fmt.Sprintf("  %-7s %s", m.Seat, m.Participant.Name)
			for _, g := range m.Participant.Gauges {
				line += fmt.Sprintf(" %s %s", g.Name, r.Bar(g))
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) paintIf(c entities.Colour, s string) string {
	if !r.colour {
		return s
	}
	return paint(c, s)
}

var attributes = map[entities.Colour]color.Attribute{
	entities.ColourGray:   color.FgHiBlack,
	entities.ColourRed:    color.FgRed,
	entities.ColourGreen:  color.FgGreen,
	entities.ColourYellow: color.FgYellow,
	entities.ColourBlue:   color.FgBlue,
	entities.ColourPink:   color.FgMagenta,
	entities.ColourCyan:   color.FgCyan,
	entities.ColourWhite:  color.FgWhite,
}

func paint(c entities.Colour, s string) string {
	attr, ok := attributes[c]
	if !ok {
		attr = color.FgWhite
	}
	p := color.New(attr)
	p.EnableColor()
	return p.Sprint(s)
}

func name(lookup Lookup, id entities.ParticipantID) string {
	if lookup != nil {
		if p, err := lookup.Participant(id); err == nil {
			return p.Name
		}
	}
	return id.String()
}

func verb(lookup Lookup, loc events.Location) string {
	g, ok := gaugeAt(lookup, loc)
	if !ok {
		return "changes"
	}
	if g.Style == gauge.StyleDrain {
		return "decreases"
	}
	return "increases"
}

func location(ev events.Event) (events.Location, bool) {
	switch ev := ev.(type) {
	case events.CreateGauge:
		return ev.Location, true
	case events.ProgressGauge:
		return ev.Location, true
	}
	return events.Location{}, false
}

func gaugeAt(lookup Lookup, loc events.Location) (gauge.Gauge, bool) {
	if lookup == nil {
		return gauge.Gauge{}, false
	}
	p, err := lookup.Participant(loc.ParticipantID)
	if err != nil {
		return gauge.Gauge{}, false
	}
	return p.Gauge(loc.Gauge)
}
