package entities

import (
	"github.com/KirkDiggler/delver-sim/internal/errors"
)

const tableTeams = "teams"

// MaxRosterSize is the number of seats on every team's roster
const MaxRosterSize = 6

// Team is a stored team sheet. Roster lists the characters seated when the
// team joins a game, in the order they take their seats.
type Team struct {
	ID     TeamID        `json:"id"`
	Name   string        `json:"name"`
	Colour Colour        `json:"colour"`
	Roster []CharacterID `json:"roster"`
}

// EntityID implements versioned.Entity
func (t *Team) EntityID() string {
	return t.ID.String()
}

// Table implements versioned.Entity
func (t *Team) Table() string {
	return tableTeams
}

// Validate checks the sheet can be stored
func (t *Team) Validate() error {
	vb := errors.NewValidationBuilder()
	if t.ID.IsZero() {
		vb.RequiredField("id")
	}
	errors.ValidateRequired("name", t.Name, vb)
	if _, err := ParseColour(string(t.Colour)); err != nil {
		vb.InvalidField("colour", string(t.Colour))
	}
	if len(t.Roster) > MaxRosterSize {
		vb.Fieldf("roster", "must have at most %d characters", MaxRosterSize)
	}
	return vb.Build()
}
