package testutils

import (
	"github.com/KirkDiggler/delver-sim/internal/entities"
)

// Default sheet values for test fixtures
const (
	TestGrinderName   = "Gorm"
	TestResilientName = "Brynn"
	TestHeraldName    = "Hal"
	TestVengefulName  = "Vex"
)

// NewTestCharacter creates a character sheet with fixed stats
func NewTestCharacter(id, name string, mods ...entities.ModifierKind) *entities.Character {
	return &entities.Character{
		ID:   entities.NewID[entities.Character](id),
		Name: name,
		Stats: entities.Stats{
			Violence:    10,
			Bloodthirst: 10,
			Realism:     10,
			Perpetuity:  10,
			Buoyancy:    10,
			Maverickism: 10,
			Run:         10,
		},
		Modifiers: mods,
	}
}

// NewTestGrinder creates a character carrying the grinder modifier
func NewTestGrinder() *entities.Character {
	return NewTestCharacter("gorm", TestGrinderName, entities.ModifierGrinder)
}

// NewTestResilient creates a character carrying the resilient modifier
func NewTestResilient() *entities.Character {
	return NewTestCharacter("brynn", TestResilientName, entities.ModifierResilient)
}

// NewTestHerald creates a character carrying the herald modifier
func NewTestHerald() *entities.Character {
	return NewTestCharacter("hal", TestHeraldName, entities.ModifierHerald)
}

// NewTestVengeful creates a character carrying the vengeful and grinder modifiers
func NewTestVengeful() *entities.Character {
	return NewTestCharacter("vex", TestVengefulName, entities.ModifierVengeful, entities.ModifierGrinder)
}

// NewTestTeam creates a team sheet seating members in the given order
func NewTestTeam(id, name string, colour entities.Colour, members ...*entities.Character) *entities.Team {
	t := &entities.Team{
		ID:     entities.NewID[entities.Team](id),
		Name:   name,
		Colour: colour,
	}
	for _, m := range members {
		t.Roster = append(t.Roster, m.ID)
	}
	return t
}
