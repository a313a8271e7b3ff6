package entities

import (
	"github.com/KirkDiggler/delver-sim/internal/errors"
)

const tableCharacters = "characters"

// ModifierKind names an ability from the curated modifier catalogue
type ModifierKind string

// Modifier catalogue
const (
	// ModifierGrinder earns experience from every attack its holder makes
	ModifierGrinder ModifierKind = "grinder"
	// ModifierResilient shaves one point off damage larger than one
	ModifierResilient ModifierKind = "resilient"
	// ModifierHerald announces its holder at the start of each of its team's turns
	ModifierHerald ModifierKind = "herald"
	// ModifierVengeful announces a vow every time its holder is attacked
	ModifierVengeful ModifierKind = "vengeful"
)

// ModifierKinds lists the catalogue in a fixed order
var ModifierKinds = []ModifierKind{
	ModifierGrinder,
	ModifierResilient,
	ModifierHerald,
	ModifierVengeful,
}

// Valid reports whether the kind is part of the catalogue
func (k ModifierKind) Valid() bool {
	for _, known := range ModifierKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Character is a stored character sheet. Games never modify it; a running
// game works on participants created from it.
type Character struct {
	ID        CharacterID    `json:"id"`
	Name      string         `json:"name"`
	Stats     Stats          `json:"stats"`
	Modifiers []ModifierKind `json:"modifiers,omitempty"`
}

// EntityID implements versioned.Entity
func (c *Character) EntityID() string {
	return c.ID.String()
}

// Table implements versioned.Entity
func (c *Character) Table() string {
	return tableCharacters
}

// Validate checks the sheet can be stored
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.ID.IsZero() {
		vb.RequiredField("id")
	}
	errors.ValidateRequired("name", c.Name, vb)
	for _, m := range c.Modifiers {
		if !m.Valid() {
			vb.Fieldf("modifiers", "unknown modifier %q", m)
		}
	}
	return vb.Build()
}

// Stat names one of a character's attributes
type Stat string

// Stats in canonical display order
const (
	StatViolence    Stat = "violence"
	StatBloodthirst Stat = "bloodthirst"
	StatRealism     Stat = "realism"
	StatPerpetuity  Stat = "perpetuity"
	StatBuoyancy    Stat = "buoyancy"
	StatMaverickism Stat = "maverickism"
	StatRun         Stat = "run"
)

// StatOrder is the canonical display order of stats
var StatOrder = []Stat{
	StatViolence, StatBloodthirst, StatRealism, StatPerpetuity,
	StatBuoyancy, StatMaverickism, StatRun,
}

// Stats holds a character's attribute scores
type Stats struct {
	Violence    int8 `json:"violence"`
	Bloodthirst int8 `json:"bloodthirst"`
	Realism     int8 `json:"realism"`
	Perpetuity  int8 `json:"perpetuity"`
	Buoyancy    int8 `json:"buoyancy"`
	Maverickism int8 `json:"maverickism"`
	Run         int8 `json:"run"`
}

// Get returns the score for stat
func (s *Stats) Get(stat Stat) int8 {
	if p := s.ref(stat); p != nil {
		return *p
	}
	return 0
}

// Set stores the score for stat and reports whether the stat exists
func (s *Stats) Set(stat Stat, value int8) bool {
	p := s.ref(stat)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// IsZero reports whether no score has been set
func (s *Stats) IsZero() bool {
	return *s == Stats{}
}

func (s *Stats) ref(stat Stat) *int8 {
	switch stat {
	case StatViolence:
		return &s.Violence
	case StatBloodthirst:
		return &s.Bloodthirst
	case StatRealism:
		return &s.Realism
	case StatPerpetuity:
		return &s.Perpetuity
	case StatBuoyancy:
		return &s.Buoyancy
	case StatMaverickism:
		return &s.Maverickism
	case StatRun:
		return &s.Run
	}
	return nil
}
