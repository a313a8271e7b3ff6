// Package entities holds the stored definitions the simulation is built from
// (character and team sheets) and the typed identifiers used across packages.
package entities

import (
	"github.com/KirkDiggler/delver-sim/internal/errors"
)

// ID identifies one entity of kind K. IDs of different kinds are distinct
// types, so a character id cannot be passed where a team id is expected.
type ID[K any] struct {
	value string
}

// NewID wraps a raw identifier
func NewID[K any](raw string) ID[K] {
	return ID[K]{value: raw}
}

// String returns the raw identifier
func (id ID[K]) String() string {
	return id.value
}

// IsZero reports whether the id is unset
func (id ID[K]) IsZero() bool {
	return id.value == ""
}

// MarshalText implements encoding.TextMarshaler so ids work as JSON values and map keys
func (id ID[K]) MarshalText() ([]byte, error) {
	return []byte(id.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ID[K]) UnmarshalText(text []byte) error {
	id.value = string(text)
	return nil
}

// Runtime kinds. They only tag identifiers; the state itself lives in the
// world and game packages.
type (
	// ParticipantKind tags participant ids
	ParticipantKind struct{}
	// GameTeamKind tags ids of teams inside a game
	GameTeamKind struct{}
	// GameKind tags game ids
	GameKind struct{}
)

// Identifier kinds used across the simulation
type (
	// CharacterID addresses a stored character sheet
	CharacterID = ID[Character]
	// TeamID addresses a stored team sheet
	TeamID = ID[Team]
	// ParticipantID addresses a character seated in a running game
	ParticipantID = ID[ParticipantKind]
	// GameTeamID addresses a team taking part in a running game
	GameTeamID = ID[GameTeamKind]
	// GameID addresses a running game and its stored snapshots
	GameID = ID[GameKind]
)

// RequireID returns InvalidArgument when id is unset
func RequireID[K any](field string, id ID[K]) error {
	if id.IsZero() {
		return errors.InvalidArgumentf("%s is required", field)
	}
	return nil
}

// NewParticipantID wraps a raw participant identifier
func NewParticipantID(raw string) ParticipantID {
	return NewID[ParticipantKind](raw)
}

// NewGameTeamID wraps a raw game team identifier
func NewGameTeamID(raw string) GameTeamID {
	return NewID[GameTeamKind](raw)
}

// NewGameID wraps a raw game identifier
func NewGameID(raw string) GameID {
	return NewID[GameKind](raw)
}
