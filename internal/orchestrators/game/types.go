package game

import (
	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/roster"
)

// AddTeamInput contains the stored team sheet to bring into the game
type AddTeamInput struct {
	TeamID entities.TeamID
}

// AddTeamOutput contains the new game team and its seated participants
type AddTeamOutput struct {
	GameTeamID   entities.GameTeamID
	Participants []entities.ParticipantID
	Events       []events.Completed
}

// AddParticipantInput contains the character to seat and the team it joins
type AddParticipantInput struct {
	CharacterID entities.CharacterID
	GameTeamID  entities.GameTeamID
}

// AddParticipantOutput contains the seated participant and its entry events
type AddParticipantOutput struct {
	ParticipantID entities.ParticipantID
	Seat          roster.Seat
	Events        []events.Completed
}

// TurnInput is empty; a turn draws everything it needs from the game
type TurnInput struct{}

// TurnOutput describes the exchange that was resolved
type TurnOutput struct {
	Turn         int
	AttackerTeam entities.GameTeamID
	DefenderTeam entities.GameTeamID
	Attacker     entities.ParticipantID
	Defender     entities.ParticipantID
	Events       []events.Completed
}

// DisplayInput names the two teams to show
type DisplayInput struct {
	TeamA entities.GameTeamID
	TeamB entities.GameTeamID
}

// DisplayOutput contains the rendered line-up
type DisplayOutput struct {
	Text string
}

// LatestEventsInput is empty
type LatestEventsInput struct{}

// LatestEventsOutput contains the trees resolved by the most recent turn
type LatestEventsOutput struct {
	Events []events.Completed
	// Text is the long form rendering of Events
	Text string
}

// SnapshotInput is empty
type SnapshotInput struct{}

// SnapshotOutput contains the current game state
type SnapshotOutput struct {
	Snapshot *Snapshot
}

// SaveInput is empty
type SaveInput struct{}

// SaveOutput contains the stored snapshot version
type SaveOutput struct {
	Version int
}
