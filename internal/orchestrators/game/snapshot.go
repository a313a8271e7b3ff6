package game

import (
	"slices"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/events"
	"github.com/KirkDiggler/delver-sim/internal/pkg/rng"
	"github.com/KirkDiggler/delver-sim/internal/roster"
	"github.com/KirkDiggler/delver-sim/internal/turnorder"
	"github.com/KirkDiggler/delver-sim/internal/world"
)

const tableGames = "games"

// Snapshot is the stored state of a game after an operation completed
type Snapshot struct {
	GameID       entities.GameID       `json:"game_id"`
	Turn         int                   `json:"turn"`
	Order        []entities.GameTeamID `json:"order"`
	Teams        []TeamState           `json:"teams"`
	Participants []*world.Participant  `json:"participants"`
	Latest       []events.Completed    `json:"latest,omitempty"`
	Seed         uint64                `json:"seed"`
	RNGState     []byte                `json:"rng_state"`
	Aborted      bool                  `json:"aborted,omitempty"`
	AbortReason  string                `json:"abort_reason,omitempty"`
}

// TeamState is one team's place in a snapshot
type TeamState struct {
	ID      entities.GameTeamID `json:"id"`
	SheetID entities.TeamID     `json:"sheet_id"`
	Name    string              `json:"name"`
	Colour  entities.Colour     `json:"colour"`
	Roster  roster.State        `json:"roster"`
}

// EntityID implements versioned.Entity
func (s *Snapshot) EntityID() string {
	return s.GameID.String()
}

// Table implements versioned.Entity
func (s *Snapshot) Table() string {
	return tableGames
}

// Validate checks the snapshot can be stored
func (s *Snapshot) Validate() error {
	vb := errors.NewValidationBuilder()
	if s.GameID.IsZero() {
		vb.RequiredField("game_id")
	}
	if len(s.RNGState) == 0 {
		vb.RequiredField("rng_state")
	}
	if s.Turn < 0 {
		vb.InvalidField("turn", "must not be negative")
	}
	return vb.Build()
}

func (o *orchestrator) snapshot() (*Snapshot, error) {
	state, err := o.rng.State()
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		GameID:       o.gameID,
		Turn:         o.turn,
		Order:        o.order.Teams(),
		Teams:        make([]TeamState, 0, len(o.teams)),
		Participants: o.world.Participants(),
		Latest:       o.latest,
		Seed:         o.rng.Seed(),
		RNGState:     state,
		Aborted:      o.aborted,
		AbortReason:  o.abortReason,
	}
	for _, t := range o.teams {
		snap.Teams = append(snap.Teams, TeamState{
			ID:      t.id,
			SheetID: t.sheetID,
			Name:    t.name,
			Colour:  t.colour,
			Roster:  t.roster.State(),
		})
	}
	return snap, nil
}

// restoreState rebuilds the in-memory game from snap
func (o *orchestrator) restoreState(snap *Snapshot) error {
	stream, err := rng.Restore(snap.Seed, snap.RNGState)
	if err != nil {
		return err
	}

	order, err := turnorder.FromTeams(snap.Order)
	if err != nil {
		return err
	}

	w := world.New()
	for _, p := range snap.Participants {
		if err := w.Add(p); err != nil {
			return errors.WrapWithCode(err, errors.CodeDataLoss, "invalid participant in snapshot")
		}
	}

	teams := make([]*team, 0, len(snap.Teams))
	for _, ts := range snap.Teams {
		r, err := roster.FromState(ts.Roster)
		if err != nil {
			return err
		}
		for _, occ := range r.Occupants() {
			if _, err := w.Participant(occ.ParticipantID); err != nil {
				return errors.DataLossf("roster of team %s seats unknown participant %s", ts.ID, occ.ParticipantID).
					WithMeta("team_id", ts.ID.String())
			}
		}
		teams = append(teams, &team{
			id:      ts.ID,
			sheetID: ts.SheetID,
			name:    ts.Name,
			colour:  ts.Colour,
			roster:  r,
		})
	}
	for _, id := range snap.Order {
		if !slices.ContainsFunc(teams, func(t *team) bool { return t.id == id }) {
			return errors.DataLossf("turn order names unknown team %s", id)
		}
	}

	o.gameID = snap.GameID
	o.turn = snap.Turn
	o.order = order
	o.teams = teams
	o.world = w
	o.latest = snap.Latest
	o.rng = stream
	o.aborted = snap.Aborted
	o.abortReason = snap.AbortReason
	return nil
}
