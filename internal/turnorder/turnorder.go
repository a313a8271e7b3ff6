// Package turnorder rotates teams through the attacking slot and draws a
// defender for each turn.
package turnorder

import (
	"slices"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/pkg/rng"
)

// MinTeams is the number of teams needed before a turn can run
const MinTeams = 2

// Order is the rotating sequence of teams in a game
type Order struct {
	teams []entities.GameTeamID
}

// New creates an empty order
func New() *Order {
	return &Order{}
}

// FromTeams rebuilds an order from a captured sequence
func FromTeams(teams []entities.GameTeamID) (*Order, error) {
	o := New()
	for i := len(teams) - 1; i >= 0; i-- {
		if err := o.AddFront(teams[i]); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid turn order")
		}
	}
	return o, nil
}

// AddFront puts a new team at the front so it attacks next
func (o *Order) AddFront(id entities.GameTeamID) error {
	if id.IsZero() {
		return errors.InvalidArgument("team id is required")
	}
	if o.Contains(id) {
		return errors.AlreadyExistsf("team %s is already in the turn order", id)
	}
	o.teams = slices.Insert(o.teams, 0, id)
	return nil
}

// Contains reports whether id is in the order
func (o *Order) Contains(id entities.GameTeamID) bool {
	return slices.Contains(o.teams, id)
}

// Len is the number of teams
func (o *Order) Len() int {
	return len(o.teams)
}

// Teams returns a copy of the current sequence, front first
func (o *Order) Teams() []entities.GameTeamID {
	return slices.Clone(o.teams)
}

// Advance rotates the order by one. The team that was at the front attacks;
// the defender is drawn uniformly from every other team.
func (o *Order) Advance(src rng.Source) (attacker, defender entities.GameTeamID, err error) {
	if len(o.teams) < MinTeams {
		return attacker, defender, errors.FailedPreconditionf(
			"turn order needs at least %d teams, has %d", MinTeams, len(o.teams))
	}

	attacker = o.teams[0]
	o.teams = append(o.teams[1:], attacker)

	// everyone except the attacker, which now sits at the back
	others := o.teams[:len(o.teams)-1]
	defender = others[src.IntN(len(others))]
	return attacker, defender, nil
}
