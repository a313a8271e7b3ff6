// Package roster implements the six seat holder each team uses to pick
// who acts and who gets hit.
package roster

import (
	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/pkg/rng"
)

// ErrRosterFull is returned by Add when every seat is taken
var ErrRosterFull = errors.ResourceExhausted("roster is full")

// Occupant is a participant sitting in a seat
type Occupant struct {
	Seat          Seat
	ParticipantID entities.ParticipantID
}

// Roster holds at most one participant per seat and remembers the last
// seat handed out by NextFilled.
type Roster struct {
	seats   [SeatCount]entities.ParticipantID
	last    Seat
	hasLast bool
}

// New creates an empty roster
func New() *Roster {
	return &Roster{}
}

// Add seats p in the first empty seat in entry order
func (r *Roster) Add(p entities.ParticipantID) (Seat, error) {
	if p.IsZero() {
		return 0, errors.InvalidArgument("participant id is required")
	}
	for _, seat := range EntryOrder {
		if r.seats[seat].IsZero() {
			r.seats[seat] = p
			return seat, nil
		}
	}
	return 0, ErrRosterFull
}

// At returns the participant in seat
func (r *Roster) At(seat Seat) (entities.ParticipantID, bool) {
	if !seat.valid() || r.seats[seat].IsZero() {
		return entities.ParticipantID{}, false
	}
	return r.seats[seat], true
}

// Len is the number of occupied seats
func (r *Roster) Len() int {
	n := 0
	for _, p := range r.seats {
		if !p.IsZero() {
			n++
		}
	}
	return n
}

// NextFilled scans canonical order starting after the last returned seat
// and records the first occupied seat it finds. It returns false only when
// the roster is empty.
func (r *Roster) NextFilled() (Occupant, bool) {
	seat := Top
	if r.hasLast {
		seat = r.last.next()
	}
	for i := 0; i < SeatCount; i++ {
		if p := r.seats[seat]; !p.IsZero() {
			r.last = seat
			r.hasLast = true
			return Occupant{Seat: seat, ParticipantID: p}, true
		}
		seat = seat.next()
	}
	return Occupant{}, false
}

// RandomFilled shuffles the canonical seat list with src and returns the
// first occupied seat. The sequential pointer is left alone.
func (r *Roster) RandomFilled(src rng.Source) (Occupant, bool) {
	order := CanonicalOrder
	src.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	for _, seat := range order {
		if p := r.seats[seat]; !p.IsZero() {
			return Occupant{Seat: seat, ParticipantID: p}, true
		}
	}
	return Occupant{}, false
}

// Occupants lists occupied seats in canonical order
func (r *Roster) Occupants() []Occupant {
	var out []Occupant
	for _, seat := range CanonicalOrder {
		if p := r.seats[seat]; !p.IsZero() {
			out = append(out, Occupant{Seat: seat, ParticipantID: p})
		}
	}
	return out
}

// State is the serialisable form of a roster
type State struct {
	Seats map[Seat]entities.ParticipantID `json:"seats"`
	Last  *Seat                           `json:"last,omitempty"`
}

// State captures the roster for a snapshot
func (r *Roster) State() State {
	st := State{Seats: make(map[Seat]entities.ParticipantID, SeatCount)}
	for _, o := range r.Occupants() {
		st.Seats[o.Seat] = o.ParticipantID
	}
	if r.hasLast {
		last := r.last
		st.Last = &last
	}
	return st
}

// FromState rebuilds a roster captured with State
func FromState(st State) (*Roster, error) {
	r := New()
	for seat, p := range st.Seats {
		if !seat.valid() {
			return nil, errors.DataLossf("invalid seat %d in roster state", int(seat))
		}
		r.seats[seat] = p
	}
	if st.Last != nil {
		if !st.Last.valid() {
			return nil, errors.DataLossf("invalid last seat %d in roster state", int(*st.Last))
		}
		r.last = *st.Last
		r.hasLast = true
	}
	return r, nil
}
