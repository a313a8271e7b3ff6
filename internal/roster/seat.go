package roster

import (
	"github.com/KirkDiggler/delver-sim/internal/errors"
)

// Seat is one of the six fixed positions on a roster
type Seat int

// Seats, numbered in canonical order
const (
	Top Seat = iota
	Charm
	Up
	Down
	Strange
	Bottom
)

// SeatCount is the number of seats on every roster
const SeatCount = 6

// CanonicalOrder is the display and sequential scan order
var CanonicalOrder = [SeatCount]Seat{Top, Charm, Up, Down, Strange, Bottom}

// EntryOrder is the order newcomers fill empty seats
var EntryOrder = [SeatCount]Seat{Top, Up, Down, Bottom, Strange, Charm}

var seatNames = [SeatCount]string{"top", "charm", "up", "down", "strange", "bottom"}

// String returns the seat name
func (s Seat) String() string {
	if !s.valid() {
		return "unknown"
	}
	return seatNames[s]
}

// MarshalText implements encoding.TextMarshaler
func (s Seat) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, errors.InvalidArgumentf("invalid seat %d", int(s))
	}
	return []byte(seatNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Seat) UnmarshalText(text []byte) error {
	seat, err := ParseSeat(string(text))
	if err != nil {
		return err
	}
	*s = seat
	return nil
}

// ParseSeat converts a seat name
func ParseSeat(name string) (Seat, error) {
	for i, n := range seatNames {
		if n == name {
			return Seat(i), nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown seat %q", name)
}

func (s Seat) valid() bool {
	return s >= Top && s <= Bottom
}

// next returns the seat after s in canonical order, wrapping
func (s Seat) next() Seat {
	return (s + 1) % SeatCount
}
