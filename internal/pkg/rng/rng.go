// Package rng provides the seeded random stream threaded through a game.
// Every draw goes through a Stream handle; nothing reads global randomness,
// so the same seed and call sequence always reproduce the same game.
package rng

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/KirkDiggler/delver-sim/internal/errors"
)

//go:generate mockgen -destination=mock/mock.go -package=rngmock github.com/KirkDiggler/delver-sim/internal/pkg/rng Source

// Source is the randomness a game needs
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Stream is a deterministic Source whose state can be captured and restored
type Stream struct {
	seed uint64
	src  *rand.ChaCha8
	r    *rand.Rand
}

// New creates a stream from a seed
func New(seed uint64) *Stream {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	src := rand.NewChaCha8(key)
	return &Stream{
		seed: seed,
		src:  src,
		r:    rand.New(src),
	}
}

// Restore rebuilds a stream from a captured state
func Restore(seed uint64, state []byte) (*Stream, error) {
	s := New(seed)
	if err := s.src.UnmarshalBinary(state); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to restore rng state")
	}
	return s, nil
}

// Seed returns the seed the stream was created with
func (s *Stream) Seed() uint64 {
	return s.seed
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (s *Stream) IntN(n int) int {
	return s.r.IntN(n)
}

// Shuffle permutes n elements using swap
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// State captures the stream position
func (s *Stream) State() ([]byte, error) {
	state, err := s.src.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "failed to capture rng state")
	}
	return state, nil
}
