package rng

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/delver-sim/internal/errors"
)

// Roller adapts a Source to the toolkit dice.Roller so dice rolls follow the
// same seeded stream as the rest of the game
type Roller struct {
	src Source
}

var _ dice.Roller = (*Roller)(nil)

// NewRoller returns a dice roller drawing from src
func NewRoller(src Source) *Roller {
	return &Roller{src: src}
}

// Roll returns a value in [1, size]
func (r *Roller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	return r.src.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *Roller) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("dice count must be positive: %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}
