// Package board generates puzzle boards and implements the robot move physics.
package board

import (
	"errors"
	"fmt"

	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/go-ricrob/hyperrobot/internal/packed"
	"github.com/go-ricrob/hyperrobot/internal/walls"
	"github.com/sirupsen/logrus"
)

// Log is the package logger.
var Log = logrus.New()

// ErrInvalidParams is returned for board dimensions or wall budgets that cannot
// produce a board.
var ErrInvalidParams = errors.New("invalid board parameters")

// Source provides uniformly distributed integers in [0,n).
// *rand.Rand of math/rand/v2 implements Source.
type Source interface {
	IntN(n int) int
}

// Board is a generated puzzle board. A Board is immutable and can be shared
// by concurrent searches.
type Board struct {
	H, W   int
	Walls  []walls.Wall
	Robots packed.State

	dist *walls.Table
}

// New returns a board from a wall list and robot positions.
func New(h, w int, ws []walls.Wall, robots packed.State) (*Board, error) {
	if err := checkDims(h, w); err != nil {
		return nil, err
	}
	for _, wall := range ws {
		if !wall.Valid(h, w) {
			return nil, fmt.Errorf("%w: wall %s off board", ErrInvalidParams, wall)
		}
	}
	for i, p := range robots {
		if !p.In(h, w) {
			return nil, fmt.Errorf("%w: robot %d at %s off board", ErrInvalidParams, i, p)
		}
		for _, q := range robots[:i] {
			if p == q {
				return nil, fmt.Errorf("%w: robots share cell %s", ErrInvalidParams, p)
			}
		}
	}
	return &Board{H: h, W: w, Walls: ws, Robots: robots, dist: walls.Recompute(h, w, ws)}, nil
}

// Dist returns the directional distance table of b.
func (b *Board) Dist() *walls.Table { return b.dist }

// Slide moves robot into direction d until it hits a wall, the board edge or
// another robot. ok is false if the robot cannot move.
func (b *Board) Slide(s packed.State, robot int, d coord.Dir) (packed.State, bool) {
	v := coord.Directions[d]
	p := s[robot]
	mind := b.dist.Dist(p, d)

	for j, q := range s {
		if j == robot {
			continue
		}
		dy, dx := q.Y-p.Y, q.X-p.X
		if sign(dy) != v.Y || sign(dx) != v.X {
			continue
		}
		n := abs(dx)
		if dx == 0 {
			n = abs(dy)
		}
		mind = min(mind, n-1)
	}

	if mind == 0 {
		return s, false
	}
	s[robot] = p.Add(d, mind)
	return s, true
}

func sign(v int8) int8 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}
