// Package solver implemets a breadth first search for deep puzzles.
//
// The search expands all robot configurations level by level up to a target
// depth and remembers the (robot, cell) pair found last. The move sequence
// leading to it is the puzzle answer.
package solver

import (
	"errors"
	"fmt"

	"github.com/go-ricrob/hyperrobot/internal/board"
	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/go-ricrob/hyperrobot/internal/packed"
	"github.com/sirupsen/logrus"
)

// Log is the package logger.
var Log = logrus.New()

// ErrInvalidDepth is returned for a negative target depth.
var ErrInvalidDepth = errors.New("invalid search depth")

const (
	defaultNumPart  = 16
	defaultCapacity = 1 << 16
)

// PathFrom selects the state the answer path is reconstructed from.
type PathFrom int

const (
	// PathFromGoal reconstructs the path to the state the goal was found in.
	PathFromGoal PathFrom = iota
	// PathFromLast reconstructs the path to the last expanded state. The path
	// may end in a state where the goal robot is not on the goal cell.
	PathFromLast
)

// Options tune a search. The zero value is valid.
type Options struct {
	PathFrom PathFrom
	NumPart  int // number of visited map partitions
	Capacity int // expected number of visited states
}

func (o Options) withDefaults(h, w int) Options {
	if o.NumPart <= 0 {
		o.NumPart = defaultNumPart
	}
	if o.Capacity <= 0 {
		o.Capacity = min(defaultCapacity, maxStates(h, w))
	}
	return o
}

// maxStates returns the upper bound (h*w)^4 of the state space capped at
// defaultCapacity.
func maxStates(h, w int) int {
	n := 1
	for i := 0; i < packed.NumRobot; i++ {
		n *= h * w
		if n >= defaultCapacity {
			return defaultCapacity
		}
	}
	return n
}

// Result is the outcome of a search.
type Result struct {
	Goal      Goal
	Moves     []packed.Move
	Final     packed.State // state reached by Moves
	Depth     int          // depth of the last expanded state
	NumStates int          // number of visited states
	Covered   int          // number of (robot, cell) pairs found
}

// Search explores the configurations of b breadth first and stops as soon as
// a new (robot, cell) pair is found at depth target or all pairs are found.
func Search(b *board.Board, target int, opts Options) (*Result, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, target)
	}
	opts = opts.withDefaults(b.H, b.W)
	states := newStates(b.Robots, b.H, b.W, opts)
	pm := states.pm

	depth := 0
levels:
	for {
		source := pm.Source()
		for _, k := range source {
			states.last = k
			s := k.Unpack()
			if states.mark(k, s, depth >= target) {
				break levels
			}
			for idx := 0; idx < packed.NumRobot; idx++ {
				for d := coord.Down; d < coord.NumDir; d++ {
					if to, ok := b.Slide(s, idx, d); ok {
						pm.StoreTarget(to.Pack(), packed.NewPrev(packed.Move{Robot: idx, Dir: d}, s[idx]))
					}
				}
			}
		}

		Log.WithFields(logrus.Fields{"depth": depth, "states": len(source)}).Debug("level done")
		if depth >= target {
			break
		}
		pm.Swap()
		if len(pm.Source()) == 0 {
			break
		}
		depth++
	}

	from := states.goalFrom
	if opts.PathFrom == PathFromLast {
		from = states.last
	}
	res := &Result{
		Goal:      states.goal,
		Moves:     states.moves(from),
		Final:     from.Unpack(),
		Depth:     depth,
		NumStates: pm.Size(),
		Covered:   states.numFound,
	}
	Log.WithFields(logrus.Fields{
		"depth":   res.Depth,
		"moves":   len(res.Moves),
		"states":  res.NumStates,
		"covered": res.Covered,
	}).Debug("search done")
	return res, nil
}

// Replay applies moves to the robots of b. Every move has to change the
// position of its robot.
func Replay(b *board.Board, moves []packed.Move) (packed.State, error) {
	s := b.Robots
	for i, m := range moves {
		to, ok := b.Slide(s, m.Robot, m.Dir)
		if !ok {
			return s, fmt.Errorf("move %d (%s): %w", i, m, errNoMove)
		}
		s = to
	}
	return s, nil
}
