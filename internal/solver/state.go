package solver

import (
	"errors"

	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/go-ricrob/hyperrobot/internal/packed"
	"github.com/go-ricrob/hyperrobot/internal/partmap"
	"golang.org/x/exp/slices"
)

var errNoMove = errors.New("move does not change the robot position")

// Goal is a robot and the cell it reached.
type Goal struct {
	Robot int
	Pos   coord.Pos
}

type states struct {
	pm       *partmap.Map
	w        int
	found    []bool // per cell and robot
	numFound int
	goal     Goal
	goalFrom packed.Key // state the goal was found in
	last     packed.Key // last expanded state
}

func newStates(start packed.State, h, w int, opts Options) *states {
	k := start.Pack()
	return &states{
		pm:       partmap.New(k, opts.NumPart, opts.Capacity),
		w:        w,
		found:    make([]bool, h*w*packed.NumRobot),
		goal:     Goal{Robot: 0, Pos: start[0]},
		goalFrom: k,
		last:     k,
	}
}

// mark records the (robot, cell) pairs of s not seen before and returns true
// if the search has to stop.
func (m *states) mark(k packed.Key, s packed.State, atDepth bool) bool {
	for i, p := range s {
		idx := p.Idx(m.w)*packed.NumRobot + i
		if m.found[idx] {
			continue
		}
		m.found[idx] = true
		m.numFound++
		m.goal = Goal{Robot: i, Pos: p}
		m.goalFrom = k
		if atDepth || m.numFound >= len(m.found) {
			return true
		}
	}
	return false
}

// moves walks the predecessor chain back from k and returns the moves from
// the start state to k.
func (m *states) moves(k packed.Key) []packed.Move {
	moves := []packed.Move{}
	s := k.Unpack()
	for {
		prev, ok := m.pm.Load(s.Pack())
		if !ok {
			panic("should never happen")
		}
		if prev == packed.Root { // start state found
			return moves
		}
		move, from := prev.Unpack()
		moves = slices.Insert(moves, 0, move)
		s[move.Robot] = from
	}
}
