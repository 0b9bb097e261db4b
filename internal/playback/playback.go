// Package playback replays moves on a board one cell at a time.
package playback

import (
	"fmt"

	"github.com/go-ricrob/hyperrobot/internal/board"
	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/go-ricrob/hyperrobot/internal/notation"
	"github.com/go-ricrob/hyperrobot/internal/packed"
	"github.com/go-ricrob/hyperrobot/internal/solver"
	"github.com/go-ricrob/hyperrobot/internal/walls"
	"github.com/zyedidia/generic/mapset"
)

// Entry is a logged move.
type Entry struct {
	Robot    int
	Dir      coord.Dir
	From, To coord.Pos
}

// String returns e as e.g. "red down (0,1) -> (3,1)".
func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s -> %s", notation.RobotName(e.Robot), e.Dir, e.From, e.To)
}

// Board is a mutable copy of a board's robots.
type Board struct {
	mask   *walls.Mask
	robots packed.State
	log    []Entry
}

// New returns a playback board in the start position of b.
func New(b *board.Board) *Board {
	return &Board{mask: walls.NewMask(b.H, b.W, b.Walls), robots: b.Robots}
}

// Move moves robot into direction d until a wall, the board edge or another
// robot stops it. A robot that cannot move stays in place.
func (pb *Board) Move(robot int, d coord.Dir) Entry {
	occupied := mapset.New[coord.Pos]()
	for _, p := range pb.robots {
		occupied.Put(p)
	}

	from := pb.robots[robot]
	p := from
	for !pb.mask.Blocked(p, d) {
		next := p.Add(d, 1)
		if occupied.Has(next) {
			break
		}
		p = next
	}

	e := Entry{Robot: robot, Dir: d, From: from, To: p}
	pb.log = append(pb.log, e)
	pb.robots[robot] = p
	return e
}

// Apply moves the robots by moves.
func (pb *Board) Apply(moves []packed.Move) {
	for _, m := range moves {
		pb.Move(m.Robot, m.Dir)
	}
}

// Robots returns the current robot positions.
func (pb *Board) Robots() packed.State { return pb.robots }

// Log returns the moves done so far.
func (pb *Board) Log() []Entry { return pb.log }

// Cleared reports whether the goal robot stands on the goal cell.
func (pb *Board) Cleared(g solver.Goal) bool { return pb.robots[g.Robot] == g.Pos }
