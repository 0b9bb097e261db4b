// Package puzzle generates solved puzzles and checks player answers.
package puzzle

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-ricrob/hyperrobot/internal/board"
	"github.com/go-ricrob/hyperrobot/internal/notation"
	"github.com/go-ricrob/hyperrobot/internal/playback"
	"github.com/go-ricrob/hyperrobot/internal/solver"
	"github.com/google/uuid"
)

// Puzzle is a generated board with its answer.
type Puzzle struct {
	ID     uuid.UUID
	Seed   uint64
	Params Params
	Board  *board.Board
	Result *solver.Result
}

// Rand returns the random source of seed.
func Rand(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

// New generates and solves a puzzle. The same params and seed always give
// the same board and answer.
func New(p Params, seed uint64, opts solver.Options) (*Puzzle, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b, err := board.Generate(p.Height, p.Width, p.Walls, Rand(seed))
	if err != nil {
		return nil, fmt.Errorf("generate board: %w", err)
	}
	res, err := solver.Search(b, p.Depth, opts)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return &Puzzle{ID: uuid.New(), Seed: seed, Params: p, Board: b, Result: res}, nil
}

// Answer returns the answer in command notation.
func (p *Puzzle) Answer() string { return notation.Format(p.Result.Moves) }

// Verdict is the outcome of checking a command against a puzzle.
type Verdict struct {
	Cleared  bool     `json:"cleared"`
	Shortest bool     `json:"shortest"`
	Moves    int      `json:"moves"`
	Answer   int      `json:"answer"`
	Reason   string   `json:"reason,omitempty"`
	Trace    []string `json:"trace,omitempty"` // one line per played move
}

// Verify plays cmd on the puzzle board. A command longer than the answer is
// rejected unless it is lenient.
func (p *Puzzle) Verify(cmd notation.Command) Verdict {
	v := Verdict{Moves: len(cmd.Moves), Answer: len(p.Result.Moves)}
	if !cmd.Lenient && v.Moves > v.Answer {
		v.Reason = fmt.Sprintf("the puzzle takes %d moves, the command %d", v.Answer, v.Moves)
		return v
	}

	pb := playback.New(p.Board)
	pb.Apply(cmd.Moves)
	for _, e := range pb.Log() {
		v.Trace = append(v.Trace, e.String())
	}
	v.Cleared = pb.Cleared(p.Result.Goal)
	if !v.Cleared {
		v.Reason = "goal not reached"
		return v
	}
	v.Shortest = v.Moves <= v.Answer
	return v
}
