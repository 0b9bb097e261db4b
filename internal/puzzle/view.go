package puzzle

import (
	"github.com/go-ricrob/hyperrobot/internal/notation"
)

type PosView struct {
	Y int `json:"y"`
	X int `json:"x"`
}

type WallView struct {
	Y int `json:"y"`
	X int `json:"x"`
	D int `json:"d"` // 0: upper edge, 1: left edge of the cell
}

type GoalView struct {
	Robot int    `json:"robot"`
	Name  string `json:"name"`
	Y     int    `json:"y"`
	X     int    `json:"x"`
}

type MoveView struct {
	Robot int `json:"c"`
	Dir   int `json:"d"`
}

// View is the JSON representation of a puzzle.
type View struct {
	ID      string     `json:"id"`
	Seed    uint64     `json:"seed"`
	Params  Params     `json:"params"`
	Height  int        `json:"h"`
	Width   int        `json:"w"`
	Walls   []WallView `json:"walls"`
	Robots  []PosView  `json:"robots"`
	Goal    GoalView   `json:"goal"`
	Moves   []MoveView `json:"moves"`
	Answer  string     `json:"answer"`
	Depth   int        `json:"depth"`
	States  int        `json:"states"`
	Covered int        `json:"covered"`
}

// View returns the JSON representation of p.
func (p *Puzzle) View() View {
	b, res := p.Board, p.Result
	v := View{
		ID:     p.ID.String(),
		Seed:   p.Seed,
		Params: p.Params,
		Height: b.H,
		Width:  b.W,
		Walls:  make([]WallView, len(b.Walls)),
		Robots: make([]PosView, len(b.Robots)),
		Goal: GoalView{
			Robot: res.Goal.Robot,
			Name:  notation.RobotName(res.Goal.Robot),
			Y:     int(res.Goal.Pos.Y),
			X:     int(res.Goal.Pos.X),
		},
		Moves:   make([]MoveView, len(res.Moves)),
		Answer:  p.Answer(),
		Depth:   res.Depth,
		States:  res.NumStates,
		Covered: res.Covered,
	}
	for i, w := range b.Walls {
		v.Walls[i] = WallView{Y: int(w.Pos.Y), X: int(w.Pos.X), D: int(w.Dir)}
	}
	for i, r := range b.Robots {
		v.Robots[i] = PosView{Y: int(r.Y), X: int(r.X)}
	}
	for i, m := range res.Moves {
		v.Moves[i] = MoveView{Robot: m.Robot, Dir: int(m.Dir)}
	}
	return v
}
