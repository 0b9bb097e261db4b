package board

import (
	"fmt"

	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/go-ricrob/hyperrobot/internal/packed"
	"github.com/go-ricrob/hyperrobot/internal/walls"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// accept is the oracle consulted for every candidate wall pair.
var accept = Accept

func checkDims(h, w int) error {
	if h < 1 || w < 1 || h > coord.MaxDim || w > coord.MaxDim {
		return fmt.Errorf("%w: size %dx%d out of range [1,%d]", ErrInvalidParams, h, w, coord.MaxDim)
	}
	if h*w < packed.NumRobot {
		return fmt.Errorf("%w: size %dx%d has less than %d cells", ErrInvalidParams, h, w, packed.NumRobot)
	}
	return nil
}

// Generate returns a h x w board. It tries wallBudget times to add a wall
// pair next to a random cell and keeps the pair if the board stays connected
// and interesting (see Accept). Robots are placed on distinct random cells.
func Generate(h, w, wallBudget int, rnd Source) (*Board, error) {
	if err := checkDims(h, w); err != nil {
		return nil, err
	}
	if wallBudget < 0 {
		return nil, fmt.Errorf("%w: negative wall budget %d", ErrInvalidParams, wallBudget)
	}

	t := walls.NewTable(h, w)
	var ws []walls.Wall
	seen := mapset.New[walls.Wall]()

	var u walls.Undo
	cand := make([]walls.Wall, 0, 2)
	for i := 0; i < wallBudget; i++ {
		cy := rnd.IntN(h)
		cx := rnd.IntN(w)
		horizontal := walls.Wall{Pos: coord.P(cy+rnd.IntN(2), cx), Dir: coord.Down}
		vertical := walls.Wall{Pos: coord.P(cy, cx+rnd.IntN(2)), Dir: coord.Right}

		cand, u = cand[:0], u[:0]
		for _, wall := range [...]walls.Wall{horizontal, vertical} {
			// walls on the board edge are skipped
			if !wall.Valid(h, w) || seen.Has(wall) {
				continue
			}
			cand = append(cand, wall)
			u = t.AddWall(wall, u)
		}
		if len(cand) == 0 {
			continue
		}

		if !accept(t) {
			t.Rollback(u)
			Log.WithFields(logrus.Fields{"try": i, "walls": cand}).Debug("reject walls")
			continue
		}
		for _, wall := range cand {
			seen.Put(wall)
			ws = append(ws, wall)
		}
		Log.WithFields(logrus.Fields{"try": i, "walls": cand}).Debug("add walls")
	}

	var robots packed.State
	placed := mapset.New[coord.Pos]()
	for i := 0; i < len(robots); {
		y := rnd.IntN(h)
		x := rnd.IntN(w)
		p := coord.P(y, x)
		if placed.Has(p) {
			continue
		}
		placed.Put(p)
		robots[i] = p
		i++
	}

	return &Board{H: h, W: w, Walls: ws, Robots: robots, dist: t}, nil
}
