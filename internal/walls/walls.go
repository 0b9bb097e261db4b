// Package walls provides the wall model of a board: wall segments, the
// directional distance table derived from them and a boolean wall mask.
package walls

import (
	"fmt"

	"github.com/go-ricrob/hyperrobot/internal/coord"
)

// Wall is a wall segment on the upper (Dir == coord.Down) or left
// (Dir == coord.Right) edge of cell Pos.
//
// A Down wall at (y,x) separates (y-1,x) from (y,x), a Right wall at (y,x)
// separates (y,x-1) from (y,x).
type Wall struct {
	Pos coord.Pos
	Dir coord.Dir
}

// Valid reports whether w is an interior wall of a h x w board.
func (wall Wall) Valid(h, w int) bool {
	y, x := int(wall.Pos.Y), int(wall.Pos.X)
	switch wall.Dir {
	case coord.Down:
		return 0 < y && y < h && 0 <= x && x < w
	case coord.Right:
		return 0 < x && x < w && 0 <= y && y < h
	default:
		return false
	}
}

func (wall Wall) String() string { return fmt.Sprintf("%s%s", wall.Pos, wall.Dir) }

// Mask holds a wall flag per cell and direction. Board edges count as walls.
type Mask struct {
	h, w int
	m    [][coord.NumDir]bool
}

// NewMask returns the mask of a h x w board with the given interior walls.
func NewMask(h, w int, ws []Wall) *Mask {
	m := &Mask{h: h, w: w, m: make([][coord.NumDir]bool, h*w)}
	for y := 0; y < h; y++ {
		m.m[y*w][coord.Left] = true
		m.m[y*w+w-1][coord.Right] = true
	}
	for x := 0; x < w; x++ {
		m.m[x][coord.Up] = true
		m.m[(h-1)*w+x][coord.Down] = true
	}
	for _, wall := range ws {
		y, x := int(wall.Pos.Y), int(wall.Pos.X)
		if wall.Dir == coord.Down {
			m.m[(y-1)*w+x][coord.Down] = true
			m.m[y*w+x][coord.Up] = true
		} else {
			m.m[y*w+x-1][coord.Right] = true
			m.m[y*w+x][coord.Left] = true
		}
	}
	return m
}

// Blocked reports whether a wall or the board edge lies next to p in direction d.
func (m *Mask) Blocked(p coord.Pos, d coord.Dir) bool { return m.m[p.Idx(m.w)][d] }
