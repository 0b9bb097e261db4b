// Package coord provides board positions and move directions.
package coord

import "fmt"

// MaxDim is the maximum board height or width (positions are stored as int8).
const MaxDim = 127

// Pos is a board cell (row Y, column X).
type Pos struct {
	Y, X int8
}

// P returns the position of row y and column x.
func P(y, x int) Pos { return Pos{Y: int8(y), X: int8(x)} }

// Add returns p moved n cells into direction d.
func (p Pos) Add(d Dir, n int8) Pos {
	v := Directions[d]
	return Pos{Y: p.Y + v.Y*n, X: p.X + v.X*n}
}

// In reports whether p lies inside a board of size h x w.
func (p Pos) In(h, w int) bool {
	return p.Y >= 0 && int(p.Y) < h && p.X >= 0 && int(p.X) < w
}

// Idx returns the row major index of p on a board of width w.
func (p Pos) Idx(w int) int { return int(p.Y)*w + int(p.X) }

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Y, p.X) }

// Dir is a move direction.
type Dir uint8

// Directions in their fixed order. The order is used as array index.
const (
	Down Dir = iota
	Right
	Up
	Left
	NumDir
)

// Directions are the unit vectors of Down, Right, Up and Left.
var Directions = [NumDir]Pos{
	Down:  {Y: 1, X: 0},
	Right: {Y: 0, X: 1},
	Up:    {Y: -1, X: 0},
	Left:  {Y: 0, X: -1},
}

var dirNames = [NumDir]string{"down", "right", "up", "left"}

func (d Dir) String() string {
	if d >= NumDir {
		return fmt.Sprintf("Dir(%d)", d)
	}
	return dirNames[d]
}
