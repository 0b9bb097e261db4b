package walls

import (
	"github.com/go-ricrob/hyperrobot/internal/coord"
)

// Table stores per cell and direction the number of free cells up to the
// next wall or board edge. A value of 0 means the neighbour cell is blocked.
type Table struct {
	h, w int
	d    [][coord.NumDir]uint8
}

type change struct {
	idx int
	dir coord.Dir
	old uint8
}

// Undo records the table values overwritten by AddWall.
type Undo []change

// NewTable returns the table of a h x w board without interior walls.
func NewTable(h, w int) *Table {
	t := &Table{h: h, w: w, d: make([][coord.NumDir]uint8, h*w)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.d[y*w+x] = [coord.NumDir]uint8{
				coord.Down:  uint8(h - 1 - y),
				coord.Right: uint8(w - 1 - x),
				coord.Up:    uint8(y),
				coord.Left:  uint8(x),
			}
		}
	}
	return t
}

// Recompute builds the table of a h x w board with walls ws from scratch by
// walking the wall mask.
func Recompute(h, w int, ws []Wall) *Table {
	m := NewMask(h, w, ws)
	t := &Table{h: h, w: w, d: make([][coord.NumDir]uint8, h*w)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for d := coord.Down; d < coord.NumDir; d++ {
				var n uint8
				for p := coord.P(y, x); !m.Blocked(p, d); p = p.Add(d, 1) {
					n++
				}
				t.d[y*w+x][d] = n
			}
		}
	}
	return t
}

// Height returns the number of rows.
func (t *Table) Height() int { return t.h }

// Width returns the number of columns.
func (t *Table) Width() int { return t.w }

// Dist returns the number of free cells next to p in direction d.
func (t *Table) Dist(p coord.Pos, d coord.Dir) int8 { return int8(t.d[p.Idx(t.w)][d]) }

// NumOpen returns the number of directions p can be left into.
func (t *Table) NumOpen(p coord.Pos) int {
	n := 0
	for _, v := range t.d[p.Idx(t.w)] {
		if v > 0 {
			n++
		}
	}
	return n
}

func (t *Table) set(idx int, d coord.Dir, v int, u Undo) Undo {
	if old := t.d[idx][d]; int(old) > v {
		u = append(u, change{idx: idx, dir: d, old: old})
		t.d[idx][d] = uint8(v)
	}
	return u
}

// AddWall patches the column (Down wall) or row (Right wall) on both sides of
// wall and appends the overwritten values to u. wall must be valid.
func (t *Table) AddWall(wall Wall, u Undo) Undo {
	y, x := int(wall.Pos.Y), int(wall.Pos.X)
	if wall.Dir == coord.Down {
		for ty := 0; ty < y; ty++ {
			u = t.set(ty*t.w+x, coord.Down, y-1-ty, u)
		}
		for ty := y; ty < t.h; ty++ {
			u = t.set(ty*t.w+x, coord.Up, ty-y, u)
		}
		return u
	}
	for tx := 0; tx < x; tx++ {
		u = t.set(y*t.w+tx, coord.Right, x-1-tx, u)
	}
	for tx := x; tx < t.w; tx++ {
		u = t.set(y*t.w+tx, coord.Left, tx-x, u)
	}
	return u
}

// Rollback restores the values recorded in u.
func (t *Table) Rollback(u Undo) {
	for i := len(u) - 1; i >= 0; i-- {
		c := u[i]
		t.d[c.idx][c.dir] = c.old
	}
}

// Equal reports whether t and o describe the same distances.
func (t *Table) Equal(o *Table) bool {
	if t.h != o.h || t.w != o.w {
		return false
	}
	for i := range t.d {
		if t.d[i] != o.d[i] {
			return false
		}
	}
	return true
}
