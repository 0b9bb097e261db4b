package board

import (
	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/go-ricrob/hyperrobot/internal/walls"
)

// minOpen is the minimum number of open directions of an interesting cell.
const minOpen = 2

// Accept reports whether all cells of t are connected and every cell can be
// left into at least two directions.
func Accept(t *walls.Table) bool {
	return Connected(t) && Interesting(t)
}

// Connected reports whether every cell is reachable from (0,0).
func Connected(t *walls.Table) bool {
	return Reachable(t, coord.P(0, 0)) == t.Height()*t.Width()
}

// Reachable returns the number of cells reachable from start.
func Reachable(t *walls.Table, start coord.Pos) int {
	h, w := t.Height(), t.Width()
	seen := make([]bool, h*w)
	stack := []coord.Pos{start}
	seen[start.Idx(w)] = true
	n := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		for d := coord.Down; d < coord.NumDir; d++ {
			if t.Dist(p, d) <= 0 {
				continue
			}
			q := p.Add(d, 1)
			if !q.In(h, w) || seen[q.Idx(w)] {
				continue
			}
			seen[q.Idx(w)] = true
			stack = append(stack, q)
		}
	}
	return n
}

// Interesting reports whether no cell is a dead corner.
func Interesting(t *walls.Table) bool {
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			if t.NumOpen(coord.P(y, x)) < minOpen {
				return false
			}
		}
	}
	return true
}
