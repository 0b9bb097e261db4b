package board

import (
	"strconv"
	"strings"

	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/go-ricrob/hyperrobot/internal/walls"
)

// String provides a textual representation of the board. Robots are shown
// by their index.
func (b *Board) String() string {
	m := walls.NewMask(b.H, b.W, b.Walls)
	robotAt := map[coord.Pos]int{}
	for i, p := range b.Robots {
		robotAt[p] = i
	}

	var sb strings.Builder

	// Top boundary
	sb.WriteString("+" + strings.Repeat("---+", b.W) + "\n")

	for y := 0; y < b.H; y++ {
		sb.WriteString("|")
		for x := 0; x < b.W; x++ {
			p := coord.P(y, x)
			if i, ok := robotAt[p]; ok {
				sb.WriteString(" " + strconv.Itoa(i) + " ")
			} else {
				sb.WriteString("   ")
			}
			if m.Blocked(p, coord.Right) {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n+")
		for x := 0; x < b.W; x++ {
			if m.Blocked(coord.P(y, x), coord.Down) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
