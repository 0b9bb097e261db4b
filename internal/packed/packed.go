// Package packed provides types and functions for memory efficient representations of robots.
package packed

import (
	"fmt"

	"github.com/go-ricrob/hyperrobot/internal/coord"
)

// NumRobot is the number of robots on a board.
const NumRobot = 4

// State holds the positions of all robots, indexed by robot.
type State [NumRobot]coord.Pos

// Key is a compressed representation of a State: 16 bits per robot
// (row in the high, column in the low byte), robot 0 in the lowest bits.
type Key uint64

// Pack returns the key of s.
func (s State) Pack() Key {
	var k Key
	for i, p := range s {
		k |= (Key(uint8(p.Y))<<8 | Key(uint8(p.X))) << (i * 16)
	}
	return k
}

// Unpack returns the state of k.
func (k Key) Unpack() State {
	var s State
	for i := range s {
		v := uint16(k >> (i * 16))
		s[i] = coord.Pos{Y: int8(v >> 8), X: int8(v)}
	}
	return s
}

// Hash mixes k into a well distributed hash value (fibonacci hashing).
func (k Key) Hash() uint64 { return uint64(k) * 0x9e3779b97f4a7c15 }

// With returns s with robot moved to p.
func (s State) With(robot int, p coord.Pos) State { s[robot] = p; return s }

// Move is a single slide of one robot.
type Move struct {
	Robot int
	Dir   coord.Dir
}

func (m Move) String() string { return fmt.Sprintf("%d%s", m.Robot, m.Dir) }

// Prev is a compressed predecessor record:
//
//	bits 18-19: robot index
//	bits 16-17: direction
//	bits  8-15: previous row of the robot
//	bits  0- 7: previous column of the robot
type Prev uint32

// Root marks a state without predecessor.
const Root Prev = 1 << 31

// NewPrev returns the record of move m whose robot started at from.
func NewPrev(m Move, from coord.Pos) Prev {
	return Prev(m.Robot)<<18 | Prev(m.Dir)<<16 | Prev(uint8(from.Y))<<8 | Prev(uint8(from.X))
}

// Unpack returns the move and the previous robot position.
func (p Prev) Unpack() (Move, coord.Pos) {
	m := Move{Robot: int(p>>18) & 0b11, Dir: coord.Dir(p>>16) & 0b11}
	return m, coord.Pos{Y: int8(p >> 8), X: int8(p)}
}
