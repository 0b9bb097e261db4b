// Package notation reads and writes move commands.
//
// A command is a sequence of groups, each a robot letter (r, g, b, y)
// followed by one or more direction letters. Directions are s, d, w, a or
// j, l, k, h for down, right, up and left. Groups may be separated by spaces
// or commas. A trailing "!" marks a command that may be longer than the
// answer.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/go-ricrob/hyperrobot/internal/packed"
)

// ErrSyntax is returned for malformed commands.
var ErrSyntax = errors.New("invalid move command")

const (
	robotLetters = "rgby"
	dirLetters   = "sdwa"
)

var robotNames = [packed.NumRobot]string{"red", "green", "blue", "yellow"}

var dirByLetter = map[rune]coord.Dir{
	's': coord.Down, 'j': coord.Down,
	'd': coord.Right, 'l': coord.Right,
	'w': coord.Up, 'k': coord.Up,
	'a': coord.Left, 'h': coord.Left,
}

// Command is a parsed move command.
type Command struct {
	Moves   []packed.Move
	Lenient bool
}

// RobotName returns the colour name of robot i.
func RobotName(i int) string {
	if i < 0 || i >= len(robotNames) {
		return fmt.Sprintf("robot%d", i)
	}
	return robotNames[i]
}

// Parse parses a move command.
func Parse(s string) (Command, error) {
	var cmd Command
	s = strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutSuffix(s, "!"); ok {
		cmd.Lenient = true
		s = rest
	}

	robot, pending := -1, false
	for i, r := range s {
		if r == ' ' || r == ',' {
			if pending {
				return Command{}, fmt.Errorf("%w: robot %q without direction at %d", ErrSyntax, robotLetters[robot], i)
			}
			robot = -1
			continue
		}
		if idx := strings.IndexRune(robotLetters, r); idx >= 0 {
			if pending {
				return Command{}, fmt.Errorf("%w: robot %q without direction at %d", ErrSyntax, robotLetters[robot], i)
			}
			robot, pending = idx, true
			continue
		}
		d, ok := dirByLetter[r]
		if !ok {
			return Command{}, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, i)
		}
		if robot < 0 {
			return Command{}, fmt.Errorf("%w: direction %q without robot at %d", ErrSyntax, r, i)
		}
		cmd.Moves = append(cmd.Moves, packed.Move{Robot: robot, Dir: d})
		pending = false
	}
	if pending {
		return Command{}, fmt.Errorf("%w: robot %q without direction", ErrSyntax, robotLetters[robot])
	}
	if len(cmd.Moves) == 0 {
		return Command{}, fmt.Errorf("%w: no moves", ErrSyntax)
	}
	return cmd, nil
}

// Format returns the command of moves. Consecutive moves of the same robot
// share one group.
func Format(moves []packed.Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i == 0 || moves[i-1].Robot != m.Robot {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(robotLetters[m.Robot])
		}
		sb.WriteByte(dirLetters[m.Dir])
	}
	return sb.String()
}

// Describe returns a human readable form of moves, e.g. "red down, blue left".
func Describe(moves []packed.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = RobotName(m.Robot) + " " + m.Dir.String()
	}
	return strings.Join(parts, ", ")
}
