package puzzle

import (
	"encoding/json"
	"testing"

	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/go-ricrob/hyperrobot/internal/notation"
	"github.com/go-ricrob/hyperrobot/internal/packed"
	"github.com/go-ricrob/hyperrobot/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset(t *testing.T) {
	p, err := Preset("super")
	require.NoError(t, err)
	assert.Equal(t, Params{Height: 5, Width: 7, Walls: 10, Depth: MaxDepth}, p)

	_, err = Preset("ultra")
	assert.ErrorIs(t, err, ErrUnknownPreset)

	assert.Equal(t, []string{"baby", "hyper", "super"}, PresetNames())
}

func TestClampDepth(t *testing.T) {
	assert.Equal(t, 1, ClampDepth(-5))
	assert.Equal(t, 1, ClampDepth(0))
	assert.Equal(t, 42, ClampDepth(42))
	assert.Equal(t, MaxDepth, ClampDepth(5000))
}

func TestValidate(t *testing.T) {
	for _, p := range []Params{
		{Height: 0, Width: 5, Walls: 1, Depth: 1},
		{Height: 1, Width: 3, Walls: 1, Depth: 1},
		{Height: 200, Width: 5, Walls: 1, Depth: 1},
		{Height: 3, Width: 5, Walls: -1, Depth: 1},
		{Height: 3, Width: 5, Walls: 1, Depth: -1},
	} {
		assert.ErrorIs(t, p.Validate(), ErrInvalidParams, "%+v", p)
		_, err := New(p, 1, solver.Options{})
		assert.ErrorIs(t, err, ErrInvalidParams)
	}
	assert.NoError(t, Params{Height: 2, Width: 2, Walls: 0, Depth: 0}.Validate())
}

func TestNewDeterministic(t *testing.T) {
	params := Params{Height: 5, Width: 7, Walls: 10, Depth: 6}
	p1, err := New(params, 99, solver.Options{})
	require.NoError(t, err)
	p2, err := New(params, 99, solver.Options{})
	require.NoError(t, err)

	assert.NotEqual(t, p1.ID, p2.ID)
	assert.Equal(t, p1.Board.Walls, p2.Board.Walls)
	assert.Equal(t, p1.Board.Robots, p2.Board.Robots)
	assert.Equal(t, p1.Result, p2.Result)
	assert.Equal(t, p1.Answer(), p2.Answer())
}

func TestVerify(t *testing.T) {
	p, err := New(Params{Height: 5, Width: 7, Walls: 10, Depth: 4}, 3, solver.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, p.Result.Moves)

	cmd, err := notation.Parse(p.Answer())
	require.NoError(t, err)
	v := p.Verify(cmd)
	assert.True(t, v.Cleared)
	assert.True(t, v.Shortest)
	assert.Equal(t, len(p.Result.Moves), v.Moves)
	assert.Len(t, v.Trace, len(p.Result.Moves))

	// too long without "!"
	long := notation.Command{Moves: append(append([]packed.Move{}, p.Result.Moves...), p.Result.Moves...)}
	v = p.Verify(long)
	assert.False(t, v.Cleared)
	assert.NotEmpty(t, v.Reason)
	assert.Empty(t, v.Trace)

	// a single move of another robot does not reach the goal
	other := (p.Result.Goal.Robot + 1) % packed.NumRobot
	v = p.Verify(notation.Command{Moves: []packed.Move{{Robot: other, Dir: coord.Down}}})
	assert.False(t, v.Cleared)
	assert.Equal(t, "goal not reached", v.Reason)
	require.Len(t, v.Trace, 1)
	assert.Contains(t, v.Trace[0], notation.RobotName(other)+" down ")
}

func TestView(t *testing.T) {
	p, err := New(Params{Height: 3, Width: 5, Walls: 3, Depth: 3}, 1, solver.Options{})
	require.NoError(t, err)

	data, err := json.Marshal(p.View())
	require.NoError(t, err)

	var v View
	require.NoError(t, json.Unmarshal(data, &v))
	assert.Equal(t, p.ID.String(), v.ID)
	assert.Equal(t, 3, v.Height)
	assert.Equal(t, 5, v.Width)
	assert.Len(t, v.Robots, packed.NumRobot)
	assert.Len(t, v.Walls, len(p.Board.Walls))
	assert.Len(t, v.Moves, len(p.Result.Moves))
	assert.Equal(t, p.Answer(), v.Answer)
	assert.Equal(t, notation.RobotName(p.Result.Goal.Robot), v.Goal.Name)
}
