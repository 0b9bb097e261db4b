package batch

import (
	"context"
	"testing"

	"github.com/go-ricrob/hyperrobot/internal/puzzle"
	"github.com/go-ricrob/hyperrobot/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeds(t *testing.T) {
	assert.Equal(t, []uint64{5, 6, 7}, Seeds(5, 3))
	assert.Empty(t, Seeds(5, 0))
	assert.Empty(t, Seeds(5, -1))
}

func TestDeepest(t *testing.T) {
	params := puzzle.Params{Height: 3, Width: 5, Walls: 3, Depth: 8}
	seeds := Seeds(1, 6)

	best, err := Deepest(context.Background(), params, seeds, 3, solver.Options{})
	require.NoError(t, err)

	for _, seed := range seeds {
		p, err := puzzle.New(params, seed, solver.Options{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(best.Result.Moves), len(p.Result.Moves))
		if len(p.Result.Moves) == len(best.Result.Moves) {
			assert.LessOrEqual(t, best.Seed, seed)
		}
	}

	again, err := Deepest(context.Background(), params, seeds, 1, solver.Options{})
	require.NoError(t, err)
	assert.Equal(t, best.Seed, again.Seed)
	assert.Equal(t, best.Result, again.Result)
}

func TestDeepestErrors(t *testing.T) {
	_, err := Deepest(context.Background(), puzzle.Params{Height: 3, Width: 5}, nil, 1, solver.Options{})
	assert.ErrorIs(t, err, ErrNoSeeds)
	_, err = Deepest(context.Background(), puzzle.Params{Height: 3, Width: 5}, Seeds(0, -3), 1, solver.Options{})
	assert.ErrorIs(t, err, ErrNoSeeds)

	_, err = Deepest(context.Background(), puzzle.Params{Height: 1, Width: 1}, Seeds(0, 2), 1, solver.Options{})
	assert.ErrorIs(t, err, puzzle.ErrInvalidParams)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Deepest(ctx, puzzle.Params{Height: 3, Width: 5, Walls: 3, Depth: 2}, Seeds(0, 4), 2, solver.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
