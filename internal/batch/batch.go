// Package batch generates puzzles for many seeds in parallel.
//
// Every seed gets its own board and search, so searches never share state.
package batch

import (
	"context"
	"errors"
	"runtime"

	"github.com/go-ricrob/hyperrobot/internal/puzzle"
	"github.com/go-ricrob/hyperrobot/internal/solver"
	"github.com/go-ricrob/hyperrobot/internal/spinlock"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Log is the package logger.
var Log = logrus.New()

var ErrNoSeeds = errors.New("no seeds")

// Seeds returns n consecutive seeds starting at base. It returns no seeds
// for n <= 0.
func Seeds(base uint64, n int) []uint64 {
	seeds := make([]uint64, max(n, 0))
	for i := range seeds {
		seeds[i] = base + uint64(i)
	}
	return seeds
}

// better reports whether a has a longer answer than b. Ties go to the lower seed.
func better(a, b *puzzle.Puzzle) bool {
	la, lb := len(a.Result.Moves), len(b.Result.Moves)
	if la != lb {
		return la > lb
	}
	return a.Seed < b.Seed
}

// Deepest generates a puzzle for every seed on at most workers goroutines
// (runtime.NumCPU() if workers <= 0) and returns the one with the longest
// answer. The first error cancels the remaining seeds.
func Deepest(ctx context.Context, p puzzle.Params, seeds []uint64, workers int, opts solver.Options) (*puzzle.Puzzle, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu spinlock.Mutex
	var best *puzzle.Puzzle
	for _, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pz, err := puzzle.New(p, seed, opts)
			if err != nil {
				return err
			}
			Log.WithFields(logrus.Fields{
				"seed":   seed,
				"moves":  len(pz.Result.Moves),
				"states": pz.Result.NumStates,
			}).Debug("puzzle generated")

			mu.Lock()
			if best == nil || better(pz, best) {
				best = pz
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return best, nil
}
