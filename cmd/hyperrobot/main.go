// Command hyperrobot generates a puzzle and prints the board with its answer.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-ricrob/hyperrobot/internal/batch"
	"github.com/go-ricrob/hyperrobot/internal/board"
	"github.com/go-ricrob/hyperrobot/internal/config"
	"github.com/go-ricrob/hyperrobot/internal/notation"
	"github.com/go-ricrob/hyperrobot/internal/puzzle"
	"github.com/go-ricrob/hyperrobot/internal/solver"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

type options struct {
	preset   string
	height   int
	width    int
	walls    int
	depth    int
	seed     uint64
	tries    int
	workers  int
	json     bool
	pathLast bool
	verify   string
	verbose  bool
}

func parseFlags(args []string, cfg *config.Config) (*options, puzzle.Params, error) {
	o := &options{}
	fs := flag.NewFlagSet("hyperrobot", flag.ContinueOnError)
	fs.StringVar(&o.preset, "preset", cfg.Preset, "board preset: "+fmt.Sprint(puzzle.PresetNames()))
	fs.IntVar(&o.height, "h", 0, "board height (overrides preset)")
	fs.IntVar(&o.width, "w", 0, "board width (overrides preset)")
	fs.IntVar(&o.walls, "walls", 0, "wall budget (overrides preset)")
	fs.IntVar(&o.depth, "depth", cfg.Depth, "target search depth")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed")
	fs.IntVar(&o.tries, "n", cfg.Tries, "number of seeds to try, the deepest puzzle wins")
	fs.IntVar(&o.workers, "workers", cfg.Workers, "parallel searches (0: one per CPU)")
	fs.BoolVar(&o.json, "json", false, "print the puzzle as json")
	fs.BoolVar(&o.pathLast, "path-last", false, "reconstruct the answer from the last expanded state")
	fs.StringVar(&o.verify, "verify", "", "check a command against the puzzle")
	fs.BoolVar(&o.verbose, "v", cfg.Development, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, puzzle.Params{}, err
	}

	if o.tries < 1 {
		return nil, puzzle.Params{}, fmt.Errorf("-n must be positive, got %d", o.tries)
	}

	p, err := puzzle.Preset(o.preset)
	if err != nil {
		return nil, p, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "h":
			p.Height = o.height
		case "w":
			p.Width = o.width
		case "walls":
			p.Walls = o.walls
		}
	})
	p.Depth = puzzle.ClampDepth(o.depth)
	return o, p, p.Validate()
}

func setupLogging(verbose bool) {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	formatter := &logrus.TextFormatter{DisableTimestamp: true}
	for _, l := range []*logrus.Logger{log, board.Log, solver.Log, batch.Log} {
		l.SetOutput(os.Stderr)
		l.SetLevel(logLevel)
		l.SetFormatter(formatter)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	o, p, err := parseFlags(args, cfg)
	if err != nil {
		return err
	}
	setupLogging(o.verbose)

	var opts solver.Options
	if o.pathLast {
		opts.PathFrom = solver.PathFromLast
	}
	pz, err := batch.Deepest(context.Background(), p, batch.Seeds(o.seed, o.tries), o.workers, opts)
	if err != nil {
		return err
	}

	if o.verify != "" {
		cmd, err := notation.Parse(o.verify)
		if err != nil {
			return err
		}
		v := pz.Verify(cmd)
		log.WithFields(logrus.Fields{
			"cleared":  v.Cleared,
			"shortest": v.Shortest,
			"moves":    v.Moves,
			"answer":   v.Answer,
		}).Info("verified command")
		if o.json {
			return json.NewEncoder(stdout).Encode(v)
		}
		for _, line := range v.Trace {
			fmt.Fprintln(stdout, line)
		}
		if !v.Cleared {
			_, err = fmt.Fprintf(stdout, "not cleared: %s\n", v.Reason)
			return err
		}
		_, err = fmt.Fprintf(stdout, "cleared in %d moves (answer %d)\n", v.Moves, v.Answer)
		return err
	}

	if o.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pz.View())
	}

	goal := pz.Result.Goal
	fmt.Fprintf(stdout, "seed %d\n", pz.Seed)
	fmt.Fprint(stdout, pz.Board.String())
	fmt.Fprintf(stdout, "goal: %s to %s\n", notation.RobotName(goal.Robot), goal.Pos)
	_, err = fmt.Fprintf(stdout, "answer (%d moves): %s\n  %s\n",
		len(pz.Result.Moves), pz.Answer(), notation.Describe(pz.Result.Moves))
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
