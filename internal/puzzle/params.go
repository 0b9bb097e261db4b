package puzzle

import (
	"errors"
	"fmt"

	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/go-ricrob/hyperrobot/internal/packed"
	"golang.org/x/exp/slices"
)

// MaxDepth is the largest target depth handed to the search.
const MaxDepth = 1000

var (
	ErrInvalidParams = errors.New("invalid puzzle parameters")
	ErrUnknownPreset = errors.New("unknown preset")
)

// Params describe a puzzle to generate.
type Params struct {
	Height int `json:"h"`
	Width  int `json:"w"`
	Walls  int `json:"walls"`
	Depth  int `json:"depth"`
}

var presets = map[string]Params{
	"baby":  {Height: 3, Width: 5, Walls: 3, Depth: MaxDepth},
	"super": {Height: 5, Width: 7, Walls: 10, Depth: MaxDepth},
	"hyper": {Height: 7, Width: 9, Walls: 15, Depth: MaxDepth},
}

// Preset returns the parameters of a named board size.
func Preset(name string) (Params, error) {
	p, ok := presets[name]
	if !ok {
		return Params{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetNames returns the sorted preset names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ClampDepth limits a requested depth to [1,MaxDepth].
func ClampDepth(depth int) int {
	return max(1, min(depth, MaxDepth))
}

// Validate checks p before any board is generated.
func (p Params) Validate() error {
	switch {
	case p.Height < 1 || p.Width < 1 || p.Height > coord.MaxDim || p.Width > coord.MaxDim:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidParams, p.Height, p.Width)
	case p.Height*p.Width < packed.NumRobot:
		return fmt.Errorf("%w: size %dx%d too small for %d robots", ErrInvalidParams, p.Height, p.Width, packed.NumRobot)
	case p.Walls < 0:
		return fmt.Errorf("%w: negative wall budget %d", ErrInvalidParams, p.Walls)
	case p.Depth < 0:
		return fmt.Errorf("%w: negative depth %d", ErrInvalidParams, p.Depth)
	}
	return nil
}
