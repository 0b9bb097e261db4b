// Package partmap provide a partitioned map.
//
// The map stores for every visited state its predecessor record and keeps
// the frontier of the current (source) and the next (target) search level.
// Partitions are pre-sized so that a search over a large state space does not
// rehash one huge map. A Map is owned by a single search.
package partmap

import (
	"math/bits"

	"github.com/go-ricrob/hyperrobot/internal/packed"
)

type part struct {
	m map[packed.Key]packed.Prev // to/from map
}

type Map struct {
	shift          uint // 64 - log2(number of partitions)
	parts          []part
	source, target []packed.Key
}

// New returns a map holding startState as root. numPart is rounded up to a
// power of two, capacity is the expected number of states.
func New(startState packed.Key, numPart, capacity int) *Map {
	if numPart < 1 {
		numPart = 1
	}
	n := bits.Len(uint(numPart - 1))
	pm := &Map{
		shift: uint(64 - n),
		parts: make([]part, 1<<n),
	}
	for i := range pm.parts {
		pm.parts[i] = part{m: make(map[packed.Key]packed.Prev, capacity>>n)}
	}
	// store start state
	pm.part(startState).m[startState] = packed.Root
	pm.source = append(pm.source, startState)
	return pm
}

func (pm *Map) part(k packed.Key) *part {
	return &pm.parts[k.Hash()>>pm.shift]
}

// Load returns the predecessor record of k.
func (pm *Map) Load(k packed.Key) (packed.Prev, bool) {
	v, ok := pm.part(k).m[k]
	return v, ok
}

// StoreTarget stores k with predecessor v and appends k to the next level
// if k was not visited before.
func (pm *Map) StoreTarget(k packed.Key, v packed.Prev) bool {
	part := pm.part(k)
	if _, ok := part.m[k]; ok {
		return false
	}
	part.m[k] = v
	pm.target = append(pm.target, k)
	return true
}

// Size returns the number of visited states.
func (pm *Map) Size() int {
	size := 0
	for _, part := range pm.parts {
		size += len(part.m)
	}
	return size
}

func (pm *Map) NumPart() int { return len(pm.parts) }

// Source returns the states of the current level in discovery order.
func (pm *Map) Source() []packed.Key { return pm.source }

// Swap makes the next level the current one.
func (pm *Map) Swap() {
	pm.source, pm.target = pm.target, pm.source[:0]
}
