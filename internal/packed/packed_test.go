package packed

import (
	"testing"

	"github.com/go-ricrob/hyperrobot/internal/coord"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	s := State{coord.P(0, 0), coord.P(1, 2), coord.P(126, 3), coord.P(4, 126)}
	k := s.Pack()

	assert.Equal(t, Key(0x047e_7e03_0102_0000), k)
	assert.Equal(t, s, k.Unpack())

	other := s.With(0, coord.P(0, 1))
	assert.NotEqual(t, k, other.Pack())
	assert.Equal(t, coord.P(0, 1), other.Pack().Unpack()[0])
	assert.Equal(t, coord.P(0, 0), s[0], "With must not modify the receiver")
}

func TestPrev(t *testing.T) {
	tests := []struct {
		move Move
		from coord.Pos
	}{
		{Move{0, coord.Down}, coord.P(0, 0)},
		{Move{3, coord.Left}, coord.P(126, 126)},
		{Move{2, coord.Up}, coord.P(5, 7)},
	}
	for _, test := range tests {
		p := NewPrev(test.move, test.from)
		assert.NotEqual(t, Root, p)
		m, from := p.Unpack()
		assert.Equal(t, test.move, m)
		assert.Equal(t, test.from, from)
	}

	assert.Equal(t, Prev(3<<18|1<<16|5<<8|7), NewPrev(Move{3, coord.Right}, coord.P(5, 7)))
}
