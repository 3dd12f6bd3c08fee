package mt19937

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func observe(g *Generator, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = g.ExtractNumber()
	}
	return out
}

func TestClone(t *testing.T) {
	cases := []struct {
		name string
		skip int
	}{
		{"after seed", 0},
		{"second generation", N},
		{"fifth generation", 4 * N},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := New(33280939)
			observe(g, c.skip)

			clone, err := Clone(observe(g, N))
			require.NoError(t, err)
			for i := 0; i < 100; i++ {
				require.Equalf(t, g.ExtractNumber(), clone.ExtractNumber(), "value #%d", i)
			}
		})
	}
}

func TestClone_longRun(t *testing.T) {
	g := New(5489)
	clone, err := Clone(observe(g, N))
	require.NoError(t, err)
	for i := 0; i < 5*N; i++ {
		require.Equal(t, g.ExtractNumber(), clone.ExtractNumber())
	}
}

func TestClone_anyOffset(t *testing.T) {
	for _, skip := range []int{1, 5, 300, N - 1, N + 17} {
		g := New(33280939)
		observe(g, skip)

		clone, err := Clone(observe(g, N))
		require.NoError(t, err)
		assert.Equalf(t, observe(g, 2*N), observe(clone, 2*N), "skip %d", skip)
	}
}

func TestFromState(t *testing.T) {
	g := New(544141)
	words := make([]uint32, N)
	for i := range words {
		words[i] = Untemper(g.ExtractNumber())
	}

	clone, err := FromState(words)
	require.NoError(t, err)
	assert.Equal(t, N, clone.index)

	// the clone owns its array
	words[0] ^= 0xffffffff
	assert.Equal(t, observe(g, 10), observe(clone, 10))
}

func TestFromState_invalidLength(t *testing.T) {
	for _, n := range []int{0, 1, N - 1, N + 1, 2 * N} {
		g, err := FromState(make([]uint32, n))
		assert.Nil(t, g)
		assert.ErrorIsf(t, err, ErrInvalidStateLength, "length %d", n)
	}

	_, err := Clone(make([]uint32, N-1))
	assert.ErrorIs(t, err, ErrInvalidStateLength)
}
