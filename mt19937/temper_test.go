package mt19937

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkTemper(b *testing.B) {
	var y uint32
	for i := 0; i < b.N; i++ {
		y = Temper(y + uint32(i))
	}
}

func BenchmarkUntemper(b *testing.B) {
	var y uint32
	for i := 0; i < b.N; i++ {
		y = Untemper(y + uint32(i))
	}
}

func TestUntemper_edges(t *testing.T) {
	cases := []uint32{0, 1, 0xffffffff, 0x80000000, 0x7fffffff, 0x9d2c5680, 0xefc60000, 0xdeadbeef}
	for i := 0; i < 32; i++ {
		cases = append(cases, 1<<uint(i))
	}
	for _, v := range cases {
		assert.Equalf(t, v, Untemper(Temper(v)), "value %#08x", v)
	}
}

func TestUntemper_roundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(98545715754651))
	for i := 0; i < 100000; i++ {
		v := rnd.Uint32()
		require.Equalf(t, v, Untemper(Temper(v)), "value %#08x", v)
	}
}

func TestUntemper_outputs(t *testing.T) {
	g := New(0)
	g.twist()
	raw := g.state[0]
	y := g.ExtractNumber()
	assert.Equal(t, uint32(2357136044), y)
	assert.Equal(t, raw, Untemper(y))
}

func TestUnshift_steps(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := rnd.Uint32()
		require.Equal(t, v, unshiftRight(v^(v>>uShift)&uMask, uShift, uMask))
		require.Equal(t, v, unshiftLeft(v^(v<<sShift)&sMask, sShift, sMask))
		require.Equal(t, v, unshiftLeft(v^(v<<tShift)&tMask, tShift, tMask))
		require.Equal(t, v, unshiftRight(v^v>>lShift, lShift, 0xffffffff))
	}
}
