// Package mt19937 implements the 32-bit Mersenne Twister (MT19937) PRNG
// together with the inverse of its output tempering.
//
// MT19937 is not cryptographically secure. Any N consecutive outputs
// determine every future output, see Clone.
package mt19937

import "fmt"

const (
	// N is the number of words in the state array.
	N = 624
	// M is the middle word offset used by the twist.
	M = 397

	matrixA    = 0x9908b0df
	multiplier = 0x6c078965

	// tempering shift sizes and xor masks
	uShift = 11
	uMask  = 0xffffffff
	sShift = 7
	sMask  = 0x9d2c5680
	tShift = 15
	tMask  = 0xefc60000
	lShift = 18

	lowerMask uint32 = 1<<31 - 1
	upperMask uint32 = ^lowerMask
)

// Generator is an MT19937 PRNG. Create one with New or FromState. A
// Generator is not safe for concurrent use; wrap it with
// twister.NewSyncReader to share its byte stream.
type Generator struct {
	state [N]uint32
	index int

	// pending bytes of the last word handed out by Read or a ByteIterator
	buf  [wordSize]byte
	nbuf int
}

// New returns a Generator seeded with seed.
func New(seed uint32) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// Seed replaces the whole state with the expansion of seed. The next
// extraction twists.
func (g *Generator) Seed(seed uint32) {
	g.state[0] = seed
	for i := 1; i < N; i++ {
		prev := g.state[i-1]
		g.state[i] = multiplier*(prev^(prev>>30)) + uint32(i)
	}
	g.index = N
	g.nbuf = 0
}

// ExtractNumber returns the next tempered output.
func (g *Generator) ExtractNumber() uint32 {
	switch {
	case g.index == N:
		g.twist()
	case g.index > N:
		panic(fmt.Sprintf("mt19937: index %d overran state size %d", g.index, N))
	}

	y := Temper(g.state[g.index])
	g.index++
	return y
}

// Uint32 is ExtractNumber.
func (g *Generator) Uint32() uint32 {
	return g.ExtractNumber()
}

// Copy returns an independent copy of g positioned at the same point of
// the stream.
func (g *Generator) Copy() *Generator {
	cp := *g
	return &cp
}
