package mt19937

import "math/rand"

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a Generator to math/rand.
type Source struct {
	g *Generator
}

// NewSource returns a rand.Source backed by an MT19937 generator.
func NewSource(seed int64) rand.Source {
	return &Source{g: New(uint32(seed))}
}

// Seed implements rand.Source. Only the low 32 bits of seed are used.
func (src *Source) Seed(seed int64) {
	src.g.Seed(uint32(seed))
}

// Uint64 implements rand.Source64 from two consecutive outputs, high word first.
func (src *Source) Uint64() uint64 {
	hi := uint64(src.g.ExtractNumber())
	return hi<<32 | uint64(src.g.ExtractNumber())
}

// Int63 implements rand.Source.
func (src *Source) Int63() int64 {
	return int64(src.Uint64() >> 1)
}
