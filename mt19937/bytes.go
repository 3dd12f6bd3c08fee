package mt19937

import (
	"encoding/binary"
	"io"
)

var _ io.Reader = (*Generator)(nil)

const wordSize = 4

// ByteIterator yields the big-endian bytes of successive outputs of a
// Generator. It never runs out. It shares the pending word of the generator
// with Read, so reseeding the generator restarts it.
type ByteIterator struct {
	g *Generator
}

// Bytes returns a ByteIterator drawing on g.
func (g *Generator) Bytes() *ByteIterator {
	return &ByteIterator{g: g}
}

// Next returns the next keystream byte.
func (it *ByteIterator) Next() byte {
	return it.g.nextByte()
}

func (g *Generator) nextByte() byte {
	if g.nbuf == 0 {
		binary.BigEndian.PutUint32(g.buf[:], g.ExtractNumber())
		g.nbuf = wordSize
	}
	v := g.buf[wordSize-g.nbuf]
	g.nbuf--
	return v
}

// Read fills p with the same big-endian byte stream as ByteIterator. Bytes
// of a word left over from a short read are returned first by the next call.
// Read never fails.
func (g *Generator) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if g.nbuf == 0 {
			binary.BigEndian.PutUint32(g.buf[:], g.ExtractNumber())
			g.nbuf = wordSize
		}
		k := copy(p[n:], g.buf[wordSize-g.nbuf:])
		g.nbuf -= k
		n += k
	}
	return n, nil
}
