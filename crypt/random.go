package crypt

import (
	"encoding/binary"
	"io"
	"math/rand"
)

// 验证接口实现
var _ rand.Source = (*LCGSource)(nil)
var _ rand.Source64 = (*LCGSource)(nil)
var _ io.Reader = (*LCGSource)(nil)

// LCGSource is a 64-bit linear congruential generator. Its byte stream is a
// keystream family unrelated to MT19937.
type LCGSource struct {
	state uint64

	buf  [8]byte
	nbuf int
}

// Numerical Recipes 64-bit LCG parameters
const (
	a = 6364136223846793005
	c = 1442695040888963407
)

func NewLCGSource(seed int64) rand.Source {
	return &LCGSource{state: uint64(seed)}
}

// NewLCGKeystream is a KeystreamNewer backed by LCGSource.
func NewLCGKeystream(seed uint32) io.Reader {
	return &LCGSource{state: uint64(seed)}
}

// Seed implements rand.Source
func (l *LCGSource) Seed(seed int64) {
	l.state = uint64(seed)
	l.nbuf = 0
}

// Uint64 implements rand.Source64
func (l *LCGSource) Uint64() uint64 {
	l.state = l.state*a + c
	return l.state
}

// Int63 implements rand.Source
func (l *LCGSource) Int63() int64 {
	return int64(l.Uint64() >> 1)
}

// Read emits successive states big-endian.
func (l *LCGSource) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if l.nbuf == 0 {
			binary.BigEndian.PutUint64(l.buf[:], l.Uint64())
			l.nbuf = len(l.buf)
		}
		k := copy(p[n:], l.buf[len(l.buf)-l.nbuf:])
		l.nbuf -= k
		n += k
	}
	return n, nil
}
