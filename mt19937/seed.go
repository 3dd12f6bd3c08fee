package mt19937

import "time"

// Uint16Seed widens a 16-bit key to a seed with the high 16 bits zero.
func Uint16Seed(key uint16) uint32 {
	return uint32(key)
}

// Uint32Seed uses a 32-bit key as the seed unchanged.
func Uint32Seed(key uint32) uint32 {
	return key
}

// TimeSeed returns the Unix time of t in seconds, truncated to 32 bits.
func TimeSeed(t time.Time) uint32 {
	return uint32(t.Unix())
}

// NewFromUint16 returns a Generator seeded with a 16-bit key.
func NewFromUint16(key uint16) *Generator {
	return New(Uint16Seed(key))
}

// NewFromTime returns a Generator seeded with the Unix time of t.
func NewFromTime(t time.Time) *Generator {
	return New(TimeSeed(t))
}
