package mt19937

// Temper maps a raw state word to an output word.
func Temper(y uint32) uint32 {
	y ^= (y >> uShift) & uMask
	y ^= (y << sShift) & sMask
	y ^= (y << tShift) & tMask
	y ^= y >> lShift
	return y
}

// Untemper returns the raw state word that Temper maps to y.
//
// The steps of Temper are undone in reverse order.
func Untemper(y uint32) uint32 {
	y = unshiftRight(y, lShift, 0xffffffff)
	y = unshiftLeft(y, tShift, tMask)
	y = unshiftLeft(y, sShift, sMask)
	y = unshiftRight(y, uShift, uMask)
	return y
}

// unshiftRight inverts y ^= (y >> shift) & mask.
//
// The top shift bits are never touched by the step. Windows of shift bits
// are fixed from the most significant end down, each one using the window
// above it, which is already restored. The order must not be reversed.
func unshiftRight(y uint32, shift uint, mask uint32) uint32 {
	window := uint32(1)<<shift - 1
	for lo := int(31/shift) * int(shift); lo >= 0; lo -= int(shift) {
		y ^= (y >> shift) & mask & (window << uint(lo))
	}
	return y
}

// unshiftLeft inverts y ^= (y << shift) & mask.
//
// Mirror of unshiftRight: the bottom shift bits are untouched, windows are
// fixed from the least significant end up.
func unshiftLeft(y uint32, shift uint, mask uint32) uint32 {
	window := uint32(1)<<shift - 1
	for lo := uint(0); lo < 32; lo += shift {
		y ^= (y << shift) & mask & (window << lo)
	}
	return y
}
