package crack

import (
	"math"
)

// RecoverUint16Seed finds the 16-bit key ciphertext was encrypted under,
// given that the plaintext ends with knownSuffix. Any plaintext bytes before
// the suffix may be unknown.
func RecoverUint16Seed(ciphertext, knownSuffix []byte, opts ...SearchOption) (key uint16, found bool) {
	if len(knownSuffix) > len(ciphertext) {
		return 0, false
	}
	opt := newSearchOptions(opts...)
	seed, found := Search(0, math.MaxUint16, keystreamMatcher(ciphertext, opt, hasSuffix(knownSuffix)), opts...)
	return uint16(seed), found
}
