package crack

import (
	"bytes"
	"io"

	"github.com/tutils/twister/mt19937"
)

// keystreamMatcher returns a MatcherNewer accepting seeds whose first
// len(ciphertext) keystream bytes turn ciphertext into something ok likes.
func keystreamMatcher(ciphertext []byte, opt *SearchOptions, ok func(plaintext []byte) bool) MatcherNewer {
	return func() Matcher {
		g := mt19937.New(0)
		buf := make([]byte, len(ciphertext))
		return func(seed uint32) bool {
			var ks io.Reader = g
			if opt.keystreamNewer != nil {
				ks = opt.keystreamNewer(seed)
			} else {
				g.Seed(seed)
			}
			if _, err := io.ReadFull(ks, buf); err != nil {
				return false
			}
			for i := range buf {
				buf[i] ^= ciphertext[i]
			}
			return ok(buf)
		}
	}
}

func hasSuffix(suffix []byte) func([]byte) bool {
	return func(plaintext []byte) bool {
		return bytes.HasSuffix(plaintext, suffix)
	}
}
