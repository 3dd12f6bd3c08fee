package crack

import (
	"time"

	"github.com/pkg/errors"
	"github.com/tutils/twister/mt19937"
)

// ErrInvalidRange is returned when a capture window ends before it starts.
var ErrInvalidRange = errors.New("crack: invalid time window")

// SearchWindow runs Search over the time seeds of [before, after].
func SearchWindow(before, after time.Time, newer MatcherNewer, opts ...SearchOption) (seed uint32, found bool, err error) {
	if after.Before(before) {
		return 0, false, errors.Wrapf(ErrInvalidRange, "%s is before %s", after.Format(time.RFC3339), before.Format(time.RFC3339))
	}
	lo, hi := mt19937.TimeSeed(before), mt19937.TimeSeed(after)
	if lo > hi {
		// the window crosses a wrap of the 32-bit seconds counter
		if seed, found = Search(lo, ^uint32(0), newer, opts...); found {
			return seed, true, nil
		}
		lo = 0
	}
	seed, found = Search(lo, hi, newer, opts...)
	return seed, found, nil
}

// RecoverTimeSeed finds the Unix-time seed in [before, after] under which
// token decrypts to a plaintext ending with marker.
func RecoverTimeSeed(token, marker []byte, before, after time.Time, opts ...SearchOption) (seed uint32, found bool, err error) {
	if len(marker) > len(token) {
		return 0, false, nil
	}
	opt := newSearchOptions(opts...)
	return SearchWindow(before, after, keystreamMatcher(token, opt, hasSuffix(marker)), opts...)
}

// IsTimeSeeded reports whether token was produced by a generator seeded
// with a time in [now-tolerance, now] and decrypts to something ending with
// marker.
func IsTimeSeeded(token, marker []byte, now time.Time, tolerance time.Duration, opts ...SearchOption) bool {
	_, found, err := RecoverTimeSeed(token, marker, now.Add(-tolerance), now, opts...)
	return err == nil && found
}
