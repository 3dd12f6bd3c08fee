// Package crack recovers MT19937 seeds and states from observed output.
package crack

import (
	"sync"
	"sync/atomic"
)

// Matcher reports whether a candidate seed reproduces the observation.
type Matcher func(seed uint32) bool

// MatcherNewer creates one Matcher per worker, so a matcher may keep its own
// generator and buffers between candidates.
type MatcherNewer func() Matcher

// Search tests every candidate in [lo, hi] and returns the lowest one
// accepted by a matcher. The result does not depend on the number of
// workers. found is false when no candidate matches.
func Search(lo, hi uint32, newer MatcherNewer, opts ...SearchOption) (seed uint32, found bool) {
	if lo > hi {
		return 0, false
	}
	opt := newSearchOptions(opts...)

	first, last := uint64(lo), uint64(hi)
	chunks := (last-first)/opt.chunkSize + 1

	var (
		next atomic.Uint64
		// best is one past the lowest match so far, 0 while nothing matched
		best atomic.Uint64
		wg   sync.WaitGroup
	)
	lower := func(v uint64) {
		for {
			cur := best.Load()
			if cur != 0 && cur <= v+1 {
				return
			}
			if best.CompareAndSwap(cur, v+1) {
				return
			}
		}
	}

	workers := opt.workers
	if uint64(workers) > chunks {
		workers = int(chunks)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			match := newer()
			for {
				k := next.Add(1) - 1
				if k >= chunks {
					return
				}
				start := first + k*opt.chunkSize
				// chunks are handed out in ascending order, so once one starts
				// past a match every later one does too
				if b := best.Load(); b != 0 && start > b-1 {
					return
				}
				end := start + opt.chunkSize - 1
				if end > last {
					end = last
				}

				var tested int64
				for cand := start; cand <= end; cand++ {
					tested++
					if match(uint32(cand)) {
						lower(cand)
						break
					}
				}
				if opt.counter != nil {
					opt.counter.Add(tested)
				}
			}
		}()
	}
	wg.Wait()

	if b := best.Load(); b != 0 {
		return uint32(b - 1), true
	}
	return 0, false
}
