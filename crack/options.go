package crack

import (
	"runtime"

	"github.com/tutils/twister/counter"
	"github.com/tutils/twister/crypt"
)

// SearchOptions is seed search options
type SearchOptions struct {
	workers        int
	chunkSize      uint64
	counter        counter.Counter
	keystreamNewer crypt.KeystreamNewer
}

// SearchOption is option setter for seed search
type SearchOption func(*SearchOptions)

// default search options
var (
	DefaultChunkSize uint64 = 1 << 10
)

func newSearchOptions(opts ...SearchOption) *SearchOptions {
	opt := &SearchOptions{}
	for _, o := range opts {
		o(opt)
	}

	if opt.workers <= 0 {
		opt.workers = runtime.NumCPU()
	}
	if opt.chunkSize == 0 {
		opt.chunkSize = DefaultChunkSize
	}

	return opt
}

// WithWorkers sets the number of goroutines testing candidates
func WithWorkers(n int) SearchOption {
	return func(opts *SearchOptions) {
		opts.workers = n
	}
}

// WithChunkSize sets how many consecutive candidates a worker takes at once
func WithChunkSize(n uint64) SearchOption {
	return func(opts *SearchOptions) {
		opts.chunkSize = n
	}
}

// WithCounter counts tested candidates into c
func WithCounter(c counter.Counter) SearchOption {
	return func(opts *SearchOptions) {
		opts.counter = c
	}
}

// WithKeystreamNewer regenerates candidate keystreams with newer instead of
// MT19937
func WithKeystreamNewer(newer crypt.KeystreamNewer) SearchOption {
	return func(opts *SearchOptions) {
		opts.keystreamNewer = newer
	}
}
