// Package twister holds helpers shared by the twister commands.
package twister

import (
	"io"
	"sync"
)

// SyncReader is concurrency safe reader. Every Read is served by one
// uninterrupted call of the underlying reader, so a Read of a whole number
// of words from a generator gets consecutive outputs.
type SyncReader struct {
	r  io.Reader
	mu sync.Mutex
}

func (r *SyncReader) Read(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return io.ReadFull(r.r, p)
}

// NewSyncReader create a new SyncReader
func NewSyncReader(r io.Reader) io.Reader {
	return &SyncReader{r: r}
}
