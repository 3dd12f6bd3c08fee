package crack

import (
	"github.com/pkg/errors"
	"github.com/tutils/twister/mt19937"
)

var (
	// ErrShortStream is returned when fewer than mt19937.N outputs are given.
	ErrShortStream = errors.New("crack: too few outputs to clone")
	// ErrMismatch is returned when observed outputs contradict the clone,
	// e.g. a gap in the stream or a different generator.
	ErrMismatch = errors.New("crack: outputs are not a consecutive MT19937 stream")
)

// CloneStream clones the generator behind outputs from its first
// mt19937.N words and checks the clone against every word after them. The
// returned generator continues right after the last observed output.
func CloneStream(outputs []uint32) (*mt19937.Generator, error) {
	if len(outputs) < mt19937.N {
		return nil, errors.Wrapf(ErrShortStream, "got %d outputs, need at least %d", len(outputs), mt19937.N)
	}
	g, err := mt19937.Clone(outputs[:mt19937.N])
	if err != nil {
		return nil, err
	}
	for i, want := range outputs[mt19937.N:] {
		if got := g.ExtractNumber(); got != want {
			return nil, errors.Wrapf(ErrMismatch, "output %d: predicted %#08x, observed %#08x", mt19937.N+i, got, want)
		}
	}
	return g, nil
}

// Predict returns the next n outputs of g.
func Predict(g *mt19937.Generator, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = g.ExtractNumber()
	}
	return out
}
