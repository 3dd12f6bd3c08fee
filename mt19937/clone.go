package mt19937

import "github.com/pkg/errors"

// ErrInvalidStateLength is returned when a state does not hold exactly N words.
var ErrInvalidStateLength = errors.New("mt19937: invalid state length")

// FromState returns a Generator owning a copy of words. The next extraction
// twists, as it does for the generator the words were captured from.
func FromState(words []uint32) (*Generator, error) {
	if len(words) != N {
		return nil, errors.Wrapf(ErrInvalidStateLength, "got %d words, want %d", len(words), N)
	}
	g := &Generator{index: N}
	copy(g.state[:], words)
	return g, nil
}

// Clone rebuilds a Generator from N consecutive outputs of another one. The
// returned generator continues the stream right after the last output.
//
// The raw words obey x[k+N] = x[k+M] ^ twist(x[k], x[k+1]) for every k, and
// the forward in-place pass evaluates exactly that recurrence, so the window
// may start at any offset, not only at a twist boundary. Gaps in outputs
// are not detected; see crack.CloneStream.
func Clone(outputs []uint32) (*Generator, error) {
	if len(outputs) != N {
		return nil, errors.Wrapf(ErrInvalidStateLength, "got %d outputs, want %d", len(outputs), N)
	}
	words := make([]uint32, N)
	for i, y := range outputs {
		words[i] = Untemper(y)
	}
	return FromState(words)
}
