package feed

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_dataWithEOF(t *testing.T) {
	// the last chunk of a message arrives together with io.EOF
	r := &reader{r: iotest.DataErrReader(strings.NewReader("abcd"))}
	p := make([]byte, 8)
	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(p[:n]))
}
