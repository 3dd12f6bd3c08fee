package feed

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutils/twister/crack"
	"github.com/tutils/twister/mt19937"
)

func newTestServer(t *testing.T, opts ...ServerOption) (*httptest.Server, string) {
	logs := &bytes.Buffer{}
	opts = append([]ServerOption{WithErrorLogger(log.New(logs, "", 0))}, opts...)
	s, err := NewServer(opts...)
	require.NoError(t, err)

	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return ts, "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestFeed_clone(t *testing.T) {
	g := mt19937.New(816559)
	crack.Predict(g, 777)

	_, addr := newTestServer(t, WithSource(g.Copy()), WithBatch(7), WithLimit(2*mt19937.N))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := Dial(ctx, addr)
	require.NoError(t, err)
	defer c.Close()

	observed, err := c.ReadOutputs(mt19937.N + 100)
	require.NoError(t, err)
	assert.Equal(t, crack.Predict(g, mt19937.N+100), observed)

	clone, err := crack.CloneStream(observed)
	require.NoError(t, err)
	next, err := c.ReadOutputs(mt19937.N - 100)
	require.NoError(t, err)
	assert.Equal(t, crack.Predict(clone, mt19937.N-100), next)

	// limit reached, server closed the stream
	_, err = c.ReadOutputs(1)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadWords(t *testing.T) {
	words, err := ReadWords(bytes.NewReader([]byte{0, 0, 0, 1, 0xff, 0xff, 0xff, 0xff}), 2)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 0xffffffff}, words)

	_, err = ReadWords(bytes.NewReader([]byte{0, 0, 0}), 1)
	assert.Error(t, err)
}

func TestNewServer_badAddress(t *testing.T) {
	_, err := NewServer(WithListenAddress("ws://[::1"))
	assert.Error(t, err)
}
