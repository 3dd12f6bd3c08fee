package feed

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

var eofReader = bytes.NewReader(nil)

// reader concatenates the binary messages of a connection
type reader struct {
	conn *websocket.Conn
	r    io.Reader
}

func (r *reader) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)
	if n > 0 && err == io.EOF {
		return n, nil
	}
	if err == io.EOF {
		for {
			var typ int
			typ, r.r, err = r.conn.NextReader()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					return 0, io.EOF
				}
				return 0, err
			}
			if typ == websocket.BinaryMessage {
				return r.r.Read(p)
			}
			if _, err := io.ReadAll(r.r); err != nil {
				return 0, err
			}
		}
	}
	return n, err
}

// Client reads words from a feed server
type Client struct {
	conn *websocket.Conn
	r    io.Reader
}

// Dial connects to a feed server, e.g. ws://127.0.0.1:8080/stream
func Dial(ctx context.Context, addr string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, addr, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "feed: dial %s", addr)
	}
	return &Client{
		conn: conn,
		r:    &reader{conn: conn, r: eofReader},
	}, nil
}

// Read implements io.Reader over the concatenated feed bytes
func (c *Client) Read(p []byte) (int, error) {
	return c.r.Read(p)
}

// ReadOutputs reads the next n words
func (c *Client) ReadOutputs(n int) ([]uint32, error) {
	return ReadWords(c, n)
}

// Close closes the connection
func (c *Client) Close() error {
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}

// ReadWords reads n big-endian 32-bit words from r
func ReadWords(r io.Reader, n int) ([]uint32, error) {
	buf := make([]byte, n*wordSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrapf(err, "feed: read %d words", n)
	}
	words := make([]uint32, n)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(buf[i*wordSize:])
	}
	return words, nil
}
