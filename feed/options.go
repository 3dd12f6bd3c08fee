package feed

import (
	"io"
	"log"
)

// ServerOptions is feed server options
type ServerOptions struct {
	addr   string
	source io.Reader
	batch  int
	limit  int

	errorLog *log.Logger
}

// ServerOption is option setter for feed server
type ServerOption func(*ServerOptions)

// default server options
var (
	DefaultListenAddress = "ws://0.0.0.0:8080/stream"
	DefaultBatch         = 16
	DefaultLimit         = 4 << 10
)

func newServerOptions(opts ...ServerOption) *ServerOptions {
	opt := &ServerOptions{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.batch <= 0 {
		opt.batch = DefaultBatch
	}
	if opt.limit <= 0 {
		opt.limit = DefaultLimit
	}
	if opt.errorLog == nil {
		opt.errorLog = log.Default()
	}

	return opt
}

// WithListenAddress sets server listen address, e.g. ws://0.0.0.0:8080/stream
func WithListenAddress(addr string) ServerOption {
	return func(opts *ServerOptions) {
		opts.addr = addr
	}
}

// WithSource sets the byte stream published to clients, normally an
// *mt19937.Generator. It is shared by all connections.
func WithSource(r io.Reader) ServerOption {
	return func(opts *ServerOptions) {
		opts.source = r
	}
}

// WithBatch sets the number of words per message
func WithBatch(n int) ServerOption {
	return func(opts *ServerOptions) {
		opts.batch = n
	}
}

// WithLimit sets the number of words sent to one connection
func WithLimit(n int) ServerOption {
	return func(opts *ServerOptions) {
		opts.limit = n
	}
}

// WithErrorLogger sets the logger for connection errors
func WithErrorLogger(l *log.Logger) ServerOption {
	return func(opts *ServerOptions) {
		opts.errorLog = l
	}
}
