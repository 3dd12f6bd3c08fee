// Package feed publishes generator outputs over websocket, as a service
// leaking its PRNG output would.
//
// Each binary message carries a batch of big-endian 32-bit words. Words are
// consecutive within a message; connections share one generator, so a
// client sees gaps between messages whenever others are reading too.
package feed

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/tutils/twister"
	"github.com/tutils/twister/mt19937"
)

const wordSize = 4

const writeTimeout = time.Second * 5

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

var _ http.Handler = &Server{}

// Server is a feed server
type Server struct {
	opts   ServerOptions
	source io.Reader
	srv    *http.Server
}

// NewServer creates a feed server. Without WithSource it publishes a
// generator seeded with the current time.
func NewServer(opts ...ServerOption) (*Server, error) {
	opt := newServerOptions(opts...)
	if opt.source == nil {
		opt.source = mt19937.NewFromTime(time.Now())
	}

	u, err := url.Parse(opt.addr)
	if err != nil {
		return nil, errors.Wrapf(err, "feed: listen address %q", opt.addr)
	}

	s := &Server{
		opts:   *opt,
		source: twister.NewSyncReader(opt.source),
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	mux := http.NewServeMux()
	mux.Handle(path, s)
	s.srv = &http.Server{
		Addr:    u.Host,
		Handler: mux,
	}
	return s, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.opts.errorLog.Printf("[ERROR] %s upgrade: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	// drain control frames so close and ping are handled
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	s.opts.errorLog.Printf("[INFO] %s subscribed", r.RemoteAddr)
	buf := make([]byte, s.opts.batch*wordSize)
	for sent := 0; sent < s.opts.limit; sent += s.opts.batch {
		n := s.opts.batch
		if rest := s.opts.limit - sent; rest < n {
			n = rest
		}
		if _, err := s.source.Read(buf[:n*wordSize]); err != nil {
			s.opts.errorLog.Printf("[ERROR] %s source: %v", r.RemoteAddr, err)
			return
		}
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		default:
		}
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.BinaryMessage, buf[:n*wordSize]); err != nil {
			s.opts.errorLog.Printf("[ERROR] %s write: %v", r.RemoteAddr, err)
			return
		}
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))
	s.opts.errorLog.Printf("[INFO] %s served %d words", r.RemoteAddr, s.opts.limit)
}

// ListenAndServe serves the feed until Shutdown
func (s *Server) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

// Shutdown stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
