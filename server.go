package furrow

import (
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oxbowlabs/furrow/specs"
)

// Server reads one request per accepted connection, dispatches it to
// Handler and always closes after responding. There is no keep-alive,
// pipelining or TLS.
type Server struct {
	// Handler to invoke for each parsed request.
	Handler Handler

	Logger *log.Logger

	// FilterConn filters new incoming connections by peer address.
	// Returning false closes the connection before any read.
	FilterConn func(addr net.Addr) bool

	// ServerName, when set, is sent back in a Server response header.
	ServerName string

	// ReadTimeout is the maximum duration for reading the entire
	// request, including the body. A zero or negative value means
	// there will be no timeout.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out
	// writes of the response. A zero or negative value means
	// there will be no timeout.
	WriteTimeout time.Duration

	// MaxLineBytes caps a single request or header line. If zero,
	// DefaultMaxLineBytes is used; negative disables the cap.
	MaxLineBytes int64

	// MaxHeaderBytes caps the cumulative header block. If zero,
	// DefaultMaxHeaderBytes is used; negative disables the cap.
	MaxHeaderBytes int64

	// MaxBodyBytes caps a declared Content-Length body. If zero,
	// DefaultMaxBodyBytes is used; negative disables the cap.
	MaxBodyBytes int64

	// MaxConns caps concurrently served connections. Zero means no
	// admission control: one goroutine per connection, unbounded.
	MaxConns int

	// CompressResponses enables Accept-Encoding negotiation for
	// response bodies the handler produced.
	CompressResponses bool

	once           sync.Once
	admission      chan struct{}
	isShuttingdown atomic.Bool
	connTrack      sync.WaitGroup

	mutex     sync.Mutex
	listeners map[net.Listener]struct{}
}

func (srv *Server) logger() *log.Logger {
	if srv.Logger != nil {
		return srv.Logger
	}
	return log.Default()
}

func (srv *Server) beforeOnce() {
	if srv.MaxConns > 0 {
		srv.admission = make(chan struct{}, srv.MaxConns)
	}
}

func (srv *Server) applyReadTimeout(conn net.Conn) {
	if srv.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(srv.ReadTimeout))
	}
}

func (srv *Server) applyWriteTimeout(conn net.Conn) {
	if srv.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(srv.WriteTimeout))
	}
}

// IsShutdown reports whether Shutdown has been called.
func (srv *Server) IsShutdown() bool {
	return srv.isShuttingdown.Load()
}

// ListenAndServe listens on the TCP address and serves connections.
func (srv *Server) ListenAndServe(addr string) error {
	if srv.IsShutdown() {
		return specs.ErrServerClosed
	} else if addr == "" {
		addr = ":http"
	}
	lst, err := net.Listen("tcp4", addr)
	if err != nil {
		return err
	}
	return srv.Serve(lst)
}

func (srv *Server) trackListener(listener net.Listener, add bool) {
	srv.mutex.Lock()
	defer srv.mutex.Unlock()

	if add {
		if srv.listeners == nil {
			srv.listeners = make(map[net.Listener]struct{})
		}
		srv.listeners[listener] = struct{}{}
	} else {
		delete(srv.listeners, listener)
	}
}

// Shutdown stops accepting new connections, closes the listeners and waits
// for in-flight connections to finish.
func (srv *Server) Shutdown() {
	if !srv.isShuttingdown.CompareAndSwap(false, true) {
		return
	}

	srv.mutex.Lock()
	for listener := range srv.listeners {
		listener.Close()
	}
	srv.mutex.Unlock()

	srv.connTrack.Wait()
}
