package furrow

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/oxbowlabs/furrow/internal/catch"
	"github.com/oxbowlabs/furrow/internal/encoding"
	"github.com/oxbowlabs/furrow/internal/stream"
	"github.com/oxbowlabs/furrow/specs"
)

// Serve accepts incoming connections on the [net.Listener], creating a new
// service goroutine for each. A service goroutine reads exactly one
// request, calls [Server.Handler] to fill the response, writes it back and
// closes the connection.
//
// Serve always returns a non-nil error.
// After [Server.Shutdown], the returned error is [specs.ErrServerClosed].
func (srv *Server) Serve(listener net.Listener) error {
	if listener == nil {
		panic("furrow: nil listener")
	}
	if srv.Handler == nil {
		panic("furrow: nil server handler")
	}
	if srv.IsShutdown() {
		return specs.ErrServerClosed
	}

	srv.once.Do(srv.beforeOnce)

	srv.trackListener(listener, true)
	defer srv.trackListener(listener, false)

	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	var attemptDelay time.Duration
	for {
		conn, err := listener.Accept()
		if err != nil {
			if srv.IsShutdown() {
				return specs.ErrServerClosed
			}
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				if attemptDelay == 0 {
					attemptDelay = 5 * time.Millisecond
				} else if maxDelay := 1 * time.Second; attemptDelay >= maxDelay {
					attemptDelay = maxDelay
				} else {
					attemptDelay *= 2
				}

				time.Sleep(attemptDelay)
				continue
			}
			return err
		}

		attemptDelay = 0
		if srv.FilterConn != nil {
			if allow := srv.FilterConn(conn.RemoteAddr()); !allow {
				conn.Close()
				continue
			}
		}

		if srv.admission != nil {
			srv.admission <- struct{}{}
		}

		srv.connTrack.Add(1)
		go srv.serveConn(ctx, conn)
	}
}

func (srv *Server) serveConn(ctx context.Context, conn net.Conn) {
	defer srv.connTrack.Done()
	if srv.admission != nil {
		defer func() { <-srv.admission }()
	}
	defer conn.Close()
	defer func() {
		if r := recover(); r != nil {
			srv.logger().Printf("furrow: panic serving %s: %v", conn.RemoteAddr(), r)
			conn.SetDeadline(time.Now().Add(time.Second))
			reply := NewResponse(specs.HttpVersion11).
				SetStatus(specs.StatusCodeInternalServerError).
				AddHeader("Connection", "close")
			reply.WriteTo(conn)
		}
	}()

	srv.applyReadTimeout(conn)
	srv.applyWriteTimeout(conn)

	reader := stream.DefaultBufioReaderPool.Get(conn)
	defer stream.DefaultBufioReaderPool.Put(reader)

	lineLimit := sizeLimit(srv.MaxLineBytes, DefaultMaxLineBytes)
	headerLimit := sizeLimit(srv.MaxHeaderBytes, DefaultMaxHeaderBytes)
	bodyLimit := sizeLimit(srv.MaxBodyBytes, DefaultMaxBodyBytes)

	req, err := readRequest(ctx, conn.RemoteAddr(), reader, lineLimit, headerLimit, bodyLimit)
	if err != nil {
		srv.respondFailure(conn, err)
		return
	}

	resp := NewResponse(req.Proto())
	srv.Handler.Handle(ctx, req, resp)

	if srv.ServerName != "" {
		resp.Header().Set("Server", srv.ServerName)
	}

	if srv.CompressResponses {
		srv.compressContent(req, resp)
	}

	if _, err = resp.WriteTo(conn); err != nil {
		srv.logger().Printf("furrow: write to %s failed: %s", conn.RemoteAddr(), err)
	}
}

// respondFailure converts a parse failure into a well-formed 400-class
// reply before the connection is dropped. Transport-level read failures
// and cancellations get no reply; the peer is already gone.
func (srv *Server) respondFailure(conn net.Conn, err error) {
	if catch.IsCommonNetReadError(err) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}

	srv.logger().Printf("furrow: bad request from %s: %s", conn.RemoteAddr(), err)

	code := specs.StatusCodeBadRequest
	switch {
	case errors.Is(err, specs.ErrBodyTooLarge):
		code = specs.StatusCodeContentTooLarge
	case errors.Is(err, specs.ErrTooLarge):
		code = specs.StatusCodeRequestHeaderFieldsTooLarge
	}

	conn.SetDeadline(time.Now().Add(time.Second))
	reply := NewResponse(specs.HttpVersion11).
		SetStatus(code).
		AddHeader("Connection", "close")
	reply.WriteTo(conn)
}

// compressContent applies Accept-Encoding negotiation to a handler-produced
// body, recomputing Content-Length so the headers never disagree with the
// encoded payload. Bodies with a handler-set Content-Encoding pass through.
func (srv *Server) compressContent(req *Request, resp *Response) {
	if len(resp.content) == 0 || resp.header.Has("Content-Encoding") {
		return
	}

	contentEncoding := encoding.Negotiate(req.Header().Get("Accept-Encoding"))
	if contentEncoding == "" {
		return
	}

	encoded, err := encoding.Compress(contentEncoding, resp.content)
	if err != nil {
		srv.logger().Printf("furrow: %s encoding failed: %s", contentEncoding, err)
		return
	}

	resp.content = encoded
	resp.header.Set("Content-Encoding", contentEncoding)
	if resp.header.Has("Content-Length") {
		resp.header.Set("Content-Length", strconv.Itoa(len(encoded)))
	}
}
