package furrow

import (
	"net"

	"github.com/oxbowlabs/furrow/specs"
)

// Request is one fully parsed incoming request. It is never observed
// half-built: readRequest either yields a valid request line plus header
// block or fails before any Request exists. A Request belongs exclusively
// to the connection goroutine that parsed it.
type Request struct {
	line       specs.RequestLine
	header     *specs.Header
	body       []byte
	remoteAddr net.Addr
}

// NewRequest assembles a Request from already-validated parts.
// Intended for tests and the mock package; the server builds requests
// from the wire.
func NewRequest(line specs.RequestLine, header *specs.Header, body []byte, remoteAddr net.Addr) *Request {
	if header == nil {
		header = specs.NewHeader()
	}
	return &Request{
		line:       line,
		header:     header,
		body:       body,
		remoteAddr: remoteAddr,
	}
}

// Method returns the request method token.
func (req *Request) Method() specs.HttpMethod {
	return req.line.Method
}

// Target returns the raw request target, exactly as received.
func (req *Request) Target() string {
	return req.line.Target
}

// Proto returns the negotiated protocol version token.
func (req *Request) Proto() specs.HttpVersion {
	return req.line.Version
}

// Header returns the parsed header block.
func (req *Request) Header() *specs.Header {
	return req.header
}

// Body returns the request body, or nil when none was read. A body is read
// only for postable methods carrying a positive Content-Length.
func (req *Request) Body() []byte {
	return req.body
}

// RemoteAddr returns the peer address of the connection.
func (req *Request) RemoteAddr() net.Addr {
	return req.remoteAddr
}
