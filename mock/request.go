package mock

import (
	"net"

	"github.com/oxbowlabs/furrow"
	"github.com/oxbowlabs/furrow/specs"
)

// DefaultRequest creates a RequestBuilder with default values:
// GET / HTTP/1.1 from 127.0.0.1:8080 with empty headers and no body.
func DefaultRequest() *RequestBuilder {
	return &RequestBuilder{
		method:  specs.HttpMethodGet,
		target:  "/",
		version: specs.HttpVersion11,
		header:  specs.NewHeader(),
		remoteAddr: &net.TCPAddr{
			IP:   net.IPv4(127, 0, 0, 1),
			Port: 8080,
		},
	}
}

// RequestBuilder builds a furrow.Request for handler tests.
type RequestBuilder struct {
	method     specs.HttpMethod
	target     string
	version    specs.HttpVersion
	header     *specs.Header
	body       []byte
	remoteAddr net.Addr
}

// Method sets the HTTP method for the request.
func (b *RequestBuilder) Method(method specs.HttpMethod) *RequestBuilder {
	b.method = method
	return b
}

// Target sets the raw request target.
func (b *RequestBuilder) Target(target string) *RequestBuilder {
	b.target = target
	return b
}

// Proto sets the protocol version for the request.
func (b *RequestBuilder) Proto(version specs.HttpVersion) *RequestBuilder {
	b.version = version
	return b
}

// Header returns the header for the request.
func (b *RequestBuilder) Header() *specs.Header {
	if b.header == nil {
		b.header = specs.NewHeader()
	}
	return b.header
}

// ConfHeader applies a configuration function to the request header.
func (b *RequestBuilder) ConfHeader(conf func(*specs.Header)) *RequestBuilder {
	conf(b.Header())
	return b
}

// Body sets the body for the request.
func (b *RequestBuilder) Body(body []byte) *RequestBuilder {
	b.body = body
	return b
}

// Addr sets the remote address for the request.
func (b *RequestBuilder) Addr(addr net.Addr) *RequestBuilder {
	b.remoteAddr = addr
	return b
}

// Request assembles the furrow.Request from the current builder state.
func (b *RequestBuilder) Request() *furrow.Request {
	line := specs.RequestLine{
		Method:  b.method,
		Target:  b.target,
		Version: b.version,
	}
	return furrow.NewRequest(line, b.Header(), b.body, b.remoteAddr)
}
