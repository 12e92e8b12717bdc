package furrow

import (
	"bytes"
	"io"
	"strconv"

	"github.com/oxbowlabs/furrow/specs"
)

// Response is built incrementally through chained mutating calls, then
// serialized once. The model does not synchronize Content and the
// Content-Length header on the raw AddContent path; WriteText is the
// composed operation that keeps them consistent.
type Response struct {
	version specs.HttpVersion
	status  specs.StatusCode
	header  *specs.Header
	content []byte
}

// NewResponse creates a Response for the given protocol version with a 200
// status, no headers and no content.
func NewResponse(version specs.HttpVersion) *Response {
	return &Response{
		version: version,
		status:  specs.StatusCodeOK,
		header:  specs.NewHeader(),
	}
}

// Proto returns the protocol version the response will be serialized with.
func (resp *Response) Proto() specs.HttpVersion {
	return resp.version
}

// Status returns the current status code.
func (resp *Response) Status() specs.StatusCode {
	return resp.status
}

// Header returns the response header block.
func (resp *Response) Header() *specs.Header {
	return resp.header
}

// Content returns the current body payload.
func (resp *Response) Content() []byte {
	return resp.content
}

// AddHeader appends the pair without dedup or overwrite.
func (resp *Response) AddHeader(name, value string) *Response {
	resp.header.Add(name, value)
	return resp
}

// SetStatus overwrites the status code portion of the status line.
func (resp *Response) SetStatus(status specs.StatusCode) *Response {
	resp.status = status
	return resp
}

// AddContent replaces the body independently of any header; the caller is
// responsible for keeping Content-Length consistent.
func (resp *Response) AddContent(text string) *Response {
	resp.content = []byte(text)
	return resp
}

// WriteText sets Content-Type to text/plain, Content-Length to the exact
// byte length of text, and the body to text, as one operation, so the
// headers and the body never disagree.
func (resp *Response) WriteText(text string) *Response {
	resp.header.Set("Content-Type", specs.ContentTypePlain)
	resp.header.Set("Content-Length", strconv.Itoa(len(text)))
	resp.content = []byte(text)
	return resp
}

// Bytes serializes the response to its wire form: the status line, one
// header line per entry in insertion order, a blank separator line, then
// the raw content with no trailing terminator.
func (resp *Response) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(string(resp.version))
	buf.WriteByte(' ')
	buf.Write(resp.status.Formatted())
	buf.Write(directCrlf)
	buf.Write(resp.header.Bytes())
	buf.Write(directCrlf)
	buf.Write(resp.content)
	return buf.Bytes()
}

// WriteTo writes the serialized response to the writer.
func (resp *Response) WriteTo(writer io.Writer) (int64, error) {
	n, err := writer.Write(resp.Bytes())
	return int64(n), err
}
