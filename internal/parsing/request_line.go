package parsing

import (
	"bufio"
	"bytes"
	"unicode/utf8"

	"github.com/oxbowlabs/furrow/internal/stream"
	"github.com/oxbowlabs/furrow/specs"
	"golang.org/x/net/http/httpguts"
)

var directCrlf = []byte("\r\n")

// ParseRequestLine consumes one CRLF-delimited line and splits it into the
// method, target and version tokens: "GET /index.html HTTP/1.1". A line with
// any other shape is a recoverable [specs.MalformedLineError], never a
// crash. Method and version are validated against their closed
// vocabularies; the target stays an opaque string.
func ParseRequestLine(reader *bufio.Reader, limit int64) (specs.RequestLine, error) {
	var zero specs.RequestLine

	line, err := stream.ScanUntil(reader, directCrlf, limit)
	if err != nil {
		return zero, err
	}
	if !utf8.Valid(line) {
		return zero, specs.ErrInvalidEncoding
	}

	tokens := bytes.Split(line, []byte{' '})
	if len(tokens) != 3 ||
		len(tokens[0]) == 0 || len(tokens[1]) == 0 || len(tokens[2]) == 0 {
		return zero, &specs.MalformedLineError{Line: string(line)}
	}

	method, err := specs.ParseHttpMethod(string(tokens[0]))
	if err != nil {
		return zero, err
	}

	target := string(tokens[1])
	if !httpguts.ValidHeaderFieldValue(target) {
		return zero, &specs.MalformedLineError{Line: string(line)}
	}

	version, err := specs.ParseHttpVersion(string(tokens[2]))
	if err != nil {
		return zero, err
	}

	return specs.RequestLine{
		Method:  method,
		Target:  target,
		Version: version,
	}, nil
}
