package parsing

import (
	"bufio"
	"bytes"
	"unicode/utf8"

	"github.com/oxbowlabs/furrow/internal/stream"
	"github.com/oxbowlabs/furrow/specs"
	"golang.org/x/net/http/httpguts"
)

var directColonSpace = []byte(": ")

// ParseHeaders consumes CRLF-delimited lines until a line that trims to
// empty, splitting each on the first ": " into a (name, value) pair.
// Order is preserved and duplicate names are kept. A line without the
// separator, or with characters invalid for a header field, fails with
// [specs.MalformedLineError]. There is no bound on header count; lineLimit
// caps a single line and totalLimit the cumulative block size (0 disables).
func ParseHeaders(reader *bufio.Reader, lineLimit, totalLimit int64) (*specs.Header, error) {
	header := specs.NewHeader()

	var totalLen int64
	for {
		line, err := stream.ScanUntil(reader, directCrlf, lineLimit)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(line) {
			return nil, specs.ErrInvalidEncoding
		}

		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			return header, nil
		}

		totalLen += int64(len(line))
		if totalLimit > 0 && totalLen > totalLimit {
			return nil, specs.ErrTooLarge
		}

		name, value, found := bytes.Cut(trimmed, directColonSpace)
		if !found || len(name) == 0 {
			return nil, &specs.MalformedLineError{Line: string(line)}
		}

		sname, svalue := string(name), string(value)
		if !httpguts.ValidHeaderFieldName(sname) || !httpguts.ValidHeaderFieldValue(svalue) {
			return nil, &specs.MalformedLineError{Line: string(line)}
		}

		header.Add(sname, svalue)
	}
}
