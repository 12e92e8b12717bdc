package furrow

import (
	"bufio"
	"context"
	"io"
	"net"
	"strconv"

	"github.com/oxbowlabs/furrow/internal/parsing"
	"github.com/oxbowlabs/furrow/specs"
)

// readRequest parses exactly one request from the stream: the request line,
// the header block and, for postable methods with a positive Content-Length,
// the body. Any failure aborts construction entirely; there is no partial
// request.
func readRequest(
	ctx context.Context, remoteAddr net.Addr,
	reader *bufio.Reader, lineLimit, headerLimit, bodyLimit int64,
) (*Request, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	line, err := parsing.ParseRequestLine(reader, lineLimit)
	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	header, err := parsing.ParseHeaders(reader, lineLimit, headerLimit)
	if err != nil {
		return nil, err
	}

	var body []byte
	if line.Method.IsPostable() {
		if raw, has := header.TryGet("Content-Length"); has {
			contentLength, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || contentLength < 0 {
				return nil, &specs.MalformedLineError{Line: "Content-Length: " + raw}
			}
			if bodyLimit > 0 && contentLength > bodyLimit {
				return nil, specs.ErrBodyTooLarge
			}
			if contentLength > 0 {
				body = make([]byte, contentLength)
				if _, err = io.ReadFull(reader, body); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Request{
		line:       line,
		header:     header,
		body:       body,
		remoteAddr: remoteAddr,
	}, nil
}
