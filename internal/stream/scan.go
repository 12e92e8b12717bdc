package stream

import (
	"bufio"
	"bytes"
	"io"

	"github.com/oxbowlabs/furrow/specs"
)

// ScanUntil reads the stream one byte at a time until the delimiter sequence
// is matched, returning everything read before it. A fixed-size FIFO window
// of len(delim) bytes tracks the tail of the accumulation, so delimiters of
// any length work. The reader is left positioned one byte past the end of
// the delimiter; nothing is ever pushed back.
//
// End of stream before a match fails with [specs.ErrUnterminatedStream].
// When limit > 0, accumulating more than limit bytes fails with
// [specs.ErrTooLarge].
func ScanUntil(reader *bufio.Reader, delim []byte, limit int64) ([]byte, error) {
	if len(delim) == 0 {
		panic("furrow: empty scan delimiter")
	}

	var buf []byte
	window := make([]byte, 0, len(delim))
	for {
		b, err := reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil, specs.ErrUnterminatedStream
			}
			return nil, err
		}

		buf = append(buf, b)
		if limit > 0 && int64(len(buf)) > limit {
			return nil, specs.ErrTooLarge
		}

		if len(window) == len(delim) {
			copy(window, window[1:])
			window[len(window)-1] = b
		} else {
			window = append(window, b)
		}

		if bytes.Equal(window, delim) {
			return buf[:len(buf)-len(delim)], nil
		}
	}
}
