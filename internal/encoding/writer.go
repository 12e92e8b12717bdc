package encoding

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/oxbowlabs/furrow/specs"
)

// NewWriter wraps the writer with the compressor for the given
// Content-Encoding token.
func NewWriter(contentEncoding string, writer io.Writer) (io.WriteCloser, error) {
	switch contentEncoding {
	case specs.ContentEncodingGzip:
		return gzip.NewWriter(writer), nil
	case specs.ContentEncodingDeflate:
		return zlib.NewWriter(writer), nil
	case specs.ContentEncodingBrotli:
		return brotli.NewWriter(writer), nil
	}
	return nil, fmt.Errorf("unknown content encoding %s", contentEncoding)
}

// Compress encodes content in one shot with the given Content-Encoding token.
func Compress(contentEncoding string, content []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := NewWriter(contentEncoding, &buf)
	if err != nil {
		return nil, err
	}
	if _, err = writer.Write(content); err != nil {
		writer.Close()
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
