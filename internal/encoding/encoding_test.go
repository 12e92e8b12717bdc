package encoding

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/oxbowlabs/furrow/specs"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		want           string
	}{
		{name: "empty", acceptEncoding: "", want: ""},
		{name: "single known", acceptEncoding: "gzip", want: "gzip"},
		{name: "client order wins", acceptEncoding: "br, gzip", want: "br"},
		{name: "skips unknown", acceptEncoding: "zstd, deflate", want: "deflate"},
		{name: "quality stripped", acceptEncoding: "gzip;q=0.5, br;q=1.0", want: "gzip"},
		{name: "spaces tolerated", acceptEncoding: " gzip ,  br ", want: "gzip"},
		{name: "nothing known", acceptEncoding: "zstd, identity", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Negotiate(tt.acceptEncoding); got != tt.want {
				t.Errorf("Negotiate(%q) = %q, want %q", tt.acceptEncoding, got, tt.want)
			}
		})
	}
}

func TestCompress_Gzip(t *testing.T) {
	content := []byte("the quick brown fox jumps over the lazy dog")

	encoded, err := Compress(specs.ContentEncodingGzip, content)
	if err != nil {
		t.Fatal(err)
	}

	reader, err := gzip.NewReader(bytes.NewReader(encoded))
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, content) {
		t.Errorf("decoded = %q, want %q", decoded, content)
	}
}

func TestCompress_Brotli(t *testing.T) {
	content := []byte("the quick brown fox jumps over the lazy dog")

	encoded, err := Compress(specs.ContentEncodingBrotli, content)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := io.ReadAll(brotli.NewReader(bytes.NewReader(encoded)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, content) {
		t.Errorf("decoded = %q, want %q", decoded, content)
	}
}

func TestCompress_UnknownEncoding(t *testing.T) {
	if _, err := Compress("zstd", []byte("x")); err == nil {
		t.Fatal("Compress() expected error for unknown encoding")
	}
}
