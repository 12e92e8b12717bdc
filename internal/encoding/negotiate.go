package encoding

import (
	"strings"

	"github.com/oxbowlabs/furrow/specs"
)

// IsKnownEncoding reports whether the Content-Encoding token has a writer.
func IsKnownEncoding(contentEncoding string) bool {
	switch contentEncoding {
	case specs.ContentEncodingGzip, specs.ContentEncodingDeflate, specs.ContentEncodingBrotli:
		return true
	}
	return false
}

// Negotiate picks the first known encoding from an Accept-Encoding header
// value, honoring the client's listing order. Quality parameters are
// ignored beyond stripping them. Returns "" when nothing matches.
func Negotiate(acceptEncoding string) string {
	for len(acceptEncoding) > 0 {
		var token string
		token, acceptEncoding, _ = strings.Cut(acceptEncoding, ",")
		token, _, _ = strings.Cut(token, ";")
		token = strings.TrimSpace(token)
		if IsKnownEncoding(token) {
			return token
		}
	}
	return ""
}
