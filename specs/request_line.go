package specs

// RequestLine is the parsed first line of a request. The target is kept as
// the raw token: not percent-decoded, not normalized. Immutable once parsed.
type RequestLine struct {
	Method  HttpMethod
	Target  string
	Version HttpVersion
}
