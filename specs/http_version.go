package specs

// HttpVersion represents the protocol version token of a request or
// response headline. The vocabulary is closed: any token outside it is a
// parse failure, never a free-form string.
type HttpVersion string

const (
	HttpVersionUndefined HttpVersion = ""

	HttpVersion10 HttpVersion = "HTTP/1.0"
	HttpVersion11 HttpVersion = "HTTP/1.1"

	// HttpVersion20 is accepted as a headline token and echoed back
	// unchanged; no HTTP/2 framing exists behind it.
	HttpVersion20 HttpVersion = "HTTP/2.0"
)

// ParseHttpVersion matches the token exactly against the closed vocabulary.
// Unknown tokens fail with [UnknownVersionError] carrying the offending token.
func ParseHttpVersion(token string) (HttpVersion, error) {
	switch version := HttpVersion(token); version {
	case HttpVersion10, HttpVersion11, HttpVersion20:
		return version, nil
	}
	return HttpVersionUndefined, &UnknownVersionError{Token: token}
}

// IsValid checks if the HttpVersion is one of the recognized version tokens.
func (version HttpVersion) IsValid() bool {
	return version == HttpVersion10 ||
		version == HttpVersion11 ||
		version == HttpVersion20
}
