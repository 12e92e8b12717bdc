package furrow

const (
	// DefaultMaxLineBytes caps a single request or header line.
	DefaultMaxLineBytes int64 = 8 << 10

	// DefaultMaxHeaderBytes caps the cumulative header block.
	DefaultMaxHeaderBytes int64 = 64 << 10

	// DefaultMaxBodyBytes caps a Content-Length body.
	DefaultMaxBodyBytes int64 = 5 << 20 // 5 mb
)

var (
	directCrlf = []byte("\r\n")
)

// sizeLimit resolves a configured size: zero means the default,
// negative disables the limit.
func sizeLimit(configured, def int64) int64 {
	if configured == 0 {
		return def
	}
	if configured < 0 {
		return 0
	}
	return configured
}
