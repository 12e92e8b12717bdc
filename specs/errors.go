package specs

import "fmt"

var (
	// ErrUnterminatedStream reports that the input ended before the
	// delimiter was ever matched: a truncated or malformed message.
	ErrUnterminatedStream = NewOpError("scan", "unterminated stream")

	// ErrInvalidEncoding reports a line that is not valid UTF-8.
	ErrInvalidEncoding = NewOpError("parsing", "invalid utf-8 encoding")

	// ErrTooLarge reports a line or header block exceeding a configured
	// size limit.
	ErrTooLarge = NewOpError("read", "too large content")

	// ErrBodyTooLarge reports a declared body length exceeding the
	// configured body limit.
	ErrBodyTooLarge = NewOpError("read", "too large body content")

	// ErrServerClosed is returned by Serve after Shutdown.
	ErrServerClosed = NewOpError("server", "closed")
)

// UnknownMethodError reports a request-line method token
// outside the closed vocabulary.
type UnknownMethodError struct {
	Token string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("furrow/parsing: unknown http method %q", e.Token)
}

// UnknownVersionError reports a request-line version token
// outside the closed vocabulary.
type UnknownVersionError struct {
	Token string
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("furrow/parsing: unknown http version %q", e.Token)
}

// MalformedLineError reports a line missing a required token or separator.
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("furrow/parsing: malformed line %q", e.Line)
}
