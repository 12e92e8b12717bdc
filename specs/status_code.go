package specs

import "strconv"

// StatusCode represents a response status. The set is closed to the codes
// this server actually emits so that Detail stays exhaustive; extending it
// is a single-point change here.
type StatusCode uint16

const (
	StatusCodeUndefined StatusCode = 0

	StatusCodeOK StatusCode = 200

	StatusCodeBadRequest                  StatusCode = 400
	StatusCodeNotFound                    StatusCode = 404
	StatusCodeContentTooLarge             StatusCode = 413
	StatusCodeRequestHeaderFieldsTooLarge StatusCode = 431

	StatusCodeInternalServerError StatusCode = 500
)

// IsValid checks if the StatusCode belongs to the closed set.
func (code StatusCode) IsValid() bool {
	switch code {
	case StatusCodeOK, StatusCodeBadRequest, StatusCodeNotFound,
		StatusCodeContentTooLarge, StatusCodeRequestHeaderFieldsTooLarge,
		StatusCodeInternalServerError:
		return true
	}
	return false
}

// Formatted renders the wire form of the status: "200 OK".
func (code StatusCode) Formatted() []byte {
	buf := strconv.AppendUint(nil, uint64(code), 10)
	buf = append(buf, ' ')
	return append(buf, code.Detail()...)
}

// Detail returns the reason phrase for the status code.
func (code StatusCode) Detail() []byte {
	switch code {
	case StatusCodeOK:
		return []byte("OK")
	case StatusCodeBadRequest:
		return []byte("Bad Request")
	case StatusCodeNotFound:
		return []byte("Not Found")
	case StatusCodeContentTooLarge:
		return []byte("Content Too Large")
	case StatusCodeRequestHeaderFieldsTooLarge:
		return []byte("Request Header Fields Too Large")
	case StatusCodeInternalServerError:
		return []byte("Internal Server Error")
	}
	return nil
}
