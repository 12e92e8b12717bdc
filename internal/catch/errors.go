package catch

import (
	"io"
	"net"
)

// IsCommonNetReadError reports transport-level read failures where the peer
// is already gone and writing an error reply would be pointless.
func IsCommonNetReadError(err error) bool {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return true
	} else if neterr, ok := err.(net.Error); ok && neterr.Timeout() {
		return true
	} else if operr, ok := err.(*net.OpError); ok && operr.Op == "read" {
		return true
	}
	return false
}
