package specs

import (
	"errors"
	"testing"
)

func TestParseHttpVersion(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		want      HttpVersion
		wantToken string
	}{
		{name: "HTTP/1.0", token: "HTTP/1.0", want: HttpVersion10},
		{name: "HTTP/1.1", token: "HTTP/1.1", want: HttpVersion11},
		{name: "HTTP/2.0", token: "HTTP/2.0", want: HttpVersion20},
		{name: "unknown minor", token: "HTTP/1.2", wantToken: "HTTP/1.2"},
		{name: "lowercase is unknown", token: "http/1.1", wantToken: "http/1.1"},
		{name: "shorthand is unknown", token: "HTTP/2", wantToken: "HTTP/2"},
		{name: "garbage", token: "banana", wantToken: "banana"},
		{name: "empty token", token: "", wantToken: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHttpVersion(tt.token)

			if tt.want != HttpVersionUndefined {
				if err != nil {
					t.Fatalf("ParseHttpVersion() unexpected error = %v", err)
				}
				if got != tt.want {
					t.Errorf("ParseHttpVersion() = %v, want %v", got, tt.want)
				}
				return
			}

			var uerr *UnknownVersionError
			if !errors.As(err, &uerr) {
				t.Fatalf("ParseHttpVersion() error = %v, want UnknownVersionError", err)
			}
			if uerr.Token != tt.wantToken {
				t.Errorf("UnknownVersionError token = %q, want %q", uerr.Token, tt.wantToken)
			}
		})
	}
}

func TestStatusCode_Formatted(t *testing.T) {
	tests := []struct {
		code StatusCode
		want string
	}{
		{StatusCodeOK, "200 OK"},
		{StatusCodeBadRequest, "400 Bad Request"},
		{StatusCodeNotFound, "404 Not Found"},
		{StatusCodeContentTooLarge, "413 Content Too Large"},
		{StatusCodeRequestHeaderFieldsTooLarge, "431 Request Header Fields Too Large"},
		{StatusCodeInternalServerError, "500 Internal Server Error"},
	}

	for _, tt := range tests {
		if got := string(tt.code.Formatted()); got != tt.want {
			t.Errorf("Formatted(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
