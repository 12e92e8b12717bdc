package furrow

import (
	"testing"

	"github.com/oxbowlabs/furrow/specs"
)

func TestResponse_SerializeEmpty(t *testing.T) {
	resp := NewResponse(specs.HttpVersion11)

	want := "HTTP/1.1 200 OK\r\n\r\n"
	if got := string(resp.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestResponse_WriteText(t *testing.T) {
	resp := NewResponse(specs.HttpVersion11).WriteText("hello")

	if got := resp.Header().Get("Content-Type"); got != "text/plain" {
		t.Errorf("Content-Type = %q, want %q", got, "text/plain")
	}
	if got := resp.Header().Get("Content-Length"); got != "5" {
		t.Errorf("Content-Length = %q, want %q", got, "5")
	}
	if got := string(resp.Content()); got != "hello" {
		t.Errorf("Content() = %q, want %q", got, "hello")
	}

	want := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nhello"
	if got := string(resp.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestResponse_WriteTextTwiceStaysConsistent(t *testing.T) {
	resp := NewResponse(specs.HttpVersion11).WriteText("hello").WriteText("ab")

	if resp.Header().Len() != 2 {
		t.Fatalf("header Len() = %d, want 2", resp.Header().Len())
	}
	if got := resp.Header().Get("Content-Length"); got != "2" {
		t.Errorf("Content-Length = %q, want %q", got, "2")
	}
	if got := string(resp.Content()); got != "ab" {
		t.Errorf("Content() = %q, want %q", got, "ab")
	}
}

func TestResponse_StatusDowngrade(t *testing.T) {
	resp := NewResponse(specs.HttpVersion11)
	resp.SetStatus(specs.StatusCodeNotFound)

	want := "HTTP/1.1 404 Not Found\r\n\r\n"
	if got := string(resp.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestResponse_AddContentLeavesHeadersAlone(t *testing.T) {
	resp := NewResponse(specs.HttpVersion11).AddContent("raw body")

	if resp.Header().Len() != 0 {
		t.Errorf("header Len() = %d, want 0", resp.Header().Len())
	}

	want := "HTTP/1.1 200 OK\r\n\r\nraw body"
	if got := string(resp.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestResponse_HeaderOrderPreserved(t *testing.T) {
	resp := NewResponse(specs.HttpVersion10).
		AddHeader("B-Second", "2").
		AddHeader("A-First", "1").
		AddHeader("B-Second", "3")

	want := "HTTP/1.0 200 OK\r\nB-Second: 2\r\nA-First: 1\r\nB-Second: 3\r\n\r\n"
	if got := string(resp.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}
