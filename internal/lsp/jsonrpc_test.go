package lsp

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	if err := writeMessage(&buf, payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := readMessage(bufio.NewReader(&buf))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch: %q", got)
	}
}

func TestReadMessageSkipsUnknownHeaders(t *testing.T) {
	raw := "Content-Type: application/vscode-jsonrpc\r\n" +
		"Content-Length: 2\r\n" +
		"\r\n{}"
	got, err := readMessage(bufio.NewReader(strings.NewReader(raw)))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "{}" {
		t.Fatalf("payload: %q", got)
	}
}

func TestReadMessageMissingLength(t *testing.T) {
	raw := "Content-Type: text\r\n\r\n{}"
	if _, err := readMessage(bufio.NewReader(strings.NewReader(raw))); err == nil {
		t.Fatal("expected error without Content-Length")
	}
}

func TestReadMessageCaseInsensitiveHeader(t *testing.T) {
	raw := "content-length: 4\r\n\r\nnull"
	got, err := readMessage(bufio.NewReader(strings.NewReader(raw)))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "null" {
		t.Fatalf("payload: %q", got)
	}
}
