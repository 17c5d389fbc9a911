package dissect

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/klauspost/compress/zstd"
)

func TestNewReader(t *testing.T) {
	b := twoPlayers()
	encoded := base64.StdEncoding.EncodeToString(b)

	// wrapped lines and stray whitespace are ignored
	var wrapped strings.Builder
	for i := 0; i < len(encoded); i += 16 {
		wrapped.WriteString(encoded[i:min(i+16, len(encoded))])
		wrapped.WriteString("\r\n")
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed := enc.EncodeAll([]byte(encoded), nil)
	enc.Close()

	tests := []struct {
		name string
		in   []byte
	}{
		{"plain", []byte(encoded)},
		{"wrapped", []byte(wrapped.String())},
		{"unpadded", []byte(base64.RawStdEncoding.EncodeToString(b))},
		{"zstd", compressed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(bytes.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := deep.Equal(r.Bytes(), b); diff != nil {
				t.Error(diff)
			}
			if err := r.Read(); !Ok(err) {
				t.Fatal(err)
			}
			if diff := deep.Equal(r.Players, twoPlayersWant()); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestNewReader_invalid(t *testing.T) {
	_, err := NewReader(strings.NewReader("a"))
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("got %v, want %v", err, ErrInvalidEncoding)
	}
}

func TestNewReader_empty(t *testing.T) {
	r, err := NewReader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Read(); !Ok(err) {
		t.Fatal(err)
	}
	if len(r.Players) != 0 {
		t.Errorf("got %d players, want 0", len(r.Players))
	}
}

func TestDump(t *testing.T) {
	r, err := NewReader(strings.NewReader(base64.StdEncoding.EncodeToString(twoPlayers())))
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := r.Dump(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		"start:\n",
		"00000000  00705000",
		"marker@1 (alpha)",
		"alpha @ 19 [19, 32):",
		"beta @ 32 [32, 43):",
		"00000020  4D0462657461",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q:\n%s", want, out)
		}
	}
}
