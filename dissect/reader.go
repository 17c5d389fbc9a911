package dissect

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

type Reader struct {
	data    []byte
	config  config
	Players []PlayerRecord `json:"players"`
}

// NewReader reads all of in and decodes the base64 container.
// Input that is zstd-compressed is decompressed first.
func NewReader(in io.Reader, opts ...Option) (r *Reader, err error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return
	}
	if bytes.HasPrefix(raw, zstdMagic) {
		log.Debug().Int("size", len(raw)).Msg("decompressing zstd input")
		if raw, err = decompress(raw); err != nil {
			return
		}
	}
	data, err := decodeBase64(raw)
	if err != nil {
		return
	}
	r = &Reader{
		data:   data,
		config: newConfig(opts),
	}
	return
}

// Read parses the container into Players.
func (r *Reader) Read() error {
	r.Players = Parse(r.data, WithItemGap(r.config.itemGap))
	return nil
}

// Bytes returns the decoded container.
func (r *Reader) Bytes() []byte {
	return r.data
}

func decompress(raw []byte) ([]byte, error) {
	d, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return io.ReadAll(d)
}

// decodeBase64 ignores every byte outside the standard alphabet
// and tolerates missing padding.
func decodeBase64(raw []byte) ([]byte, error) {
	clean := bytes.Map(func(r rune) rune {
		if isBase64(r) {
			return r
		}
		return -1
	}, raw)
	out := make([]byte, base64.StdEncoding.DecodedLen(len(clean)))
	n, err := base64.StdEncoding.Decode(out, clean)
	if err == nil {
		return out[:n], nil
	}
	clean = bytes.TrimRight(clean, "=")
	out = make([]byte, base64.RawStdEncoding.DecodedLen(len(clean)))
	n, err = base64.RawStdEncoding.Decode(out, clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return out[:n], nil
}

func isBase64(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '/' || r == '='
}
