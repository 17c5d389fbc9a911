package dissect

import (
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

const (
	nameIndicator      byte = 0x4d // 'M', followed by a length byte and the name
	secondaryIDTag     byte = 0x0e
	fieldIndicator     byte = 0x0f
	itemListTerminator byte = 0x01
	minNameLength           = 3
	maxNameLength           = 29
	combatOffset            = 4 // marker to first item id
)

var markerIndicator = []byte{0x70, 0x50}

// fixedTags are the tags of the combat counters following the item list, in order.
var fixedTags = []byte{0x02, 0x03, 0x04, 0x05, 0x06}

// Field is a single 0x0f-prefixed (tag, value) pair.
type Field struct {
	Tag   byte
	Value uint64
}

// The recognizers below are pure functions of (buffer, cursor). Each returns
// the recognized token, the cursor to continue scanning from and whether a
// token was found at the cursor.

func recognizeAnchor(b []byte, i int) (Anchor, int, bool) {
	if i+1 >= len(b) || b[i] != nameIndicator {
		return Anchor{}, i + 1, false
	}
	l := int(b[i+1])
	if l < minNameLength || l > maxNameLength {
		return Anchor{}, i + 1, false
	}
	name := b[i+2 : min(i+2+l, len(b))]
	if !printable(name) {
		log.Trace().Int("offset", i).Hex("name", name).Msg("discarding name candidate")
		return Anchor{}, i + 1, false
	}
	return Anchor{Name: string(name), Offset: i}, i + 1, true
}

func recognizeMarker(b []byte, i int) (int, int, bool) {
	if i+1 < len(b) && b[i] == markerIndicator[0] && b[i+1] == markerIndicator[1] {
		return i, i + len(markerIndicator), true
	}
	return 0, i + 1, false
}

func recognizeField(b []byte, i int) (Field, int, bool) {
	if i+1 >= len(b) || b[i] != fieldIndicator {
		return Field{}, i + 1, false
	}
	v, next := Uvarint(b, i+2)
	return Field{Tag: b[i+1], Value: v}, next, true
}

func recognizeFixed(b []byte, i int, tag byte) (uint64, int, bool) {
	if i < 0 || i >= len(b) || b[i] != tag {
		return 0, i, false
	}
	v, next := Uvarint(b, i+1)
	return v, next, true
}

func printable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
