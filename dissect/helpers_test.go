// this file contains helper functions for *tests*

package dissect

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

// container builds a byte buffer from parts, which are either raw bytes,
// single bytes or varints.
type container []byte

func (c container) raw(b ...byte) container {
	return append(c, b...)
}

func (c container) varint(v uint64) container {
	return protowire.AppendVarint(c, v)
}

// name appends a name anchor: 0x4d, length byte, name.
func (c container) name(n string) container {
	return append(append(c, nameIndicator, byte(len(n))), n...)
}

func (c container) marker() container {
	return append(c, markerIndicator...)
}

func (c container) field(tag byte, v uint64) container {
	return c.raw(fieldIndicator, tag).varint(v)
}

// combat appends an item list followed by the 0x01 terminator, one unknown
// byte and the fixed combat fields.
func (c container) combat(items []uint64, cb CombatBlock) container {
	for _, it := range items {
		c = c.varint(it)
	}
	c = c.raw(itemListTerminator, 0xAA)
	c = c.raw(0x02).varint(cb.HeroID)
	c = c.raw(0x03).varint(cb.Kills)
	c = c.raw(0x04).varint(cb.Deaths)
	c = c.raw(0x05).varint(cb.Assists)
	c = c.raw(0x06).varint(cb.Level)
	return c
}

// twoPlayers is a container with two named players. The first player's item
// block precedes its name, the second player has no marker in its window and
// a jungle gold field is stored in the first player's segment.
func twoPlayers() []byte {
	return container{0x00}.
		marker().
		raw(0x00, 0x00).
		combat([]uint64{10, 20}, CombatBlock{HeroID: 99, Kills: 5, Deaths: 3, Assists: 7, Level: 12}).
		name("alpha").raw(secondaryIDTag).varint(12345).
		field(FieldJungleGold, 7).
		name("beta").raw(secondaryIDTag).varint(42).
		raw(0x00, 0x00, 0x00)
}

func twoPlayersWant() []PlayerRecord {
	return []PlayerRecord{
		{
			Username: "alpha",
			Offset:   19,
			ID:       12345,
			Fields:   FieldTable{FieldJungleGold: 7},
			Combat:   CombatBlock{HeroID: 99, Kills: 5, Deaths: 3, Assists: 7, Level: 12},
			Items:    []uint64{10, 20},
			Marker:   1,
		},
		{
			Username: "beta",
			Offset:   32,
			ID:       42,
			Fields:   FieldTable{},
			Items:    []uint64{},
			Marker:   -1,
		},
	}
}

// writeHistory writes b base64 encoded to dir/name and returns its path.
func writeHistory(t *testing.T, dir, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(base64.StdEncoding.EncodeToString(b)), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
