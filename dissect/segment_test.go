package dissect

import (
	"sort"
	"testing"

	"github.com/go-test/deep"
)

func TestAnchors(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		want []Anchor
	}{
		{
			"too short",
			container{}.name("ab").raw(0, 0, 0),
			[]Anchor{},
		},
		{
			"shortest",
			container{}.name("abc").raw(0, 0, 0),
			[]Anchor{{"abc", 0}},
		},
		{
			"longest",
			container{}.name("abcdefghijklmnopqrstuvwxyz012").raw(0),
			[]Anchor{{"abcdefghijklmnopqrstuvwxyz012", 0}},
		},
		{
			"too long",
			container{}.name("abcdefghijklmnopqrstuvwxyz0123").raw(0),
			[]Anchor{},
		},
		{
			"not printable",
			container{0x4d, 0x03, 0x01, 0x02, 0x03, 0x00},
			[]Anchor{},
		},
		{
			"invalid utf-8",
			container{0x4d, 0x03, 0xff, 0xfe, 0xfd, 0x00},
			[]Anchor{},
		},
		{
			"utf-8",
			container{0x00}.name("Иван").raw(0, 0),
			[]Anchor{{"Иван", 1}},
		},
		{
			"truncated at end",
			container{0x4d, 0x05, 'a', 'b', 'c', 'd'},
			[]Anchor{{"abcd", 0}},
		},
		{
			"several",
			container{0x01}.name("first").raw(0x0e, 0x01).name("second").raw(0, 0, 0),
			[]Anchor{{"first", 1}, {"second", 10}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := deep.Equal(Anchors(tt.b), tt.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestAnchors_sorted(t *testing.T) {
	b := container{}
	for _, n := range []string{"one", "two", "three", "four", "five"} {
		b = b.name(n).marker().field(1, 300)
	}
	b = b.raw(0, 0, 0)
	anchors := Anchors(b)
	if len(anchors) != 5 {
		t.Fatalf("got %d anchors, want 5", len(anchors))
	}
	if !sort.SliceIsSorted(anchors, func(i, j int) bool { return anchors[i].Offset < anchors[j].Offset }) {
		t.Errorf("anchors not sorted: %v", anchors)
	}
}

func TestMarkers(t *testing.T) {
	b := container{0x70}.marker().raw(0x50, 0x70, 0x70).marker().marker()
	want := []int{1, 6, 8}
	if diff := deep.Equal(Markers(b), want); diff != nil {
		t.Error(diff)
	}
	if got := Markers([]byte{0x70}); len(got) != 0 {
		t.Errorf("got %v, want no markers", got)
	}
}

func TestSegments_exhaustive(t *testing.T) {
	anchors := []Anchor{{"a", 3}, {"b", 10}, {"c", 11}, {"d", 40}}
	size := 64
	segments := Segments(anchors, size)
	if len(segments) != len(anchors) {
		t.Fatalf("got %d segments, want %d", len(segments), len(anchors))
	}
	if segments[0].Start != anchors[0].Offset {
		t.Errorf("first segment starts at %d, want %d", segments[0].Start, anchors[0].Offset)
	}
	for i := 1; i < len(segments); i++ {
		if segments[i].Start != segments[i-1].End {
			t.Errorf("gap or overlap between segments %d and %d", i-1, i)
		}
	}
	if last := segments[len(segments)-1]; last.End != size {
		t.Errorf("last segment ends at %d, want %d", last.End, size)
	}
	if got := Segments(nil, size); len(got) != 0 {
		t.Errorf("got %d segments without anchors", len(got))
	}
}
