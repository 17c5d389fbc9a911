package dissect

import (
	"sort"
)

// Anchor is a player name found in the container. Its offset is the
// position of the name indicator byte.
type Anchor struct {
	Name   string `json:"username"`
	Offset int    `json:"offset"`
}

// Segment is the half-open byte range [Start, End) attributed to one player.
type Segment struct {
	Anchor
	Start int
	End   int
}

// Anchors returns every player name candidate in b, sorted by offset.
func Anchors(b []byte) []Anchor {
	anchors := make([]Anchor, 0)
	for i := 0; i < len(b)-3; {
		a, next, ok := recognizeAnchor(b, i)
		if ok {
			anchors = append(anchors, a)
		}
		i = next
	}
	sort.SliceStable(anchors, func(i, j int) bool {
		return anchors[i].Offset < anchors[j].Offset
	})
	return anchors
}

// Markers returns the offsets of every non-overlapping {0x70, 0x50} pair in b.
func Markers(b []byte) []int {
	markers := make([]int, 0)
	for i := 0; i < len(b); {
		m, next, ok := recognizeMarker(b, i)
		if ok {
			markers = append(markers, m)
		}
		i = next
	}
	return markers
}

// Segments splits [anchors[0].Offset, size) into one segment per anchor.
// anchors must be sorted by offset.
func Segments(anchors []Anchor, size int) []Segment {
	segments := make([]Segment, len(anchors))
	for i, a := range anchors {
		end := size
		if i+1 < len(anchors) {
			end = anchors[i+1].Offset
		}
		segments[i] = Segment{
			Anchor: a,
			Start:  a.Offset,
			End:    end,
		}
	}
	return segments
}
