package dissect

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

const dumpWidth = 32

// Dump writes the container to w as hex, one section per player segment.
// Lines holding a {0x70, 0x50} marker are annotated with its offset and
// the player claiming it.
func (r *Reader) Dump(w io.StringWriter) error {
	b := r.data
	markers := Markers(b)
	segments := Segments(Anchors(b), len(b))
	claims := make(map[int]string)
	prev := 0
	for _, s := range segments {
		if m, ok := ClaimMarker(markers, prev, s.Start); ok {
			claims[m] = s.Name
		}
		prev = s.Start
	}
	start := len(b)
	if len(segments) > 0 {
		start = segments[0].Start
	}
	if _, err := w.WriteString("start:\n---------------\n"); err != nil {
		return err
	}
	if err := dumpRange(w, b, 0, start, markers, claims); err != nil {
		return err
	}
	for _, s := range segments {
		header := fmt.Sprintf("\n\n%s @ %d [%d, %d):\n---------------\n", s.Name, s.Offset, s.Start, s.End)
		if _, err := w.WriteString(header); err != nil {
			return err
		}
		if err := dumpRange(w, b, s.Start, s.End, markers, claims); err != nil {
			return err
		}
	}
	log.Debug().Int("segments", len(segments)).Int("markers", len(markers)).Msg("dump")
	return nil
}

func dumpRange(w io.StringWriter, b []byte, start, end int, markers []int, claims map[int]string) error {
	var sb strings.Builder
	for i := start; i < end; i += dumpWidth {
		j := min(i+dumpWidth, end)
		sb.Reset()
		sb.WriteString(fmt.Sprintf("%08X  ", i))
		sb.WriteString(strings.ToUpper(hex.EncodeToString(b[i:j])))
		for _, m := range markers {
			if m < i || m >= j {
				continue
			}
			sb.WriteString(fmt.Sprintf(" - marker@%d", m))
			if name, ok := claims[m]; ok {
				sb.WriteString(" (" + name + ")")
			}
		}
		sb.WriteString("\n")
		if _, err := w.WriteString(sb.String()); err != nil {
			return err
		}
	}
	return nil
}

