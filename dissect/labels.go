package dissect

import (
	"fmt"
	"maps"
	"strconv"
)

// Labels maps numeric codes found in the field table to display names.
// Codes without a label are displayed as numbers.
type Labels struct {
	Medal map[uint64]string
	Role  map[uint64]string
}

func DefaultLabels() Labels {
	l := Labels{
		Medal: make(map[uint64]string),
		Role:  make(map[uint64]string),
	}
	for m := MedalMVP; m <= MedalBronze; m++ {
		l.Medal[uint64(m)] = m.String()
	}
	for r := RoleExp; r <= RoleGold; r++ {
		l.Role[uint64(r)] = r.String()
	}
	return l
}

func (l Labels) MedalName(code uint64) string {
	return label(l.Medal, code)
}

func (l Labels) RoleName(code uint64) string {
	return label(l.Role, code)
}

// Merge returns a copy of l with the given overrides applied.
// Keys are decimal codes, as read from a config file.
func (l Labels) Merge(medal, role map[string]string) (Labels, error) {
	out := Labels{
		Medal: maps.Clone(l.Medal),
		Role:  maps.Clone(l.Role),
	}
	if out.Medal == nil {
		out.Medal = make(map[uint64]string)
	}
	if out.Role == nil {
		out.Role = make(map[uint64]string)
	}
	if err := mergeLabels(out.Medal, medal); err != nil {
		return l, fmt.Errorf("medal labels: %w", err)
	}
	if err := mergeLabels(out.Role, role); err != nil {
		return l, fmt.Errorf("role labels: %w", err)
	}
	return out, nil
}

func mergeLabels(dst map[uint64]string, src map[string]string) error {
	for k, v := range src {
		code, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return err
		}
		dst[code] = v
	}
	return nil
}

func label(m map[uint64]string, code uint64) string {
	if s, ok := m[code]; ok {
		return s
	}
	return strconv.FormatUint(code, 10)
}
