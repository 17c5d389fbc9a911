package dissect

// CombatBlock holds the counters stored after a player's item list.
type CombatBlock struct {
	HeroID  uint64 `json:"heroID"`
	Kills   uint64 `json:"kills"`
	Deaths  uint64 `json:"deaths"`
	Assists uint64 `json:"assists"`
	Level   uint64 `json:"level"`
}

// ClaimMarker returns the first marker m with prev < m < cur.
// markers must be in ascending order.
func ClaimMarker(markers []int, prev, cur int) (int, bool) {
	for _, m := range markers {
		if m >= cur {
			break
		}
		if m > prev {
			return m, true
		}
	}
	return 0, false
}

// ReadCombat decodes the item list starting 4 bytes after marker, then the
// combat counters that follow the 0x01 terminator. gap is the number of
// separator bytes skipped between two item ids.
func ReadCombat(b []byte, marker, gap int) ([]uint64, CombatBlock) {
	items := make([]uint64, 0)
	var c CombatBlock
	gap = max(gap, 0)
	for cur := marker + combatOffset; cur < len(b)-2; {
		v, next := Uvarint(b, cur)
		items = append(items, v)
		if next < len(b) && b[next] == itemListTerminator {
			// skips the terminator and one unknown byte
			c = readFixed(b, next+2)
			break
		}
		cur = next + gap
	}
	return items, c
}

// readFixed decodes hero id, kills, deaths, assists and level in order,
// stopping at the first missing tag.
func readFixed(b []byte, ptr int) CombatBlock {
	var c CombatBlock
	dst := []*uint64{&c.HeroID, &c.Kills, &c.Deaths, &c.Assists, &c.Level}
	for i, tag := range fixedTags {
		v, next, ok := recognizeFixed(b, ptr, tag)
		if !ok {
			break
		}
		*dst[i] = v
		ptr = next
	}
	return c
}
