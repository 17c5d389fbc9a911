package dissect

// FieldTable maps 0x0f field tags to their values within one player segment.
type FieldTable map[byte]uint64

// Known field tags.
const (
	FieldMedal         byte = 18
	FieldHeroDamage    byte = 19
	FieldTowerDamage   byte = 20
	FieldDamageTaken   byte = 21
	FieldClan          byte = 30
	FieldLobby         byte = 34
	FieldSearchRole    byte = 76
	FieldPlayedRole    byte = 77
	FieldJungleGold    byte = 82
	FieldHealPrimary   byte = 84
	FieldHealSecondary byte = 85
	FieldKillGold      byte = 86
	FieldCreepGold     byte = 87
)

// Get returns the value of tag, or 0 if the tag was not found.
func (t FieldTable) Get(tag byte) uint64 {
	return t[tag]
}

// ReadFields scans segment byte by byte for 0x0f-prefixed fields.
// Values are decoded within the segment only. A repeated tag overwrites
// the earlier value.
func ReadFields(segment []byte) FieldTable {
	t := make(FieldTable)
	for c := 0; c < len(segment)-1; {
		f, next, ok := recognizeField(segment, c)
		if ok {
			t[f.Tag] = f.Value
		}
		c = next
	}
	return t
}

// SecondaryID reads the 0x0e-tagged id directly following the name of a.
func SecondaryID(b []byte, a Anchor) uint64 {
	if a.Offset+1 >= len(b) {
		return 0
	}
	i := a.Offset + 2 + int(b[a.Offset+1])
	id, _, ok := recognizeFixed(b, i, secondaryIDTag)
	if !ok {
		return 0
	}
	return id
}
