package dissect

import (
	"github.com/rs/zerolog/log"
)

// PlayerRecord is everything recovered for one player name found in a container.
type PlayerRecord struct {
	Username string      `json:"username"`
	Offset   int         `json:"offset"`
	ID       uint64      `json:"id"` // 0x0e id following the name
	Fields   FieldTable  `json:"fields"`
	Combat   CombatBlock `json:"combat"`
	Items    []uint64    `json:"items"`
	Marker   int         `json:"marker"` // -1 when no item block was claimed
}

func (p PlayerRecord) Medal() uint64       { return p.Fields.Get(FieldMedal) }
func (p PlayerRecord) HeroDamage() uint64  { return p.Fields.Get(FieldHeroDamage) }
func (p PlayerRecord) TowerDamage() uint64 { return p.Fields.Get(FieldTowerDamage) }
func (p PlayerRecord) DamageTaken() uint64 { return p.Fields.Get(FieldDamageTaken) }
func (p PlayerRecord) JungleGold() uint64  { return p.Fields.Get(FieldJungleGold) }
func (p PlayerRecord) KillGold() uint64    { return p.Fields.Get(FieldKillGold) }
func (p PlayerRecord) CreepGold() uint64   { return p.Fields.Get(FieldCreepGold) }
func (p PlayerRecord) SearchRole() uint64  { return p.Fields.Get(FieldSearchRole) }
func (p PlayerRecord) PlayedRole() uint64  { return p.Fields.Get(FieldPlayedRole) }
func (p PlayerRecord) Clan() uint64        { return p.Fields.Get(FieldClan) }
func (p PlayerRecord) Lobby() uint64       { return p.Fields.Get(FieldLobby) }

// Gold returns the sum of jungle, kill and creep gold.
func (p PlayerRecord) Gold() uint64 {
	return p.JungleGold() + p.KillGold() + p.CreepGold()
}

func (p PlayerRecord) Heal() uint64 {
	return p.Fields.Get(FieldHealPrimary) + p.Fields.Get(FieldHealSecondary)
}

type Option func(*config)

type config struct {
	itemGap int
}

// WithItemGap sets the number of separator bytes between two item ids.
func WithItemGap(n int) Option {
	return func(c *config) {
		c.itemGap = max(n, 0)
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Parse recovers one PlayerRecord per name anchor in b, in offset order.
// It never fails: anything that cannot be located is left at zero.
func Parse(b []byte, opts ...Option) []PlayerRecord {
	c := newConfig(opts)
	markers := Markers(b)
	segments := Segments(Anchors(b), len(b))
	players := make([]PlayerRecord, 0, len(segments))
	prev := 0
	for _, s := range segments {
		p := PlayerRecord{
			Username: s.Name,
			Offset:   s.Start,
			ID:       SecondaryID(b, s.Anchor),
			Fields:   ReadFields(b[s.Start:s.End]),
			Items:    make([]uint64, 0),
			Marker:   -1,
		}
		if m, ok := ClaimMarker(markers, prev, s.Start); ok {
			p.Marker = m
			p.Items, p.Combat = ReadCombat(b, m, c.itemGap)
		}
		prev = s.Start
		log.Debug().
			Str("username", p.Username).
			Int("offset", p.Offset).
			Int("marker", p.Marker).
			Uint64("hero", p.Combat.HeroID).
			Int("fields", len(p.Fields)).
			Int("items", len(p.Items)).
			Msg("player")
		players = append(players, p)
	}
	return players
}
