package dissect

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes the matches and the per-player totals to out.
func WriteJSON(out io.Writer, matches []Match, l Labels) error {
	encoder := json.NewEncoder(out)
	return encoder.Encode(Data(matches, l))
}

// Data returns the JSON export structure of matches. Matches that could
// not be read are left out.
func Data(matches []Match, l Labels) any {
	type player struct {
		PlayerRecord
		Gold        uint64 `json:"gold"`
		Heal        uint64 `json:"heal"`
		Medal       string `json:"medal"`
		SearchRole  string `json:"searchRole"`
		PlayedRole  string `json:"playedRole"`
		HeroDamage  uint64 `json:"heroDamage"`
		TowerDamage uint64 `json:"towerDamage"`
		DamageTaken uint64 `json:"damageTaken"`
	}
	type match struct {
		HistoryFile
		Players []player `json:"players"`
	}
	type output struct {
		Matches     []match       `json:"matches"`
		PlayerStats []PlayerTotal `json:"stats"`
	}
	out := output{
		Matches:     make([]match, 0),
		PlayerStats: PlayerTotals(matches),
	}
	for _, m := range matches {
		if m.Err != nil {
			continue
		}
		players := make([]player, len(m.Players))
		for i, p := range m.Players {
			players[i] = player{
				PlayerRecord: p,
				Gold:         p.Gold(),
				Heal:         p.Heal(),
				Medal:        l.MedalName(p.Medal()),
				SearchRole:   l.RoleName(p.SearchRole()),
				PlayedRole:   l.RoleName(p.PlayedRole()),
				HeroDamage:   p.HeroDamage(),
				TowerDamage:  p.TowerDamage(),
				DamageTaken:  p.DamageTaken(),
			}
		}
		out.Matches = append(out.Matches, match{
			HistoryFile: m.File,
			Players:     players,
		})
	}
	return out
}
