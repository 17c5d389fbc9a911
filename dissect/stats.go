package dissect

// PlayerTotal aggregates one player's records across matches.
type PlayerTotal struct {
	Username string `json:"username"`
	Matches  int    `json:"matches"`
	Kills    uint64 `json:"kills"`
	Deaths   uint64 `json:"deaths"`
	Assists  uint64 `json:"assists"`
	Gold     uint64 `json:"gold"`
	Heal     uint64 `json:"heal"`
}

// KDA returns (kills + assists) / deaths, with deaths counted as at least 1.
func (t PlayerTotal) KDA() float64 {
	return float64(t.Kills+t.Assists) / float64(max(t.Deaths, 1))
}

// PlayerTotals sums the records of every successfully read match by username,
// in order of first appearance.
func PlayerTotals(matches []Match) []PlayerTotal {
	stats := make([]PlayerTotal, 0)
	index := make(map[string]int)
	for _, m := range matches {
		if m.Err != nil {
			continue
		}
		for _, p := range m.Players {
			i, ok := index[p.Username]
			if !ok {
				stats = append(stats, PlayerTotal{Username: p.Username})
				i = len(stats) - 1
				index[p.Username] = i
			}
			stats[i].Matches++
			stats[i].Kills += p.Combat.Kills
			stats[i].Deaths += p.Combat.Deaths
			stats[i].Assists += p.Combat.Assists
			stats[i].Gold += p.Gold()
			stats[i].Heal += p.Heal()
		}
	}
	return stats
}
