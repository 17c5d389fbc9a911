package dissect

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteReport writes the plain-text report of players to w.
func WriteReport(w io.Writer, title string, players []PlayerRecord, l Labels) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "REPORT (KDA FROM ITEM BLOCK): %s\n", title)
	sb.WriteString(strings.Repeat("=", 110) + "\n\n")
	for _, p := range players {
		fmt.Fprintf(&sb, "PLAYER: %-20s | ID (0x0E): %-12d | HERO ID: %-3d\n", p.Username, p.ID, p.Combat.HeroID)
		fmt.Fprintf(&sb, "  KDA: %d/%d/%d (Level: %d) | MEDAL: %-7s\n", p.Combat.Kills, p.Combat.Deaths, p.Combat.Assists, p.Combat.Level, l.MedalName(p.Medal()))
		fmt.Fprintf(&sb, "  DAMAGE: Heroes: %-7d Towers: %-7d Taken: %d\n", p.HeroDamage(), p.TowerDamage(), p.DamageTaken())
		fmt.Fprintf(&sb, "  GOLD: Total: %-7d (Jungle: %d, Kills: %d, Creeps: %d)\n", p.Gold(), p.JungleGold(), p.KillGold(), p.CreepGold())
		fmt.Fprintf(&sb, "  ROLE: Search: %-5s / Played: %-5s\n", l.RoleName(p.SearchRole()), l.RoleName(p.PlayedRole()))
		fmt.Fprintf(&sb, "  OTHER: Clan: %-10d | Lobby: %-15d | Heal: %d\n", p.Clan(), p.Lobby(), p.Heal())
		fmt.Fprintf(&sb, "  ITEMS: %s\n", formatItems(p.Items))
		sb.WriteString(strings.Repeat("-", 100) + "\n\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func formatItems(items []uint64) string {
	s := make([]string, len(items))
	for i, v := range items {
		s[i] = strconv.FormatUint(v, 10)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
