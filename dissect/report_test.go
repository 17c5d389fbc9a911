package dissect

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteReport(t *testing.T) {
	players := twoPlayersWant()
	players[0].Fields[FieldMedal] = uint64(MedalGold)
	players[0].Fields[FieldPlayedRole] = uint64(RoleJungle)
	players[0].Fields[FieldSearchRole] = 42
	var sb strings.Builder
	if err := WriteReport(&sb, "His-1-2", players, DefaultLabels()); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		"REPORT (KDA FROM ITEM BLOCK): His-1-2\n" + strings.Repeat("=", 110) + "\n\n",
		"PLAYER: alpha                | ID (0x0E): 12345        | HERO ID: 99 \n",
		"  KDA: 5/3/7 (Level: 12) | MEDAL: GOLD   \n",
		"  GOLD: Total: 7       (Jungle: 7, Kills: 0, Creeps: 0)\n",
		"  ROLE: Search: 42    / Played: JNG  \n",
		"  ITEMS: [10, 20]\n",
		"PLAYER: beta ",
		"  ITEMS: []\n",
		strings.Repeat("-", 100) + "\n\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q:\n%s", want, out)
		}
	}
}

func TestLabels(t *testing.T) {
	l := DefaultLabels()
	if got := l.MedalName(uint64(MedalMVP)); got != "MVP" {
		t.Errorf("got %q, want MVP", got)
	}
	if got := l.RoleName(uint64(RoleRoam)); got != "ROAM" {
		t.Errorf("got %q, want ROAM", got)
	}
	if got := l.MedalName(0); got != "0" {
		t.Errorf("unknown code: got %q, want 0", got)
	}
	if got := Medal(0).String(); got != "Medal(0)" {
		t.Errorf("got %q, want Medal(0)", got)
	}

	merged, err := l.Merge(map[string]string{"1": "SAVAGE", "9": "NINE"}, map[string]string{"6": "COACH"})
	if err != nil {
		t.Fatal(err)
	}
	if got := merged.MedalName(1); got != "SAVAGE" {
		t.Errorf("got %q, want SAVAGE", got)
	}
	if got := merged.MedalName(2); got != "GOLD" {
		t.Errorf("got %q, want GOLD", got)
	}
	if got := merged.RoleName(6); got != "COACH" {
		t.Errorf("got %q, want COACH", got)
	}
	if got := l.MedalName(1); got != "MVP" {
		t.Errorf("defaults were modified: got %q", got)
	}

	if _, err := l.Merge(map[string]string{"mvp": "x"}, nil); err == nil {
		t.Error("expected an error for a non-numeric code")
	}
	if _, err := (Labels{}).Merge(nil, map[string]string{"1": "TOP"}); err != nil {
		t.Error(err)
	}
}

func testMatches() []Match {
	return []Match{
		{File: NewHistoryFile("His-7-1"), Players: twoPlayersWant()},
		{File: NewHistoryFile("His-7-2"), Err: ErrMissingInput},
		{File: NewHistoryFile("His-7-3"), Players: twoPlayersWant()[:1]},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testMatches(), DefaultLabels()); err != nil {
		t.Fatal(err)
	}
	var out struct {
		Matches []struct {
			Path    string `json:"path"`
			MatchID uint64 `json:"matchID"`
			Players []struct {
				Username string   `json:"username"`
				Gold     uint64   `json:"gold"`
				Medal    string   `json:"medal"`
				Items    []uint64 `json:"items"`
			} `json:"players"`
		} `json:"matches"`
		Stats []PlayerTotal `json:"stats"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(out.Matches))
	}
	if out.Matches[1].MatchID != 3 {
		t.Errorf("got match id %d, want 3", out.Matches[1].MatchID)
	}
	alpha := out.Matches[0].Players[0]
	if alpha.Username != "alpha" || alpha.Gold != 7 || alpha.Medal != "0" || len(alpha.Items) != 2 {
		t.Errorf("unexpected player %+v", alpha)
	}
	if len(out.Stats) != 2 || out.Stats[0].Matches != 2 {
		t.Errorf("unexpected stats %+v", out.Stats)
	}
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcel(&buf, testMatches(), DefaultLabels()); err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Summary", "Match 1", "Match 2"}
	if len(sheets) != len(want) {
		t.Fatalf("got sheets %v, want %v", sheets, want)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("got sheets %v, want %v", sheets, want)
			break
		}
	}

	if active := f.GetSheetName(f.GetActiveSheetIndex()); active != summarySheet {
		t.Errorf("got active sheet %q, want %q", active, summarySheet)
	}

	cells := []struct {
		sheet, cell, want string
	}{
		{"Summary", "A3", "alpha"},
		{"Summary", "B3", "2"},
		{"Summary", "C3", "10"},
		{"Summary", "A4", "beta"},
		{"Match 1", "A1", "His-7-1"},
		{"Match 1", "A3", "alpha"},
		{"Match 1", "B3", "12345"},
		{"Match 1", "D3", "5"},
		{"Match 1", "P3", "[10, 20]"},
		{"Match 1", "A4", "beta"},
		{"Match 2", "A1", "His-7-3"},
	}
	for _, c := range cells {
		got, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("%s!%s: got %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}
}
