package dissect

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// WriteExcel writes one sheet per readable match and a summary sheet
// with the per-player totals.
func WriteExcel(out io.Writer, matches []Match, l Labels) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	c := newExcelCompass(f, summarySheet)

	n := 0
	for _, m := range matches {
		if m.Err != nil {
			continue
		}
		n++
		sheet := fmt.Sprintf("Match %d", n)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		c.Sheet(sheet)

		c.Heading(m.File.Name())
		c.Down(1).Str("Player")
		c.Right(1).Str("ID")
		c.Right(1).Str("Hero")
		c.Right(1).Str("Kills")
		c.Right(1).Str("Deaths")
		c.Right(1).Str("Assists")
		c.Right(1).Str("Level")
		c.Right(1).Str("Medal")
		c.Right(1).Str("Hero damage")
		c.Right(1).Str("Tower damage")
		c.Right(1).Str("Damage taken")
		c.Right(1).Str("Gold")
		c.Right(1).Str("Search role")
		c.Right(1).Str("Played role")
		c.Right(1).Str("Heal")
		c.Right(1).Str("Items")

		for _, p := range m.Players {
			c.Down(1).Left(15).Str(p.Username)
			c.Right(1).Uint(p.ID)
			c.Right(1).Uint(p.Combat.HeroID)
			c.Right(1).Uint(p.Combat.Kills)
			c.Right(1).Uint(p.Combat.Deaths)
			c.Right(1).Uint(p.Combat.Assists)
			c.Right(1).Uint(p.Combat.Level)
			c.Right(1).Str(l.MedalName(p.Medal()))
			c.Right(1).Uint(p.HeroDamage())
			c.Right(1).Uint(p.TowerDamage())
			c.Right(1).Uint(p.DamageTaken())
			c.Right(1).Uint(p.Gold())
			c.Right(1).Str(l.RoleName(p.SearchRole()))
			c.Right(1).Str(l.RoleName(p.PlayedRole()))
			c.Right(1).Uint(p.Heal())
			c.Right(1).Str(formatItems(p.Items))
		}
	}

	c.Sheet(summarySheet)
	c.Heading("Statistics")
	c.Down(1).Str("Player")
	c.Right(1).Str("Matches")
	c.Right(1).Str("Kills")
	c.Right(1).Str("Deaths")
	c.Right(1).Str("Assists")
	c.Right(1).Str("KDA")
	c.Right(1).Str("Gold")
	c.Right(1).Str("Heal")

	for _, s := range PlayerTotals(matches) {
		c.Down(1).Left(7).Str(s.Username)
		c.Right(1).Int(s.Matches)
		c.Right(1).Uint(s.Kills)
		c.Right(1).Uint(s.Deaths)
		c.Right(1).Uint(s.Assists)
		c.Right(1).Float(s.KDA(), 2)
		c.Right(1).Uint(s.Gold)
		c.Right(1).Uint(s.Heal)
		log.Debug().Interface("player_totals", s).Send()
	}

	// sheet indexes shift once Sheet1 is deleted
	first, err := f.GetSheetIndex(summarySheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(first)

	return f.Write(out)
}

var headerFont = &excelize.Font{
	Family: "Arial",
	Size:   24,
}

type excelCompass struct {
	f        *excelize.File
	s        string
	row, col int
}

func newExcelCompass(f *excelize.File, sheet string) *excelCompass {
	return &excelCompass{
		f: f,
		s: sheet,
	}
}

func (c *excelCompass) Sheet(sheet string) *excelCompass {
	c.s = sheet
	c.Reset()
	return c
}

func (c *excelCompass) Reset() *excelCompass {
	c.row = 0
	c.col = 0
	return c
}

func (c *excelCompass) Down(n int) *excelCompass {
	c.row += n
	return c
}

func (c *excelCompass) Left(n int) *excelCompass {
	c.col -= n
	if c.col < 0 {
		c.col = 0
	}
	return c
}

func (c *excelCompass) Right(n int) *excelCompass {
	c.col += n
	return c
}

func (c *excelCompass) Cell() string {
	cell, _ := excelize.CoordinatesToCellName(c.col+1, c.row+1, false)
	return cell
}

func (c *excelCompass) Heading(text string) *excelCompass {
	c.f.SetCellRichText(c.s, c.Cell(), []excelize.RichTextRun{
		{
			Text: text,
			Font: headerFont,
		},
	})
	return c
}

func (c *excelCompass) Str(text string) *excelCompass {
	c.f.SetCellStr(c.s, c.Cell(), text)
	return c
}

func (c *excelCompass) Int(n int) *excelCompass {
	c.f.SetCellInt(c.s, c.Cell(), n)
	return c
}

func (c *excelCompass) Uint(n uint64) *excelCompass {
	c.f.SetCellUint(c.s, c.Cell(), n)
	return c
}

func (c *excelCompass) Float(n float64, precision int) *excelCompass {
	c.f.SetCellFloat(c.s, c.Cell(), n, precision, 64)
	return c
}
