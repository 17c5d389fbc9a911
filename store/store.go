// Package store keeps parsed fight history in a sqlite database so totals
// can be computed across runs.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mlbb-analyst/his-dissect/dissect"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	schema := `
		CREATE TABLE IF NOT EXISTS players (
			source       TEXT NOT NULL,
			position     INTEGER NOT NULL,
			account_id   TEXT NOT NULL,
			match_id     TEXT NOT NULL,
			username     TEXT NOT NULL,
			player_id    TEXT NOT NULL,
			hero_id      TEXT NOT NULL,
			kills        TEXT NOT NULL,
			deaths       TEXT NOT NULL,
			assists      TEXT NOT NULL,
			level        TEXT NOT NULL,
			medal        TEXT NOT NULL,
			gold         TEXT NOT NULL,
			heal         TEXT NOT NULL,
			hero_damage  TEXT NOT NULL,
			tower_damage TEXT NOT NULL,
			damage_taken TEXT NOT NULL,
			items        TEXT NOT NULL,
			PRIMARY KEY (source, position)
		);
		CREATE INDEX IF NOT EXISTS idx_players_username ON players(username);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveMatch stores every player of m, replacing rows previously saved
// for the same file.
func (s *Store) SaveMatch(ctx context.Context, m dissect.Match) error {
	if m.Err != nil {
		return m.Err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	source := m.File.Name()
	if _, err := tx.ExecContext(ctx, `DELETE FROM players WHERE source = ?`, source); err != nil {
		return fmt.Errorf("failed to clear %s: %w", source, err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO players (
			source, position, account_id, match_id, username, player_id,
			hero_id, kills, deaths, assists, level, medal, gold, heal,
			hero_damage, tower_damage, damage_taken, items
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range m.Players {
		items, err := json.Marshal(p.Items)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx,
			source,
			p.Offset,
			text(m.File.AccountID),
			text(m.File.MatchID),
			p.Username,
			text(p.ID),
			text(p.Combat.HeroID),
			text(p.Combat.Kills),
			text(p.Combat.Deaths),
			text(p.Combat.Assists),
			text(p.Combat.Level),
			text(p.Medal()),
			text(p.Gold()),
			text(p.Heal()),
			text(p.HeroDamage()),
			text(p.TowerDamage()),
			text(p.DamageTaken()),
			string(items),
		)
		if err != nil {
			return fmt.Errorf("failed to insert %s: %w", p.Username, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debug().Str("source", source).Int("players", len(m.Players)).Msg("saved match")
	return nil
}

// Totals aggregates every stored player by username, in username order.
// Counters are stored as text and summed here, since scanned values can
// exceed the signed 64-bit range of sqlite integers.
func (s *Store) Totals(ctx context.Context) ([]dissect.PlayerTotal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT username, source, kills, deaths, assists, gold, heal
		FROM players
		ORDER BY username, source
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]dissect.PlayerTotal, 0)
	var source string
	for rows.Next() {
		var username, src string
		var counters [5]string
		if err := rows.Scan(&username, &src, &counters[0], &counters[1], &counters[2], &counters[3], &counters[4]); err != nil {
			return nil, err
		}
		var v [5]uint64
		for i, c := range counters {
			if v[i], err = strconv.ParseUint(c, 10, 64); err != nil {
				return nil, fmt.Errorf("invalid counter for %s in %s: %w", username, src, err)
			}
		}
		if len(totals) == 0 || totals[len(totals)-1].Username != username {
			totals = append(totals, dissect.PlayerTotal{Username: username})
			source = ""
		}
		t := &totals[len(totals)-1]
		if src != source {
			t.Matches++
			source = src
		}
		t.Kills += v[0]
		t.Deaths += v[1]
		t.Assists += v[2]
		t.Gold += v[3]
		t.Heal += v[4]
	}
	return totals, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

func text(v uint64) string {
	return strconv.FormatUint(v, 10)
}
