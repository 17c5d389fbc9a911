package main

import (
	"github.com/dustin/go-humanize"
	"github.com/mlbb-analyst/his-dissect/dissect"
	"github.com/rs/zerolog/log"
)

func PrintHead(m dissect.Match) {
	withItems := 0
	for _, p := range m.Players {
		if p.Marker >= 0 {
			withItems++
		}
	}
	log.Info().Msgf("File:       %s", m.File.Name())
	log.Info().Msgf("Account ID: %d", m.File.AccountID)
	log.Info().Msgf("Match ID:   %d", m.File.MatchID)
	log.Info().Msgf("Size:       %s", humanize.Bytes(uint64(m.Size)))
	log.Info().Msgf("Players:    %d (%d with item block)", len(m.Players), withItems)
}
