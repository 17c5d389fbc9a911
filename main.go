package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/mlbb-analyst/his-dissect/dissect"
	"github.com/mlbb-analyst/his-dissect/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var Version = "dev"

const defaultReport = "report_output.txt"

func main() {
	setup()
	input := viper.GetString("input")
	s, err := os.Stat(input)
	if err != nil {
		if dissect.Missing(err) {
			log.Fatal().Str("input", input).Msg("input file not found")
		}
		log.Fatal().Err(err).Send()
	}
	opts := []dissect.Option{dissect.WithItemGap(viper.GetInt("item-gap"))}
	labels, err := dissect.DefaultLabels().Merge(
		viper.GetStringMapString("labels.medal"),
		viper.GetStringMapString("labels.role"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid labels in config")
	}
	// Dumps the container of a single file
	if dump := viper.GetString("dump"); len(dump) > 0 {
		if s.IsDir() {
			log.Fatal().Msg("Dissect will only dump a single history file.")
		}
		if err := dumpFile(input, dump, opts); err != nil {
			log.Fatal().Err(err).Send()
		}
		log.Info().Msgf("Dump saved to %s.", dump)
		return
	}
	var files []dissect.HistoryFile
	if s.IsDir() {
		if files, err = dissect.ListHistoryFiles(input); err != nil {
			log.Fatal().Err(err).Send()
		}
	} else {
		files = []dissect.HistoryFile{dissect.NewHistoryFile(input)}
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	start := time.Now()
	matches := dissect.ReadHistory(ctx, files, viper.GetInt("workers"), opts...)
	size := 0
	for _, m := range matches {
		size += m.Size
	}
	log.Info().
		Int("files", len(files)).
		Str("size", humanize.Bytes(uint64(size))).
		Str("elapsed", durafmt.Parse(time.Since(start)).LimitFirstN(2).String()).
		Msg("parsed")
	if !s.IsDir() && matches[0].Err != nil {
		log.Fatal().Err(matches[0].Err).Msg("no report written")
	}
	if !s.IsDir() {
		PrintHead(matches[0])
	}
	if err := export(matches, s.IsDir(), viper.GetString("export"), labels); err != nil {
		log.Fatal().Err(err).Send()
	}
	if db := viper.GetString("db"); len(db) > 0 {
		if err := save(ctx, db, matches); err != nil {
			log.Fatal().Err(err).Send()
		}
	}
	if viper.GetBool("totals") {
		printTotals(matches)
	}
}

func setup() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	pflag.StringP("export", "x", "", "specifies the output path (*.txt, *.json, *.xlsx, stdout)")
	pflag.BoolP("debug", "d", false, "sets log level to debug")
	pflag.StringP("dump", "p", "", "dumps the decoded container to specified file")
	pflag.StringP("config", "c", "", "config file with label overrides")
	pflag.IntP("workers", "j", runtime.NumCPU(), "number of history files parsed in parallel")
	pflag.Int("item-gap", 0, "separator bytes between two item ids")
	pflag.String("db", "", "saves parsed players to the specified sqlite database")
	pflag.Bool("totals", false, "prints per-player totals (from --db when set)")
	pflag.BoolP("version", "v", false, "prints the version")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatal().Err(err).Send()
	}
	viper.SetEnvPrefix("his")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if viper.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if viper.GetBool("version") {
		log.Info().Msgf("his-dissect version: %s", Version)
		os.Exit(0)
	}
	if config := viper.GetString("config"); len(config) > 0 {
		viper.SetConfigFile(config)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("could not read config")
		}
	}
	if len(pflag.Args()) < 1 {
		log.Fatal().Msg("Specify a valid fight history file/folder path (His-* files)")
	}
	viper.Set("input", pflag.Args()[0])
	export := viper.GetString("export")
	if len(export) > 0 && !(strings.HasSuffix(export, ".txt") || strings.HasSuffix(export, ".json") || strings.HasSuffix(export, ".xlsx") || export == "stdout") {
		log.Fatal().Msg("Specify a valid output path (*.txt, *.json, *.xlsx, stdout)")
	}
	if export == "stdout" {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
}

// export writes matches to path. With no path, a single file is reported
// to report_output.txt and a folder to one report_<name>.txt per file.
func export(matches []dissect.Match, dir bool, path string, labels dissect.Labels) error {
	switch {
	case path == "stdout":
		return writeReports(os.Stdout, matches, labels)
	case path == "" && dir:
		for _, m := range matches {
			if m.Err != nil {
				continue
			}
			out := "report_" + m.File.Name() + ".txt"
			if err := writeFile(out, func(w io.Writer) error {
				return dissect.WriteReport(w, m.File.Name(), m.Players, labels)
			}); err != nil {
				return err
			}
			log.Info().Msgf("Report saved to %s.", out)
		}
		return nil
	case path == "":
		path = defaultReport
	}
	err := writeFile(path, func(w io.Writer) error {
		switch filepath.Ext(path) {
		case ".json":
			return dissect.WriteJSON(w, matches, labels)
		case ".xlsx":
			return dissect.WriteExcel(w, matches, labels)
		}
		return writeReports(w, matches, labels)
	})
	if err != nil {
		return err
	}
	log.Info().Msgf("Output saved to %s.", path)
	return nil
}

func writeReports(w io.Writer, matches []dissect.Match, labels dissect.Labels) error {
	for _, m := range matches {
		if m.Err != nil {
			continue
		}
		if err := dissect.WriteReport(w, m.File.Name(), m.Players, labels); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	return write(file)
}

func save(ctx context.Context, path string, matches []dissect.Match) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	for _, m := range matches {
		if m.Err != nil {
			continue
		}
		if err := s.SaveMatch(ctx, m); err != nil {
			return err
		}
	}
	log.Info().Msgf("Players saved to %s.", path)
	return nil
}

func printTotals(matches []dissect.Match) {
	totals := dissect.PlayerTotals(matches)
	if db := viper.GetString("db"); len(db) > 0 {
		s, err := store.Open(db)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		defer s.Close()
		if totals, err = s.Totals(context.Background()); err != nil {
			log.Fatal().Err(err).Send()
		}
	}
	for _, t := range totals {
		fmt.Printf("%-20s matches: %-4d KDA: %d/%d/%d (%.2f) gold: %-8d heal: %d\n",
			t.Username, t.Matches, t.Kills, t.Deaths, t.Assists, t.KDA(), t.Gold, t.Heal)
	}
}

func dumpFile(input, output string, opts []dissect.Option) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()
	r, err := dissect.NewReader(f, opts...)
	if err != nil {
		return err
	}
	out, err := os.OpenFile(output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer out.Close()
	return r.Dump(out)
}
