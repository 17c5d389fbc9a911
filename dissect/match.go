package dissect

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"
	"github.com/rs/zerolog/log"
)

const historyPrefix = "His-"

// HistoryFile is a fight history file, named His-<account>-<match> by the client.
type HistoryFile struct {
	Path      string `json:"path"`
	AccountID uint64 `json:"accountID,omitempty"`
	MatchID   uint64 `json:"matchID,omitempty"`
}

// Match is the result of reading one HistoryFile.
type Match struct {
	File    HistoryFile    `json:"file"`
	Players []PlayerRecord `json:"players"`
	Size    int            `json:"size"` // decoded container bytes
	Err     error          `json:"-"`
}

// NewHistoryFile parses the account and match ids from the name of path.
// Ids are left at 0 when the name does not follow the client's scheme.
func NewHistoryFile(path string) HistoryFile {
	f := HistoryFile{Path: path}
	name := filepath.Base(path)
	if !strings.HasPrefix(name, historyPrefix) {
		return f
	}
	parts := strings.Split(strings.TrimPrefix(name, historyPrefix), "-")
	if len(parts) != 2 {
		return f
	}
	account, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return f
	}
	match, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return f
	}
	f.AccountID = account
	f.MatchID = match
	return f
}

// Name returns the base name of the file.
func (f HistoryFile) Name() string {
	return filepath.Base(f.Path)
}

// ListHistoryFiles returns the fight history files in dir, sorted by name.
func ListHistoryFiles(dir string) ([]HistoryFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), historyPrefix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		return nil, ErrInvalidFolder
	}
	slices.Sort(paths)
	files := make([]HistoryFile, len(paths))
	for i, p := range paths {
		files[i] = NewHistoryFile(p)
	}
	return files, nil
}

// ReadMatch reads and parses a single history file.
// A missing file is reported through Match.Err as ErrMissingInput.
func ReadMatch(f HistoryFile, opts ...Option) Match {
	m := Match{File: f}
	in, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrMissingInput, f.Path)
		}
		m.Err = err
		return m
	}
	defer in.Close()
	r, err := NewReader(in, opts...)
	if err != nil {
		m.Err = fmt.Errorf("%s: %w", f.Name(), err)
		return m
	}
	if err := r.Read(); !Ok(err) {
		m.Err = err
		return m
	}
	m.Players = r.Players
	m.Size = len(r.Bytes())
	log.Debug().
		Str("file", f.Name()).
		Str("size", humanize.Bytes(uint64(m.Size))).
		Int("players", len(m.Players)).
		Msg("match")
	return m
}

// ReadHistory reads files using at most workers goroutines (runtime.NumCPU()
// when workers < 1). Results are in the order of files. Failed files are
// logged and kept with Match.Err set; they never stop the batch.
func ReadHistory(ctx context.Context, files []HistoryFile, workers int, opts ...Option) []Match {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	matches := make([]Match, len(files))
	wg := sizedwaitgroup.New(workers)
	for i, f := range files {
		if err := wg.AddWithContext(ctx); err != nil {
			matches[i] = Match{File: f, Err: err}
			continue
		}
		go func(i int, f HistoryFile) {
			defer wg.Done()
			matches[i] = ReadMatch(f, opts...)
		}(i, f)
	}
	wg.Wait()
	for _, m := range matches {
		if m.Err != nil {
			log.Warn().Err(m.Err).Str("file", m.File.Name()).Msg("skipping")
		}
	}
	return matches
}
