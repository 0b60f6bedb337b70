package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrMalformed = errors.New("malformed policy file")

func isSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Save writes p to path. Paths ending in .db, .sqlite or .sqlite3 get a
// SQLite table; anything else gets compact JSON.
func Save(path string, p Policy) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if isSQLitePath(path) {
		return saveSQLite(path, p)
	}
	return saveJSON(path, p)
}

// Load reads a policy written by Save.
func Load(path string) (Policy, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if isSQLitePath(path) {
		return loadSQLite(path)
	}
	return loadJSON(path)
}

// LoadOrEmpty loads the policy at path. A missing or unreadable file is not
// an error: the caller gets an empty policy and every move is searched live.
func LoadOrEmpty(path string) Policy {
	p, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info().Str("path", path).Msg("no-policy-file")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("ignoring-policy-file")
		}
		return Policy{}
	}
	log.Debug().Str("path", path).Int("entries", len(p)).Msg("loaded-policy")
	return p
}

func saveJSON(path string, p Policy) error {
	// encoding/json writes map keys sorted, so the file is reproducible.
	bts, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bts, 0o644)
}

func loadJSON(path string) (Policy, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := Policy{}
	if err := json.Unmarshal(bts, &p); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
	}
	return p, nil
}
