package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/idilsaglam/wordlink/internal/model"
)

// JSON export of a finished session. Single file, human-readable.
// Written once when the player quits; never read back into a game.

// DefaultFileName is used when -export is given a directory.
const DefaultFileName = "wordlink-session.json"

// Session is the exported document.
type Session struct {
	ExportedAt time.Time        `json:"exported_at"`
	Source     string           `json:"source,omitempty"`
	Entries    []model.LogEntry `json:"entries"`
}

// ErrNothingToExport is returned by Save for an empty log.
var ErrNothingToExport = errors.New("no associations to export")

func exportPath(p string) (string, error) {
	if p == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		return filepath.Join(wd, DefaultFileName), nil
	}
	if fi, err := os.Stat(p); err == nil && fi.IsDir() {
		return filepath.Join(p, DefaultFileName), nil
	}
	return p, nil
}

// Save writes the session to path and returns the file actually written.
// An empty path writes DefaultFileName in the working directory.
func Save(path string, s Session) (string, error) {
	if len(s.Entries) == 0 {
		return "", ErrNothingToExport
	}
	p, err := exportPath(path)
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return p, nil
}

// Load reads an exported session for display.
func Load(path string) (Session, error) {
	p, err := exportPath(path)
	if err != nil {
		return Session{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return Session{}, fmt.Errorf("read file: %w", err)
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return Session{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return s, nil
}
