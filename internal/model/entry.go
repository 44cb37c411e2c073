package model

import "time"

// LogEntry is one recorded association. Entries are append-only.
type LogEntry struct {
	ID         string    `json:"id"`
	Theme      string    `json:"theme,omitempty"`
	Word1      string    `json:"word1"`
	Word2      string    `json:"word2"`
	Connection string    `json:"connection"`
	CreatedAt  time.Time `json:"created_at"`
}

// Pair renders the two words the way the history shows them.
func (e LogEntry) Pair() string { return e.Word1 + " & " + e.Word2 }

// Newest returns a copy of entries ordered newest-first.
func Newest(entries []LogEntry) []LogEntry {
	out := make([]LogEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
