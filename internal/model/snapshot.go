package model

// State is the controller's top-level display state.
type State string

const (
	StateReady       State = "ready"
	StateCannotStart State = "cannot_start"
)

// Snapshot is a read-only copy of everything a front end renders.
// Entries are newest-first.
type Snapshot struct {
	State       State      `json:"state"`
	Error       string     `json:"error,omitempty"`
	Round       Round      `json:"round"`
	Timer       TimerState `json:"timer"`
	Entries     []LogEntry `json:"entries"`
	ShowHistory bool       `json:"show_history"`
}
