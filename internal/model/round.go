package model

// Round is the set of words currently shown to the player.
// Theme is empty when the round has no theme word.
type Round struct {
	Number int    `json:"number"`
	Word1  string `json:"word1"`
	Word2  string `json:"word2"`
	Theme  string `json:"theme,omitempty"`
}

// HasTheme reports whether a theme word is shown with the pair.
func (r Round) HasTheme() bool { return r.Theme != "" }

// Words returns the round's words, theme last when present.
func (r Round) Words() []string {
	if r.HasTheme() {
		return []string{r.Word1, r.Word2, r.Theme}
	}
	return []string{r.Word1, r.Word2}
}

// TimerState is the countdown as seen by renderers.
type TimerState struct {
	Enabled   bool `json:"enabled"`
	Running   bool `json:"running"`
	Remaining int  `json:"remaining"`
	Total     int  `json:"total"`
	Warning   bool `json:"warning"`
}
