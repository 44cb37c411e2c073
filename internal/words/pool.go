// Package words loads and normalizes the word pool the game draws from.
package words

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
)

// Pool is an ordered, duplicate-free list of non-empty words.
// Duplicates are detected with Unicode case folding; the first spelling wins.
type Pool struct {
	words  []string
	source string
}

// NewPool trims every word, drops blanks and removes duplicates.
func NewPool(words []string, source string) *Pool {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		k := fold.String(w)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, w)
	}
	return &Pool{words: out, source: source}
}

// Len returns the number of distinct words.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.words)
}

// At returns the i-th word.
func (p *Pool) At(i int) string { return p.words[i] }

// Words returns a copy of the pool.
func (p *Pool) Words() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.words))
	copy(out, p.words)
	return out
}

// Source describes where the pool came from ("embedded", a path, a URL or "fallback").
func (p *Pool) Source() string {
	if p == nil {
		return ""
	}
	return p.source
}

// Parse reads one word per line. Surrounding whitespace is trimmed and blank lines are dropped.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}
	return out, nil
}
