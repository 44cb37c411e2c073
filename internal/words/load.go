package words

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// SourceEmbedded and SourceFallback name the two built-in pools.
const (
	SourceEmbedded = "embedded"
	SourceFallback = "fallback"
)

// ErrNoWords is returned when a source parses to an empty list.
var ErrNoWords = errors.New("word source contains no words")

//go:embed default.txt
var defaultList []byte

// fallbackWords is shown when the configured source cannot be read.
// Three words is below the playable minimum, so the game shows the cannot-start screen.
var fallbackWords = []string{"Error", "Loading", "Words"}

// Fallback returns the placeholder pool used after a failed load.
func Fallback() *Pool { return NewPool(fallbackWords, SourceFallback) }

// Load builds a pool from source: "" selects the embedded list, an http(s) URL is fetched
// with client, anything else is read as a local file.
func Load(ctx context.Context, source string, client *http.Client) (*Pool, error) {
	var (
		list []string
		err  error
	)
	switch {
	case source == "" || source == SourceEmbedded:
		source = SourceEmbedded
		list, err = Parse(bytes.NewReader(defaultList))
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		list, err = fetch(ctx, source, client)
	default:
		list, err = readFile(source)
	}
	if err != nil {
		return nil, err
	}
	p := NewPool(list, source)
	if p.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoWords)
	}
	return p, nil
}

// LoadOrFallback never fails: a load error is logged once and the fallback pool returned.
func LoadOrFallback(ctx context.Context, source string, client *http.Client, logger zerolog.Logger) *Pool {
	p, err := Load(ctx, source, client)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("could not load words, using fallback set")
		return Fallback()
	}
	logger.Debug().Str("source", p.Source()).Int("words", p.Len()).Msg("word pool loaded")
	return p
}

func fetch(ctx context.Context, url string, client *http.Client) ([]string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch words: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch words: unexpected status %s", resp.Status)
	}
	return Parse(resp.Body)
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open words: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
