package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/wordlink/internal/config"
	"github.com/idilsaglam/wordlink/internal/game"
	"github.com/idilsaglam/wordlink/internal/model"
	"github.com/idilsaglam/wordlink/internal/server"
	"github.com/idilsaglam/wordlink/internal/store/jsonstore"
	"github.com/idilsaglam/wordlink/internal/tui"
	"github.com/idilsaglam/wordlink/internal/ui"
	"github.com/idilsaglam/wordlink/internal/words"
)

// Options carry root flags. Empty strings and nil pointers mean "not given".
type Options struct {
	ConfigPath string
	Words      string
	Timer      *bool
	Style      string
	Export     string
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	cmd, a := "play", args
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "play", "serve", "words", "show":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(ui.Stderr)
		PrintHelp()
		return 2
	}

	if cmd == "show" && len(a) != 1 {
		ui.Fail("usage: wordlink show <file>")
		return 2
	}
	if cmd != "show" && len(a) != 0 {
		ui.Fail(fmt.Sprintf("%s: unexpected arguments: %s", cmd, strings.Join(a, " ")))
		return 2
	}

	if err := config.LoadDotEnv(); err != nil {
		ui.Fail(".env: " + err.Error())
		return 1
	}
	cfg, err := resolveConfig(opt)
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 2
	}
	ui.SetTheme(cfg.Style)

	logger, closeLog, err := newLogger(cfg, ui.Stderr)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closeLog()

	switch cmd {
	case "serve":
		return doServe(cfg, logger)
	case "words":
		return doWords(cfg, logger)
	case "show":
		return doShow(a[0])
	}
	return doPlay(cfg, opt.Export, logger)
}

func PrintHelp() {
	fmt.Fprintf(ui.Stdout, `wordlink - a word association game

Usage:
  wordlink [flags] [subcommand]

Subcommands:
  play               Play in the terminal (default)
  serve              Serve the game to a browser
  words              Show the word pool in use
  show <file>        Print an exported session log

Flags:
  -config <file>     YAML config file (or WORDLINK_CONFIG)
  -words <source>    Word list: file path or http(s) URL, one word per line
  -timer             Start with the 60 second countdown on
  -style <name>      classic, neon or mono
  -export <file>     Write the session log as JSON when quitting

Keys (play):
  enter  log association    ctrl+n  new words     tab     toggle timer
  ctrl+t new theme          ctrl+r  remove theme  esc     quit

Examples:
  wordlink
  wordlink -timer -words ./nouns.txt
  wordlink -export session.json
  wordlink show session.json
  WORDLINK_ADDR=:8080 wordlink serve
`)
}

// resolveConfig layers the root flags on top of file and environment settings.
func resolveConfig(opt Options) (config.Config, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if opt.Words != "" {
		cfg.Words = opt.Words
	}
	if opt.Timer != nil {
		cfg.TimerEnabled = *opt.Timer
	}
	if opt.Style != "" {
		cfg.Style = opt.Style
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func loadPool(cfg config.Config, logger zerolog.Logger) *words.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()
	return words.LoadOrFallback(ctx, cfg.Words, &http.Client{Timeout: cfg.FetchTimeout}, logger)
}

func gameOptions(cfg config.Config, logger zerolog.Logger) game.Options {
	warn := cfg.WarnSeconds
	if warn == 0 {
		// warn_seconds: 0 switches the warning off
		warn = game.NoWarning
	}
	return game.Options{
		RoundSeconds: cfg.RoundSeconds,
		WarnSeconds:  warn,
		TimerEnabled: cfg.TimerEnabled,
		Logger:       logger,
	}
}

// -------------- subcommand impls ----------------

func doPlay(cfg config.Config, export string, logger zerolog.Logger) int {
	pool := loadPool(cfg, logger)

	// the terminal belongs to the TUI from here on
	gameLog := zerolog.Nop()
	if cfg.LogFile != "" {
		gameLog = logger
	}
	ctrl := game.New(pool, gameOptions(cfg, gameLog))

	entries, err := tui.Run(ctrl)
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}

	if len(entries) > 0 {
		ui.OK(fmt.Sprintf("%d association(s) this session", len(entries)))
	}
	if export == "" {
		return 0
	}
	p, err := jsonstore.Save(export, jsonstore.Session{
		ExportedAt: time.Now(),
		Source:     pool.Source(),
		Entries:    entries,
	})
	if errors.Is(err, jsonstore.ErrNothingToExport) {
		fmt.Fprintln(ui.Stdout, ui.Current().Muted.Render("nothing to export"))
		return 0
	}
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	ui.OK("exported to " + p)
	return 0
}

func doServe(cfg config.Config, logger zerolog.Logger) int {
	pool := loadPool(cfg, logger)
	if pool.Len() <= game.MinPoolSize {
		logger.Warn().Str("source", pool.Source()).Msg("word pool too small, sessions will not start")
	}

	srv := server.New(server.Config{
		Addr: cfg.Addr,
		Pool: pool,
		Game: gameOptions(cfg, logger),
	}, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error().Err(err).Msg("server error")
			return 1
		}
		return 0
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
		return 1
	}
	logger.Info().Msg("server stopped")
	return 0
}

func doWords(cfg config.Config, logger zerolog.Logger) int {
	pool := loadPool(cfg, logger)
	t := ui.Current()

	status := t.Success.Render(t.SymOK + " playable")
	if pool.Len() <= game.MinPoolSize {
		status = t.Error.Render(fmt.Sprintf("%s not playable (need more than %d words)", t.SymFail, game.MinPoolSize))
	}

	lines := []string{
		t.Title.Render("Word pool"),
		fmt.Sprintf("%s %s", t.Muted.Render("source:"), pool.Source()),
		fmt.Sprintf("%s %d", t.Muted.Render("words: "), pool.Len()),
		status,
		"",
	}
	sample := pool.Words()
	if len(sample) > 12 {
		sample = sample[:12]
	}
	lines = append(lines, t.Accent.Render(strings.Join(sample, ", ")))
	if pool.Len() > len(sample) {
		lines = append(lines, t.Muted.Render(fmt.Sprintf("… and %d more", pool.Len()-len(sample))))
	}
	ui.Panel(lines)

	if pool.Len() <= game.MinPoolSize {
		return 1
	}
	return 0
}

func doShow(path string) int {
	s, err := jsonstore.Load(path)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	t := ui.Current()

	header := fmt.Sprintf("%s  %s %d",
		t.Title.Render("Session"),
		t.Accent.Render("entries"), len(s.Entries),
	)
	lines := []string{header}
	if !s.ExportedAt.IsZero() {
		lines = append(lines, t.Muted.Render("exported "+s.ExportedAt.Local().Format(time.DateTime)))
	}
	lines = append(lines, "")
	lines = append(lines, entryLines(s.Entries)...)
	ui.Panel(lines)
	return 0
}

// -------------- rendering helpers --------------

func entryLines(entries []model.LogEntry) []string {
	t := ui.Current()
	if len(entries) == 0 {
		return []string{t.Muted.Render("no entries")}
	}
	newest := model.Newest(entries)
	out := make([]string, 0, len(newest))
	for i, e := range newest {
		idx := fmt.Sprintf("%2d.", len(newest)-i)
		conn := ansi.Truncate(e.Connection, 80, "...")
		pair := e.Pair()
		if e.Theme != "" {
			pair = t.ThemeWord.Render("["+e.Theme+"]") + " " + pair
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), t.Title.Render(pair+":"), conn))
	}
	return out
}
