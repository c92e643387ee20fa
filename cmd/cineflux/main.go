package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/alvarorichard/cineflux/internal/api"
	"github.com/alvarorichard/cineflux/internal/catalog"
	"github.com/alvarorichard/cineflux/internal/config"
	"github.com/alvarorichard/cineflux/internal/presence"
	"github.com/alvarorichard/cineflux/internal/ui"
	"github.com/alvarorichard/cineflux/internal/util"
	"github.com/alvarorichard/cineflux/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	startAll := time.Now()

	cfg, err := config.Parse(args, os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, util.ErrorHandler(err))
		return 2
	}

	if cfg.ShowVersion {
		version.ShowVersion()
		return 0
	}
	if cfg.ShowHelp {
		util.Helper()
		return 0
	}

	util.SetDebugMode(cfg.Debug)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, util.ErrorHandler(err))
		return 1
	}

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = config.DefaultLogFile()
	}
	logOut, closeLog, err := openLog(logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, util.ErrorHandler(errors.Wrap(err, "logging disabled")))
	}
	defer closeLog()
	util.InitLogger(logOut)
	util.Info("Starting CineFlux", "version", version.Version, "language", cfg.Language, "term", cfg.SearchTerm)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := api.NewTMDBClient(nil, cfg.APIKey, cfg.Language, cfg.BaseURL)
	notices := ui.NewNoticeQueue()
	ctrl := catalog.New(client,
		catalog.WithNotifier(notices),
		catalog.WithSearchTerm(cfg.SearchTerm),
	)

	if cfg.Discord {
		discordManager := presence.NewManager()
		if err := discordManager.Initialize(); err != nil {
			util.Warn("Discord Rich Presence unavailable", "err", err)
		} else {
			defer discordManager.Shutdown()
			ctrl.Subscribe(discordManager.Reflect)
			discordManager.Reflect(ctrl.Snapshot())
		}
	}

	util.Debug("Boot finished", "took", time.Since(startAll))

	program := tea.NewProgram(ui.New(ctx, ctrl, notices), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		util.Error("UI stopped with an error", "err", err)
		fmt.Fprintln(os.Stderr, util.ErrorHandler(err))
		return 1
	}

	util.Info("Bye")
	return 0
}

// openLog opens the log file for appending, creating its directory.
// On failure it returns io.Discard so the UI keeps the terminal to itself.
func openLog(path string) (io.Writer, func(), error) {
	noop := func() {}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, noop, errors.Wrapf(err, "cannot create log directory for %s", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, noop, errors.Wrapf(err, "cannot open log file %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}
