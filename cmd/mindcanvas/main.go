package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/tessarin/mindcanvas/pkg/config"
	"github.com/tessarin/mindcanvas/pkg/export"
	"github.com/tessarin/mindcanvas/pkg/i18n"
	"github.com/tessarin/mindcanvas/pkg/loader"
	"github.com/tessarin/mindcanvas/pkg/model"
	"github.com/tessarin/mindcanvas/pkg/store"
	"github.com/tessarin/mindcanvas/pkg/toolbar"
	"github.com/tessarin/mindcanvas/pkg/ui"
	"github.com/tessarin/mindcanvas/pkg/updater"
	"github.com/tessarin/mindcanvas/pkg/version"
	"github.com/tessarin/mindcanvas/pkg/viewportpx"
	"github.com/tessarin/mindcanvas/pkg/watcher"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	preview := flag.Bool("preview", false, "Serve exported snapshots in the browser")
	mapFile := flag.String("file", "", "Import a map from a JSON file and open it")
	flag.Parse()

	if *help {
		fmt.Println("Usage: mindcanvas [options]")
		fmt.Println("\nA TUI studio for mind maps and other thinking maps.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Println("mindcanvas " + version.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := openLogger(cfg.Log)

	if *preview {
		if err := export.StartPreview(cfg.Export.Dir); err != nil {
			fmt.Printf("Error starting preview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	loc, err := i18n.New(cfg.UI.Language)
	if err != nil {
		fmt.Printf("Error loading locales: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		fmt.Printf("Error preparing data directory: %v\n", err)
		os.Exit(1)
	}
	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Printf("Error opening map store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	var doc *model.Map
	if *mapFile != "" {
		doc, err = loader.LoadMap(*mapFile)
		if err != nil {
			fmt.Printf("Error importing map: %v\n", err)
			os.Exit(1)
		}
		if err := st.SaveMap(doc); err != nil {
			fmt.Printf("Error saving imported map: %v\n", err)
			os.Exit(1)
		}
	} else {
		doc = loadInitialMap(st, logger)
	}

	// The assistant name is re-read on every text refresh, so a config
	// reload can rename it without restarting.
	var assistantName atomic.Value
	assistantName.Store(cfg.Assistant.Name)

	var prog atomic.Pointer[tea.Program]

	tb := toolbar.DefaultToolbar()
	mgr := toolbar.NewManager(tb, loc, toolbar.Options{
		AssistantName:         func() string { return assistantName.Load().(string) },
		ResizeDelay:           cfg.Layout.ResizeDelay(),
		StructureDelay:        cfg.Layout.StructureDelay(),
		AutoCollapseThreshold: cfg.Layout.AutoCollapseThreshold,
		Logger:                logger,
		OnApplied: func(t toolbar.Tier) {
			// Send must never run on the engine's goroutine while the
			// program is still draining its own message.
			if p := prog.Load(); p != nil {
				go p.Send(ui.LayoutAppliedMsg{Tier: t})
			}
		},
	})
	defer mgr.Close()
	loc.OnChange(func(code string) {
		mgr.RefreshText()
		// Persist in-app language switches. Loading first keeps other
		// settings the config file may have picked up since startup.
		fresh, err := config.Load()
		if err != nil || fresh.UI.Language == code {
			return
		}
		fresh.UI.Language = code
		if err := config.Save(fresh); err != nil {
			logger.Warn("could not persist language choice", "error", err)
		}
	})

	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		cols = 100
	}
	mgr.Init(viewportpx.Width(cols, cfg.Layout.CellWidthPx))

	canvas := ui.NewCanvasModel(ui.CanvasOptions{
		Doc:         doc,
		Store:       st,
		Localizer:   loc,
		Manager:     mgr,
		Toolbar:     tb,
		Theme:       ui.DefaultTheme(nil),
		ExportDir:   cfg.Export.Dir,
		CellWidthPx: cfg.Layout.CellWidthPx,
	})

	cw, err := watcher.NewConfigWatcher(config.Path(), time.Second, func() {
		fresh, err := config.Load()
		if err != nil {
			logger.Warn("config reload failed", "error", err)
			return
		}
		assistantName.Store(fresh.Assistant.Name)
		if fresh.UI.Language != loc.Current() {
			if err := loc.SetLanguage(fresh.UI.Language); err != nil {
				logger.Warn("config reload: bad language", "error", err)
			}
			return
		}
		mgr.RefreshText()
	}, logger)
	if err != nil {
		logger.Warn("config watch unavailable", "error", err)
	} else {
		defer cw.Close()
	}

	go func() {
		if tag, url, err := updater.CheckForUpdates(); err == nil && tag != "" {
			logger.Info("update available", "version", tag, "url", url)
		}
	}()

	p := tea.NewProgram(ui.NewCanvasProgram(canvas), tea.WithAltScreen())
	prog.Store(p)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running mindcanvas: %v\n", err)
		os.Exit(1)
	}
}

// loadInitialMap restores the most recently edited map, falling back to the
// starter map for an empty or unreadable store.
func loadInitialMap(st *store.Store, log *slog.Logger) *model.Map {
	id, err := st.LatestMapID()
	if err != nil || id == "" {
		return model.Sample()
	}
	m, err := st.LoadMap(id)
	if err != nil {
		log.Warn("stored map unreadable; starting fresh", "error", err)
		return model.Sample()
	}
	return m
}

// openLogger writes diagnostics to the configured log file. The TUI owns
// stdout, so on any failure logging is discarded rather than printed.
func openLogger(cfg config.LogConfig) *slog.Logger {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.Path == "" {
		return discard
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return discard
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return discard
	}

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
}
