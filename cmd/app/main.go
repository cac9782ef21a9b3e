package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/clock"
	"github.com/akyairhashvil/slotgrid/internal/config"
	"github.com/akyairhashvil/slotgrid/internal/httpserver"
	"github.com/akyairhashvil/slotgrid/internal/report"
	"github.com/akyairhashvil/slotgrid/internal/schedule"
	"github.com/akyairhashvil/slotgrid/internal/tui"
	"github.com/akyairhashvil/slotgrid/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

func main() {
	var (
		configPath  string
		serveAddr   string
		exportPath  string
		theme       string
		snapshot    bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "config file (default is "+config.DefaultPath()+")")
	flag.StringVar(&serveAddr, "serve", "", "also serve the slot API on this address, e.g. 127.0.0.1:3000")
	flag.StringVar(&exportPath, "export-pdf", "", "write today's schedule to a PDF file and exit")
	flag.StringVar(&theme, "theme", "", "color theme (default, dracula, mono)")
	flag.BoolVar(&snapshot, "snapshot", false, "print a one-shot text grid instead of starting the TUI")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("%s %s\n", config.AppName, tui.VersionLabel())
		return
	}

	cfg, err := config.Load(configPath)
	util.MustSucceed("loading config", err)
	if serveAddr != "" {
		cfg.Serve = serveAddr
	}
	if theme != "" {
		cfg.Theme = theme
	}

	sched, err := cfg.Schedule()
	util.MustSucceed("invalid schedule", err)

	now := clock.System.Now()
	if exportPath != "" {
		if err := exportPDF(util.ExpandHome(exportPath), sched, now); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Schedule written to %s\n", exportPath)
		return
	}
	if shouldSnapshot(snapshot, os.Stdout.Fd()) {
		if err := writeSnapshot(os.Stdout, sched, now); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer closeLog()
	}

	if err := run(cfg, sched); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run drives the TUI and, when configured, the HTTP server until the user
// quits or the process is signalled.
func run(cfg config.Config, sched schedule.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.Serve != "" {
		srv := httpserver.NewServer(cfg.Serve, sched, clock.System)
		if err := srv.Start(); err != nil {
			return fmt.Errorf("starting http server on %s: %w", cfg.Serve, err)
		}
		log.Printf("serving slots on http://%s", srv.Addr())
		g.Go(func() error {
			<-gctx.Done()
			return srv.Stop()
		})
	}

	model := tui.NewGridModel(tui.Options{Schedule: sched, Theme: cfg.Theme})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(gctx))
	g.Go(func() error {
		defer cancel()
		final, err := p.Run()
		if gm, ok := final.(tui.GridModel); ok {
			gm.Shutdown()
		}
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func setupLogging(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		return nil, err
	}
	return func() { util.LogError("closing log file", f.Close()) }, nil
}

func shouldSnapshot(requested bool, fd uintptr) bool {
	return requested || !term.IsTerminal(int(fd))
}

func writeSnapshot(w io.Writer, sched schedule.Config, now time.Time) error {
	rows := report.BuildRows(schedule.Descriptors(sched.Slots(now)), now)
	return report.WriteSnapshot(w, rows, now)
}

func exportPDF(path string, sched schedule.Config, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	rows := report.BuildRows(schedule.Descriptors(sched.Slots(now)), now)
	if err := report.WritePDF(f, rows, now); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
