package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mooh971/Go-panel/internal/config"
	"github.com/mooh971/Go-panel/internal/engine"
	"github.com/mooh971/Go-panel/internal/logger"
	"github.com/mooh971/Go-panel/internal/netutil"
	"github.com/mooh971/Go-panel/internal/probe"
	"github.com/mooh971/Go-panel/internal/provision"
	"github.com/mooh971/Go-panel/internal/runner"
	"github.com/mooh971/Go-panel/internal/tui"
	"github.com/mooh971/Go-panel/internal/tui/components"
)

func runProvision(flags *rootFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd())) && !flags.plain

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	steps := provision.BuildSteps(cfg)

	// Consent gate. Execute is only ever reached with an approved plan;
	// declining leaves the host untouched.
	if !flags.yes {
		if !interactive {
			return fmt.Errorf("interactive terminal required; rerun with --yes")
		}
		confirmed, err := tui.Confirm(ctx, cfg, len(steps))
		if err != nil {
			return err
		}
		if !confirmed {
			run := engine.NewRun(nil)
			run.Outcome = engine.OutcomeAborted
			printSummary(os.Stdout, run, cfg)
			return fmt.Errorf("aborted by user")
		}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	rc := &engine.Context{
		Context: ctx,
		Config:  cfg,
		Probe:   probe.New(),
		WorkDir: workDir,
	}

	var run *engine.Run
	if interactive {
		run, err = runInteractive(ctx, cancel, cfg, steps, rc, flags)
	} else {
		run, err = runPlain(ctx, cfg, steps, rc, flags)
	}
	if err != nil {
		return err
	}

	printSummary(os.Stdout, run, cfg)

	if run.Outcome != engine.OutcomeSucceeded {
		return run.Err
	}
	return nil
}

// runInteractive drives the run under the Bubbletea program. The program
// owns the terminal, so log entries go to the configured file; the
// orchestrator executes on this goroutine and feeds the program through the
// reporter.
func runInteractive(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, steps []engine.Step, rc *engine.Context, flags *rootFlags) (*engine.Run, error) {
	log, closeLog, err := logger.NewFile(cfg.Log.File, logLevel(cfg, flags))
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer closeLog() //nolint:errcheck

	rc.Logger = log

	program := tea.NewProgram(tui.NewModel(steps, cancel))

	done := make(chan struct{})
	var programErr error
	go func() {
		_, programErr = program.Run()
		close(done)
	}()

	orch := engine.NewOrchestrator(runner.New(), tui.NewTeaReporter(program), log)
	run := orch.Execute(ctx, steps, rc)

	<-done
	if programErr != nil {
		return nil, fmt.Errorf("progress renderer: %w", programErr)
	}
	return run, nil
}

// runPlain drives the run with line output on stdout and human-readable log
// entries on stderr.
func runPlain(ctx context.Context, cfg *config.Config, steps []engine.Step, rc *engine.Context, flags *rootFlags) (*engine.Run, error) {
	log, err := logger.New(logger.Options{Level: logLevel(cfg, flags), HumanReadable: true, Writer: os.Stderr})
	if err != nil {
		return nil, err
	}

	rc.Logger = log

	orch := engine.NewOrchestrator(runner.New(), tui.NewPlain(os.Stdout), log)
	return orch.Execute(ctx, steps, rc), nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.ParseConfig(path)
}

func logLevel(cfg *config.Config, flags *rootFlags) string {
	if flags.verbose {
		return "debug"
	}
	return cfg.Log.Level
}

// printSummary renders the final one-branch summary for the finished run.
func printSummary(out io.Writer, run *engine.Run, cfg *config.Config) {
	endpoint := fmt.Sprintf("http://%s:%d", netutil.PrimaryAddr(), cfg.Service.Port)
	summary := components.NewSummary(components.SummaryData{
		Run:      run,
		Endpoint: endpoint,
		Unit:     strings.TrimSuffix(cfg.Service.Unit, ".service"),
	}).View()
	if summary != "" {
		fmt.Fprintln(out, summary)
	}
}
