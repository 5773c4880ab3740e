package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/picnoir/picobak/internal/app"
	"github.com/picnoir/picobak/internal/config"
	appErrors "github.com/picnoir/picobak/internal/errors"
	"github.com/picnoir/picobak/internal/infra/exif"
	"github.com/picnoir/picobak/internal/infra/exiftool"
	osfs "github.com/picnoir/picobak/internal/infra/fs"
	"github.com/picnoir/picobak/internal/logging"
	"github.com/picnoir/picobak/internal/presentation"
	"github.com/picnoir/picobak/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "picobak [flags] backup-root [file...]",
		Short: "Back up pictures into a YYYY/MM/DD library tree",
		Long: `picobak copies pictures into a date-based library tree.

Each file's capture date is read from its EXIF metadata, from the
exiftool program when the in-process decoder cannot parse the format,
or from the file's modification time as a last resort. The file is
then copied to backup-root/YYYY/MM/DD/. Re-running on already
backed-up files is a no-op, and name collisions with different
content get a numeric suffix instead of overwriting anything.

Files are given as arguments, or one path per line on stdin when no
file argument is present.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.BackupRoot = args[0]
			cfg.Files = args[1:]
			cfg.FillFromEnv()
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "d", false, "print planned operations without copying anything")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVarP(&cfg.Interactive, "interactive", "i", false, "show a progress UI (file arguments only)")

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	logger := logging.New(os.Stderr, cfg.Verbose)
	filesystem := osfs.OSFS{}

	isDir, err := filesystem.IsDir(cfg.BackupRoot)
	if err != nil {
		return appErrors.Wrap(appErrors.InvalidBackupRoot, "stat", cfg.BackupRoot, err)
	}
	if !isDir {
		return appErrors.Wrap(appErrors.InvalidBackupRoot, "stat", cfg.BackupRoot, errors.New("not a directory"))
	}

	files := cfg.Files
	stdinMode := len(files) == 0
	if stdinMode {
		files, err = readPathList(os.Stdin)
		if err != nil {
			return appErrors.Wrap(appErrors.InvalidConfig, "stdin", "", err)
		}
	}
	if len(files) == 0 {
		return appErrors.Wrap(appErrors.InvalidConfig, "args", "", errors.New("no files to back up"))
	}

	resolver := &app.Resolver{
		FS:     filesystem,
		Exif:   exif.Reader{},
		Logger: logger,
	}
	if toolReader, toolErr := exiftool.NewReader(); toolErr != nil {
		logger.Warnf("exiftool doesn't seem to be installed, some formats will fall back to the file modification time: %v", toolErr)
	} else {
		resolver.ExifTool = toolReader
		defer toolReader.Close()
	}

	runner := &app.Runner{
		FS:       filesystem,
		Resolver: resolver,
		Placer:   &app.Placer{FS: filesystem},
		Logger:   logger,
		DryRun:   cfg.DryRun,
	}

	if cfg.Interactive && !stdinMode && !cfg.DryRun {
		return runInteractive(ctx, cfg, runner, files)
	}

	tracePrinter := presentation.Printer{Writer: os.Stdout, DryRun: cfg.DryRun}
	if cfg.DryRun || cfg.Verbose {
		runner.OnDecision = tracePrinter.PrintDecision
	}

	report := runner.Run(ctx, cfg.BackupRoot, files)

	statsPrinter := presentation.Printer{Writer: os.Stderr, DryRun: cfg.DryRun}
	statsPrinter.PrintReport(report)

	return app.Summary(report)
}

func runInteractive(ctx context.Context, cfg config.Config, runner *app.Runner, files []string) error {
	model := tui.NewModel(tui.Config{
		BackupRoot: cfg.BackupRoot,
		DryRun:     cfg.DryRun,
	})
	program := tea.NewProgram(model)

	runner.OnProgress = func(current, total int, file string) {
		program.Send(tui.ProgressMsg{Current: current, Total: total, File: file})
	}

	go func() {
		report := runner.Run(ctx, cfg.BackupRoot, files)
		program.Send(tui.DoneMsg{Report: report})
	}()

	finalModel, err := program.Run()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}
	final, ok := finalModel.(tui.Model)
	if !ok || final.Quitting {
		return errors.New("interrupted")
	}
	return app.Summary(final.Report)
}

func readPathList(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, scanner.Err()
}
