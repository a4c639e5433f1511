package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ealfonsov89/menu-maker/pkg/menu/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceDelay coalesces the burst of events a spreadsheet save produces.
const debounceDelay = 500 * time.Millisecond

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <input.xlsx>",
		Short: "Rebuild the menu whenever the workbook changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	inputPath, err := resolveInput(args, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		a.log.Log(logging.LevelError, "invalid input", "error", err)
		return err
	}
	inputPath, err = filepath.Abs(inputPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild := func() {
		if err := a.build(ctx, inputPath); err != nil {
			a.log.Log(logging.LevelError, "build failed", "path", inputPath, "error", err)
		}
	}
	rebuild()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors replace the file on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(inputPath)); err != nil {
		return err
	}
	a.log.Log(logging.LevelInfo, "watching workbook", "path", inputPath)

	watchLoop(ctx, watcher.Events, watcher.Errors, inputPath, debounceDelay, rebuild, a.log)
	a.log.Log(logging.LevelInfo, "watch stopped")
	return nil
}

// watchLoop calls rebuild once events for target have been quiet for
// delay. It returns when ctx is done or either channel is closed.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error,
	target string, delay time.Duration, rebuild func(), log logging.Logger) {
	target = filepath.Clean(target)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			log.Log(logging.LevelDebug, "workbook changed", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}
			fire = timer.C
		case err, ok := <-errs:
			if !ok {
				return
			}
			log.Log(logging.LevelWarn, "watch error", "error", err)
		case <-fire:
			fire = nil
			rebuild()
		}
	}
}
