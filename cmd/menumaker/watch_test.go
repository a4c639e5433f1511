package main

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ealfonsov89/menu-maker/pkg/menu/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestWatchLoopDebounces(t *testing.T) {
	target := filepath.Join(t.TempDir(), "carta.xlsx")
	events := make(chan fsnotify.Event)
	errs := make(chan error)

	var builds atomic.Int32
	rebuilt := make(chan struct{}, 4)
	rebuild := func() {
		builds.Add(1)
		rebuilt <- struct{}{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watchLoop(ctx, events, errs, target, 50*time.Millisecond, rebuild, logging.Nop)
		close(done)
	}()

	events <- fsnotify.Event{Name: target, Op: fsnotify.Write}
	events <- fsnotify.Event{Name: target, Op: fsnotify.Create}
	events <- fsnotify.Event{Name: target, Op: fsnotify.Write}
	// Lock files and other sheets in the directory are ignored.
	events <- fsnotify.Event{Name: filepath.Join(filepath.Dir(target), "~$carta.xlsx"), Op: fsnotify.Write}
	errs <- errors.New("overflow")

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild not triggered")
	}
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), builds.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watch loop did not stop")
	}
}

func TestWatchLoopIgnoresOtherOps(t *testing.T) {
	target := filepath.Join(t.TempDir(), "carta.xlsx")
	events := make(chan fsnotify.Event, 2)
	events <- fsnotify.Event{Name: target, Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: target, Op: fsnotify.Remove}
	close(events)

	var builds atomic.Int32
	watchLoop(context.Background(), events, make(chan error), target, time.Millisecond,
		func() { builds.Add(1) }, logging.Nop)
	assert.Zero(t, builds.Load())
}
