// File: watch.go
// Title: Configuration File Watching Implementation
// Description: fsnotify-based file watching with debounce. WatchFile is
//              the generic primitive (also used for unit catalogs); Config.Watch
//              reloads the configuration and notifies change handlers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of polling file watching
// - 2026-10-17 v0.2.0: Switched to fsnotify, context-bound lifecycle

package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/foundation/utils/filex"
	"github.com/msto63/munits/foundation/utils/stringx"
)

// DefaultDebounce coalesces the burst of events editors produce on save
const DefaultDebounce = 250 * time.Millisecond

// WatchOptions configures WatchFile
type WatchOptions struct {
	Debounce time.Duration // Quiet period before onChange fires (default: DefaultDebounce)
	OnError  func(error)   // Receives watcher errors (optional)
}

// WatchFile calls onChange whenever filePath is written, created or
// replaced. The parent directory is watched so that atomic renames are
// seen. Watching stops when ctx is cancelled; the returned channel is
// closed once the watcher goroutine has exited.
func WatchFile(ctx context.Context, filePath string, options WatchOptions, onChange func()) (<-chan struct{}, error) {
	if stringx.IsBlank(filePath) {
		return nil, mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.WatchFile")
	}

	target, err := filepath.Abs(filePath)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to resolve watch path").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.WatchFile").
			WithDetail("filePath", filePath)
	}

	if !filex.IsDir(filepath.Dir(target)) {
		return nil, mdwerror.New("directory of watched file does not exist").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.WatchFile").
			WithDetail("filePath", filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("config.WatchFile")
	}

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.WatchFile").
			WithDetail("filePath", filePath)
	}

	debounce := options.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer watcher.Close()
		watchLoop(ctx, watcher, target, debounce, options.OnError, onChange)
	}()

	return done, nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, debounce time.Duration, onError func(error), onChange func()) {
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

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Watch reloads the configuration whenever its file changes and calls the
// registered change handlers. Reload failures keep the previous data.
func (c *Config) Watch(ctx context.Context, onError func(error)) (<-chan struct{}, error) {
	if stringx.IsBlank(c.filePath) {
		return nil, mdwerror.New("configuration was not loaded from a file").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.Watch")
	}

	return WatchFile(ctx, c.filePath, WatchOptions{OnError: onError}, func() {
		if err := c.reload(); err != nil && onError != nil {
			onError(err)
		}
	})
}

// reload reloads the configuration from the file and notifies handlers
func (c *Config) reload() error {
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read config file during reload").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse config file during reload").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	c.mu.Lock()
	oldConfig := &Config{data: c.data, format: c.format, filePath: c.filePath}
	c.data = newData
	handlers := make([]ChangeHandler, len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	newConfig := &Config{data: deepCopyMap(newData), format: c.format, filePath: c.filePath}
	for _, handler := range handlers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}
	return nil
}
