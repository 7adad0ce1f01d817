// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/xform/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch watches the given settings file and sends the newly loaded
// settings on the returned channel each time the file is written or
// created. Files that fail to parse are logged and skipped. The
// channel is closed once ctx is done.
//
// The watcher runs on its own goroutine, but it only sends values:
// the receiver applies them (for example with [Store.Apply]) on its
// own event loop.
func Watch(ctx context.Context, filename string) (<-chan Settings, error) {
	fn, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("settings: watch %s: %w", filename, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings: watch %s: %w", filename, err)
	}
	// watch the directory so that editors that replace the file
	// by renaming over it are still seen
	if err := w.Add(filepath.Dir(fn)); err != nil {
		errors.Log(w.Close())
		return nil, fmt.Errorf("settings: watch %s: %w", filename, err)
	}
	ch := make(chan Settings)
	go func() {
		defer close(ch)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != fn {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				st, err := Load(fn)
				if err != nil {
					slog.Warn("settings: reload failed", "err", err)
					continue
				}
				slog.Info("settings: reloaded", "file", fn, "coordSpace", st.CoordSpace)
				select {
				case ch <- st:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(fmt.Errorf("settings: watcher: %w", err))
			}
		}
	}()
	return ch, nil
}
