// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/xform/events"
	"cogentcore.org/xform/replay"
	"cogentcore.org/xform/settings"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <settings.toml>",
	Short: "Apply changes to a settings file to a live tool until interrupted",
	Long: `Loads the settings file into a tool session, then watches it and applies
every change, printing the coordinate space of the manipulation handle each time
it changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchSettings(ctx, args[0], cmd.OutOrStdout())
	},
}

// watchSettings applies every change to the settings file fn to a new
// session until ctx is done, printing the coordinate space to out at
// the start and whenever it changes.
func watchSettings(ctx context.Context, fn string, out io.Writer) error {
	st, err := settings.Load(fn)
	if err != nil {
		return err
	}
	ss := replay.NewSession(st, nil)
	ss.Settings.On(events.CoordSpaceChanged, func(e events.Event) {
		cs, ok := e.(*events.Base).Data.(settings.CoordSpaces)
		if !ok {
			cs = ss.Settings.CoordSpace()
		}
		fmt.Fprintf(out, "coordinate space: %s\n", cs)
	})

	changes, err := settings.Watch(ctx, fn)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "coordinate space: %s\n", ss.Gizmo.CoordSpace)
	for st := range changes {
		slog.Info("watch: settings changed", "file", fn)
		ss.Settings.Apply(st)
		ss.Gizmo.SetOpacity(st.GizmoOpacity)
		if st.GizmoReferenceSize > 0 {
			ss.Viewport.ReferenceSize = st.GizmoReferenceSize
			ss.Viewport.Update()
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
