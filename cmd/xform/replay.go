// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/xform/base/errors"
	"cogentcore.org/xform/replay"
	"cogentcore.org/xform/settings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a gesture script and print the resulting history",
	Long: `Loads a YAML script of objects and steps, runs the steps against a fresh scene
with the transform and pivot tools wired to it, then prints the undo history and
the final pivot transform of every object.

A settings file given with --settings overrides the settings in the script.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := replay.Load(args[0])
		if err != nil {
			return err
		}
		if fn := errors.Log1(cmd.Flags().GetString("settings")); fn != "" {
			st, err := settings.Load(fn)
			if err != nil {
				return err
			}
			sc.Settings = st
		}

		var reg *prometheus.Registry
		var registerer prometheus.Registerer
		if errors.Log1(cmd.Flags().GetBool("metrics")) {
			reg = prometheus.NewRegistry()
			registerer = reg
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ss, err := replay.Run(ctx, sc, registerer)
		out := cmd.OutOrStdout()
		ss.Report(out)
		if err != nil {
			return err
		}
		if reg == nil {
			return nil
		}
		mfs, err := reg.Gather()
		if err != nil {
			return fmt.Errorf("gathering metrics: %w", err)
		}
		fmt.Fprintln(out, "metrics:")
		for _, mf := range mfs {
			if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().String("settings", "", "TOML settings file to use instead of the script's settings")
	replayCmd.Flags().Bool("metrics", false, "Print gesture and history metrics after the run")
}
