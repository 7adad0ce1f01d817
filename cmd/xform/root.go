// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"cogentcore.org/xform/base/errors"
	"cogentcore.org/xform/base/logx"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xform",
	Short: "xform drives the 3D transform tools outside of a viewport",
	Long: `xform replays scripted selection, gizmo and pivot gestures against a scene,
recording every change in an undo history, and manages the tool settings file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		vv := errors.Log1(cmd.Flags().GetBool("vv"))
		v := errors.Log1(cmd.Flags().GetBool("verbose"))
		q := errors.Log1(cmd.Flags().GetBool("quiet"))
		logx.UserLevel = logx.LevelFromFlags(vv, v, q)
		logx.SetDefaultLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show info level log messages")
	rootCmd.PersistentFlags().Bool("vv", false, "Show debug level log messages")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only show error level log messages")
}
