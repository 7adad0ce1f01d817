// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/xform/settings"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage tool settings files",
}

var settingsInitCmd = &cobra.Command{
	Use:   "init <file.toml>",
	Short: "Write a settings file with the default settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var st settings.Settings
		st.Defaults()
		if err := st.Save(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsInitCmd)
	rootCmd.AddCommand(settingsCmd)
}
