/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for adorable.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/adorable/cmd/render"
	"bennypowers.dev/adorable/cmd/rules"
	"bennypowers.dev/adorable/cmd/version"
	"bennypowers.dev/adorable/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "adorable",
	Short: "Translate atomic style tokens into CSS declarations",
	Long: `adorable expands compact style tokens such as c(red), w(100~300)
or hbox(left+reverse) into CSS declarations.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDebug(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("prefix", "", "Custom property prefix for token references")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")

	_ = viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("adorable")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(render.Cmd)
	rootCmd.AddCommand(rules.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
