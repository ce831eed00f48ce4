// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command nrbfdump decodes a .NET Remoting Binary Format stream and prints
// its record tree as XML, mirroring the teacher's pedumper CLI shape: a
// cobra root command with a version subcommand and a single operation
// subcommand that takes a file path.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var verbose bool

func main() {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "nrbfdump",
		Short: "A .NET Remoting Binary Format stream decoder",
		Long:  "nrbfdump decodes NRBF (.NET Remoting Binary Format) streams into an XML record tree",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level diagnostic logging")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("nrbfdump version " + version)
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [path]",
		Short: "Decode an NRBF stream and print it as XML",
		Run: func(cmd *cobra.Command, args []string) {
			runDecode(cmd, args, cfgPath)
		},
	}
	decodeCmd.Flags().StringVar(&cfgPath, "config", "", "path to a TOML config file (default $HOME/.nrbfdump.toml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(decodeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
