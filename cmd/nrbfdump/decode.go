// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/spf13/cobra"

	"github.com/go-nrbf/nrbf"
	"github.com/go-nrbf/nrbf/log"
)

// runDecode implements the `decode <path>` contract: read the file at
// path, invoke the decoder, print XML on success, or print "Error:
// <message>" to stderr and exit non-zero on failure. With no path, print
// "No file was given." and exit non-zero.
func runDecode(cmd *cobra.Command, args []string, cfgPath string) {
	if len(args) == 0 {
		fmt.Println("No file was given.")
		os.Exit(1)
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer data.Unmap()

	level := cfg.logLevel()
	if verbose {
		level = log.LevelDebug
	}
	opts := &nrbf.Options{
		MaxDepth: cfg.MaxDepth,
		Logger:   log.NewFilter(log.NewStdLogger(os.Stderr), log.FilterLevel(level)),
	}

	root, err := nrbf.Deserialize([]byte(data), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println(root.AsXML(0))
}
