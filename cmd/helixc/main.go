// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Command helixc is the thin CLI boundary over the helixfc frontend:
// it expands source-file globs, runs ParseFile over each match, and
// renders any reported diagnostics to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heliclang/helixfc"
	"github.com/heliclang/helixfc/config"
	"github.com/heliclang/helixfc/diag"
	"github.com/heliclang/helixfc/source"
)

var (
	configPath string
	dumpJSON   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Fatal("helixc: failed")
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "helixc [patterns...]",
		Short: "Parse Helix source files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runParse,
	}

	cmd.Flags().StringVar(&configPath, "config", "helixfc.toml", "path to a helixfc.toml config file")
	cmd.Flags().BoolVar(&dumpJSON, "json", false, "dump the parsed AST as JSON instead of a pretty tree")

	return cmd
}

func runParse(cmd *cobra.Command, patterns []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("expanding pattern %q: %w", pattern, err)
		}

		files = append(files, matches...)
	}

	if len(files) == 0 {
		logrus.WithField("patterns", patterns).Warn("helixc: no files matched")

		return nil
	}

	cache := source.NewFileCache()
	anyFatal := false

	for _, file := range files {
		prog, sink := helixfc.ParseFile(file, cache, cfg.DiagConfig(), nil)

		if !sink.Empty() {
			sink.Render(os.Stderr, diag.CacheLineSource{Read: cache.GetLine})
		}

		if sink.Fatal() {
			anyFatal = true

			continue
		}

		if prog == nil {
			continue
		}

		if dumpJSON {
			fmt.Printf("%+v\n", helixfc.DumpJSON(prog))
		} else {
			fmt.Print(helixfc.DumpPretty(prog))
		}
	}

	if anyFatal {
		return fmt.Errorf("one or more files failed with a fatal diagnostic")
	}

	return nil
}
