// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package config loads the frontend's tunables from a TOML file,
// bridging them into diag.Config (spec.md §4.6 calls these "fixed by
// the build"; this port makes them operator-configurable instead).
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/heliclang/helixfc/diag"
)

// Config is the on-disk shape of a helixfc.toml file.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

// DiagnosticsConfig mirrors diag.Config's fields in TOML-friendly form.
type DiagnosticsConfig struct {
	LinesToShow int  `toml:"lines_to_show"`
	MaxErrors   int  `toml:"max_errors"`
	ColorOutput bool `toml:"color_output"`
}

// Default returns the recommended defaults, matching diag.DefaultConfig.
func Default() Config {
	d := diag.DefaultConfig()

	return Config{Diagnostics: DiagnosticsConfig{
		LinesToShow: d.LinesToShow,
		MaxErrors:   d.MaxErrors,
		ColorOutput: d.ColorOutput,
	}}
}

// Load reads and decodes a TOML config file at path. A missing file is
// not an error: Load returns Default() unchanged, so a project need not
// carry a config file at all.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DiagConfig converts the loaded diagnostics section into a diag.Config.
func (c Config) DiagConfig() diag.Config {
	return diag.Config{
		LinesToShow: c.Diagnostics.LinesToShow,
		MaxErrors:   c.Diagnostics.MaxErrors,
		ColorOutput: c.Diagnostics.ColorOutput,
	}
}
