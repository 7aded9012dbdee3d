// Zaparoo Metafix
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Metafix.
//
// Zaparoo Metafix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Metafix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Metafix.  If not, see <http://www.gnu.org/licenses/>.

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/ZaparooProject/metafix/pkg/config"
	"github.com/ZaparooProject/metafix/pkg/helpers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrWriteWithoutScan = errors.New("write flag requires -scan")

type Flags struct {
	fs      *flag.FlagSet
	Field   *string
	Scan    *string
	CSV     *string
	Out     *string
	Format  *string
	Explain *bool
	Write   *bool
	Debug   *bool
	Version *bool
}

// SetupFlags defines all CLI flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs: fs,
		Field: fs.String(
			"field",
			"track",
			"metadata field of the input: album, track or artist",
		),
		Explain: fs.Bool(
			"explain",
			false,
			"print the output of every cleaning stage",
		),
		Scan: fs.String(
			"scan",
			"",
			"scan a music directory and report cleaned tags",
		),
		Write: fs.Bool(
			"write",
			false,
			"with -scan, write cleaned tags back to MP3 files",
		),
		CSV: fs.String(
			"csv",
			"",
			"clean a CSV dataset with artist, album and title columns",
		),
		Out: fs.String(
			"out",
			"",
			"output file for -csv (default stdout)",
		),
		Format: fs.String(
			"format",
			"",
			"scan report format: table, json or plain",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"enable debug logging",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Apply overrides config values with any flags passed on the command line.
// Overrides are not saved to disk.
func (f *Flags) Apply(cfg *config.Instance) error {
	if f.isFlagPassed("write") {
		if *f.Scan == "" {
			return ErrWriteWithoutScan
		}
		cfg.SetWriteTags(*f.Write)
	}
	if f.isFlagPassed("format") {
		if err := cfg.SetOutputFormat(*f.Format); err != nil {
			return fmt.Errorf("invalid format flag: %w", err)
		}
	}
	if *f.Debug {
		cfg.SetDebugLogging(true)
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return nil
}

// Setup initializes logging and the user config. Returns a user config object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	configDir string,
	logDir string,
	defaultConfig config.Values,
	writers []io.Writer,
) (*config.Instance, error) {
	// Ensure directories exist before logging initialization
	err := helpers.EnsureDirectories(logDir)
	if err != nil {
		return nil, fmt.Errorf("error creating directories: %w", err)
	}

	err = helpers.InitLogging(logDir, config.LogFile, false, writers)
	if err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(configDir, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Debug().Str("config", cfg.Path()).Msg("loaded config")

	return cfg, nil
}
