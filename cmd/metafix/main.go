/*
Zaparoo Metafix
Copyright (c) 2026 The Zaparoo Project Contributors.

This file is part of Zaparoo Metafix.

Zaparoo Metafix is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Zaparoo Metafix is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Zaparoo Metafix.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/metafix/pkg/cli"
	"github.com/ZaparooProject/metafix/pkg/config"
	"github.com/ZaparooProject/metafix/pkg/helpers"
	"github.com/ZaparooProject/metafix/pkg/metafix"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags(flag.CommandLine)
	flag.Parse()

	if *flags.Version {
		_, _ = fmt.Printf("Zaparoo Metafix v%s\n", config.AppVersion)
		return nil
	}

	// fail on a bad pattern before any input is read
	helpers.MustCompileAll(metafix.Matchers()...)

	cfg, err := cli.Setup(
		helpers.ConfigDir(),
		helpers.LogDir(),
		config.BaseDefaults,
		[]io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}},
	)
	if err != nil {
		return err //nolint:wrapcheck // already wrapped
	}

	if err := flags.Apply(cfg); err != nil {
		return err //nolint:wrapcheck // already wrapped
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Debug().Str("version", config.AppVersion).Msg("metafix started")

	return flags.Run(ctx, cfg, os.Stdin, os.Stdout) //nolint:wrapcheck // already wrapped
}
