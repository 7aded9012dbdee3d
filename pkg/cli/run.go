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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/metafix/pkg/config"
	"github.com/ZaparooProject/metafix/pkg/dataset"
	"github.com/ZaparooProject/metafix/pkg/metafix"
	"github.com/ZaparooProject/metafix/pkg/report"
	"github.com/ZaparooProject/metafix/pkg/scanner"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

// maxLineSize bounds a single stdin line.
const maxLineSize = 1024 * 1024

// Run performs the action selected by the flags. Without -scan or -csv the
// positional args are cleaned, or stdin line by line when there are none.
func (f *Flags) Run(
	ctx context.Context,
	cfg *config.Instance,
	stdin io.Reader,
	stdout io.Writer,
) error {
	switch {
	case *f.Scan != "":
		return RunScan(ctx, cfg, *f.Scan, stdout)
	case *f.CSV != "":
		return RunDataset(*f.CSV, *f.Out, stdout)
	default:
		field, err := metafix.ParseField(*f.Field)
		if err != nil {
			return fmt.Errorf("invalid field flag: %w", err)
		}
		return RunClean(field, *f.Explain, f.fs.Args(), stdin, stdout)
	}
}

// RunClean cleans every arg, or every stdin line when args is empty, and
// prints one result per line.
func RunClean(
	field metafix.Field,
	explain bool,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
) error {
	clean := func(s string) error {
		if explain {
			return report.Explain(stdout, metafix.Explain(s))
		}
		for _, v := range metafix.Clean(field, s) {
			if _, err := fmt.Fprintln(stdout, v); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	}

	if len(args) > 0 {
		for _, arg := range args {
			if err := clean(arg); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if err := clean(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// RunScan scans dir and renders a report in the configured format.
func RunScan(ctx context.Context, cfg *config.Instance, dir string, stdout io.Writer) error {
	opts := scanner.OptionsFromConfig(cfg)
	log.Info().
		Str("dir", dir).
		Int("workers", opts.Workers).
		Bool("write", opts.Write).
		Msg("starting scan")

	results, err := scanner.Scan(ctx, dir, opts)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	return report.Write(stdout, cfg.OutputFormat(), results, cfg.OnlyChanged())
}

// RunDataset cleans the CSV file at in. Output goes to out, or to stdout when
// out is empty.
func RunDataset(in, out string, stdout io.Writer) error {
	inFile, err := os.Open(in) //nolint:gosec // user provided path
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() {
		if closeErr := inFile.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close dataset")
		}
	}()

	if out == "" {
		_, err := dataset.Clean(inFile, stdout)
		return err //nolint:wrapcheck // already wrapped
	}

	outFile, err := os.Create(out) //nolint:gosec // user provided path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	stats, err := dataset.Clean(inFile, outFile)
	if closeErr := outFile.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("failed to close output file: %w", closeErr)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(
		stdout,
		"%s rows written to %s, %s changed\n",
		humanize.Comma(int64(stats.Rows)),
		out,
		humanize.Comma(int64(stats.Changed)),
	)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
