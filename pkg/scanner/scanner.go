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

// Package scanner walks a music library, reads the tags of every music file
// and reports the cleaned values. Cleaned tags can optionally be written
// back to MP3 files.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/ZaparooProject/metafix/pkg/config"
	"github.com/ZaparooProject/metafix/pkg/helpers/syncutil"
	"github.com/ZaparooProject/metafix/pkg/tags"
	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrNotDirectory = errors.New("not a directory")

type Options struct {
	Extensions     []string
	Workers        int
	FollowSymlinks bool
	// Write saves cleaned tags back to MP3 files that changed.
	Write bool
}

// OptionsFromConfig builds scan options from the [scan] and [tags] sections
// of the user config.
func OptionsFromConfig(cfg *config.Instance) Options {
	return Options{
		Extensions:     cfg.ScanExtensions(),
		Workers:        cfg.ScanWorkers(),
		FollowSymlinks: cfg.FollowSymlinks(),
		Write:          cfg.WriteTags(),
	}
}

// Result is the outcome for a single music file.
type Result struct {
	Raw     *tags.Track `json:"raw"`
	Clean   *tags.Track `json:"clean"`
	Path    string      `json:"path"`
	Err     string      `json:"error,omitempty"`
	Fields  []string    `json:"fields,omitempty"`
	Changed bool        `json:"changed"`
	Written bool        `json:"written,omitempty"`
}

// CountChanged returns the number of results with at least one cleaned
// field.
func CountChanged(results []Result) int {
	n := 0
	for i := range results {
		if results[i].Changed {
			n++
		}
	}
	return n
}

// Scan reads every music file under root and returns one result per
// readable file, sorted by path. Files whose tags can't be read are logged
// and skipped.
func Scan(ctx context.Context, root string, opts Options) ([]Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = config.BaseDefaults.Scan.Extensions
	}

	paths, err := findFiles(ctx, root, exts, opts.FollowSymlinks)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("root", root).Int("files", len(paths)).Msg("found music files")

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	var mu syncutil.Mutex
	results := make([]Result, 0, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, path := range paths {
		path := path
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint:wrapcheck // wrapped below
			}
			res, ok := processFile(path, opts.Write)
			if !ok {
				return nil
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scan cancelled: %w", err)
	}

	slices.SortFunc(results, func(a, b Result) int {
		return strings.Compare(a.Path, b.Path)
	})

	log.Info().
		Str("root", root).
		Int("files", len(results)).
		Int("changed", CountChanged(results)).
		Msg("scan complete")

	return results, nil
}

// findFiles lists the music files under root. The walk callback runs on
// multiple goroutines.
func findFiles(ctx context.Context, root string, exts []string, follow bool) ([]string, error) {
	var (
		mu    syncutil.Mutex
		paths []string
	)

	conf := fastwalk.Config{
		Follow: follow,
	}

	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr //nolint:wrapcheck // wrapped below
		}
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !tags.IsMusicFile(path, exts) {
			return nil
		}
		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("scan cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return paths, nil
}

func processFile(path string, write bool) (Result, bool) {
	raw, err := tags.Read(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("skipping file with unreadable tags")
		return Result{}, false
	}

	cleaned := tags.Clean(raw)
	res := Result{
		Path:    path,
		Raw:     raw,
		Clean:   cleaned,
		Fields:  raw.ChangedFields(cleaned),
		Changed: !raw.Equal(cleaned),
	}

	if write && res.Changed {
		if err := tags.WriteMP3(path, cleaned); err != nil {
			if !errors.Is(err, tags.ErrUnsupportedFormat) {
				log.Error().Err(err).Str("path", path).Msg("failed to write cleaned tags")
			}
			res.Err = err.Error()
		} else {
			res.Written = true
		}
	}

	return res, true
}
