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

// Package report renders scan results and stage traces for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ZaparooProject/metafix/pkg/config"
	"github.com/ZaparooProject/metafix/pkg/metafix"
	"github.com/ZaparooProject/metafix/pkg/scanner"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Write renders results in the given output format. Table and plain output
// end with a summary line. With onlyChanged set, unchanged files are left
// out of the listing but still counted.
func Write(w io.Writer, format string, results []scanner.Result, onlyChanged bool) error {
	shown := results
	if onlyChanged {
		shown = OnlyChanged(results)
	}
	total, changed := len(results), scanner.CountChanged(results)

	switch format {
	case config.FormatJSON:
		return writeJSON(w, shown, total, changed)
	case config.FormatPlain:
		if err := Plain(w, shown); err != nil {
			return err
		}
	case config.FormatTable, "":
		if err := Table(w, shown); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown output format %q", config.ErrInvalidValue, format)
	}
	if _, err := fmt.Fprintln(w, Summary(total, changed)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// OnlyChanged returns the results with at least one cleaned field or a
// write error.
func OnlyChanged(results []scanner.Result) []scanner.Result {
	changed := make([]scanner.Result, 0, len(results))
	for i := range results {
		if results[i].Changed || results[i].Err != "" {
			changed = append(changed, results[i])
		}
	}
	return changed
}

// Summary describes the size of a scan, e.g. "1,204 files scanned, 37 changed".
func Summary(total, changed int) string {
	noun := "files"
	if total == 1 {
		noun = "file"
	}
	return fmt.Sprintf(
		"%s %s scanned, %s changed",
		humanize.Comma(int64(total)),
		noun,
		humanize.Comma(int64(changed)),
	)
}

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// Table writes one row per cleaned field. Unchanged files get a single row
// with an empty field column.
func Table(w io.Writer, results []scanner.Result) error {
	if len(results) == 0 {
		return nil
	}

	tw := newTable()
	tw.AppendHeader(table.Row{"File", "Field", "Before", "After"})
	for i := range results {
		res := &results[i]
		if len(res.Fields) == 0 {
			tw.AppendRow(table.Row{res.Path, "", "", ""})
		}
		for _, field := range res.Fields {
			tw.AppendRow(table.Row{
				res.Path,
				field,
				res.Raw.Value(field),
				res.Clean.Value(field),
			})
		}
		if res.Err != "" {
			tw.AppendRow(table.Row{res.Path, "error", "", res.Err})
		}
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})

	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// Plain writes one line per cleaned field. Unchanged files are omitted.
func Plain(w io.Writer, results []scanner.Result) error {
	for i := range results {
		res := &results[i]
		for _, field := range res.Fields {
			_, err := fmt.Fprintf(
				w,
				"%s: %s: %s -> %s\n",
				res.Path,
				field,
				strconv.Quote(res.Raw.Value(field)),
				strconv.Quote(res.Clean.Value(field)),
			)
			if err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
		}
		if res.Err != "" {
			if _, err := fmt.Fprintf(w, "%s: error: %s\n", res.Path, res.Err); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
		}
	}
	return nil
}

type jsonReport struct {
	Results []scanner.Result `json:"results"`
	Total   int              `json:"total"`
	Changed int              `json:"changed"`
}

// JSON writes all results and their counts as an indented JSON document.
func JSON(w io.Writer, results []scanner.Result) error {
	return writeJSON(w, results, len(results), scanner.CountChanged(results))
}

func writeJSON(w io.Writer, results []scanner.Result, total, changed int) error {
	if results == nil {
		results = []scanner.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(jsonReport{
		Results: results,
		Total:   total,
		Changed: changed,
	})
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

// Explain writes the output of every pipeline stage for one input.
func Explain(w io.Writer, trace metafix.Trace) error {
	tw := newTable()
	tw.AppendHeader(table.Row{"Stage", "Output", "Changed"})
	tw.AppendRow(table.Row{"input", strconv.Quote(trace.Input), ""})
	for _, step := range trace.Steps {
		changed := ""
		if step.Changed {
			changed = "yes"
		}
		tw.AppendRow(table.Row{string(step.Stage), strconv.Quote(step.Output), changed})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})

	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}
	return nil
}
