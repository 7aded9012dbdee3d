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

// Package dataset cleans CSV exports of scraped music metadata.
package dataset

import (
	"fmt"
	"io"

	"github.com/ZaparooProject/metafix/pkg/metafix"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// Row is one input record.
type Row struct {
	Artist string `csv:"artist"`
	Album  string `csv:"album"`
	Title  string `csv:"title"`
}

// CleanRow is one output record: the raw columns followed by their cleaned
// values.
type CleanRow struct {
	Artist      string `csv:"artist"`
	Album       string `csv:"album"`
	Title       string `csv:"title"`
	CleanArtist string `csv:"clean_artist"`
	CleanAlbum  string `csv:"clean_album"`
	CleanTitle  string `csv:"clean_title"`
}

func (r *CleanRow) changed() bool {
	return r.Artist != r.CleanArtist ||
		r.Album != r.CleanAlbum ||
		r.Title != r.CleanTitle
}

type Stats struct {
	Rows    int `json:"rows"`
	Changed int `json:"changed"`
}

// CleanRows cleans every field of the given rows.
func CleanRows(rows []Row) ([]CleanRow, Stats) {
	out := make([]CleanRow, 0, len(rows))
	stats := Stats{Rows: len(rows)}
	for _, row := range rows {
		cr := CleanRow{
			Artist:      row.Artist,
			Album:       row.Album,
			Title:       row.Title,
			CleanArtist: metafix.CleanArtists(row.Artist)[0],
			CleanAlbum:  metafix.CleanAlbumTitle(row.Album),
			CleanTitle:  metafix.CleanTrackTitle(row.Title),
		}
		if cr.changed() {
			stats.Changed++
		}
		out = append(out, cr)
	}
	return out, stats
}

// Clean reads CSV rows with artist, album and title columns from r and
// writes them with cleaned columns appended to w.
func Clean(r io.Reader, w io.Writer) (Stats, error) {
	rows := make([]Row, 0)
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return Stats{}, fmt.Errorf("failed to unmarshal dataset CSV: %w", err)
	}

	cleaned, stats := CleanRows(rows)

	if err := gocsv.Marshal(&cleaned, w); err != nil {
		return Stats{}, fmt.Errorf("failed to marshal dataset CSV: %w", err)
	}

	log.Info().
		Int("rows", stats.Rows).
		Int("changed", stats.Changed).
		Msg("cleaned dataset")

	return stats, nil
}
