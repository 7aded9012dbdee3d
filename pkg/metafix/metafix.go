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

// Package metafix cleans user-generated music metadata strings.
//
// Metadata from torrent sites and user uploads is full of annotations added
// by uploaders: years in brackets, format labels, bitrate tags. This package
// strips those annotations and normalizes whitespace so titles and artist
// names from different sources can be compared.
//
// 4-Stage Cleaning Pipeline:
//
//	Stage 1: Year Annotations - "(2019)", "[1997]" removed, bare "2019" kept
//	Stage 2: Format Label - "mp3", "[Mp3]", "MP3" removed
//	Stage 3: Bitrate Annotations - "320kbps", "(320 kbps)" removed
//	Stage 4: Whitespace - runs collapsed, leading/trailing stripped
//
// Every removal is replaced with a single space, then stage 4 cleans up. The
// pipeline is conservative: text that only partially looks like an
// annotation is left alone.
//
// All functions are deterministic, idempotent and safe for concurrent use:
//
//	CleanCommon(CleanCommon(x)) == CleanCommon(x)
//
// Example:
//
//	CleanAlbumTitle("Tyler, The Creator - IGOR (2019) [Mp3] (320 kbps)")
//	→ "Tyler, The Creator - IGOR"
package metafix

// CleanCommon applies the full cleaning pipeline. Any string is valid input,
// the empty string included.
func CleanCommon(dirty string) string {
	s := dirty
	for _, p := range pipeline {
		s = p.fn(s)
	}
	return s
}

// CleanAlbumTitle cleans a raw album title.
func CleanAlbumTitle(dirty string) string {
	return CleanCommon(dirty)
}

// CleanTrackTitle cleans a raw title of a single song or track.
func CleanTrackTitle(dirty string) string {
	return CleanCommon(dirty)
}

// CleanArtists cleans a raw string holding one or more artists. The result
// always has exactly one element: the whole cleaned string. Artists are not
// split on separators like "&" or "feat.".
func CleanArtists(dirty string) []string {
	return []string{CleanCommon(dirty)}
}
