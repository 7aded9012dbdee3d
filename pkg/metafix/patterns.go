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

package metafix

import "github.com/ZaparooProject/metafix/pkg/helpers"

// Character class bodies shared by the annotation patterns.
const (
	// Every rune unicode.IsSpace reports as whitespace. RE2's \s is ASCII
	// only and misses \v, NEL and the Unicode space separators.
	spaceClass = `\s\v\x{85}\p{Z}`

	// ASCII punctuation, which covers every bracket style: ( ) [ ] { } < >
	punctClass = `[:punct:]`

	// Optional single framing character around format and bitrate labels.
	frame = `[` + punctClass + spaceClass + `]?`
)

// Regex patterns for annotation stripping. All are compiled lazily on first
// use and shared process-wide.
var (
	// Year annotations: 1900-2099 with punctuation on BOTH sides, e.g.
	// "(2019)", "[1997]", "-2004-". A bare "2019" is never matched so titles
	// like "Song 2019" or "Blink 2000 Live" keep their numbers. A separator
	// shared by two years is consumed once, so "Tour (2019-2020)" only loses
	// the first year and becomes "Tour  2020)".
	yearRegex = helpers.NewLazyRegexp(
		`[` + punctClass + `](?:19|20)[0-9]{2}[` + punctClass + `]`,
	)

	// Format label: "mp3" in any case, as a whole ASCII word, plus at most
	// one framing character on each side: "[Mp3]", " MP3 ", "(mp3".
	formatRegex = helpers.NewLazyRegexp(frame + `(?i:\bmp3\b)` + frame)

	// Bitrate annotations: "320kbps", "320 kbps", "(128KBPS)".
	// The digits must start a word so "mp3320kbps" is left alone.
	bitrateRegex = helpers.NewLazyRegexp(
		frame + `\b[0-9]+[` + spaceClass + `]*(?i:kbps)\b` + frame,
	)

	// Whitespace normalization
	whitespaceRunRegex     = helpers.NewLazyRegexp(`[` + spaceClass + `]+`)
	leadingWhitespaceRegex = helpers.NewLazyRegexp(`^[` + spaceClass + `]+`)
	endingWhitespaceRegex  = helpers.NewLazyRegexp(`[` + spaceClass + `]+$`)
)

// Matchers returns every pattern the pipeline uses, in pipeline order. Pass
// them to helpers.MustCompileAll to compile eagerly at startup.
func Matchers() []*helpers.LazyRegexp {
	return []*helpers.LazyRegexp{
		yearRegex,
		formatRegex,
		bitrateRegex,
		whitespaceRunRegex,
		leadingWhitespaceRegex,
		endingWhitespaceRegex,
	}
}
