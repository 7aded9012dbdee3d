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

import (
	"unicode"

	"github.com/ZaparooProject/metafix/pkg/helpers"
)

// Stage identifies one step of the cleaning pipeline.
type Stage string

const (
	StageYear       Stage = "year"
	StageFormat     Stage = "format"
	StageBitrate    Stage = "bitrate"
	StageWhitespace Stage = "whitespace"
)

type stageFunc func(string) string

// pipeline is the fixed stage order. Format runs before bitrate so combined
// labels like "(Mp3 320kbps)" are fully removed whatever their inner order.
var pipeline = []struct {
	fn    stageFunc
	stage Stage
}{
	{stage: StageYear, fn: RemoveYearAnnotation},
	{stage: StageFormat, fn: RemoveFormatLabel},
	{stage: StageBitrate, fn: RemoveBitrateAnnotation},
	{stage: StageWhitespace, fn: RemoveRedundantWhitespace},
}

// Stages returns the pipeline stages in the order they are applied.
func Stages() []Stage {
	stages := make([]Stage, 0, len(pipeline))
	for _, p := range pipeline {
		stages = append(stages, p.stage)
	}
	return stages
}

// replaceWithSpace replaces every match with a single space so removing an
// annotation never joins the words on either side of it. The input is
// returned as-is when nothing matches.
func replaceWithSpace(re *helpers.LazyRegexp, s string) string {
	r := re.Get()
	if !r.MatchString(s) {
		return s
	}
	return r.ReplaceAllLiteralString(s, " ")
}

// RemoveYearAnnotation removes years enclosed in punctuation.
//
// Examples:
//   - "IGOR (2019)" → "IGOR  "
//   - "Album [1997] Remaster" → "Album   Remaster"
//   - "Song 2019" → "Song 2019" (bare year, kept)
func RemoveYearAnnotation(s string) string {
	return replaceWithSpace(yearRegex, s)
}

// RemoveFormatLabel removes the "mp3" format label in any letter case.
func RemoveFormatLabel(s string) string {
	return replaceWithSpace(formatRegex, s)
}

// RemoveBitrateAnnotation removes bitrate tags like "320kbps" or "(320 kbps)".
// A "kbps" without leading digits is left alone. Removal repeats until nothing
// matches, so "Vol 2 (320kbps) kbps" becomes "Vol " rather than "Vol 2 kbps".
func RemoveBitrateAnnotation(s string) string {
	// each pass shortens s, so this terminates
	for {
		next := replaceWithSpace(bitrateRegex, s)
		if next == s {
			return s
		}
		s = next
	}
}

// RemoveRedundantWhitespace collapses every whitespace run into one space,
// then strips whitespace from the beginning and the end.
func RemoveRedundantWhitespace(s string) string {
	if isNormalizedWhitespace(s) {
		return s
	}
	s = whitespaceRunRegex.Get().ReplaceAllLiteralString(s, " ")
	s = leadingWhitespaceRegex.Get().ReplaceAllLiteralString(s, "")
	s = endingWhitespaceRegex.Get().ReplaceAllLiteralString(s, "")
	return s
}

// isNormalizedWhitespace reports whether s already has no leading, trailing
// or repeated whitespace, and uses only plain spaces between words.
func isNormalizedWhitespace(s string) bool {
	prevSpace := true
	for _, r := range s {
		if !unicode.IsSpace(r) {
			prevSpace = false
			continue
		}
		if prevSpace || r != ' ' {
			return false
		}
		prevSpace = true
	}
	return !prevSpace || s == ""
}
