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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRemoveYearAnnotation tests Stage 1 of the cleaning pipeline
func TestRemoveYearAnnotation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "parentheses", input: "IGOR (2019)", expected: "IGOR  "},
		{name: "square brackets", input: "[1997]", expected: " "},
		{name: "middle of title", input: "Album [1997] Remaster", expected: "Album   Remaster"},
		{name: "dash framed scene style", input: "Floyd-The Wall-1979-CD", expected: "Floyd-The Wall CD"},
		{name: "consecutive years", input: "(2019)(2020)", expected: "  "},
		{name: "curly braces", input: "{2001}", expected: " "},
		{name: "bare year kept", input: "Song 2019", expected: "Song 2019"},
		{name: "bare year mid sentence kept", input: "Released 2019 album", expected: "Released 2019 album"},
		{name: "only trailing punctuation kept", input: "Best of 2019.", expected: "Best of 2019."},
		{name: "only leading punctuation kept", input: "Album (2019", expected: "Album (2019"},
		{name: "before 1900 kept", input: "(1899)", expected: "(1899)"},
		{name: "after 2099 kept", input: "(2100)", expected: "(2100)"},
		{name: "five digits kept", input: "(19999)", expected: "(19999)"},
		{name: "three digits kept", input: "(199)", expected: "(199)"},
		{name: "year range keeps second year", input: "Tour (2019-2020)", expected: "Tour  2020)"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := RemoveYearAnnotation(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestRemoveFormatLabel tests Stage 2 of the cleaning pipeline
func TestRemoveFormatLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bracketed mixed case", input: "Album [Mp3]", expected: "Album  "},
		{name: "upper case", input: "MP3", expected: " "},
		{name: "lower case", input: "mp3", expected: " "},
		{name: "mixed case", input: "Mp3", expected: " "},
		{name: "space framed", input: "Album MP3 Rip", expected: "Album Rip"},
		{name: "paren with inner space", input: "(Mp3 320kbps)", expected: " 320kbps)"},
		{name: "dash framed", input: "Album-mp3-Group", expected: "Album Group"},
		{name: "embedded in word kept", input: "Kmp3x", expected: "Kmp3x"},
		{name: "plural kept", input: "mp3s", expected: "mp3s"},
		{name: "followed by digits kept", input: "mp3320kbps", expected: "mp3320kbps"},
		{name: "underscore framed kept", input: "_mp3_", expected: "_mp3_"},
		{name: "other formats kept", input: "Album [FLAC]", expected: "Album [FLAC]"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := RemoveFormatLabel(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestRemoveBitrateAnnotation tests Stage 3 of the cleaning pipeline
func TestRemoveBitrateAnnotation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no space", input: "320kbps", expected: " "},
		{name: "with space", input: "320 kbps", expected: " "},
		{name: "upper case", input: "320KBPS", expected: " "},
		{name: "mixed case", input: "128Kbps", expected: " "},
		{name: "parenthesized", input: "Song (320 kbps)", expected: "Song  "},
		{name: "tab between digits and unit", input: "Song [192\tkbps]", expected: "Song  "},
		{name: "no-break space between digits and unit", input: "256\u00a0kbps", expected: " "},
		{name: "no digits kept", input: "Song kbps", expected: "Song kbps"},
		{name: "unit only kept", input: "kbps", expected: "kbps"},
		{name: "glued to word kept", input: "mp3320kbps", expected: "mp3320kbps"},
		{name: "unit glued to word kept", input: "128kbpsx", expected: "128kbpsx"},
		{name: "other units kept", input: "Song 44khz", expected: "Song 44khz"},
		{name: "leftover digits before unit", input: "Vol 2 (320kbps) kbps", expected: "Vol "},
		{name: "leftover digits before upper unit", input: "Disc 1 [128 kbps] KBPS", expected: "Disc "},
		{name: "leftover digits glued", input: "20[320kbps]kbps", expected: " "},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := RemoveBitrateAnnotation(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestRemoveRedundantWhitespace tests Stage 4 of the cleaning pipeline
func TestRemoveRedundantWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "runs and padding", input: "  Artist   -   Song  Title  ", expected: "Artist - Song Title"},
		{name: "tabs and newlines", input: "a\t\nb", expected: "a b"},
		{name: "unicode spaces", input: "\u00a0a\u3000b\u2028", expected: "a b"},
		{name: "vertical tab and NEL", input: "a\v\u0085b", expected: "a b"},
		{name: "single tab replaced", input: "a\tb", expected: "a b"},
		{name: "only whitespace", input: " \t\n ", expected: ""},
		{name: "already clean", input: "Artist - Song", expected: "Artist - Song"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := RemoveRedundantWhitespace(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsNormalizedWhitespace(t *testing.T) {
	t.Parallel()

	assert.True(t, isNormalizedWhitespace(""))
	assert.True(t, isNormalizedWhitespace("a"))
	assert.True(t, isNormalizedWhitespace("a b c"))
	assert.False(t, isNormalizedWhitespace(" a"))
	assert.False(t, isNormalizedWhitespace("a "))
	assert.False(t, isNormalizedWhitespace("a  b"))
	assert.False(t, isNormalizedWhitespace("a\tb"))
	assert.False(t, isNormalizedWhitespace(" "))
}

func TestStagesOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Stage{StageYear, StageFormat, StageBitrate, StageWhitespace}, Stages())
}

func TestMatchersCompile(t *testing.T) {
	t.Parallel()

	matchers := Matchers()
	assert.Len(t, matchers, 6)
	for _, m := range matchers {
		assert.NotNil(t, m.Get(), "pattern %q", m.Pattern())
	}
}
