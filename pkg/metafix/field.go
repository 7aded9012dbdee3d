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
	"errors"
	"fmt"
	"strings"
)

// Field is the metadata field a raw value was read from.
type Field string

const (
	FieldAlbum  Field = "album"
	FieldTrack  Field = "track"
	FieldArtist Field = "artist"
)

var ErrUnknownField = errors.New("unknown metadata field")

// ParseField parses a field name. "title" is accepted for tracks and
// "artists" for artists; matching ignores case and surrounding spaces.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "album":
		return FieldAlbum, nil
	case "track", "title":
		return FieldTrack, nil
	case "artist", "artists":
		return FieldArtist, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Clean cleans dirty with the entry point for field. The result has one
// element for every field; unknown fields use the common pipeline.
func Clean(field Field, dirty string) []string {
	switch field {
	case FieldAlbum:
		return []string{CleanAlbumTitle(dirty)}
	case FieldTrack:
		return []string{CleanTrackTitle(dirty)}
	case FieldArtist:
		return CleanArtists(dirty)
	default:
		return []string{CleanCommon(dirty)}
	}
}
