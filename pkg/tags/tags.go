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

// Package tags reads the text tags of music files and writes cleaned values
// back to MP3 files.
package tags

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZaparooProject/metafix/pkg/metafix"
)

// File extensions with dedicated handling.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
	ExtOPUS = ".opus"
	ExtM4A  = ".m4a"
)

// Names of the cleaned text fields, as reported by ChangedFields.
const (
	FieldArtist      = "artist"
	FieldAlbumArtist = "albumArtist"
	FieldAlbum       = "album"
	FieldTitle       = "title"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Track holds the text tags of one music file.
type Track struct {
	Path        string `json:"path"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	AlbumArtist string `json:"albumArtist,omitempty"`
	Album       string `json:"album"`
}

// IsMusicFile reports whether path has one of the given extensions.
// Extensions are compared case-insensitively and must include the dot.
func IsMusicFile(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// Clean returns a copy of t with every text field cleaned.
func Clean(t *Track) *Track {
	cleaned := *t
	cleaned.Title = metafix.CleanTrackTitle(t.Title)
	cleaned.Album = metafix.CleanAlbumTitle(t.Album)
	cleaned.Artist = firstArtist(t.Artist)
	cleaned.AlbumArtist = firstArtist(t.AlbumArtist)
	return &cleaned
}

// Equal reports whether both tracks have the same text fields.
func (t *Track) Equal(other *Track) bool {
	return t.Title == other.Title &&
		t.Artist == other.Artist &&
		t.AlbumArtist == other.AlbumArtist &&
		t.Album == other.Album
}

// ChangedFields lists the names of the text fields that differ.
func (t *Track) ChangedFields(other *Track) []string {
	var fields []string
	if t.Artist != other.Artist {
		fields = append(fields, FieldArtist)
	}
	if t.AlbumArtist != other.AlbumArtist {
		fields = append(fields, FieldAlbumArtist)
	}
	if t.Album != other.Album {
		fields = append(fields, FieldAlbum)
	}
	if t.Title != other.Title {
		fields = append(fields, FieldTitle)
	}
	return fields
}

// Value returns the text of the named field, or "" for an unknown name.
func (t *Track) Value(field string) string {
	if t == nil {
		return ""
	}
	switch field {
	case FieldArtist:
		return t.Artist
	case FieldAlbumArtist:
		return t.AlbumArtist
	case FieldAlbum:
		return t.Album
	case FieldTitle:
		return t.Title
	default:
		return ""
	}
}

// firstArtist returns the single cleaned value from metafix.CleanArtists.
func firstArtist(s string) string {
	return metafix.CleanArtists(s)[0]
}
