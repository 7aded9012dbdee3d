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

package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"github.com/rs/zerolog/log"
)

// Read reads the text tags of a music file.
func Read(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Str("path", path).Msg("failed to close file")
		}
	}()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if strings.EqualFold(filepath.Ext(path), ExtMP3) {
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			log.Debug().Err(err).Str("path", path).Msg("falling back to id3v2 reader")
			return readMP3WithID3v2(path)
		}
		return nil, fmt.Errorf("read tags %s: %w", path, err)
	}

	return &Track{
		Path:        path,
		Format:      string(m.FileType()),
		Title:       m.Title(),
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
	}, nil
}

// readMP3WithID3v2 reads MP3 text tags using only the id3v2 library.
func readMP3WithID3v2(path string) (*Track, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("read id3v2 tags %s: %w", path, err)
	}
	defer func() {
		if closeErr := id3tag.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Str("path", path).Msg("failed to close id3v2 tag")
		}
	}()

	return &Track{
		Path:        path,
		Format:      "MP3",
		Title:       id3tag.Title(),
		Artist:      id3tag.Artist(),
		AlbumArtist: textFrame(id3tag, "TPE2"),
		Album:       id3tag.Album(),
	}, nil
}

func textFrame(t *id3v2.Tag, id string) string {
	frames := t.GetFrames(id)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
