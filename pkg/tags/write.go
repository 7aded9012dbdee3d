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
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/rs/zerolog/log"
)

// WriteMP3 replaces the title, artist, album artist and album frames of an
// MP3 file with the values in t. All other frames are kept. An empty title,
// artist or album is written as an empty frame so a cleaned-to-empty field is
// not left stale. An empty album artist removes the TPE2 frame instead.
func WriteMP3(path string, t *Track) error {
	if !strings.EqualFold(filepath.Ext(path), ExtMP3) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open id3v2 tags %s: %w", path, err)
	}
	defer func() {
		if closeErr := id3tag.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Str("path", path).Msg("failed to close id3v2 tag")
		}
	}()

	id3tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	id3tag.SetTitle(t.Title)
	id3tag.SetArtist(t.Artist)
	id3tag.SetAlbum(t.Album)

	// Album artist (TPE2 frame)
	albumArtistID := id3tag.CommonID("Band/Orchestra/Accompaniment")
	id3tag.DeleteFrames(albumArtistID)
	if t.AlbumArtist != "" {
		id3tag.AddTextFrame(albumArtistID, id3v2.EncodingUTF8, t.AlbumArtist)
	}

	if err := id3tag.Save(); err != nil {
		return fmt.Errorf("save id3v2 tags %s: %w", path, err)
	}

	log.Debug().Str("path", path).Msg("wrote cleaned tags")
	return nil
}
