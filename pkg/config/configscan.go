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

package config

import (
	"fmt"
	"slices"
	"strings"
)

// ScanWorkers returns the number of concurrent tag readers, never less than 1.
func (c *Instance) ScanWorkers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Scan.Workers < 1 {
		return 1
	}
	return c.vals.Scan.Workers
}

// ScanExtensions returns the lowercased file extensions treated as music,
// each with a leading dot.
func (c *Instance) ScanExtensions() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	exts := make([]string, 0, len(c.vals.Scan.Extensions))
	for _, ext := range c.vals.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

func (c *Instance) FollowSymlinks() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Scan.FollowSymlinks
}

func (c *Instance) OutputFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Output.Format
}

// SetOutputFormat overrides the output format for this run. The value is
// validated but not saved to disk.
func (c *Instance) SetOutputFormat(format string) error {
	if !slices.Contains(OutputFormats, format) {
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidValue, format)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Output.Format = format
	return nil
}

func (c *Instance) OnlyChanged() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Output.OnlyChanged
}

func (c *Instance) WriteTags() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Tags.Write
}

func (c *Instance) SetWriteTags(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Tags.Write = enabled
}
