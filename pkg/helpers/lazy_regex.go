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

package helpers

import (
	"regexp"
	"sync"
)

// LazyRegexp is a regular expression compiled on first use. Compilation
// happens at most once, including under concurrent first use, and the
// compiled value is shared by every caller for the life of the process.
type LazyRegexp struct {
	re      *regexp.Regexp
	pattern string
	once    sync.Once
}

// NewLazyRegexp returns a LazyRegexp for pattern without compiling it.
func NewLazyRegexp(pattern string) *LazyRegexp {
	return &LazyRegexp{pattern: pattern}
}

// Get returns the compiled regexp, compiling it on the first call.
// Panics if the pattern cannot be compiled (same behavior as regexp.MustCompile).
func (l *LazyRegexp) Get() *regexp.Regexp {
	l.once.Do(func() {
		l.re = regexp.MustCompile(l.pattern)
	})
	return l.re
}

// Pattern returns the source pattern.
func (l *LazyRegexp) Pattern() string {
	return l.pattern
}

// MustCompileAll forces compilation of every given pattern. Call it during
// startup to surface a bad pattern before any input is processed.
func MustCompileAll(patterns ...*LazyRegexp) {
	for _, p := range patterns {
		p.Get()
	}
}
