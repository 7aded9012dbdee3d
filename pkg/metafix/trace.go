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

// Step is the result of running one stage.
type Step struct {
	Stage   Stage  `json:"stage"`
	Output  string `json:"output"`
	Changed bool   `json:"changed"`
}

// Trace records one run of the pipeline stage by stage.
type Trace struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Steps  []Step `json:"steps"`
}

// Changed reports whether any stage changed the input.
func (t Trace) Changed() bool {
	return t.Input != t.Output
}

// Explain runs the same pipeline as CleanCommon and records what each stage
// produced. Explain(s).Output always equals CleanCommon(s).
func Explain(dirty string) Trace {
	trace := Trace{
		Input: dirty,
		Steps: make([]Step, 0, len(pipeline)),
	}

	s := dirty
	for _, p := range pipeline {
		next := p.fn(s)
		trace.Steps = append(trace.Steps, Step{
			Stage:   p.stage,
			Output:  next,
			Changed: next != s,
		})
		s = next
	}
	trace.Output = s

	return trace
}
