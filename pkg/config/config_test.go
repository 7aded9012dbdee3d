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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInstance(t *testing.T, contents string) *Instance {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	err := os.WriteFile(cfgPath, []byte(contents), 0o600)
	require.NoError(t, err)

	return &Instance{
		cfgPath:  cfgPath,
		vals:     BaseDefaults,
		defaults: BaseDefaults,
	}
}

//nolint:paralleltest // modifies environment
func TestNewConfig_CreatesDefaultFile(t *testing.T) {
	t.Setenv(CfgEnv, "")
	dir := filepath.Join(t.TempDir(), "nested", AppName)

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, CfgFile)
	assert.Equal(t, cfgPath, cfg.Path())
	assert.FileExists(t, cfgPath)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "config_schema = 1")
	assert.Contains(t, string(data), "[scan]")

	assert.Equal(t, DefaultWorkers, cfg.ScanWorkers())
	assert.Equal(t, FormatTable, cfg.OutputFormat())
	assert.False(t, cfg.WriteTags())
	assert.False(t, cfg.DebugLogging())
}

//nolint:paralleltest // modifies environment
func TestNewConfig_EnvOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.toml")
	contents := fmt.Sprintf("config_schema = %d\ndebug_logging = true\n", SchemaVersion)
	require.NoError(t, os.WriteFile(cfgPath, []byte(contents), 0o600))
	t.Setenv(CfgEnv, cfgPath)

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, cfgPath, cfg.Path())
	assert.True(t, cfg.DebugLogging())
}

func TestLoad_PreservesDefaultsForMissingFields(t *testing.T) {
	t.Parallel()

	cfg := newTestInstance(t, fmt.Sprintf("config_schema = %d\n", SchemaVersion))

	err := cfg.Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultWorkers, cfg.ScanWorkers())
	assert.Equal(t, []string{".mp3", ".flac", ".m4a", ".ogg", ".opus"}, cfg.ScanExtensions())
	assert.Equal(t, FormatTable, cfg.OutputFormat())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	cfg := newTestInstance(t, fmt.Sprintf(`config_schema = %d
debug_logging = true

[scan]
workers = 2
extensions = ["MP3", "flac"]
follow_symlinks = true

[output]
format = "json"
only_changed = true

[tags]
write = true
`, SchemaVersion))

	err := cfg.Load()
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, 2, cfg.ScanWorkers())
	assert.Equal(t, []string{".mp3", ".flac"}, cfg.ScanExtensions())
	assert.True(t, cfg.FollowSymlinks())
	assert.Equal(t, FormatJSON, cfg.OutputFormat())
	assert.True(t, cfg.OnlyChanged())
	assert.True(t, cfg.WriteTags())
}

func TestLoad_DoesNotMutateDefaults(t *testing.T) {
	t.Parallel()

	cfg := newTestInstance(t, fmt.Sprintf("config_schema = %d\n[scan]\nextensions = [\".wav\"]\n", SchemaVersion))

	err := cfg.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{".wav"}, cfg.ScanExtensions())
	assert.Equal(t, []string{".mp3", ".flac", ".m4a", ".ogg", ".opus"}, BaseDefaults.Scan.Extensions)
}

func TestLoad_SchemaMismatch(t *testing.T) {
	t.Parallel()

	cfg := newTestInstance(t, "config_schema = 99\n")

	err := cfg.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "zero workers",
			contents: fmt.Sprintf("config_schema = %d\n[scan]\nworkers = 0\n", SchemaVersion),
		},
		{
			name:     "negative workers",
			contents: fmt.Sprintf("config_schema = %d\n[scan]\nworkers = -4\n", SchemaVersion),
		},
		{
			name:     "unknown format",
			contents: fmt.Sprintf("config_schema = %d\n[output]\nformat = \"xml\"\n", SchemaVersion),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := newTestInstance(t, tt.contents)
			err := cfg.Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	t.Parallel()

	cfg := newTestInstance(t, "config_schema = [\n")

	err := cfg.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	cfg := &Instance{}
	require.Error(t, cfg.Load())
	require.Error(t, cfg.Save())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := newTestInstance(t, "")
	cfg.SetDebugLogging(true)
	cfg.SetWriteTags(true)
	require.NoError(t, cfg.SetOutputFormat(FormatPlain))
	require.NoError(t, cfg.Save())

	reloaded := &Instance{
		cfgPath:  cfg.cfgPath,
		vals:     BaseDefaults,
		defaults: BaseDefaults,
	}
	require.NoError(t, reloaded.Load())

	assert.True(t, reloaded.DebugLogging())
	assert.True(t, reloaded.WriteTags())
	assert.Equal(t, FormatPlain, reloaded.OutputFormat())
}

func TestSetOutputFormat(t *testing.T) {
	t.Parallel()

	cfg := newTestInstance(t, "")
	require.NoError(t, cfg.SetOutputFormat(FormatJSON))
	assert.Equal(t, FormatJSON, cfg.OutputFormat())

	err := cfg.SetOutputFormat("yaml")
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, FormatJSON, cfg.OutputFormat())
}

func TestScanExtensionsNormalized(t *testing.T) {
	t.Parallel()

	cfg := newTestInstance(t, "")
	cfg.vals.Scan.Extensions = []string{"MP3", " .Flac ", "", "ogg"}

	assert.Equal(t, []string{".mp3", ".flac", ".ogg"}, cfg.ScanExtensions())
}

func TestScanWorkersFloor(t *testing.T) {
	t.Parallel()

	cfg := newTestInstance(t, "")
	cfg.vals.Scan.Workers = 0

	assert.Equal(t, 1, cfg.ScanWorkers())
}
