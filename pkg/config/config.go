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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ZaparooProject/metafix/pkg/helpers/syncutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion  = 1
	CfgEnv         = "METAFIX_CFG"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatPlain    = "plain"
	DefaultWorkers = 8
)

var (
	ErrSchemaMismatch = errors.New("schema version mismatch")
	ErrInvalidValue   = errors.New("invalid config value")
)

var OutputFormats = []string{FormatTable, FormatJSON, FormatPlain}

type Values struct {
	Scan         Scan   `toml:"scan"`
	Output       Output `toml:"output"`
	Tags         Tags   `toml:"tags"`
	ConfigSchema int    `toml:"config_schema"`
	DebugLogging bool   `toml:"debug_logging"`
}

type Scan struct {
	Extensions     []string `toml:"extensions,multiline"`
	Workers        int      `toml:"workers"`
	FollowSymlinks bool     `toml:"follow_symlinks"`
}

type Output struct {
	Format      string `toml:"format"`
	OnlyChanged bool   `toml:"only_changed"`
}

type Tags struct {
	Write bool `toml:"write"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Scan: Scan{
		Workers:    DefaultWorkers,
		Extensions: []string{".mp3", ".flac", ".m4a", ".ogg", ".opus"},
	},
	Output: Output{
		Format: FormatTable,
	},
}

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewConfig loads the config from configDir, or from the path in the
// METAFIX_CFG environment variable when set. A missing file is created with
// the given defaults.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults
	newVals.Scan.Extensions = slices.Clone(c.defaults.Scan.Extensions)
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	if err := validate(&newVals); err != nil {
		return err
	}

	c.vals = newVals
	return nil
}

func validate(vals *Values) error {
	if vals.Scan.Workers < 1 {
		return fmt.Errorf("%w: scan.workers must be at least 1, got %d", ErrInvalidValue, vals.Scan.Workers)
	}
	if !slices.Contains(OutputFormats, vals.Output.Format) {
		return fmt.Errorf("%w: unknown output.format %q", ErrInvalidValue, vals.Output.Format)
	}
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	// set current schema version
	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}
