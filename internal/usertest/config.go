// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package usertest

import (
	"fmt"
	"path"
	"slices"

	"github.com/BurntSushi/toml"
)

// Config is the run configuration of the suite.
type Config struct {
	// WorkDir is a writable directory cases create their scratch files in.
	WorkDir string `toml:"work_dir"`

	// Skip lists case names to leave out of the run.
	Skip []string `toml:"skip"`

	// MountFSType is the file system type the mount probe uses.
	MountFSType string `toml:"mount_fstype"`
}

// Default returns the configuration for a bare kernel image with a writable
// /tmp.
func Default() Config {
	return Config{
		WorkDir:     "/tmp",
		MountFSType: "tmpfs",
	}
}

// Load reads a TOML run configuration on top of [Default]. Unknown keys are
// an error.
func Load(file string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(file, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", file, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownConfigKey, undecoded[0].String())
	}

	return cfg, nil
}

// Skipped reports whether the case name is excluded from the run.
func (c Config) Skipped(name string) bool {
	return slices.Contains(c.Skip, name)
}

// scratch returns the path of a scratch file below the work directory.
func (c Config) scratch(name string) string {
	return path.Join(c.WorkDir, name)
}
