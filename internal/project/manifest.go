// Package project loads and validates zast.toml project manifests.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

// ManifestFile is the manifest's file name inside a project root.
const ManifestFile = "zast.toml"

// Manifest describes one Zast project.
type Manifest struct {
	Package Package `toml:"package"`
}

// Package is the `[package]` table of the manifest.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Entry   string `toml:"entry"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Find walks from dir upward to the filesystem root looking for a manifest
// and loads the first one found.
func Find(dir string) (*Manifest, string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}

	for {
		path := filepath.Join(abs, ManifestFile)
		if _, err := os.Stat(path); err == nil {
			m, err := Load(path)
			return m, path, err
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return nil, "", fmt.Errorf("no %s found in %s or any parent", ManifestFile, dir)
		}
		abs = parent
	}
}

func (m *Manifest) validate() error {
	if m.Package.Name == "" {
		return fmt.Errorf("manifest: package.name is required")
	}
	if m.Package.Version == "" {
		return fmt.Errorf("manifest: package.version is required")
	}
	if _, err := semver.StrictNewVersion(m.Package.Version); err != nil {
		return fmt.Errorf("manifest: package.version %q: %w", m.Package.Version, err)
	}
	if m.Package.Entry == "" {
		return fmt.Errorf("manifest: package.entry is required")
	}
	return nil
}

// SemVer returns the package version as a parsed semantic version. The
// manifest was validated on load, so the parse cannot fail.
func (m *Manifest) SemVer() *semver.Version {
	return semver.MustParse(m.Package.Version)
}

// EntryPath returns the entry file path resolved relative to the directory
// holding the manifest at manifestPath.
func (m *Manifest) EntryPath(manifestPath string) string {
	if filepath.IsAbs(m.Package.Entry) {
		return m.Package.Entry
	}
	return filepath.Join(filepath.Dir(manifestPath), m.Package.Entry)
}
