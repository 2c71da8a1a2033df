// Package config loads comparison manifests: a YAML file naming the report groups to compare.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/farcloser/primordium/fault"
	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest is returned for manifests that are not valid YAML or carry unknown keys.
var ErrInvalidManifest = errors.New("invalid manifest")

// Group lists the before and after report paths of one device.
type Group struct {
	Before []string `yaml:"before"`
	After  []string `yaml:"after"`
}

// Manifest describes a comparison. Zero values mean "not set".
//
// Example:
//
//	format: markdown
//	workers: 4
//	desktop:
//	  before: [reports/before/desktop]
//	  after: [reports/after/desktop]
//	mobile:
//	  before: [reports/before/mobile]
//	  after: [reports/after/mobile]
type Manifest struct {
	Format     string `yaml:"format"`
	Workers    int    `yaml:"workers"`
	ChartWidth int    `yaml:"chart_width"`
	Desktop    Group  `yaml:"desktop"`
	Mobile     Group  `yaml:"mobile"`
}

// Load reads a manifest. Relative report paths are resolved against the manifest directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // CLI tool opens user-specified manifests
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	manifest, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	manifest.resolve(filepath.Dir(path))

	return manifest, nil
}

// Decode parses a manifest document. An empty document yields an empty manifest.
func Decode(data []byte) (*Manifest, error) {
	manifest := &Manifest{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(manifest); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	return manifest, nil
}

func (m *Manifest) resolve(base string) {
	for _, paths := range [][]string{m.Desktop.Before, m.Desktop.After, m.Mobile.Before, m.Mobile.After} {
		for idx, path := range paths {
			if !filepath.IsAbs(path) {
				paths[idx] = filepath.Join(base, path)
			}
		}
	}
}
