// Package manifest loads YAML preload manifests describing the virtual files
// to seed into a store before a guest runs. The store itself never touches a
// filesystem; reading seed files from host disk is host-side tooling.
package manifest

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a package-level singleton; creating a validator per call is
// expensive.
var validate = validator.New()

// Manifest is a preload document listing the virtual files to register.
type Manifest struct {
	// Files are registered in order, so later entries with Overwrite set can
	// replace earlier ones.
	Files []FileEntry `yaml:"files" json:"files" validate:"required,min=1,dive"`
}

// FileEntry describes one virtual file. Exactly one of Content and Path must
// be set: Content embeds the bytes inline, Path reads them from host disk at
// seed time.
type FileEntry struct {
	// Name is the virtual file name guests open, at most 31 bytes.
	Name string `yaml:"name" json:"name" validate:"required,max=31"`

	// Content is the file's bytes, inline.
	Content string `yaml:"content,omitempty" json:"content,omitempty" validate:"required_without=Path,excluded_with=Path"`

	// Path locates the file's bytes on the host, relative to the loader's
	// base directory.
	Path string `yaml:"path,omitempty" json:"path,omitempty" validate:"required_without=Content,excluded_with=Content"`

	// Overwrite replaces an already-registered file of the same name instead
	// of failing.
	Overwrite bool `yaml:"overwrite,omitempty" json:"overwrite,omitempty"`
}

// Parse unmarshals and validates a YAML manifest document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("validate manifest: %w", err)
	}
	return &m, nil
}
