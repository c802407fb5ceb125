/*
NAME
  load.go

DESCRIPTION
  load.go implements LoadDir: scanning a directory of named *.json files
  and assembling a Set of format templates, chroma sitings and conversion
  matrices keyed by name, ready for the CLI tools to pass to
  template.Inflate.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.
*/

package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ausocean/xyuv/pixel"
	"github.com/ausocean/xyuv/template"
)

// Set is a named registry of templates, chroma sitings and conversion
// matrices loaded from a directory, the configuration a CLI tool hands
// to template.Inflate.
type Set struct {
	Templates map[string]*template.FormatTemplate
	Sitings   map[string]pixel.ChromaSiting
	Matrices  map[string]pixel.ConversionMatrix
}

func newSet() *Set {
	return &Set{
		Templates: make(map[string]*template.FormatTemplate),
		Sitings:   make(map[string]pixel.ChromaSiting),
		Matrices:  make(map[string]pixel.ConversionMatrix),
	}
}

// LoadDir reads every *.json file directly under dir and assembles a
// Set. Each file must declare a "kind" of "template", "siting" or
// "matrix" and a unique "name" within that kind.
func LoadDir(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config directory %s", dir)
	}

	set := newSet()
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := loadFile(set, path); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func loadFile(set *Set, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	var env fileEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return newConfigError(path, "invalid JSON: %v", err)
	}
	if env.Name == "" {
		return newConfigError(path, "missing required \"name\" field")
	}

	switch env.Kind {
	case "template":
		var tj templateJSON
		if err := json.Unmarshal(raw, &tj); err != nil {
			return newConfigError(path, "invalid template JSON: %v", err)
		}
		if _, exists := set.Templates[tj.Name]; exists {
			return newConfigError(path, "duplicate template name %q", tj.Name)
		}
		ft, err := tj.toFormatTemplate(path)
		if err != nil {
			return err
		}
		set.Templates[tj.Name] = ft

	case "siting":
		var sj sitingJSON
		if err := json.Unmarshal(raw, &sj); err != nil {
			return newConfigError(path, "invalid siting JSON: %v", err)
		}
		if _, exists := set.Sitings[sj.Name]; exists {
			return newConfigError(path, "duplicate siting name %q", sj.Name)
		}
		siting := sj.toChromaSiting()
		if err := siting.Validate(); err != nil {
			return newConfigError(path, "invalid chroma siting: %v", err)
		}
		set.Sitings[sj.Name] = siting

	case "matrix":
		var mj matrixJSON
		if err := json.Unmarshal(raw, &mj); err != nil {
			return newConfigError(path, "invalid matrix JSON: %v", err)
		}
		if _, exists := set.Matrices[mj.Name]; exists {
			return newConfigError(path, "duplicate matrix name %q", mj.Name)
		}
		matrix := mj.toConversionMatrix()
		if err := matrix.Validate(); err != nil {
			return newConfigError(path, "invalid conversion matrix: %v", err)
		}
		set.Matrices[mj.Name] = matrix

	default:
		return newConfigError(path, "unrecognised kind %q (want template, siting or matrix)", env.Kind)
	}
	return nil
}
