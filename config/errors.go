/*
NAME
  errors.go

DESCRIPTION
  errors.go defines ConfigError, the config package's single error kind:
  a malformed or unrecognised on-disk template/siting/matrix file.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config loads a directory of named *.json template, chroma
// siting and conversion matrix files for the CLI tools, following the
// pattern of revid/config: typed fields, descriptive field-level errors,
// no generic map[string]any. JSON syntax parsing is encoding/json's
// concern; this package only defines the on-disk envelope (file kind and
// name) and hands decoded structs to the core's template.FormatTemplate,
// pixel.ChromaSiting and pixel.ConversionMatrix types.
package config

import "fmt"

// ConfigError reports a malformed on-disk configuration file: an
// unrecognised kind, a duplicate name, or an expression that fails to
// parse.
type ConfigError struct {
	File string
	Msg  string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("config %s: %s", e.File, e.Msg) }

func newConfigError(file, format string, args ...interface{}) error {
	return &ConfigError{File: file, Msg: fmt.Sprintf(format, args...)}
}
