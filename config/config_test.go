/*
NAME
  config_test.go

DESCRIPTION
  config_test.go tests LoadDir against a small fixture directory written
  to a t.TempDir(), matching the table-driven, cmp-assisted style of
  revid/config/config_test.go.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.
*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ausocean/xyuv/template"
)

const y8Template = `{
  "kind": "template",
  "name": "y8",
  "four_cc": "Y800",
  "origin": "\"upper_left\"",
  "planes": [
    {
      "base_offset": "0",
      "size": "image_w * image_h",
      "line_stride": "image_w",
      "block_stride": "8",
      "interleave_mode": "\"NO_INTERLEAVING\""
    }
  ],
  "channels": {
    "y": {
      "block_w": "1",
      "block_h": "1",
      "auto_gen": {
        "plane": "0",
        "offset": "0",
        "integer_bits": "8",
        "fractional_bits": "0",
        "has_continuation": "false"
      }
    }
  }
}`

const siting420 = `{
  "kind": "siting",
  "name": "mpeg2_420",
  "macro_px_w": 2,
  "macro_px_h": 2,
  "u_x": 0,
  "u_y": 0,
  "v_x": 0,
  "v_y": 0
}`

const identityMatrixJSON = `{
  "kind": "matrix",
  "name": "identity",
  "rgb_to_yuv": [1,0,0, 0,1,0, 0,0,1],
  "yuv_to_rgb": [1,0,0, 0,1,0, 0,0,1],
  "y_range": {"min": 0, "max": 1},
  "u_range": {"min": 0, "max": 1},
  "v_range": {"min": 0, "max": 1},
  "y_packed_range": {"min": 0, "max": 1},
  "u_packed_range": {"min": 0, "max": 1},
  "v_packed_range": {"min": 0, "max": 1}
}`

func writeFixtures(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		"y8.json":       y8Template,
		"420.json":      siting420,
		"identity.json": identityMatrixJSON,
	})

	set, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	if _, ok := set.Templates["y8"]; !ok {
		t.Error("missing template \"y8\"")
	}
	siting, ok := set.Sitings["mpeg2_420"]
	if !ok {
		t.Fatal("missing siting \"mpeg2_420\"")
	}
	if siting.Subsampling.MacroPxW != 2 || siting.Subsampling.MacroPxH != 2 {
		t.Errorf("siting subsampling = %+v, want 2x2", siting.Subsampling)
	}
	if _, ok := set.Matrices["identity"]; !ok {
		t.Error("missing matrix \"identity\"")
	}
}

// TestLoadDirInflates confirms a loaded template round-trips through
// template.Inflate: the loader's job is only to build the symbolic
// FormatTemplate, not to evaluate it.
func TestLoadDirInflates(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		"y8.json":       y8Template,
		"420.json":      siting420,
		"identity.json": identityMatrixJSON,
	})

	set, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	f, err := template.Inflate(set.Templates["y8"], 4, 3, set.Sitings["mpeg2_420"], set.Matrices["identity"])
	if err != nil {
		t.Fatalf("Inflate: %v", err)
	}
	if f.Size != 12 {
		t.Errorf("Size = %d, want 12", f.Size)
	}
}

func TestLoadDirRejectsUnrecognisedKind(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		"bad.json": `{"kind": "bogus", "name": "x"}`,
	})
	if _, err := LoadDir(dir); err == nil {
		t.Fatal("expected error for unrecognised kind")
	} else if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
}

func TestLoadDirRejectsDuplicateName(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		"a.json": identityMatrixJSON,
		"b.json": identityMatrixJSON,
	})
	if _, err := LoadDir(dir); err == nil {
		t.Fatal("expected error for duplicate matrix name")
	}
}

func TestLoadDirRejectsBadExpression(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		"bad.json": `{
			"kind": "template", "name": "broken", "four_cc": "Y800",
			"origin": "\"upper_left\"",
			"planes": [{"base_offset": "((", "size": "1", "line_stride": "1", "block_stride": "8", "interleave_mode": "\"NO_INTERLEAVING\""}],
			"channels": {}
		}`,
	})
	if _, err := LoadDir(dir); err == nil {
		t.Fatal("expected error for malformed expression")
	} else if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
}
