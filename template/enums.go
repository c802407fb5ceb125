/*
NAME
  enums.go

DESCRIPTION
  enums.go decodes the recognized enum-valued string constants from
  spec.md §4.2: origin, interleave_pattern, and swizzle mask sentinels.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package template

import (
	"github.com/ausocean/xyuv/expr"
	"github.com/ausocean/xyuv/pixel"
)

func decodeOrigin(v expr.Value) (pixel.Origin, error) {
	s, err := requireStr(v, "origin")
	if err != nil {
		return 0, err
	}
	switch s {
	case "upper_left":
		return pixel.UpperLeft, nil
	case "lower_left":
		return pixel.LowerLeft, nil
	default:
		return 0, newDependencyError("unrecognized origin constant %q", s)
	}
}

func decodeInterleaveMode(v expr.Value) (pixel.InterleaveMode, error) {
	s, err := requireStr(v, "interleave_mode")
	if err != nil {
		return 0, err
	}
	switch s {
	case "NO_INTERLEAVING":
		return pixel.NoInterleaving, nil
	case "INTERLEAVE_1_3_5__0_2_4":
		return pixel.Interleave135024, nil
	case "INTERLEAVE_0_2_4__1_3_5":
		return pixel.Interleave024135, nil
	default:
		return 0, newDependencyError("unrecognized interleave_mode constant %q", s)
	}
}

// decodeMaskEntry decodes one bit-permutation mask slot: either the
// sentinel NOT_USED/"-" or an integer bit index in [0,31].
func decodeMaskEntry(v expr.Value) (int, error) {
	if v.Kind == expr.KindString {
		s := v.S
		if s == "NOT_USED" || s == "-" {
			return pixel.UnusedMaskEntry, nil
		}
		return 0, newDependencyError("unrecognized swizzle mask constant %q", s)
	}
	if v.Kind != expr.KindInt {
		return 0, newDependencyError("swizzle mask entry must be an int or NOT_USED, got %v", v.Kind)
	}
	n := int(v.I)
	if n < 0 || n > 31 {
		return 0, newDependencyError("swizzle mask entry %d out of range [0,31]", n)
	}
	return n, nil
}

func requireStr(v expr.Value, field string) (string, error) {
	if v.Kind != expr.KindString {
		return "", newDependencyError("field %s must evaluate to a string, got %v", field, v.Kind)
	}
	return v.S, nil
}

func requireInt(v expr.Value, field string) (int, error) {
	if v.Kind != expr.KindInt {
		return 0, newDependencyError("field %s must evaluate to an int, got %v", field, v.Kind)
	}
	return int(v.I), nil
}

func requireBool(v expr.Value, field string) (bool, error) {
	if v.Kind != expr.KindBool {
		return false, newDependencyError("field %s must evaluate to a bool, got %v", field, v.Kind)
	}
	return v.B, nil
}
