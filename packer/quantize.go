/*
NAME
  quantize.go

DESCRIPTION
  quantize.go implements the UNORM quantization and dequantization rules
  from spec.md §4.4. Rounding is round-half-up (floor(x+0.5)), preserving
  byte-exact round trips with existing on-disk frames per spec.md §9's
  explicit instruction to keep this behaviour rather than switch to
  banker's rounding.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package packer implements the pixel packer/unpacker: materializing
// plane bytes from floating-point samples and vice versa, respecting
// block geometry, continuation chains, line interleave, and origin.
package packer

import "math"

// Quantize maps a float v in [0,1] through a channel range (lo, hi) into
// an unsigned integer of the given combined integer/fractional bit
// widths:
//
//	q      = v*(hi-lo) + lo
//	max    = ((1<<integerBits)-1) << fractionalBits
//	unorm  = round_half_up(q * max)
func Quantize(v, lo, hi float64, integerBits, fractionalBits int) uint64 {
	max := unormMax(integerBits, fractionalBits)
	q := v*(hi-lo) + lo
	scaled := q * float64(max)
	rounded := math.Floor(scaled + 0.5)
	if rounded < 0 {
		rounded = 0
	}
	if rounded > float64(max) {
		rounded = float64(max)
	}
	return uint64(rounded)
}

// Dequantize is the inverse of Quantize: v = clamp(0,1, (unorm/max - lo) / (hi - lo)).
func Dequantize(unorm uint64, lo, hi float64, integerBits, fractionalBits int) float64 {
	max := unormMax(integerBits, fractionalBits)
	if max == 0 {
		return 0
	}
	q := float64(unorm) / float64(max)
	v := (q - lo) / (hi - lo)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

func unormMax(integerBits, fractionalBits int) uint64 {
	if integerBits == 0 {
		return 0
	}
	return ((uint64(1) << uint(integerBits)) - 1) << uint(fractionalBits)
}
