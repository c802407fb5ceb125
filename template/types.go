/*
NAME
  types.go

DESCRIPTION
  types.go defines FormatTemplate and its symbolic components: the
  dimension-independent, expression-valued mirror of pixel.Format
  (spec.md §4.2). Fields are expr.Expression values evaluated against
  image_w, image_h, and the requested subsampling during Inflate.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package template implements the format template and inflater: a
// symbolic, dimension-independent pixel layout description that is
// inflated against (width, height, siting, matrix) into a concrete
// pixel.Format (spec.md §4.2).
package template

import "github.com/ausocean/xyuv/expr"

// SampleTemplate is one fixed (non-auto-generated) sample entry.
type SampleTemplate struct {
	Plane           expr.Expression
	Offset          expr.Expression
	IntegerBits     expr.Expression
	FractionalBits  expr.Expression
	HasContinuation expr.Expression
}

// AutoGenSample describes a sample field set evaluated once per
// (block_x, block_y) iteration over a channel's block, with those two
// names bound in the evaluation environment (spec.md §4.2 step 6).
type AutoGenSample struct {
	Plane           expr.Expression
	Offset          expr.Expression
	IntegerBits     expr.Expression
	FractionalBits  expr.Expression
	HasContinuation expr.Expression
}

// ChannelBlockTemplate is one channel slot's symbolic block geometry.
// Exactly one of Samples or AutoGen is used: a template with fixed
// samples sets Samples; one with auto-generated samples sets AutoGen
// and leaves Samples nil. A channel template with BlockW == BlockH ==
// nil is absent.
type ChannelBlockTemplate struct {
	BlockW, BlockH expr.Expression
	Samples        []SampleTemplate
	AutoGen        *AutoGenSample
}

func (cb ChannelBlockTemplate) present() bool { return cb.BlockW != nil && cb.BlockH != nil }

// BlockOrderTemplate is the symbolic swizzle descriptor for a plane. A
// nil MegaBlockW/MegaBlockH means identity (no swizzle); mask entries
// evaluate to either an Int in [0,31] or the string "NOT_USED"/"-".
type BlockOrderTemplate struct {
	MegaBlockW, MegaBlockH expr.Expression
	XMask, YMask           [32]expr.Expression
}

// PlaneTemplate is one plane's symbolic layout.
type PlaneTemplate struct {
	BaseOffset     expr.Expression
	Size           expr.Expression
	LineStride     expr.Expression
	BlockStride    expr.Expression
	InterleaveMode expr.Expression // evaluates to a Str enum constant
	BlockOrder     BlockOrderTemplate
}

// FormatTemplate is the dimension-independent pixel layout description
// inflated by Inflate. UsesRGB selects whether the R/G/B/A or Y/U/V/A
// channel naming is in effect; the inflated Format always exposes the
// four Y/U/V/A slots (spec.md §4.2's "never both" rule).
type FormatTemplate struct {
	FourCC  [4]byte
	Origin  expr.Expression // evaluates to a Str enum constant
	Planes  []PlaneTemplate
	UsesRGB bool

	// Y, U, V, A (or, when UsesRGB, R, G, B, A mapped positionally onto
	// the same four slots) channel templates.
	Channels [4]ChannelBlockTemplate
}
