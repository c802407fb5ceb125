/*
NAME
  address.go

DESCRIPTION
  address.go computes the bit address of a block within a plane's bytes,
  accounting for line interleave (spec.md §4.4 "Line interleave") and
  origin-dependent stride direction ("Line stride direction"). Block
  reordering (the swizzle) is handled separately, as a whole-plane pass
  applied after all channels have been packed (spec.md §4.4 step 5) --
  addressing here always targets the *natural* (un-swizzled) block
  position.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package packer

import "github.com/ausocean/xyuv/pixel"

// physicalBlockRow maps a logical block row to its physical row index
// within the plane, per the plane's interleave mode (spec.md §4.4).
func physicalBlockRow(logical, totalRows int, mode pixel.InterleaveMode) int {
	switch mode {
	case pixel.NoInterleaving:
		return logical
	case pixel.Interleave024135:
		// Even logical rows first, then odd.
		if logical%2 == 0 {
			return logical / 2
		}
		return ceilDiv(totalRows, 2) + logical/2
	case pixel.Interleave135024:
		// Odd logical rows first, then even.
		if logical%2 != 0 {
			return logical / 2
		}
		return totalRows/2 + logical/2
	default:
		return logical
	}
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// blockBitAddr returns the absolute bit address, within the whole frame,
// of block (blockRow, blockCol)'s storage in plane, given the channel's
// total block-row count (used by the interleave mapping) and the
// format's origin.
func blockBitAddr(plane pixel.Plane, origin pixel.Origin, blockRow, blockCol, totalRows int) int {
	physRow := physicalBlockRow(blockRow, totalRows, plane.InterleaveMode)

	var rowByteAddr int
	if origin == pixel.UpperLeft {
		rowByteAddr = plane.BaseOffset + physRow*plane.LineStride
	} else {
		rowByteAddr = plane.BaseOffset + plane.Size - plane.LineStride - physRow*plane.LineStride
	}
	colBitAddr := blockCol * plane.BlockStride
	return rowByteAddr*8 + colBitAddr
}
