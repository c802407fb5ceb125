/*
NAME
  reorder.go

DESCRIPTION
  reorder.go implements the block reorderer: a bijective, bit-interleaved
  permutation of fixed-stride blocks inside a plane, per a BlockOrder
  swizzle descriptor (spec.md §4.3). The plane's block grid is tiled into
  mega-block rectangles of MegaBlockW x MegaBlockH blocks; within each
  tile, blocks are permuted according to the bit-packed XOR of the
  tile-local (bx, by) coordinates. Tiles at the right/bottom edge of a
  plane that only partially cover the image still reserve a full
  mega-block's worth of storage (the inflater's structural dependency
  rule, spec.md §4.2 step 4, guarantees line_stride and plane_size were
  sized for this).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package reorder implements the block reorderer component: forward and
// inverse application of a plane's swizzle (BlockOrder) to its packed
// bytes.
package reorder

import "github.com/ausocean/xyuv/pixel"

// Geometry describes the block grid a plane's BlockOrder is applied
// over. BlocksPerRow and BlockRows are the *logical* (unpadded) block
// grid dimensions, e.g. ceil(image_w/block_w) x ceil(image_h/block_h)
// for the channel(s) using this plane.
type Geometry struct {
	BlocksPerRow, BlockRows int
}

// bitPack packs bits of v according to mask: for each output bit
// position i in [0,32), if mask[i] is a valid bit index, bit mask[i] of
// v contributes to bit i of the result (spec.md §4.3).
func bitPack(v int, mask [32]int) int {
	out := 0
	for i := 0; i < 32; i++ {
		m := mask[i]
		if m == pixel.UnusedMaskEntry {
			continue
		}
		bit := (v >> uint(m)) & 1
		out |= bit << uint(i)
	}
	return out
}

// permute computes the on-disk local block coordinate for tile-local
// logical coordinate (bx, by) inside a MegaBlockW x MegaBlockH tile.
func permute(bx, by int, bo pixel.BlockOrder) (px, py int) {
	xval := bitPack(bx, bo.XMask)
	yval := bitPack(by, bo.YMask)
	offset := xval ^ yval
	return offset % bo.MegaBlockW, offset / bo.MegaBlockW
}

// invPermute computes the logical tile-local coordinate that was stored
// at physical tile-local coordinate (px, py). Because bitPack/XOR/div-mod
// is a bijection over [0, MegaBlockW*MegaBlockH), the inverse is found by
// brute-force search over the (small, <= 65536) tile space. This mirrors
// permute's structure exactly, just run in the opposite direction.
func invPermute(px, py int, bo pixel.BlockOrder) (bx, by int) {
	for y := 0; y < bo.MegaBlockH; y++ {
		for x := 0; x < bo.MegaBlockW; x++ {
			ox, oy := permute(x, y, bo)
			if ox == px && oy == py {
				return x, y
			}
		}
	}
	// Unreachable for a valid (bijective) BlockOrder.
	return px, py
}

// Apply reorders plane bytes (buf, exactly plane.Size bytes) according
// to plane.BlockOrder and geom, writing the permuted result back into a
// freshly allocated buffer of the same size. If inverse is false this is
// the forward (encode-time) transform; if true, the inverse
// (decode-time) transform.
//
// block_stride is guaranteed byte-aligned whenever reordering is active
// (spec.md §4.3), so blocks are copied whole bytes at a time.
func Apply(plane pixel.Plane, geom Geometry, buf []byte, inverse bool) []byte {
	bo := plane.BlockOrder
	if bo.Identity() {
		out := make([]byte, len(buf))
		copy(out, buf)
		return out
	}

	blockBytes := plane.BlockStride / 8
	tileCols := ceilDiv(geom.BlocksPerRow, bo.MegaBlockW)
	tileRows := ceilDiv(geom.BlockRows, bo.MegaBlockH)

	out := make([]byte, len(buf))

	// Every tile reserves a full MegaBlockW x MegaBlockH block rectangle
	// of storage even where it only partially covers the logical block
	// grid (the inflater's structural dependency rule on line_stride and
	// plane_size, spec.md §4.2 step 4, guarantees the room exists), so
	// the padding blocks are reordered along with the real ones.
	for tileY := 0; tileY < tileRows; tileY++ {
		for tileX := 0; tileX < tileCols; tileX++ {
			for ly := 0; ly < bo.MegaBlockH; ly++ {
				for lx := 0; lx < bo.MegaBlockW; lx++ {
					logicalCol := tileX*bo.MegaBlockW + lx
					logicalRow := tileY*bo.MegaBlockH + ly

					var px, py int
					if !inverse {
						px, py = permute(lx, ly, bo)
					} else {
						px, py = invPermute(lx, ly, bo)
					}
					physCol := tileX*bo.MegaBlockW + px
					physRow := tileY*bo.MegaBlockH + py

					// Forward: (lx, ly) is a logical position and (px, py) its
					// storage slot. Inverse: (lx, ly) is a storage slot and
					// (px, py) the logical position stored there. Either way the
					// block at the first is copied to the second.
					srcOff, dstOff := logicalOffset(logicalRow, logicalCol, plane.LineStride, blockBytes),
						logicalOffset(physRow, physCol, plane.LineStride, blockBytes)
					copyBlock(out, dstOff, buf, srcOff, blockBytes)
				}
			}
		}
	}
	return out
}

func logicalOffset(blockRow, blockCol, lineStride, blockBytes int) int {
	return blockRow*lineStride + blockCol*blockBytes
}

func copyBlock(dst []byte, dstOff int, src []byte, srcOff int, n int) {
	copy(dst[dstOff:dstOff+n], src[srcOff:srcOff+n])
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
