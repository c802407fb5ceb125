/*
NAME
  unpack.go

DESCRIPTION
  unpack.go implements the decode pipeline (spec.md §4.4): invert the
  block-order transform on a scratch copy of any swizzled plane, then
  read each present channel's logical samples back into a canonical
  YuvImage.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package packer

import (
	"github.com/ausocean/xyuv/pixel"
	"github.com/ausocean/xyuv/reorder"
)

// Decode implements the pixel-unpacker half of spec.md §4.4's decode
// pipeline.
func Decode(frame *pixel.Frame) (*pixel.YuvImage, error) {
	format := frame.Format

	planeBytes := make([][]byte, len(format.Planes))
	planeGeom := make(map[int]reorder.Geometry)
	for ch := pixel.Channel(0); ch < 4; ch++ {
		cb := format.Channels[ch]
		if !cb.Present() {
			continue
		}
		blocksPerRow := ceilDiv(surfaceChannelWidth(format, ch), cb.BlockW)
		blockRows := ceilDiv(surfaceChannelHeight(format, ch), cb.BlockH)
		recordGeom(planeGeom, cb, blocksPerRow, blockRows)
	}
	for i, pl := range format.Planes {
		region := frame.Bytes[pl.BaseOffset : pl.BaseOffset+pl.Size]
		if pl.BlockOrder.Identity() {
			planeBytes[i] = region
			continue
		}
		geom := planeGeom[i]
		planeBytes[i] = reorder.Apply(pl, geom, region, true)
	}

	img := &pixel.YuvImage{ImageW: format.ImageW, ImageH: format.ImageH, Siting: format.Siting}

	for ch := pixel.Channel(0); ch < 4; ch++ {
		cb := format.Channels[ch]
		if !cb.Present() {
			continue
		}
		w := surfaceChannelWidth(format, ch)
		h := surfaceChannelHeight(format, ch)
		surf := pixel.NewSurface[pixel.PixelQuantum](w, h)
		lo, hi := packedRange(format.ConversionMatrix, ch)
		chains := buildChains(cb)
		blocksPerRow := ceilDiv(w, cb.BlockW)
		blockRows := ceilDiv(h, cb.BlockH)
		decodeChannel(planeBytes, format, cb, chains, surf, lo, hi, blocksPerRow, blockRows)
		img.SetPlane(ch, surf)
	}

	return img, nil
}

func decodeChannel(planeBytes [][]byte, format *pixel.Format, cb pixel.ChannelBlock, chains []chain, surf pixel.Surface[pixel.PixelQuantum], lo, hi float64, blocksPerRow, blockRows int) {
	bw, bh := cb.BlockW, cb.BlockH
	for blockRow := 0; blockRow < blockRows; blockRow++ {
		for blockCol := 0; blockCol < blocksPerRow; blockCol++ {
			for i := 0; i < bh; i++ {
				for j := 0; j < bw; j++ {
					x := blockCol*bw + j
					y := blockRow*bh + i
					if x >= surf.Width || y >= surf.Height {
						continue
					}
					c := chains[i*bw+j]
					v := readChainValue(planeBytes, format, c, blockRow, blockCol, blockRows, lo, hi)
					surf.Set(x, y, v)
				}
			}
		}
	}
}

func readChainValue(planeBytes [][]byte, format *pixel.Format, c chain, blockRow, blockCol, blockRows int, lo, hi float64) float64 {
	var combined uint64
	shift := uint(0)
	for _, e := range c.Entries {
		width := e.Bits()
		pl := format.Planes[e.Plane]
		// planeBytes holds plane-relative bytes; blockBitAddr is frame-absolute.
		addr := blockBitAddr(pl, format.Origin, blockRow, blockCol, blockRows) + e.Offset - pl.BaseOffset*8
		limb := readBits(planeBytes[e.Plane], addr, width)
		combined |= limb << shift
		shift += uint(width)
	}
	return Dequantize(combined, lo, hi, c.integerBits(), c.fractionalBits())
}

func recordGeom(m map[int]reorder.Geometry, cb pixel.ChannelBlock, blocksPerRow, blockRows int) {
	for _, s := range cb.Samples {
		if _, ok := m[s.Plane]; !ok {
			m[s.Plane] = reorder.Geometry{BlocksPerRow: blocksPerRow, BlockRows: blockRows}
		}
	}
}
