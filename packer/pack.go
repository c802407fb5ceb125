/*
NAME
  pack.go

DESCRIPTION
  pack.go implements the encode pipeline (spec.md §4.4): conform the
  source image to the format's siting/dimensions, allocate a poisoned
  frame buffer, quantize each present channel's pixels into plane bytes,
  substitute an implicit 1.0 alpha surface when needed, then apply the
  forward block-order transform to every plane.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package packer

import (
	"github.com/pkg/errors"

	"github.com/ausocean/xyuv/pixel"
	"github.com/ausocean/xyuv/reorder"
)

// Conformer conforms a YuvImage to the dimensions and siting a target
// Format expects. It is satisfied by subsample.Conform, passed in by
// callers (typically the xyuv facade) to avoid an import cycle between
// packer and subsample.
type Conformer func(img *pixel.YuvImage, w, h int, siting pixel.ChromaSiting) (*pixel.YuvImage, error)

// Encode implements the pixel-packer half of spec.md §4.4's encode
// pipeline. conform may be nil if img is already known to match
// format's dimensions and siting exactly.
func Encode(img *pixel.YuvImage, format *pixel.Format, conform Conformer) (*pixel.Frame, error) {
	src := img
	if conform != nil && (img.ImageW != format.ImageW || img.ImageH != format.ImageH || img.Siting != format.Siting) {
		var err error
		src, err = conform(img, format.ImageW, format.ImageH, format.Siting)
		if err != nil {
			return nil, errors.Wrap(err, "conforming source image to format")
		}
	}

	frame, err := pixel.CreateFrame(format, nil)
	if err != nil {
		return nil, errors.Wrap(err, "allocating frame")
	}

	planeGeom := make(map[int]reorder.Geometry)

	for ch := pixel.Channel(0); ch < 4; ch++ {
		cb := format.Channels[ch]
		if !cb.Present() {
			continue
		}
		surf := src.Plane(ch)
		if surf.Empty() {
			if ch != pixel.ChannelA {
				continue
			}
			surf = implicitAlpha(format.ImageW, format.ImageH)
		}

		lo, hi := packedRange(format.ConversionMatrix, ch)
		chains := buildChains(cb)
		blocksPerRow := ceilDiv(surfaceChannelWidth(format, ch), cb.BlockW)
		blockRows := ceilDiv(surfaceChannelHeight(format, ch), cb.BlockH)
		recordGeometry(planeGeom, cb, blocksPerRow, blockRows)

		encodeChannel(frame.Bytes, format, cb, chains, surf, lo, hi, blocksPerRow, blockRows)
	}

	for i := range format.Planes {
		geom, ok := planeGeom[i]
		if !ok || format.Planes[i].BlockOrder.Identity() {
			continue
		}
		pl := format.Planes[i]
		region := frame.Bytes[pl.BaseOffset : pl.BaseOffset+pl.Size]
		out := reorder.Apply(pl, geom, region, false)
		copy(region, out)
	}

	return frame, nil
}

func encodeChannel(buf []byte, format *pixel.Format, cb pixel.ChannelBlock, chains []chain, surf pixel.Surface[pixel.PixelQuantum], lo, hi float64, blocksPerRow, blockRows int) {
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
					v := surf.At(x, y)
					writeChainValue(buf, format, c, blockRow, blockCol, blockRows, v, lo, hi)
				}
			}
		}
	}
}

// writeChainValue quantizes v into the chain's combined UNORM and
// splits the result into per-entry limbs, base entry least-significant
// first, writing each limb to its own plane/offset address.
func writeChainValue(buf []byte, format *pixel.Format, c chain, blockRow, blockCol, blockRows int, v, lo, hi float64) {
	combined := Quantize(v, lo, hi, c.integerBits(), c.fractionalBits())
	shift := uint(0)
	for _, e := range c.Entries {
		width := e.Bits()
		limb := (combined >> shift) & ((uint64(1) << uint(width)) - 1)
		addr := blockBitAddr(format.Planes[e.Plane], format.Origin, blockRow, blockCol, blockRows) + e.Offset
		writeBits(buf, addr, width, limb)
		shift += uint(width)
	}
}

// packedRange returns the quantization target range for channel ch.
// Alpha is not colour-managed, so it always uses the identity [0,1]
// range.
func packedRange(m pixel.ConversionMatrix, ch pixel.Channel) (float64, float64) {
	switch ch {
	case pixel.ChannelY:
		return m.YPackedRange.Min, m.YPackedRange.Max
	case pixel.ChannelU:
		return m.UPackedRange.Min, m.UPackedRange.Max
	case pixel.ChannelV:
		return m.VPackedRange.Min, m.VPackedRange.Max
	default:
		return 0, 1
	}
}

func implicitAlpha(w, h int) pixel.Surface[pixel.PixelQuantum] {
	s := pixel.NewSurface[pixel.PixelQuantum](w, h)
	for i := range s.Data {
		s.Data[i] = 1.0
	}
	return s
}

func surfaceChannelWidth(format *pixel.Format, ch pixel.Channel) int {
	if ch == pixel.ChannelU || ch == pixel.ChannelV {
		return format.Siting.ChromaWidth(format.ImageW)
	}
	return format.ImageW
}

func surfaceChannelHeight(format *pixel.Format, ch pixel.Channel) int {
	if ch == pixel.ChannelU || ch == pixel.ChannelV {
		return format.Siting.ChromaHeight(format.ImageH)
	}
	return format.ImageH
}

func recordGeometry(m map[int]reorder.Geometry, cb pixel.ChannelBlock, blocksPerRow, blockRows int) {
	for _, s := range cb.Samples {
		if _, ok := m[s.Plane]; !ok {
			m[s.Plane] = reorder.Geometry{BlocksPerRow: blocksPerRow, BlockRows: blockRows}
		}
	}
}
