/*
NAME
  downsample.go

DESCRIPTION
  downsample.go implements siting-aware down-sampling from 4:4:4 to an
  arbitrary ChromaSiting (spec.md §4.5): each output chroma sample is a
  weighted average over the up-to-four source pixels whose centers lie
  within distance 1.0 of the siting point along each axis.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package subsample

import (
	"math"

	"github.com/ausocean/xyuv/pixel"
)

// DownSample returns img re-sited to siting. If img is already at
// siting, it returns a copy. If img is not 4:4:4, it is up-sampled
// first and the 4:4:4 result recursed on.
func DownSample(img *pixel.YuvImage, siting pixel.ChromaSiting) (*pixel.YuvImage, error) {
	if img.Siting == siting {
		return img.Clone(), nil
	}
	if !img.Siting.Subsampling.Is444() {
		full, err := UpSample(img)
		if err != nil {
			return nil, err
		}
		return DownSample(full, siting)
	}

	cw := siting.ChromaWidth(img.ImageW)
	ch := siting.ChromaHeight(img.ImageH)
	out := &pixel.YuvImage{
		ImageW: img.ImageW,
		ImageH: img.ImageH,
		Siting: siting,
		Y:      img.Y.Clone(),
		A:      img.A.Clone(),
	}

	mw, mh := siting.Subsampling.MacroPxW, siting.Subsampling.MacroPxH
	if !img.U.Empty() {
		out.U = downsamplePlane(img.U, cw, ch, mw, mh, siting.U)
	}
	if !img.V.Empty() {
		out.V = downsamplePlane(img.V, cw, ch, mw, mh, siting.V)
	}
	return out, nil
}

// downsamplePlane computes one chroma plane's samples from a 4:4:4
// source plane, per spec.md §4.5's weighted-average formula.
func downsamplePlane(src pixel.Surface[pixel.PixelQuantum], cw, ch, mw, mh int, pt pixel.SitingPoint) pixel.Surface[pixel.PixelQuantum] {
	out := pixel.NewSurface[pixel.PixelQuantum](cw, ch)
	for by := 0; by < ch; by++ {
		for bx := 0; bx < cw; bx++ {
			var sum float64
			for dy := 0; dy < mh; dy++ {
				wy := 1.0 - math.Abs(pt.Y-float64(dy))
				if wy <= 0 {
					continue
				}
				sy := clampToEdge(by*mh+dy, src.Height)
				for dx := 0; dx < mw; dx++ {
					wx := 1.0 - math.Abs(pt.X-float64(dx))
					if wx <= 0 {
						continue
					}
					sx := clampToEdge(bx*mw+dx, src.Width)
					sum += src.At(sx, sy) * wx * wy
				}
			}
			out.Set(bx, by, sum)
		}
	}
	return out
}
