/*
NAME
  scale.go

DESCRIPTION
  scale.go implements siting-aware image scaling (spec.md §4.5): up-
  sample to 4:4:4, scale every plane with nearest-neighbor sampling,
  then down-sample back to the source siting.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package subsample

import "github.com/ausocean/xyuv/pixel"

// ScaleYuvImage resizes img to w x h, preserving its original siting.
func ScaleYuvImage(img *pixel.YuvImage, w, h int) (*pixel.YuvImage, error) {
	siting := img.Siting

	full, err := UpSample(img)
	if err != nil {
		return nil, err
	}

	scaled := &pixel.YuvImage{
		ImageW: w, ImageH: h,
		Siting: full.Siting,
		Y:      scaleSurface(full.Y, w, h),
		U:      scaleSurface(full.U, w, h),
		V:      scaleSurface(full.V, w, h),
		A:      scaleSurface(full.A, w, h),
	}

	return DownSample(scaled, siting)
}

// scaleSurface resizes src to w x h with nearest-neighbor sampling.
func scaleSurface(src pixel.Surface[pixel.PixelQuantum], w, h int) pixel.Surface[pixel.PixelQuantum] {
	if src.Empty() {
		return src
	}
	out := pixel.NewSurface[pixel.PixelQuantum](w, h)
	for y := 0; y < h; y++ {
		sy := y * src.Height / h
		for x := 0; x < w; x++ {
			sx := x * src.Width / w
			out.Set(x, y, src.At(sx, sy))
		}
	}
	return out
}
