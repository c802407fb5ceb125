/*
NAME
  upsample.go

DESCRIPTION
  upsample.go implements up-sampling a YuvImage to 4:4:4 (spec.md §4.5):
  each chroma sample replicates across the macro-pixel block it covers.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package subsample

import "github.com/ausocean/xyuv/pixel"

// UpSample returns img at 4:4:4 siting. If img is already 4:4:4, it
// returns a copy. Y and A planes are always copied as-is; U and V
// samples replicate into every pixel of the macro-pixel block they
// cover, clipped to the image bounds.
func UpSample(img *pixel.YuvImage) (*pixel.YuvImage, error) {
	if img.Siting.Subsampling.Is444() {
		return img.Clone(), nil
	}

	out := &pixel.YuvImage{
		ImageW: img.ImageW,
		ImageH: img.ImageH,
		Siting: pixel.ChromaSiting{Subsampling: pixel.Subsampling{MacroPxW: 1, MacroPxH: 1}},
		Y:      img.Y.Clone(),
		A:      img.A.Clone(),
	}

	mw, mh := img.Siting.Subsampling.MacroPxW, img.Siting.Subsampling.MacroPxH
	if !img.U.Empty() {
		out.U = replicate(img.U, img.ImageW, img.ImageH, mw, mh)
	}
	if !img.V.Empty() {
		out.V = replicate(img.V, img.ImageW, img.ImageH, mw, mh)
	}
	return out, nil
}

// replicate expands a chroma plane to full resolution by replicating
// each sample across its macro_px_w x macro_px_h block.
func replicate(src pixel.Surface[pixel.PixelQuantum], w, h, mw, mh int) pixel.Surface[pixel.PixelQuantum] {
	out := pixel.NewSurface[pixel.PixelQuantum](w, h)
	for y := 0; y < h; y++ {
		cy := clampToEdge(y/mh, src.Height)
		for x := 0; x < w; x++ {
			cx := clampToEdge(x/mw, src.Width)
			out.Set(x, y, src.At(cx, cy))
		}
	}
	return out
}
