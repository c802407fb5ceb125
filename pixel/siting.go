/*
NAME
  siting.go

DESCRIPTION
  siting.go defines Subsampling and ChromaSiting, the macro-pixel
  geometry and sample-point placement used by the subsampler and the
  format inflater.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pixel

// Subsampling is a macro-pixel geometry: MacroPxW x MacroPxH source
// pixels share one chroma sample. (1, 1) means 4:4:4. Both components
// must lie in [1, 255].
type Subsampling struct {
	MacroPxW, MacroPxH int
}

// Is444 reports whether s is the identity (no subsampling) geometry.
func (s Subsampling) Is444() bool { return s.MacroPxW == 1 && s.MacroPxH == 1 }

// Validate checks that both macro-pixel components are in range.
func (s Subsampling) Validate() error {
	if s.MacroPxW < 1 || s.MacroPxW > 255 || s.MacroPxH < 1 || s.MacroPxH > 255 {
		return newDomainError("subsampling macro pixel %dx%d out of range [1,255]", s.MacroPxW, s.MacroPxH)
	}
	return nil
}

// SitingPoint is a sample location within a macro pixel, in pixel units.
type SitingPoint struct {
	X, Y float64
}

// ChromaSiting describes where U and V samples lie within their macro
// pixel, relative to luma.
type ChromaSiting struct {
	Subsampling Subsampling
	U, V        SitingPoint
}

// Validate checks that sample points lie within the macro-pixel bounds.
func (c ChromaSiting) Validate() error {
	if err := c.Subsampling.Validate(); err != nil {
		return err
	}
	maxX := float64(c.Subsampling.MacroPxW - 1)
	maxY := float64(c.Subsampling.MacroPxH - 1)
	for _, p := range []struct {
		name string
		pt   SitingPoint
	}{{"u", c.U}, {"v", c.V}} {
		if p.pt.X < 0 || p.pt.X > maxX || p.pt.Y < 0 || p.pt.Y > maxY {
			return newDomainError("%s siting point (%v,%v) outside macro pixel bounds [0,%v]x[0,%v]", p.name, p.pt.X, p.pt.Y, maxX, maxY)
		}
	}
	return nil
}

// ChromaWidth and ChromaHeight return the chroma plane dimensions for a
// luma image of the given size: ceil(image_w/macro_px_w) x
// ceil(image_h/macro_px_h).
func (c ChromaSiting) ChromaWidth(imageW int) int {
	return ceilDiv(imageW, c.Subsampling.MacroPxW)
}

func (c ChromaSiting) ChromaHeight(imageH int) int {
	return ceilDiv(imageH, c.Subsampling.MacroPxH)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
