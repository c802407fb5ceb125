/*
NAME
  surface.go

DESCRIPTION
  surface.go defines PixelQuantum, the canonical per-sample float type, and
  Surface, a row-major 2-D array over it (or over PixelQuantum-adjacent
  element types used by the packer).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pixel implements the core data model shared by the rest of the
// xyuv module: the canonical float image (YuvImage), the concrete pixel
// layout descriptor (Format) and its symbol-free building blocks
// (Plane, ChannelBlock, Sample, BlockOrder), and the packed byte-buffer
// container (Frame).
package pixel

// PixelQuantum is a finite floating-point sample value. For Y and A
// channels it lies in [0.0, 1.0]. For U/V it is conceptually in
// [-0.5, 0.5] but is carried as [0.0, 1.0] internally after the
// ConversionMatrix's range normalisation (spec.md §3).
type PixelQuantum = float64

// Surface is a row-major 2-D array of T. An empty Surface (Width == 0 &&
// Height == 0) represents an absent channel.
type Surface[T any] struct {
	Width, Height int
	Data          []T
}

// NewSurface allocates a zero-valued Surface of the given dimensions.
// Width == 0 and Height == 0 together are valid and produce an absent
// (empty) surface.
func NewSurface[T any](width, height int) Surface[T] {
	if width == 0 && height == 0 {
		return Surface[T]{}
	}
	return Surface[T]{Width: width, Height: height, Data: make([]T, width*height)}
}

// Empty reports whether s represents an absent channel.
func (s Surface[T]) Empty() bool { return s.Width == 0 && s.Height == 0 }

// At returns the value at pixel (x, y). It panics if the coordinates are
// out of bounds, matching the invariant that data.len() == width*height.
func (s Surface[T]) At(x, y int) T {
	return s.Data[y*s.Width+x]
}

// Set stores v at pixel (x, y).
func (s Surface[T]) Set(x, y int, v T) {
	s.Data[y*s.Width+x] = v
}

// Clone returns a deep copy of s.
func (s Surface[T]) Clone() Surface[T] {
	if s.Empty() {
		return Surface[T]{}
	}
	out := Surface[T]{Width: s.Width, Height: s.Height, Data: make([]T, len(s.Data))}
	copy(out.Data, s.Data)
	return out
}
