/*
NAME
  yuvimage.go

DESCRIPTION
  yuvimage.go defines YuvImage, the canonical full- or chroma-subsampled
  floating-point image that the packer and subsampler operate on.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pixel

// YuvImage is the canonical in-memory image: up to four Surfaces (Y, U,
// V, A) of PixelQuantum, in a declared ChromaSiting. Chroma plane sizes
// are ceil(image_w/macro_px_w) x ceil(image_h/macro_px_h).
type YuvImage struct {
	ImageW, ImageH int
	Siting         ChromaSiting
	Y, U, V, A     Surface[PixelQuantum]
}

// Plane returns the Surface for channel c.
func (img *YuvImage) Plane(c Channel) Surface[PixelQuantum] {
	switch c {
	case ChannelY:
		return img.Y
	case ChannelU:
		return img.U
	case ChannelV:
		return img.V
	case ChannelA:
		return img.A
	default:
		return Surface[PixelQuantum]{}
	}
}

// SetPlane stores s as the surface for channel c.
func (img *YuvImage) SetPlane(c Channel, s Surface[PixelQuantum]) {
	switch c {
	case ChannelY:
		img.Y = s
	case ChannelU:
		img.U = s
	case ChannelV:
		img.V = s
	case ChannelA:
		img.A = s
	}
}

// Validate checks that image dimensions are positive and that each
// present plane's size matches what ImageW/ImageH/Siting imply.
func (img *YuvImage) Validate() error {
	if img.ImageW <= 0 || img.ImageH <= 0 {
		return newDomainError("image dimensions must be positive, got %dx%d", img.ImageW, img.ImageH)
	}
	if err := img.Siting.Validate(); err != nil {
		return err
	}
	if !img.Y.Empty() && (img.Y.Width != img.ImageW || img.Y.Height != img.ImageH) {
		return newDomainError("Y plane is %dx%d, expected %dx%d", img.Y.Width, img.Y.Height, img.ImageW, img.ImageH)
	}
	if !img.A.Empty() && (img.A.Width != img.ImageW || img.A.Height != img.ImageH) {
		return newDomainError("A plane is %dx%d, expected %dx%d", img.A.Width, img.A.Height, img.ImageW, img.ImageH)
	}
	cw, ch := img.Siting.ChromaWidth(img.ImageW), img.Siting.ChromaHeight(img.ImageH)
	if !img.U.Empty() && (img.U.Width != cw || img.U.Height != ch) {
		return newDomainError("U plane is %dx%d, expected %dx%d", img.U.Width, img.U.Height, cw, ch)
	}
	if !img.V.Empty() && (img.V.Width != cw || img.V.Height != ch) {
		return newDomainError("V plane is %dx%d, expected %dx%d", img.V.Width, img.V.Height, cw, ch)
	}
	return nil
}

// Clone returns a deep copy of img.
func (img *YuvImage) Clone() *YuvImage {
	return &YuvImage{
		ImageW: img.ImageW,
		ImageH: img.ImageH,
		Siting: img.Siting,
		Y:      img.Y.Clone(),
		U:      img.U.Clone(),
		V:      img.V.Clone(),
		A:      img.A.Clone(),
	}
}

// RGBBridge is the two-method trait external collaborators implement to
// move between a 4:4:4 YuvImage and their own RGB image representation,
// without the core ever holding onto a concrete image-library type
// (spec.md §6, §9 "Polymorphic RGB bridge").
type RGBBridge interface {
	// FromYUV444 populates the receiver's RGB image from a 4:4:4
	// YuvImage, applying matrix's yuv_to_rgb conversion.
	FromYUV444(img *YuvImage, matrix ConversionMatrix) error

	// ToYUV444 returns a 4:4:4 YuvImage built from the receiver's RGB
	// image, applying matrix's rgb_to_yuv conversion.
	ToYUV444(matrix ConversionMatrix) (*YuvImage, error)
}
