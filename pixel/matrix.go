/*
NAME
  matrix.go

DESCRIPTION
  matrix.go defines ConversionMatrix: the pair of 3x3 RGB<->YUV matrices
  plus the six logical/quantization ranges. Matrix storage rides on
  gonum.org/v1/gonum/mat so the RGB bridge collaborator (spec.md §6) gets
  a well-tested Dense type to multiply against; this package itself never
  multiplies by the matrices (that arithmetic is explicitly out of scope
  per spec.md §1).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pixel

import "gonum.org/v1/gonum/mat"

// Range is an inclusive (Min, Max) bound with Min <= Max.
type Range struct {
	Min, Max float64
}

func (r Range) Validate(name string) error {
	if r.Min > r.Max {
		return newDomainError("%s range has Min %v > Max %v", name, r.Min, r.Max)
	}
	return nil
}

// ConversionMatrix holds the two 3x3 RGB<->YUV conversion matrices and
// the logical/quantization ranges for Y, U and V.
type ConversionMatrix struct {
	RGBToYUV, YUVToRGB *mat.Dense

	YRange, URange, VRange                      Range
	YPackedRange, UPackedRange, VPackedRange Range
}

// NewConversionMatrix builds a ConversionMatrix from row-major 3x3
// coefficient slices.
func NewConversionMatrix(rgbToYUV, yuvToRGB [9]float64, yR, uR, vR, yP, uP, vP Range) ConversionMatrix {
	return ConversionMatrix{
		RGBToYUV:      mat.NewDense(3, 3, rgbToYUV[:]),
		YUVToRGB:      mat.NewDense(3, 3, yuvToRGB[:]),
		YRange:        yR,
		URange:        uR,
		VRange:        vR,
		YPackedRange:  yP,
		UPackedRange:  uP,
		VPackedRange:  vP,
	}
}

// Validate checks that every range is well-formed and that both
// matrices are non-nil 3x3.
func (c ConversionMatrix) Validate() error {
	if c.RGBToYUV == nil || c.YUVToRGB == nil {
		return newDomainError("conversion matrix is missing rgb_to_yuv or yuv_to_rgb")
	}
	r, cN := c.RGBToYUV.Dims()
	if r != 3 || cN != 3 {
		return newDomainError("rgb_to_yuv must be 3x3, got %dx%d", r, cN)
	}
	r, cN = c.YUVToRGB.Dims()
	if r != 3 || cN != 3 {
		return newDomainError("yuv_to_rgb must be 3x3, got %dx%d", r, cN)
	}
	for _, rg := range []struct {
		name string
		r    Range
	}{
		{"y", c.YRange}, {"u", c.URange}, {"v", c.VRange},
		{"y_packed", c.YPackedRange}, {"u_packed", c.UPackedRange}, {"v_packed", c.VPackedRange},
	} {
		if err := rg.r.Validate(rg.name); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether two ConversionMatrix values are element-wise
// equal, using mat.Equal for the Dense comparisons (its RawMatrix view
// and exported Dims()/At() keep this decoupled from gonum internals).
func (c ConversionMatrix) Equal(o ConversionMatrix) bool {
	return mat.Equal(c.RGBToYUV, o.RGBToYUV) &&
		mat.Equal(c.YUVToRGB, o.YUVToRGB) &&
		c.YRange == o.YRange && c.URange == o.URange && c.VRange == o.VRange &&
		c.YPackedRange == o.YPackedRange && c.UPackedRange == o.UPackedRange && c.VPackedRange == o.VPackedRange
}
