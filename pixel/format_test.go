/*
NAME
  format_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pixel

import "testing"

func identitySiting() ChromaSiting {
	return ChromaSiting{Subsampling: Subsampling{MacroPxW: 1, MacroPxH: 1}}
}

func trivialMatrix() ConversionMatrix {
	return NewConversionMatrix(
		[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		Range{0, 1}, Range{0, 1}, Range{0, 1},
		Range{0, 1}, Range{0, 1}, Range{0, 1},
	)
}

func yOnlyFormat(w, h int) Format {
	samples := make([]Sample, w*h)
	for i := range samples {
		samples[i] = Sample{Plane: 0, Offset: 0, IntegerBits: 8}
	}
	return Format{
		ImageW: w, ImageH: h, Size: w * h,
		Planes: []Plane{{Size: w * h, LineStride: w, BlockStride: 8, BlockOrder: IdentityBlockOrder()}},
		Channels: [4]ChannelBlock{
			ChannelY: {BlockW: 1, BlockH: 1, Samples: samples},
		},
		Siting:           identitySiting(),
		ConversionMatrix: trivialMatrix(),
	}
}

func TestFormatValidateAccepts(t *testing.T) {
	f := yOnlyFormat(4, 4)
	if _, err := CreateFormat(f); err != nil {
		t.Fatalf("expected valid format, got %v", err)
	}
}

func TestFormatValidateRejectsOverlap(t *testing.T) {
	f := yOnlyFormat(1, 1)
	f.Channels[ChannelY].Samples = []Sample{
		{Plane: 0, Offset: 0, IntegerBits: 8},
	}
	f.Planes[0].BlockStride = 8
	// Force an alpha channel sample that overlaps the Y sample in the
	// same plane.
	f.Channels[ChannelA] = ChannelBlock{
		BlockW: 1, BlockH: 1,
		Samples: []Sample{{Plane: 0, Offset: 4, IntegerBits: 4}},
	}
	if _, err := CreateFormat(f); err == nil {
		t.Fatal("expected FormatError for overlapping samples")
	} else if _, ok := err.(*FormatError); !ok {
		t.Fatalf("expected FormatError, got %T: %v", err, err)
	}
}

func TestFormatValidateRejectsOversizedSample(t *testing.T) {
	f := yOnlyFormat(1, 1)
	f.Planes[0].BlockStride = 4
	f.Channels[ChannelY].Samples = []Sample{{Plane: 0, Offset: 0, IntegerBits: 8}}
	if _, err := CreateFormat(f); err == nil {
		t.Fatal("expected FormatError for sample exceeding block stride")
	}
}

func TestFormatValidateRejectsZeroDimensions(t *testing.T) {
	f := yOnlyFormat(4, 4)
	f.ImageW = 0
	if _, err := CreateFormat(f); err == nil {
		t.Fatal("expected DomainError for zero image width")
	} else if _, ok := err.(*DomainError); !ok {
		t.Fatalf("expected DomainError, got %T: %v", err, err)
	}
}

func TestSurfaceEmpty(t *testing.T) {
	var s Surface[PixelQuantum]
	if !s.Empty() {
		t.Fatal("zero-value surface should be empty")
	}
	s2 := NewSurface[PixelQuantum](2, 3)
	if s2.Empty() {
		t.Fatal("2x3 surface should not be empty")
	}
	s2.Set(1, 2, 0.5)
	if s2.At(1, 2) != 0.5 {
		t.Fatalf("At(1,2) = %v, want 0.5", s2.At(1, 2))
	}
}
