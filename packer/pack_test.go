/*
NAME
  pack_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package packer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/xyuv/pixel"
)

func identitySiting() pixel.ChromaSiting {
	return pixel.ChromaSiting{Subsampling: pixel.Subsampling{MacroPxW: 1, MacroPxH: 1}}
}

func identityMatrix() pixel.ConversionMatrix {
	return pixel.NewConversionMatrix(
		[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1},
		pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1},
	)
}

// singleRowFormat builds a 1-wide, h-tall, Y-only, 8-bit-per-pixel
// format with one byte per row, per the given interleave mode.
func singleRowFormat(h int, mode pixel.InterleaveMode) *pixel.Format {
	f := &pixel.Format{
		ImageW: 1, ImageH: h, Size: h,
		Planes: []pixel.Plane{{
			Size: h, LineStride: 1, BlockStride: 8,
			InterleaveMode: mode,
			BlockOrder:     pixel.IdentityBlockOrder(),
		}},
		Channels: [4]pixel.ChannelBlock{
			pixel.ChannelY: {
				BlockW: 1, BlockH: 1,
				Samples: []pixel.Sample{{Plane: 0, Offset: 0, IntegerBits: 8}},
			},
		},
		Siting:           identitySiting(),
		ConversionMatrix: identityMatrix(),
	}
	return f
}

// TestScenarioA is spec.md's single-bit packer scenario: a Y-only 8-bit,
// 1x5 image decoded with INTERLEAVE_1_3_5__0_2_4 and re-encoded under
// both NO_INTERLEAVING and the original interleave mode.
func TestScenarioA(t *testing.T) {
	interleaved := singleRowFormat(5, pixel.Interleave135024)
	physical := []byte{1, 3, 0, 2, 4}
	frame := &pixel.Frame{Format: interleaved, Bytes: physical}

	img, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	plain := singleRowFormat(5, pixel.NoInterleaving)
	plainFrame, err := Encode(img, plain, nil)
	if err != nil {
		t.Fatalf("Encode (no interleaving): %v", err)
	}
	want := []byte{0, 1, 2, 3, 4}
	if diff := cmp.Diff(want, plainFrame.Bytes); diff != "" {
		t.Errorf("no-interleaving bytes mismatch (-want +got):\n%s", diff)
	}

	roundTrip, err := Encode(img, interleaved, nil)
	if err != nil {
		t.Fatalf("Encode (original interleaving): %v", err)
	}
	if diff := cmp.Diff(physical, roundTrip.Bytes); diff != "" {
		t.Errorf("original-interleaving bytes mismatch (-want +got):\n%s", diff)
	}
}

// continuationFormat builds spec.md's Scenario B format: a single Y
// pixel split into a base 6-bit integer sample plus three continuation
// entries, clustered at the tail of the sample list.
func continuationFormat() *pixel.Format {
	return &pixel.Format{
		ImageW: 1, ImageH: 1, Size: 2,
		Planes: []pixel.Plane{{
			Size: 2, LineStride: 2, BlockStride: 16,
			InterleaveMode: pixel.NoInterleaving,
			BlockOrder:     pixel.IdentityBlockOrder(),
		}},
		Channels: [4]pixel.ChannelBlock{
			pixel.ChannelY: {
				BlockW: 1, BlockH: 1,
				Samples: []pixel.Sample{
					{Plane: 0, Offset: 8, IntegerBits: 6, HasContinuation: true},
					{Plane: 0, Offset: 14, IntegerBits: 2, HasContinuation: true},
					{Plane: 0, Offset: 0, FractionalBits: 4, HasContinuation: true},
					{Plane: 0, Offset: 4, FractionalBits: 4},
				},
			},
		},
		Siting:           identitySiting(),
		ConversionMatrix: identityMatrix(),
	}
}

// TestScenarioB is spec.md's continuation-sample scenario: bytes
// [0x55, 0x7F] must round-trip unchanged through decode then encode.
func TestScenarioB(t *testing.T) {
	format := continuationFormat()
	original := []byte{0x55, 0x7F}
	frame := &pixel.Frame{Format: format, Bytes: original}

	img, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	out, err := Encode(img, format, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if diff := cmp.Diff(original, out.Bytes); diff != "" {
		t.Errorf("continuation round-trip mismatch (-want +got):\n%s", diff)
	}
}
