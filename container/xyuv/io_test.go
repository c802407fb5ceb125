/*
NAME
  io_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package xyuv

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ausocean/xyuv/pixel"
)

func smallFormat(t *testing.T) *pixel.Format {
	t.Helper()
	matrix := pixel.NewConversionMatrix(
		[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1},
		pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1},
	)
	samples := make([]pixel.Sample, 6)
	for i := range samples {
		samples[i] = pixel.Sample{Plane: 0, Offset: 0, IntegerBits: 8}
	}
	f := pixel.Format{
		FourCC: [4]byte{'Y', '8', '0', '0'},
		Origin: pixel.UpperLeft,
		ImageW: 3, ImageH: 2, Size: 6,
		Planes: []pixel.Plane{{Size: 6, LineStride: 3, BlockStride: 8, BlockOrder: pixel.IdentityBlockOrder()}},
		Channels: [4]pixel.ChannelBlock{
			pixel.ChannelY: {BlockW: 1, BlockH: 1, Samples: samples},
		},
		Siting:           pixel.ChromaSiting{Subsampling: pixel.Subsampling{MacroPxW: 1, MacroPxH: 1}},
		ConversionMatrix: matrix,
	}
	got, err := pixel.CreateFormat(f)
	if err != nil {
		t.Fatalf("CreateFormat: %v", err)
	}
	return got
}

var matrixComparer = cmp.Comparer(func(a, b pixel.ConversionMatrix) bool { return a.Equal(b) })

// TestScenarioF is spec.md's container round-trip scenario: four frames
// of the same small format, written sequentially and read back.
func TestScenarioF(t *testing.T) {
	format := smallFormat(t)
	var buf bytes.Buffer
	var written []*pixel.Frame
	for i := 0; i < 4; i++ {
		raw := make([]byte, format.Size)
		for j := range raw {
			raw[j] = byte(i*10 + j)
		}
		frame, err := pixel.CreateFrame(format, raw)
		if err != nil {
			t.Fatalf("CreateFrame: %v", err)
		}
		if err := WriteFrame(&buf, frame); err != nil {
			t.Fatalf("WriteFrame %d: %v", i, err)
		}
		written = append(written, frame)
	}

	var read []*pixel.Frame
	for {
		frame, err := ReadFrame(&buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadFrame: %v", err)
		}
		read = append(read, frame)
	}

	if len(read) != 4 {
		t.Fatalf("read %d frames, want 4", len(read))
	}
	for i := range written {
		if diff := cmp.Diff(written[i].Bytes, read[i].Bytes); diff != "" {
			t.Errorf("frame %d payload mismatch (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(*written[i].Format, *read[i].Format,
			matrixComparer,
			cmpopts.IgnoreFields(pixel.Format{}, "ConversionMatrix")); diff != "" {
			t.Errorf("frame %d format mismatch (-want +got):\n%s", i, diff)
		}
		if !written[i].Format.ConversionMatrix.Equal(read[i].Format.ConversionMatrix) {
			t.Errorf("frame %d conversion matrix mismatch", i)
		}
	}
}

func TestReadFrameRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("NOTXYUV_garbage")
	if _, err := ReadFrame(buf); err == nil {
		t.Fatal("expected IoError for bad magic")
	} else if _, ok := err.(*IoError); !ok {
		t.Fatalf("expected *IoError, got %T: %v", err, err)
	}
}

func TestReadFrameEOFAtStreamEnd(t *testing.T) {
	if _, err := ReadFrame(bytes.NewReader(nil)); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
