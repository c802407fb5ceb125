/*
NAME
  facade_test.go

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

	"github.com/ausocean/xyuv/expr"
	"github.com/ausocean/xyuv/pixel"
	"github.com/ausocean/xyuv/template"
)

func facadeIdentityMatrix() pixel.ConversionMatrix {
	return pixel.NewConversionMatrix(
		[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1},
		pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1}, pixel.Range{Min: 0, Max: 1},
	)
}

func facadeY8Template() *template.FormatTemplate {
	intLit := func(v int64) expr.Expression { return &expr.IntLit{Value: v} }
	boolLit := func(v bool) expr.Expression { return &expr.BoolLit{Value: v} }
	strLit := func(v string) expr.Expression { return &expr.StrLit{Value: v} }
	ref := func(name string) expr.Expression { return &expr.VarRef{Name: name} }
	bin := func(op string, lhs, rhs expr.Expression) expr.Expression {
		return &expr.BinOp{Op: op, LHS: lhs, RHS: rhs}
	}

	return &template.FormatTemplate{
		FourCC: [4]byte{'Y', '8', '0', '0'},
		Origin: strLit("upper_left"),
		Planes: []template.PlaneTemplate{{
			BaseOffset:     intLit(0),
			Size:           bin("*", ref("image_w"), ref("image_h")),
			LineStride:     ref("image_w"),
			BlockStride:    intLit(8),
			InterleaveMode: strLit("NO_INTERLEAVING"),
		}},
		Channels: [4]template.ChannelBlockTemplate{
			pixel.ChannelY: {
				BlockW: intLit(1),
				BlockH: intLit(1),
				AutoGen: &template.AutoGenSample{
					Plane:           intLit(0),
					Offset:          intLit(0),
					IntegerBits:     intLit(8),
					FractionalBits:  intLit(0),
					HasContinuation: boolLit(false),
				},
			},
		},
	}
}

func facadeIdentitySiting() pixel.ChromaSiting {
	return pixel.ChromaSiting{Subsampling: pixel.Subsampling{MacroPxW: 1, MacroPxH: 1}}
}

func facadeY8Image(w, h int, seed byte) *pixel.YuvImage {
	y := pixel.NewSurface[pixel.PixelQuantum](w, h)
	for i := range y.Data {
		y.Data[i] = float64(byte(i)+seed) / 255
	}
	return &pixel.YuvImage{ImageW: w, ImageH: h, Siting: facadeIdentitySiting(), Y: y}
}

func TestFacadeEndToEnd(t *testing.T) {
	format, err := CreateFormat(4, 3, facadeY8Template(), facadeIdentityMatrix(), facadeIdentitySiting())
	if err != nil {
		t.Fatalf("CreateFormat: %v", err)
	}

	img := facadeY8Image(4, 3, 10)
	frame, err := EncodeFrame(img, format)
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteFrame(&buf, frame); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	read, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if diff := cmp.Diff(frame.Bytes, read.Bytes); diff != "" {
		t.Errorf("payload mismatch after container round trip (-want +got):\n%s", diff)
	}

	decoded, err := DecodeFrame(read)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if decoded.ImageW != 4 || decoded.ImageH != 3 {
		t.Errorf("decoded dims = %dx%d, want 4x3", decoded.ImageW, decoded.ImageH)
	}

	if _, err := ReadFrame(&buf); err != io.EOF {
		t.Errorf("expected io.EOF after single frame, got %v", err)
	}
}

func TestFacadeConvertFrame(t *testing.T) {
	format, err := CreateFormat(4, 2, facadeY8Template(), facadeIdentityMatrix(), facadeIdentitySiting())
	if err != nil {
		t.Fatalf("CreateFormat: %v", err)
	}
	frame, err := EncodeFrame(facadeY8Image(4, 2, 5), format)
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}

	sameFormat, err := CreateFormat(4, 2, facadeY8Template(), facadeIdentityMatrix(), facadeIdentitySiting())
	if err != nil {
		t.Fatalf("CreateFormat: %v", err)
	}
	converted, err := ConvertFrame(frame, sameFormat)
	if err != nil {
		t.Fatalf("ConvertFrame: %v", err)
	}
	if diff := cmp.Diff(frame.Bytes, converted.Bytes); diff != "" {
		t.Errorf("round trip through an identical format changed bytes (-want +got):\n%s", diff)
	}
}

func TestFacadeScaleAndSample(t *testing.T) {
	img := facadeY8Image(4, 4, 0)
	scaled, err := ScaleYuvImage(img, 2, 2)
	if err != nil {
		t.Fatalf("ScaleYuvImage: %v", err)
	}
	if scaled.ImageW != 2 || scaled.ImageH != 2 {
		t.Errorf("scaled dims = %dx%d, want 2x2", scaled.ImageW, scaled.ImageH)
	}

	up, err := UpSample(img)
	if err != nil {
		t.Fatalf("UpSample: %v", err)
	}
	if !up.Siting.Subsampling.Is444() {
		t.Errorf("UpSample result siting = %+v, want 4:4:4", up.Siting)
	}

	down, err := DownSample(up, facadeIdentitySiting())
	if err != nil {
		t.Fatalf("DownSample: %v", err)
	}
	if down.Siting != facadeIdentitySiting() {
		t.Errorf("DownSample result siting = %+v, want identity", down.Siting)
	}
}
