/*
NAME
  inflate_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package template

import (
	"testing"

	"github.com/ausocean/xyuv/expr"
	"github.com/ausocean/xyuv/pixel"
)

func intLit(v int64) expr.Expression  { return &expr.IntLit{Value: v} }
func boolLit(v bool) expr.Expression  { return &expr.BoolLit{Value: v} }
func strLit(v string) expr.Expression { return &expr.StrLit{Value: v} }
func ref(name string) expr.Expression { return &expr.VarRef{Name: name} }
func bin(op string, lhs, rhs expr.Expression) expr.Expression {
	return &expr.BinOp{Op: op, LHS: lhs, RHS: rhs}
}

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

// genericY8Template is a generic 8-bit-per-pixel Y-only template: one
// plane sized image_w*image_h, one auto-generated sample per pixel.
func genericY8Template() *FormatTemplate {
	return &FormatTemplate{
		FourCC: [4]byte{'Y', '8', '0', '0'},
		Origin: strLit("upper_left"),
		Planes: []PlaneTemplate{{
			BaseOffset:     intLit(0),
			Size:           bin("*", ref("image_w"), ref("image_h")),
			LineStride:     ref("image_w"),
			BlockStride:    intLit(8),
			InterleaveMode: strLit("NO_INTERLEAVING"),
		}},
		Channels: [4]ChannelBlockTemplate{
			pixel.ChannelY: {
				BlockW: intLit(1),
				BlockH: intLit(1),
				AutoGen: &AutoGenSample{
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

func TestInflateGenericY8(t *testing.T) {
	tmpl := genericY8Template()
	f, err := Inflate(tmpl, 4, 3, identitySiting(), identityMatrix())
	if err != nil {
		t.Fatalf("Inflate: %v", err)
	}
	if f.Size != 12 {
		t.Errorf("Size = %d, want 12", f.Size)
	}
	if f.Planes[0].LineStride != 4 {
		t.Errorf("LineStride = %d, want 4", f.Planes[0].LineStride)
	}
	cb := f.Channels[pixel.ChannelY]
	if len(cb.Samples) != 1 {
		t.Fatalf("got %d samples, want 1 (one per position in the 1x1 block)", len(cb.Samples))
	}
	for i, s := range cb.Samples {
		if s.IntegerBits != 8 || s.Offset != 0 || s.Plane != 0 {
			t.Errorf("sample %d = %+v, unexpected", i, s)
		}
	}
}

func TestInflateRejectsZeroDimensions(t *testing.T) {
	tmpl := genericY8Template()
	if _, err := Inflate(tmpl, 0, 3, identitySiting(), identityMatrix()); err == nil {
		t.Fatal("expected error for zero image width")
	} else if _, ok := err.(*pixel.DomainError); !ok {
		t.Fatalf("expected *pixel.DomainError, got %T: %v", err, err)
	}
}

func TestInflateDetectsCycle(t *testing.T) {
	tmpl := genericY8Template()
	// planes[0].base_offset now depends on planes[0].size, which depends
	// on planes[0].base_offset: a cycle.
	tmpl.Planes[0].BaseOffset = bin("+", ref("planes[0].size"), intLit(1))
	tmpl.Planes[0].Size = bin("+", ref("planes[0].base_offset"), intLit(1))
	if _, err := Inflate(tmpl, 4, 3, identitySiting(), identityMatrix()); err == nil {
		t.Fatal("expected DependencyError for cyclic fields")
	} else if _, ok := err.(*DependencyError); !ok {
		t.Fatalf("expected *DependencyError, got %T: %v", err, err)
	}
}

func TestInflateMegaBlockRequiresLineStrideDependency(t *testing.T) {
	tmpl := genericY8Template()
	tmpl.Planes[0].BlockOrder.MegaBlockW = intLit(2)
	tmpl.Planes[0].BlockOrder.MegaBlockH = intLit(2)
	for i := range tmpl.Planes[0].BlockOrder.XMask {
		tmpl.Planes[0].BlockOrder.XMask[i] = strLit("NOT_USED")
		tmpl.Planes[0].BlockOrder.YMask[i] = strLit("NOT_USED")
	}
	// line_stride and size remain independent of mega_block_w/h.
	if _, err := Inflate(tmpl, 4, 4, identitySiting(), identityMatrix()); err == nil {
		t.Fatal("expected DependencyError for missing mega_block_w dependency")
	} else if _, ok := err.(*DependencyError); !ok {
		t.Fatalf("expected *DependencyError, got %T: %v", err, err)
	}
}
