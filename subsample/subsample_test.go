/*
NAME
  subsample_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package subsample

import (
	"testing"

	"github.com/ausocean/xyuv/pixel"
)

func siting420() pixel.ChromaSiting {
	return pixel.ChromaSiting{
		Subsampling: pixel.Subsampling{MacroPxW: 2, MacroPxH: 2},
		U:           pixel.SitingPoint{X: 0, Y: 0},
		V:           pixel.SitingPoint{X: 1, Y: 1},
	}
}

// pseudoChroma fills a chroma plane with a deterministic, non-constant
// pattern standing in for spec.md Scenario E's "random chroma".
func pseudoChroma(w, h int, seed float64) pixel.Surface[pixel.PixelQuantum] {
	s := pixel.NewSurface[pixel.PixelQuantum](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float64((x*7+y*13)%97) / 97.0
			s.Set(x, y, v*seed)
		}
	}
	return s
}

// TestScenarioE is spec.md's siting round-trip scenario: a 24x24 image
// at 4:2:0 up-sampled then down-sampled back to 4:2:0 reproduces the
// original U and V planes bit-exactly, since 24 divides the 2x2 macro
// pixel evenly, leaving no partial edge blocks.
func TestScenarioE(t *testing.T) {
	siting := siting420()
	cw, ch := siting.ChromaWidth(24), siting.ChromaHeight(24)

	img := &pixel.YuvImage{
		ImageW: 24, ImageH: 24,
		Siting: siting,
		Y:      pixel.NewSurface[pixel.PixelQuantum](24, 24),
		U:      pseudoChroma(cw, ch, 0.6),
		V:      pseudoChroma(cw, ch, 0.3),
	}

	full, err := UpSample(img)
	if err != nil {
		t.Fatalf("UpSample: %v", err)
	}
	if !full.Siting.Subsampling.Is444() {
		t.Fatalf("UpSample did not produce 4:4:4, got %+v", full.Siting.Subsampling)
	}

	back, err := DownSample(full, siting)
	if err != nil {
		t.Fatalf("DownSample: %v", err)
	}

	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			if got, want := back.U.At(x, y), img.U.At(x, y); got != want {
				t.Errorf("U(%d,%d) = %v, want %v", x, y, got, want)
			}
			if got, want := back.V.At(x, y), img.V.At(x, y); got != want {
				t.Errorf("V(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestUpSampleIs444NoOp(t *testing.T) {
	siting := pixel.ChromaSiting{Subsampling: pixel.Subsampling{MacroPxW: 1, MacroPxH: 1}}
	img := &pixel.YuvImage{
		ImageW: 4, ImageH: 4, Siting: siting,
		U: pixel.NewSurface[pixel.PixelQuantum](4, 4),
	}
	out, err := UpSample(img)
	if err != nil {
		t.Fatalf("UpSample: %v", err)
	}
	if out.U.Width != 4 || out.U.Height != 4 {
		t.Fatalf("expected no-op copy, got %dx%d", out.U.Width, out.U.Height)
	}
}
