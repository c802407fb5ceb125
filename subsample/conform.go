/*
NAME
  conform.go

DESCRIPTION
  conform.go implements Conform, satisfying packer.Conformer: it brings
  a source YuvImage to a target format's exact dimensions and siting
  (spec.md §4.4 step 1) by scaling and re-siting as needed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package subsample

import "github.com/ausocean/xyuv/pixel"

// Conform brings img to dimensions w x h and siting siting, in whatever
// combination of scaling and re-siting that requires. It has the same
// signature as packer.Conformer and is the subsampler's binding into
// the encode pipeline (passed in by callers, typically the xyuv
// facade, to avoid an import cycle between packer and subsample).
func Conform(img *pixel.YuvImage, w, h int, siting pixel.ChromaSiting) (*pixel.YuvImage, error) {
	out := img
	if out.ImageW != w || out.ImageH != h {
		var err error
		out, err = ScaleYuvImage(out, w, h)
		if err != nil {
			return nil, err
		}
	}
	if out.Siting != siting {
		var err error
		out, err = DownSample(out, siting)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
