/*
NAME
  facade.go

DESCRIPTION
  facade.go implements the library surface from spec.md §6: thin
  orchestration over template.Inflate, packer.Encode/Decode,
  subsample.Conform/UpSample/DownSample/ScaleYuvImage and
  container/xyuv's WriteFrame/ReadFrame.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package xyuv

import (
	"io"

	"github.com/pkg/errors"

	containerxyuv "github.com/ausocean/xyuv/container/xyuv"
	"github.com/ausocean/xyuv/packer"
	"github.com/ausocean/xyuv/pixel"
	"github.com/ausocean/xyuv/subsample"
	"github.com/ausocean/xyuv/template"
)

// CreateFormat inflates tmpl for the given dimensions, conversion
// matrix and chroma siting into a concrete Format, implementing
// spec.md §6's create_format operation.
func CreateFormat(w, h int, tmpl *template.FormatTemplate, matrix pixel.ConversionMatrix, siting pixel.ChromaSiting) (*pixel.Format, error) {
	return template.Inflate(tmpl, w, h, siting, matrix)
}

// CreateFrame allocates a Frame for format, optionally wrapping raw
// directly rather than allocating a poisoned buffer.
func CreateFrame(format *pixel.Format, raw []byte) (*pixel.Frame, error) {
	return pixel.CreateFrame(format, raw)
}

// EncodeFrame packs img into a new Frame under format, conforming img
// to format's dimensions and siting first if they differ.
func EncodeFrame(img *pixel.YuvImage, format *pixel.Format) (*pixel.Frame, error) {
	return packer.Encode(img, format, subsample.Conform)
}

// DecodeFrame unpacks frame into a canonical YuvImage.
func DecodeFrame(frame *pixel.Frame) (*pixel.YuvImage, error) {
	return packer.Decode(frame)
}

// ConvertFrame re-encodes frame under newFormat: decode then encode,
// implementing spec.md §6's convert_frame operation.
func ConvertFrame(frame *pixel.Frame, newFormat *pixel.Format) (*pixel.Frame, error) {
	img, err := DecodeFrame(frame)
	if err != nil {
		return nil, errors.Wrap(err, "decoding source frame")
	}
	return EncodeFrame(img, newFormat)
}

// UpSample returns img at 4:4:4 siting.
func UpSample(img *pixel.YuvImage) (*pixel.YuvImage, error) { return subsample.UpSample(img) }

// DownSample returns img re-sited to siting.
func DownSample(img *pixel.YuvImage, siting pixel.ChromaSiting) (*pixel.YuvImage, error) {
	return subsample.DownSample(img, siting)
}

// ScaleYuvImage resizes img to w x h, preserving its siting.
func ScaleYuvImage(img *pixel.YuvImage, w, h int) (*pixel.YuvImage, error) {
	return subsample.ScaleYuvImage(img, w, h)
}

// WriteFrame writes frame to w in the container binary format.
func WriteFrame(w io.Writer, frame *pixel.Frame) error { return containerxyuv.WriteFrame(w, frame) }

// ReadFrame reads one Frame from r, returning io.EOF at clean stream end.
func ReadFrame(r io.Reader) (*pixel.Frame, error) { return containerxyuv.ReadFrame(r) }

// RGBImage is the external RGB-image bridge callers implement to move
// between their own image representation and the core's 4:4:4
// YuvImage (spec.md §6's RGB-bridge hook).
type RGBImage = pixel.RGBBridge
