/*
NAME
  main.go

DESCRIPTION
  xyuv-encode packs a raw, planar 4:4:4 YUV image file into a container
  frame under a named template, chroma siting and conversion matrix.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package xyuv-encode is a CLI tool that packs a raw planar YUV image
// file into an xyuv container frame.
package main

import (
	"flag"
	"io"
	"math"
	"os"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/xyuv"
	xyuvconfig "github.com/ausocean/xyuv/config"
	"github.com/ausocean/xyuv/pixel"
)

const (
	logPath      = "xyuv-encode.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

func main() {
	configDir := flag.String("config", "", "directory of template/siting/matrix JSON files")
	templateName := flag.String("template", "", "registered template name to encode under")
	sitingName := flag.String("siting", "", "registered chroma siting name")
	matrixName := flag.String("matrix", "", "registered conversion matrix name")
	width := flag.Int("width", 0, "image width in pixels")
	height := flag.Int("height", 0, "image height in pixels")
	in := flag.String("in", "", "input file: raw planar 4:4:4 Y, U, V (and optional A) samples, one float32 big-endian per pixel")
	out := flag.String("out", "", "output container file; frame is appended")
	flag.Parse()

	l := logging.New(logVerbosity, io.MultiWriter(&lumberjack.Logger{Filename: logPath, MaxSize: logMaxSize, MaxBackups: logMaxBackup, MaxAge: logMaxAge}, os.Stderr), logSuppress)

	if *configDir == "" || *templateName == "" || *in == "" || *out == "" {
		l.Fatal("missing required flag", "usage", "xyuv-encode -config DIR -template NAME -in FILE -out FILE -width W -height H")
	}

	set, err := xyuvconfig.LoadDir(*configDir)
	if err != nil {
		l.Fatal("could not load config directory", "error", err.Error())
	}
	tmpl, ok := set.Templates[*templateName]
	if !ok {
		l.Fatal("unknown template", "name", *templateName)
	}
	siting := set.Sitings[*sitingName]
	matrix := set.Matrices[*matrixName]

	format, err := xyuv.CreateFormat(*width, *height, tmpl, matrix, siting)
	if err != nil {
		l.Fatal("could not inflate format", "error", err.Error())
	}
	l.Info("inflated format", "fourcc", string(format.FourCC[:]), "size", format.Size)

	img, err := readPlanarImage(*in, *width, *height)
	if err != nil {
		l.Fatal("could not read input image", "error", err.Error())
	}

	frame, err := xyuv.EncodeFrame(img, format)
	if err != nil {
		l.Fatal("could not encode frame", "error", err.Error())
	}

	f, err := os.OpenFile(*out, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		l.Fatal("could not open output file", "error", err.Error())
	}
	defer f.Close()

	if err := xyuv.WriteFrame(f, frame); err != nil {
		l.Fatal("could not write frame", "error", err.Error())
	}
	l.Info("wrote frame", "bytes", len(frame.Bytes))
}

// readPlanarImage reads w*h float32 big-endian samples per present
// plane (Y, then U, then V, then A if the file is long enough),
// concatenated with no padding, into a 4:4:4 YuvImage. EncodeFrame
// conforms it to the target format's dimensions and siting.
func readPlanarImage(path string, w, h int) (*pixel.YuvImage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	planeBytes := w * h * 4
	n := len(raw) / planeBytes

	img := &pixel.YuvImage{ImageW: w, ImageH: h, Siting: pixel.ChromaSiting{Subsampling: pixel.Subsampling{MacroPxW: 1, MacroPxH: 1}}}
	planes := []pixel.Channel{pixel.ChannelY, pixel.ChannelU, pixel.ChannelV, pixel.ChannelA}
	for i := 0; i < n && i < 4; i++ {
		img.SetPlane(planes[i], decodePlaneFloats(raw[i*planeBytes:(i+1)*planeBytes], w, h))
	}
	return img, nil
}

func decodePlaneFloats(b []byte, w, h int) pixel.Surface[pixel.PixelQuantum] {
	surf := pixel.NewSurface[pixel.PixelQuantum](w, h)
	for i := range surf.Data {
		off := i * 4
		bits := uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3])
		surf.Data[i] = float64(math.Float32frombits(bits))
	}
	return surf
}
