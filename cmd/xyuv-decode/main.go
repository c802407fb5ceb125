/*
NAME
  main.go

DESCRIPTION
  xyuv-decode unpacks one or more container frames into raw planar
  4:4:4 YUV image files, one per frame.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package xyuv-decode is a CLI tool that unpacks xyuv container frames
// into raw planar YUV image files.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/xyuv"
	"github.com/ausocean/xyuv/pixel"
)

const (
	logPath      = "xyuv-decode.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

func main() {
	in := flag.String("in", "", "input container file")
	outPrefix := flag.String("out", "", "output file prefix; frame N writes PREFIX.N.yuv")
	flag.Parse()

	l := logging.New(logVerbosity, io.MultiWriter(&lumberjack.Logger{Filename: logPath, MaxSize: logMaxSize, MaxBackups: logMaxBackup, MaxAge: logMaxAge}, os.Stderr), logSuppress)

	if *in == "" || *outPrefix == "" {
		l.Fatal("missing required flag", "usage", "xyuv-decode -in FILE -out PREFIX")
	}

	f, err := os.Open(*in)
	if err != nil {
		l.Fatal("could not open input file", "error", err.Error())
	}
	defer f.Close()

	for n := 0; ; n++ {
		frame, err := xyuv.ReadFrame(f)
		if err == io.EOF {
			l.Info("decoded frames", "count", n)
			return
		}
		if err != nil {
			l.Fatal("could not read frame", "frame", n, "error", err.Error())
		}

		img, err := xyuv.DecodeFrame(frame)
		if err != nil {
			l.Fatal("could not decode frame", "frame", n, "error", err.Error())
		}

		full, err := xyuv.UpSample(img)
		if err != nil {
			l.Fatal("could not up-sample frame to 4:4:4", "frame", n, "error", err.Error())
		}

		outPath := fmt.Sprintf("%s.%d.yuv", *outPrefix, n)
		if err := writePlanarImage(outPath, full); err != nil {
			l.Fatal("could not write output image", "frame", n, "error", err.Error())
		}
		l.Info("wrote frame", "frame", n, "path", outPath)
	}
}

// writePlanarImage writes each present plane of img (Y, U, V, A) as
// w*h float32 big-endian samples, concatenated with no padding.
func writePlanarImage(path string, img *pixel.YuvImage) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, surf := range []pixel.Surface[pixel.PixelQuantum]{img.Y, img.U, img.V, img.A} {
		if surf.Empty() {
			continue
		}
		if err := writePlaneFloats(f, surf); err != nil {
			return err
		}
	}
	return nil
}

func writePlaneFloats(w io.Writer, surf pixel.Surface[pixel.PixelQuantum]) error {
	buf := make([]byte, len(surf.Data)*4)
	for i, v := range surf.Data {
		bits := math.Float32bits(float32(v))
		off := i * 4
		buf[off] = byte(bits >> 24)
		buf[off+1] = byte(bits >> 16)
		buf[off+2] = byte(bits >> 8)
		buf[off+3] = byte(bits)
	}
	_, err := w.Write(buf)
	return err
}
