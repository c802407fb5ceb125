/*
NAME
  main.go

DESCRIPTION
  xyuv-info lists the templates, chroma sitings and conversion matrices
  available in a config directory, and reports the inflated byte layout
  of one named template at a given size.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package xyuv-info is a CLI tool that reports the formats available in
// a config directory and the inflated layout of one of them.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/xyuv"
	xyuvconfig "github.com/ausocean/xyuv/config"
	"github.com/ausocean/xyuv/pixel"
)

const (
	logPath      = "xyuv-info.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	configDir := flag.String("config", "", "directory of template/siting/matrix JSON files")
	list := flag.Bool("list", false, "list all loaded templates, sitings and matrices, then quit")
	templateName := flag.String("template", "", "template to inflate and report on")
	sitingName := flag.String("siting", "", "chroma siting to inflate with")
	matrixName := flag.String("matrix", "", "conversion matrix to inflate with")
	width := flag.Int("width", 0, "image width in pixels")
	height := flag.Int("height", 0, "image height in pixels")
	dump := flag.Bool("dump", false, "dump the per-sample bit layout of every channel block")
	flag.Parse()

	l := logging.New(logVerbosity, io.MultiWriter(&lumberjack.Logger{Filename: logPath, MaxSize: logMaxSize, MaxBackups: logMaxBackup, MaxAge: logMaxAge}, os.Stderr), logSuppress)

	if *configDir == "" {
		l.Fatal("missing required flag", "usage", "xyuv-info -config DIR [-list] [-template NAME -width W -height H [-dump]]")
	}

	set, err := xyuvconfig.LoadDir(*configDir)
	if err != nil {
		l.Fatal("could not load config directory", "error", err.Error())
	}

	if *list || *templateName == "" {
		printAvailable(set)
		return
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

	printFormat(format, *dump)
}

func printAvailable(set *xyuvconfig.Set) {
	fmt.Println("Available format templates:")
	fmt.Println("  | Key    |")
	for _, name := range sortedKeys(set.Templates) {
		fmt.Printf("    %-10s\n", name)
	}

	fmt.Println("Available chroma sitings:")
	fmt.Println("  | Key    |  Subsampling |")
	for _, name := range sortedSitingKeys(set.Sitings) {
		s := set.Sitings[name]
		fmt.Printf("    %-10s  <- %dx%d\n", name, s.Subsampling.MacroPxW, s.Subsampling.MacroPxH)
	}

	fmt.Println("Available conversion matrices:")
	fmt.Println("  | Key    |")
	for _, name := range sortedMatrixKeys(set.Matrices) {
		fmt.Printf("    %-10s\n", name)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSitingKeys(m map[string]pixel.ChromaSiting) []string     { return sortedKeys(m) }
func sortedMatrixKeys(m map[string]pixel.ConversionMatrix) []string { return sortedKeys(m) }

func printFormat(f *pixel.Format, dump bool) {
	fmt.Printf("FourCC:      %s\n", string(f.FourCC[:]))
	fmt.Printf("Dimensions:  %dx%d\n", f.ImageW, f.ImageH)
	fmt.Printf("Frame size:  %d bytes\n", f.Size)
	fmt.Printf("Origin:      %v\n", originString(f.Origin))
	fmt.Printf("Siting:      %dx%d macro pixel\n", f.Siting.Subsampling.MacroPxW, f.Siting.Subsampling.MacroPxH)

	fmt.Println("Planes:")
	for i, pl := range f.Planes {
		fmt.Printf("  [%d] offset=%-8d size=%-8d line_stride=%-6d block_stride=%-4d interleave=%v swizzled=%v\n",
			i, pl.BaseOffset, pl.Size, pl.LineStride, pl.BlockStride, pl.InterleaveMode, !pl.BlockOrder.Identity())
	}

	fmt.Println("Channels:")
	for c := pixel.ChannelY; c <= pixel.ChannelA; c++ {
		cb := f.Channel(c)
		if !cb.Present() {
			continue
		}
		fmt.Printf("  %v: block=%dx%d samples=%d\n", c, cb.BlockW, cb.BlockH, len(cb.Samples))
		if !dump {
			continue
		}
		for si, s := range cb.Samples {
			fmt.Printf("      sample[%d] plane=%d offset=%-6d bits=%d.%d continuation=%v\n",
				si, s.Plane, s.Offset, s.IntegerBits, s.FractionalBits, s.HasContinuation)
		}
	}
}

func originString(o pixel.Origin) string {
	if o == pixel.LowerLeft {
		return "lower_left"
	}
	return "upper_left"
}
