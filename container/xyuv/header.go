/*
NAME
  header.go

DESCRIPTION
  header.go implements the frame header, plane descriptor and channel
  block descriptor encoding from spec.md §4.6: everything that sits
  between the file header and the opaque payload bytes.

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
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/ausocean/xyuv/pixel"
)

// encodeBody writes format's frame header, plane descriptors and
// channel block descriptors to buf, in that order, big-endian
// throughout. Block-order swizzle fields are never written: spec.md §9
// leaves this an open question for a future container version, and
// readers must assume identity order.
func encodeBody(buf *bytes.Buffer, format *pixel.Format) error {
	if err := writeBytes(buf, format.FourCC[:]); err != nil {
		return err
	}
	if err := writeUint32(buf, 0); err != nil { // reserved
		return err
	}
	if err := writeUint8(buf, uint8(format.Origin)); err != nil {
		return err
	}
	if err := writeUint32(buf, uint32(format.ImageW)); err != nil {
		return err
	}
	if err := writeUint32(buf, uint32(format.ImageH)); err != nil {
		return err
	}
	if err := writeUint8(buf, uint8(len(format.Planes))); err != nil {
		return err
	}
	if err := encodeSiting(buf, format.Siting); err != nil {
		return err
	}
	if err := encodeMatrix(buf, format.ConversionMatrix); err != nil {
		return err
	}
	for _, pl := range format.Planes {
		if err := encodePlane(buf, pl); err != nil {
			return err
		}
	}
	for ch := pixel.Channel(0); ch < 4; ch++ {
		if err := encodeChannelBlock(buf, format.Channels[ch]); err != nil {
			return errors.Wrapf(err, "encoding channel %v", ch)
		}
	}
	return nil
}

// decodeBody is the inverse of encodeBody. The returned Format has every
// field except Size populated (Size comes from the file header's payload
// size) and nothing validated; callers set Size and run
// Format.Validate() once assembly is complete.
func decodeBody(r io.Reader) (*pixel.Format, error) {
	format := &pixel.Format{}

	if err := readBytes(r, format.FourCC[:]); err != nil {
		return nil, err
	}
	if _, err := readUint32(r); err != nil { // reserved
		return nil, err
	}
	origin, err := readUint8(r)
	if err != nil {
		return nil, err
	}
	format.Origin = pixel.Origin(origin)

	w, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	format.ImageW = int(w)

	h, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	format.ImageH = int(h)

	nPlanes, err := readUint8(r)
	if err != nil {
		return nil, err
	}

	if format.Siting, err = decodeSiting(r); err != nil {
		return nil, err
	}
	if format.ConversionMatrix, err = decodeMatrix(r); err != nil {
		return nil, err
	}

	format.Planes = make([]pixel.Plane, nPlanes)
	for i := range format.Planes {
		pl, err := decodePlane(r)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding plane %d", i)
		}
		format.Planes[i] = pl
	}

	for ch := pixel.Channel(0); ch < 4; ch++ {
		cb, err := decodeChannelBlock(r)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding channel %v", ch)
		}
		format.Channels[ch] = cb
	}

	return format, nil
}

func encodeSiting(buf *bytes.Buffer, s pixel.ChromaSiting) error {
	if err := writeUint8(buf, uint8(s.Subsampling.MacroPxW)); err != nil {
		return err
	}
	if err := writeUint8(buf, uint8(s.Subsampling.MacroPxH)); err != nil {
		return err
	}
	for _, v := range [4]float64{s.U.X, s.U.Y, s.V.X, s.V.Y} {
		if err := writeFloat32(buf, v); err != nil {
			return err
		}
	}
	return nil
}

func decodeSiting(r io.Reader) (pixel.ChromaSiting, error) {
	var s pixel.ChromaSiting
	mw, err := readUint8(r)
	if err != nil {
		return s, err
	}
	mh, err := readUint8(r)
	if err != nil {
		return s, err
	}
	s.Subsampling = pixel.Subsampling{MacroPxW: int(mw), MacroPxH: int(mh)}

	vals := make([]float64, 4)
	for i := range vals {
		v, err := readFloat32(r)
		if err != nil {
			return s, err
		}
		vals[i] = v
	}
	s.U = pixel.SitingPoint{X: vals[0], Y: vals[1]}
	s.V = pixel.SitingPoint{X: vals[2], Y: vals[3]}
	return s, nil
}

// encodeMatrix writes the 18 3x3-matrix coefficients (rgb_to_yuv then
// yuv_to_rgb, row-major) followed by the 12 range-bound floats (y, u,
// v, y_packed, u_packed, v_packed; min then max), all big-endian
// (spec.md §9: intentionally byte-swapped, unlike the original tool).
func encodeMatrix(buf *bytes.Buffer, m pixel.ConversionMatrix) error {
	for _, dense := range [2]*mat.Dense{m.RGBToYUV, m.YUVToRGB} {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if err := writeFloat32(buf, dense.At(i, j)); err != nil {
					return err
				}
			}
		}
	}
	for _, rg := range [6]pixel.Range{m.YRange, m.URange, m.VRange, m.YPackedRange, m.UPackedRange, m.VPackedRange} {
		if err := writeFloat32(buf, rg.Min); err != nil {
			return err
		}
		if err := writeFloat32(buf, rg.Max); err != nil {
			return err
		}
	}
	return nil
}

func decodeMatrix(r io.Reader) (pixel.ConversionMatrix, error) {
	readMat := func() (*mat.Dense, error) {
		data := make([]float64, 9)
		for i := range data {
			v, err := readFloat32(r)
			if err != nil {
				return nil, err
			}
			data[i] = v
		}
		return mat.NewDense(3, 3, data), nil
	}

	rgbToYUV, err := readMat()
	if err != nil {
		return pixel.ConversionMatrix{}, err
	}
	yuvToRGB, err := readMat()
	if err != nil {
		return pixel.ConversionMatrix{}, err
	}

	readRange := func() (pixel.Range, error) {
		lo, err := readFloat32(r)
		if err != nil {
			return pixel.Range{}, err
		}
		hi, err := readFloat32(r)
		if err != nil {
			return pixel.Range{}, err
		}
		return pixel.Range{Min: lo, Max: hi}, nil
	}
	var ranges [6]pixel.Range
	for i := range ranges {
		ranges[i], err = readRange()
		if err != nil {
			return pixel.ConversionMatrix{}, err
		}
	}

	return pixel.ConversionMatrix{
		RGBToYUV: rgbToYUV, YUVToRGB: yuvToRGB,
		YRange: ranges[0], URange: ranges[1], VRange: ranges[2],
		YPackedRange: ranges[3], UPackedRange: ranges[4], VPackedRange: ranges[5],
	}, nil
}

func encodePlane(buf *bytes.Buffer, pl pixel.Plane) error {
	if err := writeUint64(buf, uint64(pl.BaseOffset)); err != nil {
		return err
	}
	if err := writeUint64(buf, uint64(pl.Size)); err != nil {
		return err
	}
	if err := writeUint32(buf, uint32(pl.LineStride)); err != nil {
		return err
	}
	if err := writeUint32(buf, uint32(pl.BlockStride)); err != nil {
		return err
	}
	return writeUint8(buf, uint8(pl.InterleaveMode))
}

func decodePlane(r io.Reader) (pixel.Plane, error) {
	var pl pixel.Plane
	base, err := readUint64(r)
	if err != nil {
		return pl, err
	}
	pl.BaseOffset = int(base)

	size, err := readUint64(r)
	if err != nil {
		return pl, err
	}
	pl.Size = int(size)

	stride, err := readUint32(r)
	if err != nil {
		return pl, err
	}
	pl.LineStride = int(stride)

	blockStride, err := readUint32(r)
	if err != nil {
		return pl, err
	}
	pl.BlockStride = int(blockStride)

	mode, err := readUint8(r)
	if err != nil {
		return pl, err
	}
	pl.InterleaveMode = pixel.InterleaveMode(mode)

	// Block-order swizzle is never persisted; readers assume identity
	// (spec.md §4.6, §9 open question).
	pl.BlockOrder = pixel.IdentityBlockOrder()
	return pl, nil
}

func encodeChannelBlock(buf *bytes.Buffer, cb pixel.ChannelBlock) error {
	if err := writeUint16(buf, uint16(cb.BlockW)); err != nil {
		return err
	}
	if err := writeUint16(buf, uint16(cb.BlockH)); err != nil {
		return err
	}
	nBase := cb.BlockW * cb.BlockH
	nCont := len(cb.Samples) - nBase
	if nCont < 0 {
		nCont = 0
	}
	if err := writeUint32(buf, uint32(nCont)); err != nil {
		return err
	}
	for _, s := range cb.Samples {
		if err := encodeSample(buf, s); err != nil {
			return err
		}
	}
	return nil
}

func decodeChannelBlock(r io.Reader) (pixel.ChannelBlock, error) {
	var cb pixel.ChannelBlock
	bw, err := readUint16(r)
	if err != nil {
		return cb, err
	}
	bh, err := readUint16(r)
	if err != nil {
		return cb, err
	}
	cb.BlockW, cb.BlockH = int(bw), int(bh)

	nCont, err := readUint32(r)
	if err != nil {
		return cb, err
	}
	total := cb.BlockW*cb.BlockH + int(nCont)
	if total == 0 {
		return cb, nil
	}
	cb.Samples = make([]pixel.Sample, total)
	for i := range cb.Samples {
		s, err := decodeSample(r)
		if err != nil {
			return cb, err
		}
		cb.Samples[i] = s
	}
	return cb, nil
}

func encodeSample(buf *bytes.Buffer, s pixel.Sample) error {
	if err := writeUint8(buf, uint8(s.Plane)); err != nil {
		return err
	}
	if err := writeUint8(buf, uint8(s.IntegerBits)); err != nil {
		return err
	}
	if err := writeUint8(buf, uint8(s.FractionalBits)); err != nil {
		return err
	}
	var cont uint8
	if s.HasContinuation {
		cont = 1
	}
	if err := writeUint8(buf, cont); err != nil {
		return err
	}
	return writeUint16(buf, uint16(s.Offset))
}

func decodeSample(r io.Reader) (pixel.Sample, error) {
	var s pixel.Sample
	plane, err := readUint8(r)
	if err != nil {
		return s, err
	}
	s.Plane = int(plane)

	intBits, err := readUint8(r)
	if err != nil {
		return s, err
	}
	s.IntegerBits = int(intBits)

	fracBits, err := readUint8(r)
	if err != nil {
		return s, err
	}
	s.FractionalBits = int(fracBits)

	cont, err := readUint8(r)
	if err != nil {
		return s, err
	}
	s.HasContinuation = cont != 0

	offset, err := readUint16(r)
	if err != nil {
		return s, err
	}
	s.Offset = int(offset)
	return s, nil
}

func writeBytes(buf *bytes.Buffer, b []byte) error { _, err := buf.Write(b); return err }
func readBytes(r io.Reader, b []byte) error        { return readFull(r, b) }

func writeUint8(buf *bytes.Buffer, v uint8) error  { return buf.WriteByte(v) }
func writeUint16(buf *bytes.Buffer, v uint16) error { return binary.Write(buf, binary.BigEndian, v) }
func writeUint32(buf *bytes.Buffer, v uint32) error { return binary.Write(buf, binary.BigEndian, v) }
func writeUint64(buf *bytes.Buffer, v uint64) error { return binary.Write(buf, binary.BigEndian, v) }
func writeFloat32(buf *bytes.Buffer, v float64) error {
	return binary.Write(buf, binary.BigEndian, float32(v))
}

func readUint8(r io.Reader) (uint8, error) {
	var b [1]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func readUint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func readUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func readFloat32(r io.Reader) (float64, error) {
	v, err := readUint32(r)
	if err != nil {
		return 0, err
	}
	return float64(math.Float32frombits(v)), nil
}

// readFull reads exactly len(b) bytes, reporting an IoError on short
// reads so callers never see a raw io.EOF or io.ErrUnexpectedEOF.
func readFull(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		return newIoError("short read: %v", err)
	}
	return nil
}
