/*
NAME
  io.go

DESCRIPTION
  io.go implements WriteFrame and ReadFrame (spec.md §4.6, §6
  write_frame/read_frame): the versioned file header framing a frame
  header, plane descriptors, and channel block descriptors, followed by
  the frame's opaque payload. Multiple frames concatenate naturally;
  ReadFrame returns io.EOF cleanly at stream end so callers can loop.

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
	"hash/crc32"
	"io"

	"github.com/pkg/errors"

	"github.com/ausocean/xyuv/pixel"
)

const (
	magic   = "XYUV_FMT"
	version = uint16(0)
)

// WriteFrame writes frame to w: the versioned file header, the frame
// header/plane/channel-block descriptors, then the raw payload bytes.
func WriteFrame(w io.Writer, frame *pixel.Frame) error {
	var body bytes.Buffer
	if err := encodeBody(&body, frame.Format); err != nil {
		return errors.Wrap(err, "encoding frame header")
	}
	if body.Len() > 0xFFFF {
		return newIoError("encoded frame header %d bytes exceeds u16 offset field", body.Len())
	}

	var fileHeader bytes.Buffer
	if err := writeBytes(&fileHeader, []byte(magic)); err != nil {
		return err
	}
	crc := crc32.ChecksumIEEE(body.Bytes())
	if err := writeUint32(&fileHeader, crc); err != nil {
		return err
	}
	if err := writeUint16(&fileHeader, version); err != nil {
		return err
	}
	if err := writeUint16(&fileHeader, uint16(body.Len())); err != nil {
		return err
	}
	if err := writeUint64(&fileHeader, uint64(len(frame.Bytes))); err != nil {
		return err
	}

	if _, err := w.Write(fileHeader.Bytes()); err != nil {
		return newIoError("writing file header: %v", err)
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return newIoError("writing frame header: %v", err)
	}
	if _, err := w.Write(frame.Bytes); err != nil {
		return newIoError("writing payload: %v", err)
	}
	return nil
}

// ReadFrame reads one frame from r. At clean end of stream (no bytes
// available before the magic) it returns io.EOF. A short read mid-frame,
// an unrecognized magic, or an unsupported version is an *IoError; when
// the failure is in the frame header body or the payload, that
// *IoError is wrapped with context (errors.Cause recovers it). A decoded
// format that fails Format.Validate is reported with the pixel
// package's validation error as the cause.
func ReadFrame(r io.Reader) (*pixel.Frame, error) {
	var magicBuf [8]byte
	if _, err := io.ReadFull(r, magicBuf[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, newIoError("short read of magic: %v", err)
	}
	if string(magicBuf[:]) != magic {
		return nil, newIoError("unrecognized magic %q", magicBuf[:])
	}

	if _, err := readUint32(r); err != nil { // CRC, currently unvalidated
		return nil, err
	}
	ver, err := readUint16(r)
	if err != nil {
		return nil, err
	}
	if ver != version {
		return nil, newIoError("unsupported container version %d", ver)
	}
	bodyLen, err := readUint16(r)
	if err != nil {
		return nil, err
	}
	payloadSize, err := readUint64(r)
	if err != nil {
		return nil, err
	}

	bodyBuf := make([]byte, bodyLen)
	if err := readFull(r, bodyBuf); err != nil {
		return nil, errors.Wrap(err, "reading frame header")
	}
	format, err := decodeBody(bytes.NewReader(bodyBuf))
	if err != nil {
		return nil, errors.Wrap(err, "decoding frame header")
	}
	format.Size = int(payloadSize)
	if err := format.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating decoded format")
	}

	payload := make([]byte, payloadSize)
	if err := readFull(r, payload); err != nil {
		return nil, errors.Wrap(err, "reading payload")
	}

	return &pixel.Frame{Format: format, Bytes: payload}, nil
}
