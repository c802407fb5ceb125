/*
NAME
  errors.go

DESCRIPTION
  errors.go defines IoError, the container package's single error kind
  (spec.md §7): a short read, an unrecognized magic, or an unsupported
  version.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package xyuv implements the container binary format (spec.md §4.6): a
// versioned, big-endian, fixed-layout header followed by a frame's
// opaque payload bytes. Multiple frames concatenate naturally; readers
// parse sequentially until end of stream.
package xyuv

import "fmt"

// IoError reports a container read or write failure: a short read, an
// unrecognized magic, or an unsupported version.
type IoError struct {
	Msg string
}

func (e *IoError) Error() string { return "xyuv container: " + e.Msg }

func newIoError(format string, args ...interface{}) error {
	return &IoError{Msg: fmt.Sprintf(format, args...)}
}
