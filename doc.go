/*
NAME
  doc.go

DESCRIPTION
  doc.go documents the root package: the thin library facade wiring
  together the format template inflater, pixel packer, chroma subsampler
  and container I/O into the small set of operations spec.md §6 names.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package xyuv is the library facade for describing, encoding, decoding
// and converting arbitrary raw YUV/RGB pixel buffer layouts. It wires
// together five independent, stateless core packages:
//
//   - expr: the template expression language
//   - template: the format template inflater
//   - packer: the pixel packer/unpacker
//   - subsample: the chroma subsampler and scaler
//   - container/xyuv: the binary container I/O format
//
// Each of those packages is independently usable; this package exists
// only to spare callers from wiring the Conformer collaborator and the
// container codec themselves.
package xyuv
