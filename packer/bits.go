/*
NAME
  bits.go

DESCRIPTION
  bits.go implements LSB-first bit-addressed reads and writes into a
  plane's byte buffer (spec.md §4.4 "Bit streams"): bit index i is byte
  i/8, bit-in-byte i%8, addressed from the least-significant bit of byte
  0 upward. This is intentionally the mirror image of the MSB-first
  bitreader used elsewhere for compressed bitstreams (e.g. H.264 NAL
  parsing) -- raw pixel planes address bits the other way around, so this
  package does not reuse that reader.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package packer

// readBits reads width bits (width <= 64) starting at bitOffset from buf,
// LSB-first, returning them in the low bits of the result.
func readBits(buf []byte, bitOffset, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		bi := bitOffset + i
		byteIdx := bi / 8
		bitIdx := uint(bi % 8)
		bit := (buf[byteIdx] >> bitIdx) & 1
		v |= uint64(bit) << uint(i)
	}
	return v
}

// writeBits writes the low width bits of v into buf starting at
// bitOffset, LSB-first.
func writeBits(buf []byte, bitOffset, width int, v uint64) {
	for i := 0; i < width; i++ {
		bi := bitOffset + i
		byteIdx := bi / 8
		bitIdx := uint(bi % 8)
		bit := byte((v >> uint(i)) & 1)
		if bit == 1 {
			buf[byteIdx] |= 1 << bitIdx
		} else {
			buf[byteIdx] &^= 1 << bitIdx
		}
	}
}
