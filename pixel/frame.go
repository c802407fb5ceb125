/*
NAME
  frame.go

DESCRIPTION
  frame.go defines Frame: a Format paired with an owned byte buffer of
  exactly format.Size bytes.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pixel

// poisonBytes is repeated to fill newly allocated Frame buffers so that
// bits not addressed by any sample are well-defined for tests (spec.md
// §4.4 step 2: "deterministic poison pattern").
var poisonBytes = [4]byte{0xDE, 0xAD, 0xBE, 0xEF}

// Frame is a Format paired with an owned byte buffer of exactly
// format.Size bytes.
type Frame struct {
	Format *Format
	Bytes  []byte
}

// CreateFrame implements the create_frame library operation (spec.md
// §6). If raw is nil, the buffer is allocated and filled with the
// deterministic poison pattern; if non-nil, its length must equal
// format.Size and it is used directly (not copied).
func CreateFrame(format *Format, raw []byte) (*Frame, error) {
	if format == nil {
		return nil, newDomainError("format must not be nil")
	}
	if raw != nil {
		if len(raw) != format.Size {
			return nil, newDomainError("raw buffer length %d does not match format size %d", len(raw), format.Size)
		}
		return &Frame{Format: format, Bytes: raw}, nil
	}
	buf := make([]byte, format.Size)
	PoisonFill(buf)
	return &Frame{Format: format, Bytes: buf}, nil
}

// PoisonFill fills buf with the repeating 0xDEADBEEF pattern used to
// initialise newly allocated frame buffers.
func PoisonFill(buf []byte) {
	for i := range buf {
		buf[i] = poisonBytes[i%len(poisonBytes)]
	}
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	b := make([]byte, len(f.Bytes))
	copy(b, f.Bytes)
	return &Frame{Format: f.Format, Bytes: b}
}
