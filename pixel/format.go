/*
NAME
  format.go

DESCRIPTION
  format.go defines the concrete, dimension-bound pixel layout descriptor:
  Channel, Sample, ChannelBlock, BlockOrder, Plane, Origin, InterleaveMode
  and Format itself, together with the invariant checks run at
  construction time (spec.md §3, §4.2 step 8).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pixel

// Channel identifies one of the four channel slots a Format exposes.
// RGB templates populate these slots positionally (R->Y, G->U, B->V).
type Channel int

const (
	ChannelY Channel = iota
	ChannelU
	ChannelV
	ChannelA
)

func (c Channel) String() string {
	switch c {
	case ChannelY:
		return "Y"
	case ChannelU:
		return "U"
	case ChannelV:
		return "V"
	case ChannelA:
		return "A"
	default:
		return "?"
	}
}

// Origin is the image's row ordering in memory.
type Origin int

const (
	UpperLeft Origin = iota
	LowerLeft
)

// InterleaveMode is a plane's logical-to-physical block row mapping.
type InterleaveMode int

const (
	NoInterleaving InterleaveMode = iota
	Interleave135024
	Interleave024135
)

// UnusedMaskEntry is the sentinel value for an unused bit-permutation
// slot in a BlockOrder mask.
const UnusedMaskEntry = -1

// Sample is a contiguous run of bits for one value in one plane.
//
// IntegerBits and FractionalBits jointly define a UNORM of total width
// b = IntegerBits + FractionalBits; the unsigned integer v encodes the
// real value v/max where max = ((1<<IntegerBits)-1) << FractionalBits.
//
// HasContinuation, when true, marks this entry's bits as the low-order
// portion of a value whose remaining higher-order bits come from the
// next sample entries; the chain ends at the first entry with
// HasContinuation == false.
type Sample struct {
	Plane           int
	Offset          int
	IntegerBits     int
	FractionalBits  int
	HasContinuation bool
}

// Bits returns the total bit width of this sample entry.
func (s Sample) Bits() int { return s.IntegerBits + s.FractionalBits }

// Max returns the maximum UNORM integer value representable by this
// sample entry: ((1<<IntegerBits)-1) << FractionalBits.
func (s Sample) Max() uint64 {
	if s.IntegerBits == 0 {
		return 0
	}
	return ((uint64(1) << uint(s.IntegerBits)) - 1) << uint(s.FractionalBits)
}

// ChannelBlock is one channel's block geometry and sample list. A
// channel absent from the format has BlockW == BlockH == 0 and an empty
// Samples list.
//
// Samples contains exactly BlockW*BlockH base entries (one per pixel in
// the block, row-major) followed by zero or more continuation entries;
// a base entry plus its continuation tail encode one logical sample.
type ChannelBlock struct {
	BlockW, BlockH int
	Samples        []Sample
}

// Present reports whether this channel is used by the format.
func (cb ChannelBlock) Present() bool { return cb.BlockW > 0 && cb.BlockH > 0 }

// BlockOrder is the swizzle descriptor for a plane: a bit-interleaved
// permutation of blocks within a MegaBlockW x MegaBlockH mega-block
// rectangle (spec.md §4.3). The default (identity) order is (1,1) mega
// blocks with every mask entry UnusedMaskEntry.
type BlockOrder struct {
	MegaBlockW, MegaBlockH int
	XMask, YMask           [32]int
}

// IdentityBlockOrder returns the default, non-swizzling BlockOrder.
func IdentityBlockOrder() BlockOrder {
	bo := BlockOrder{MegaBlockW: 1, MegaBlockH: 1}
	for i := range bo.XMask {
		bo.XMask[i] = UnusedMaskEntry
		bo.YMask[i] = UnusedMaskEntry
	}
	return bo
}

// Identity reports whether bo performs no reordering.
func (bo BlockOrder) Identity() bool {
	if bo.MegaBlockW <= 1 && bo.MegaBlockH <= 1 {
		return true
	}
	return false
}

// Plane is a contiguous byte range in a Frame holding data for one or
// more channels.
type Plane struct {
	BaseOffset     int // bytes from frame start
	Size           int // bytes
	LineStride     int // bytes per row of blocks
	BlockStride    int // bits per block
	InterleaveMode InterleaveMode
	BlockOrder     BlockOrder
}

// Format is the concrete, dimension-bound pixel layout descriptor.
type Format struct {
	FourCC           [4]byte
	Origin           Origin
	ImageW, ImageH   int
	Size             int // total bytes
	Planes           []Plane
	Channels         [4]ChannelBlock // indexed by Channel
	Siting           ChromaSiting
	ConversionMatrix ConversionMatrix
}

// Channel returns the ChannelBlock for c.
func (f *Format) Channel(c Channel) ChannelBlock { return f.Channels[c] }

// Validate runs the invariant checks from spec.md §3: no two samples
// within a plane overlap in bit position, no sample exceeds its plane's
// block stride, and swizzled planes don't overlap other planes' byte
// ranges. It is invoked by the inflater (template.Inflate) and by
// CreateFormat for hand-built formats.
func (f *Format) Validate() error {
	if f.ImageW <= 0 || f.ImageH <= 0 {
		return newDomainError("image dimensions must be positive, got %dx%d", f.ImageW, f.ImageH)
	}
	if err := f.Siting.Validate(); err != nil {
		return err
	}
	if err := f.ConversionMatrix.Validate(); err != nil {
		return err
	}
	for pi, pl := range f.Planes {
		if pl.BaseOffset < 0 || pl.Size < 0 {
			return newFormatError("plane %d has negative offset/size", pi)
		}
		if pl.BaseOffset+pl.Size > f.Size {
			return newFormatError("plane %d [%d,%d) exceeds frame size %d", pi, pl.BaseOffset, pl.BaseOffset+pl.Size, f.Size)
		}
		if !pl.BlockOrder.Identity() && pl.BlockStride%8 != 0 {
			return newFormatError("plane %d uses a swizzled block order but block_stride %d is not byte-aligned", pi, pl.BlockStride)
		}
	}
	if err := f.validateSampleOverlaps(); err != nil {
		return err
	}
	if err := f.validatePlaneOverlaps(); err != nil {
		return err
	}
	return nil
}

// validateSampleOverlaps checks, per plane, that no two samples bound to
// the same block overlap in bit position and that no sample's bit range
// exceeds the plane's block stride.
func (f *Format) validateSampleOverlaps() error {
	type interval struct{ lo, hi int } // [lo, hi)

	byPlane := make(map[int][]interval)
	for ch := Channel(0); ch < 4; ch++ {
		cb := f.Channels[ch]
		if !cb.Present() {
			continue
		}
		i := 0
		nBase := cb.BlockW * cb.BlockH
		cursor := nBase // next unconsumed continuation entry
		for i < nBase {
			s := cb.Samples[i]
			lo := s.Offset
			hi := s.Offset + s.Bits()
			if hi > f.Planes[s.Plane].BlockStride {
				return newFormatError("channel %v sample at plane %d offset %d exceeds block stride %d", ch, s.Plane, s.Offset, f.Planes[s.Plane].BlockStride)
			}
			if s.Bits() > 0 {
				byPlane[s.Plane] = append(byPlane[s.Plane], interval{lo, hi})
			}
			i++
			for prev := s; prev.HasContinuation && cursor < len(cb.Samples); cursor++ {
				c := cb.Samples[cursor]
				prev = c
				clo := c.Offset
				chi := c.Offset + c.Bits()
				if chi > f.Planes[c.Plane].BlockStride {
					return newFormatError("channel %v continuation sample at plane %d offset %d exceeds block stride %d", ch, c.Plane, c.Offset, f.Planes[c.Plane].BlockStride)
				}
				if c.Bits() > 0 {
					byPlane[c.Plane] = append(byPlane[c.Plane], interval{clo, chi})
				}
			}
		}
	}
	for plIdx, ivs := range byPlane {
		for a := 0; a < len(ivs); a++ {
			for b := a + 1; b < len(ivs); b++ {
				if ivs[a].lo < ivs[b].hi && ivs[b].lo < ivs[a].hi {
					return newFormatError("overlapping samples in plane %d: [%d,%d) and [%d,%d)", plIdx, ivs[a].lo, ivs[a].hi, ivs[b].lo, ivs[b].hi)
				}
			}
		}
	}
	return nil
}

// validatePlaneOverlaps checks that planes using a swizzled block order
// don't overlap other planes' byte ranges.
func (f *Format) validatePlaneOverlaps() error {
	for i, a := range f.Planes {
		if a.BlockOrder.Identity() {
			continue
		}
		aLo, aHi := a.BaseOffset, a.BaseOffset+a.Size
		for j, b := range f.Planes {
			if i == j {
				continue
			}
			bLo, bHi := b.BaseOffset, b.BaseOffset+b.Size
			if aLo < bHi && bLo < aHi {
				return newFormatError("swizzled plane %d [%d,%d) overlaps plane %d [%d,%d)", i, aLo, aHi, j, bLo, bHi)
			}
		}
	}
	return nil
}

// CreateFormat validates and returns f, implementing the create_format
// library operation (spec.md §6) for hand-built (non-template-derived)
// formats. Callers deriving a Format from a FormatTemplate should use
// template.Inflate instead, which runs the same Validate checks.
func CreateFormat(f Format) (*Format, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}
