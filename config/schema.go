/*
NAME
  schema.go

DESCRIPTION
  schema.go defines the on-disk JSON envelope for template, chroma siting
  and conversion matrix files, and the functions that decode each into
  the core's template.FormatTemplate, pixel.ChromaSiting and
  pixel.ConversionMatrix types. Template fields that the core models as
  expr.Expression are stored as raw expression source text and parsed
  with expr.Parse, the same grammar a hand-written template would use.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.
*/

package config

import (
	"fmt"

	"github.com/ausocean/xyuv/expr"
	"github.com/ausocean/xyuv/pixel"
	"github.com/ausocean/xyuv/template"
)

// fileEnvelope is the common header every on-disk file carries: which
// kind of entity it describes and the name it is registered under.
type fileEnvelope struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// templateJSON is the on-disk shape of a "template" kind file.
type templateJSON struct {
	fileEnvelope
	FourCC   string                       `json:"four_cc"`
	UsesRGB  bool                         `json:"uses_rgb"`
	Origin   string                       `json:"origin"`
	Planes   []planeJSON                  `json:"planes"`
	Channels map[string]channelBlockJSON `json:"channels"`
}

type planeJSON struct {
	BaseOffset     string          `json:"base_offset"`
	Size           string          `json:"size"`
	LineStride     string          `json:"line_stride"`
	BlockStride    string          `json:"block_stride"`
	InterleaveMode string          `json:"interleave_mode"`
	BlockOrder     *blockOrderJSON `json:"block_order,omitempty"`
}

type blockOrderJSON struct {
	MegaBlockW string    `json:"mega_block_w"`
	MegaBlockH string    `json:"mega_block_h"`
	XMask      [32]string `json:"x_mask"`
	YMask      [32]string `json:"y_mask"`
}

type channelBlockJSON struct {
	BlockW  string          `json:"block_w"`
	BlockH  string          `json:"block_h"`
	Samples []sampleJSON    `json:"samples,omitempty"`
	AutoGen *autoGenJSON    `json:"auto_gen,omitempty"`
}

type sampleJSON struct {
	Plane           string `json:"plane"`
	Offset          string `json:"offset"`
	IntegerBits     string `json:"integer_bits"`
	FractionalBits  string `json:"fractional_bits"`
	HasContinuation string `json:"has_continuation"`
}

type autoGenJSON struct {
	Plane           string `json:"plane"`
	Offset          string `json:"offset"`
	IntegerBits     string `json:"integer_bits"`
	FractionalBits  string `json:"fractional_bits"`
	HasContinuation string `json:"has_continuation"`
}

// sitingJSON is the on-disk shape of a "siting" kind file. Unlike
// template fields, siting values are concrete ints/floats, not
// expressions: a ChromaSiting never varies with image dimensions.
type sitingJSON struct {
	fileEnvelope
	MacroPxW int     `json:"macro_px_w"`
	MacroPxH int     `json:"macro_px_h"`
	UX       float64 `json:"u_x"`
	UY       float64 `json:"u_y"`
	VX       float64 `json:"v_x"`
	VY       float64 `json:"v_y"`
}

// matrixJSON is the on-disk shape of a "matrix" kind file.
type matrixJSON struct {
	fileEnvelope
	RGBToYUV [9]float64 `json:"rgb_to_yuv"`
	YUVToRGB [9]float64 `json:"yuv_to_rgb"`
	YRange   rangeJSON  `json:"y_range"`
	URange   rangeJSON  `json:"u_range"`
	VRange   rangeJSON  `json:"v_range"`
	YPacked  rangeJSON  `json:"y_packed_range"`
	UPacked  rangeJSON  `json:"u_packed_range"`
	VPacked  rangeJSON  `json:"v_packed_range"`
}

type rangeJSON struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r rangeJSON) toRange() pixel.Range { return pixel.Range{Min: r.Min, Max: r.Max} }

func (s sitingJSON) toChromaSiting() pixel.ChromaSiting {
	return pixel.ChromaSiting{
		Subsampling: pixel.Subsampling{MacroPxW: s.MacroPxW, MacroPxH: s.MacroPxH},
		U:           pixel.SitingPoint{X: s.UX, Y: s.UY},
		V:           pixel.SitingPoint{X: s.VX, Y: s.VY},
	}
}

func (m matrixJSON) toConversionMatrix() pixel.ConversionMatrix {
	return pixel.NewConversionMatrix(
		m.RGBToYUV, m.YUVToRGB,
		m.YRange.toRange(), m.URange.toRange(), m.VRange.toRange(),
		m.YPacked.toRange(), m.UPacked.toRange(), m.VPacked.toRange(),
	)
}

// parseExpr parses a non-empty expression source string; an empty
// string yields a nil Expression (the field is left unset, e.g. an
// absent block_order).
func parseExpr(file, field, src string) (expr.Expression, error) {
	if src == "" {
		return nil, nil
	}
	e, err := expr.Parse(src)
	if err != nil {
		return nil, newConfigError(file, "field %s: %v", field, err)
	}
	return e, nil
}

func (t templateJSON) toFormatTemplate(file string) (*template.FormatTemplate, error) {
	if len(t.FourCC) != 4 {
		return nil, newConfigError(file, "four_cc must be exactly 4 characters, got %q", t.FourCC)
	}
	origin, err := parseExpr(file, "origin", t.Origin)
	if err != nil {
		return nil, err
	}

	planes := make([]template.PlaneTemplate, len(t.Planes))
	for i, p := range t.Planes {
		pt, err := p.toPlaneTemplate(file, i)
		if err != nil {
			return nil, err
		}
		planes[i] = pt
	}

	ft := &template.FormatTemplate{
		Origin:  origin,
		Planes:  planes,
		UsesRGB: t.UsesRGB,
	}
	copy(ft.FourCC[:], t.FourCC)

	for name, cb := range t.Channels {
		ch, err := channelName(file, name)
		if err != nil {
			return nil, err
		}
		tmpl, err := cb.toChannelBlockTemplate(file, name)
		if err != nil {
			return nil, err
		}
		ft.Channels[ch] = tmpl
	}
	return ft, nil
}

func channelName(file, name string) (pixel.Channel, error) {
	switch name {
	case "y", "r":
		return pixel.ChannelY, nil
	case "u", "g":
		return pixel.ChannelU, nil
	case "v", "b":
		return pixel.ChannelV, nil
	case "a":
		return pixel.ChannelA, nil
	default:
		return 0, newConfigError(file, "unrecognised channel key %q", name)
	}
}

func (p planeJSON) toPlaneTemplate(file string, idx int) (template.PlaneTemplate, error) {
	field := func(name string) string { return fieldPath(idx, name) }

	baseOffset, err := parseExpr(file, field("base_offset"), p.BaseOffset)
	if err != nil {
		return template.PlaneTemplate{}, err
	}
	size, err := parseExpr(file, field("size"), p.Size)
	if err != nil {
		return template.PlaneTemplate{}, err
	}
	lineStride, err := parseExpr(file, field("line_stride"), p.LineStride)
	if err != nil {
		return template.PlaneTemplate{}, err
	}
	blockStride, err := parseExpr(file, field("block_stride"), p.BlockStride)
	if err != nil {
		return template.PlaneTemplate{}, err
	}
	interleave, err := parseExpr(file, field("interleave_mode"), p.InterleaveMode)
	if err != nil {
		return template.PlaneTemplate{}, err
	}

	pt := template.PlaneTemplate{
		BaseOffset:     baseOffset,
		Size:           size,
		LineStride:     lineStride,
		BlockStride:    blockStride,
		InterleaveMode: interleave,
	}
	if p.BlockOrder != nil {
		bo, err := p.BlockOrder.toBlockOrderTemplate(file, idx)
		if err != nil {
			return template.PlaneTemplate{}, err
		}
		pt.BlockOrder = bo
	}
	return pt, nil
}

func (b blockOrderJSON) toBlockOrderTemplate(file string, planeIdx int) (template.BlockOrderTemplate, error) {
	var bo template.BlockOrderTemplate
	var err error
	bo.MegaBlockW, err = parseExpr(file, fieldPath(planeIdx, "block_order.mega_block_w"), b.MegaBlockW)
	if err != nil {
		return bo, err
	}
	bo.MegaBlockH, err = parseExpr(file, fieldPath(planeIdx, "block_order.mega_block_h"), b.MegaBlockH)
	if err != nil {
		return bo, err
	}
	for i := range b.XMask {
		bo.XMask[i], err = parseExpr(file, fieldPath(planeIdx, fmt.Sprintf("block_order.x_mask[%d]", i)), b.XMask[i])
		if err != nil {
			return bo, err
		}
		bo.YMask[i], err = parseExpr(file, fieldPath(planeIdx, fmt.Sprintf("block_order.y_mask[%d]", i)), b.YMask[i])
		if err != nil {
			return bo, err
		}
	}
	return bo, nil
}

func (c channelBlockJSON) toChannelBlockTemplate(file, name string) (template.ChannelBlockTemplate, error) {
	var cb template.ChannelBlockTemplate
	var err error
	cb.BlockW, err = parseExpr(file, name+".block_w", c.BlockW)
	if err != nil {
		return cb, err
	}
	cb.BlockH, err = parseExpr(file, name+".block_h", c.BlockH)
	if err != nil {
		return cb, err
	}
	if c.AutoGen != nil {
		ag, err := c.AutoGen.toAutoGenSample(file, name)
		if err != nil {
			return cb, err
		}
		cb.AutoGen = ag
	}
	for i, s := range c.Samples {
		st, err := s.toSampleTemplate(file, name, i)
		if err != nil {
			return cb, err
		}
		cb.Samples = append(cb.Samples, st)
	}
	return cb, nil
}

func (a autoGenJSON) toAutoGenSample(file, name string) (*template.AutoGenSample, error) {
	plane, err := parseExpr(file, name+".auto_gen.plane", a.Plane)
	if err != nil {
		return nil, err
	}
	offset, err := parseExpr(file, name+".auto_gen.offset", a.Offset)
	if err != nil {
		return nil, err
	}
	intBits, err := parseExpr(file, name+".auto_gen.integer_bits", a.IntegerBits)
	if err != nil {
		return nil, err
	}
	fracBits, err := parseExpr(file, name+".auto_gen.fractional_bits", a.FractionalBits)
	if err != nil {
		return nil, err
	}
	cont, err := parseExpr(file, name+".auto_gen.has_continuation", a.HasContinuation)
	if err != nil {
		return nil, err
	}
	return &template.AutoGenSample{
		Plane: plane, Offset: offset, IntegerBits: intBits,
		FractionalBits: fracBits, HasContinuation: cont,
	}, nil
}

func (s sampleJSON) toSampleTemplate(file, name string, idx int) (template.SampleTemplate, error) {
	prefix := fmt.Sprintf("%s.samples[%d]", name, idx)
	plane, err := parseExpr(file, prefix+".plane", s.Plane)
	if err != nil {
		return template.SampleTemplate{}, err
	}
	offset, err := parseExpr(file, prefix+".offset", s.Offset)
	if err != nil {
		return template.SampleTemplate{}, err
	}
	intBits, err := parseExpr(file, prefix+".integer_bits", s.IntegerBits)
	if err != nil {
		return template.SampleTemplate{}, err
	}
	fracBits, err := parseExpr(file, prefix+".fractional_bits", s.FractionalBits)
	if err != nil {
		return template.SampleTemplate{}, err
	}
	cont, err := parseExpr(file, prefix+".has_continuation", s.HasContinuation)
	if err != nil {
		return template.SampleTemplate{}, err
	}
	return template.SampleTemplate{
		Plane: plane, Offset: offset, IntegerBits: intBits,
		FractionalBits: fracBits, HasContinuation: cont,
	}, nil
}

func fieldPath(planeIdx int, name string) string { return fmt.Sprintf("planes[%d].%s", planeIdx, name) }
