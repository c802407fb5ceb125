/*
NAME
  assemble.go

DESCRIPTION
  assemble.go builds a concrete pixel.Format from a FormatTemplate's
  evaluated field environment, including the auto-generated sample
  iteration over (block_x, block_y) described in spec.md §4.2 step 6.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package template

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ausocean/xyuv/expr"
	"github.com/ausocean/xyuv/pixel"
)

func assembleFormat(tmpl *FormatTemplate, env expr.Env, matrix pixel.ConversionMatrix) (*pixel.Format, error) {
	format := &pixel.Format{
		FourCC:           tmpl.FourCC,
		ConversionMatrix: matrix,
	}

	if tmpl.Origin != nil {
		origin, err := decodeOrigin(env["origin"])
		if err != nil {
			return nil, err
		}
		format.Origin = origin
	}

	planes := make([]pixel.Plane, len(tmpl.Planes))
	for i, pt := range tmpl.Planes {
		pl, err := assemblePlane(i, pt, env)
		if err != nil {
			return nil, err
		}
		planes[i] = pl
	}
	format.Planes = planes

	for ch := pixel.Channel(0); ch < 4; ch++ {
		cb := tmpl.Channels[ch]
		if !cb.present() {
			continue
		}
		name := channelName(ch, tmpl.UsesRGB)
		assembled, err := assembleChannelBlock(name, cb, env)
		if err != nil {
			return nil, errors.Wrapf(err, "assembling channel %v", ch)
		}
		format.Channels[ch] = assembled
	}

	return format, nil
}

func assemblePlane(i int, pt PlaneTemplate, env expr.Env) (pixel.Plane, error) {
	prefix := planeFieldPrefix(i)
	pl := pixel.Plane{}

	var err error
	if pl.BaseOffset, err = requireInt(env[prefix+".base_offset"], prefix+".base_offset"); err != nil {
		return pl, err
	}
	if pl.Size, err = requireInt(env[prefix+".size"], prefix+".size"); err != nil {
		return pl, err
	}
	if pl.LineStride, err = requireInt(env[prefix+".line_stride"], prefix+".line_stride"); err != nil {
		return pl, err
	}
	if pl.BlockStride, err = requireInt(env[prefix+".block_stride"], prefix+".block_stride"); err != nil {
		return pl, err
	}
	if pt.InterleaveMode != nil {
		mode, err := decodeInterleaveMode(env[prefix+".interleave_mode"])
		if err != nil {
			return pl, err
		}
		pl.InterleaveMode = mode
	}

	if pt.BlockOrder.MegaBlockW == nil {
		pl.BlockOrder = pixel.IdentityBlockOrder()
		return pl, nil
	}
	bo := pixel.BlockOrder{}
	if bo.MegaBlockW, err = requireInt(env[prefix+".block_order.mega_block_w"], prefix+".block_order.mega_block_w"); err != nil {
		return pl, err
	}
	if bo.MegaBlockH, err = requireInt(env[prefix+".block_order.mega_block_h"], prefix+".block_order.mega_block_h"); err != nil {
		return pl, err
	}
	for k := range bo.XMask {
		v, err := decodeMaskEntry(env[fmt.Sprintf("%s.block_order.x_mask[%d]", prefix, k)])
		if err != nil {
			return pl, err
		}
		bo.XMask[k] = v
	}
	for k := range bo.YMask {
		v, err := decodeMaskEntry(env[fmt.Sprintf("%s.block_order.y_mask[%d]", prefix, k)])
		if err != nil {
			return pl, err
		}
		bo.YMask[k] = v
	}
	pl.BlockOrder = bo
	return pl, nil
}

func assembleChannelBlock(name string, cb ChannelBlockTemplate, env expr.Env) (pixel.ChannelBlock, error) {
	blockW, err := requireInt(env[name+".block_w"], name+".block_w")
	if err != nil {
		return pixel.ChannelBlock{}, err
	}
	blockH, err := requireInt(env[name+".block_h"], name+".block_h")
	if err != nil {
		return pixel.ChannelBlock{}, err
	}

	out := pixel.ChannelBlock{BlockW: blockW, BlockH: blockH}

	if cb.AutoGen != nil {
		samples, err := generateAutoSamples(cb.AutoGen, blockW, blockH, env)
		if err != nil {
			return pixel.ChannelBlock{}, err
		}
		out.Samples = samples
		return out, nil
	}

	samples := make([]pixel.Sample, len(cb.Samples))
	for j := range cb.Samples {
		sp := fmt.Sprintf("%s.samples[%d]", name, j)
		s, err := assembleSample(sp, env)
		if err != nil {
			return pixel.ChannelBlock{}, err
		}
		samples[j] = s
	}
	out.Samples = samples
	return out, nil
}

func assembleSample(prefix string, env expr.Env) (pixel.Sample, error) {
	var s pixel.Sample
	var err error
	if s.Plane, err = requireInt(env[prefix+".plane"], prefix+".plane"); err != nil {
		return s, err
	}
	if s.Offset, err = requireInt(env[prefix+".offset"], prefix+".offset"); err != nil {
		return s, err
	}
	if s.IntegerBits, err = requireInt(env[prefix+".integer_bits"], prefix+".integer_bits"); err != nil {
		return s, err
	}
	if s.FractionalBits, err = requireInt(env[prefix+".fractional_bits"], prefix+".fractional_bits"); err != nil {
		return s, err
	}
	if s.HasContinuation, err = requireBool(env[prefix+".has_continuation"], prefix+".has_continuation"); err != nil {
		return s, err
	}
	return s, nil
}

// generateAutoSamples evaluates auto's five field expressions once per
// (block_x, block_y) in [0,blockW) x [0,blockH), in row-major order,
// binding those two iteration variables alongside the outer environment
// (spec.md §4.2 step 6). The returned slice always has exactly
// blockW*blockH entries, one base sample per block position, including
// zero-bit-width ones: spec.md's ChannelBlock invariant requires exactly
// block_w*block_h base entries, and packer/pixel index by that fixed
// count, so a bit-width-zero sample is still emitted rather than
// dropped.
func generateAutoSamples(auto *AutoGenSample, blockW, blockH int, env expr.Env) ([]pixel.Sample, error) {
	var samples []pixel.Sample
	for by := 0; by < blockH; by++ {
		for bx := 0; bx < blockW; bx++ {
			iterEnv := make(expr.Env, len(env)+2)
			for k, v := range env {
				iterEnv[k] = v
			}
			iterEnv["block_x"] = expr.Int(int64(bx))
			iterEnv["block_y"] = expr.Int(int64(by))

			var s pixel.Sample
			var err error
			planeV, err := expr.Eval(auto.Plane, iterEnv)
			if err != nil {
				return nil, err
			}
			if s.Plane, err = requireInt(planeV, "auto sample plane"); err != nil {
				return nil, err
			}
			offsetV, err := expr.Eval(auto.Offset, iterEnv)
			if err != nil {
				return nil, err
			}
			if s.Offset, err = requireInt(offsetV, "auto sample offset"); err != nil {
				return nil, err
			}
			intV, err := expr.Eval(auto.IntegerBits, iterEnv)
			if err != nil {
				return nil, err
			}
			if s.IntegerBits, err = requireInt(intV, "auto sample integer_bits"); err != nil {
				return nil, err
			}
			fracV, err := expr.Eval(auto.FractionalBits, iterEnv)
			if err != nil {
				return nil, err
			}
			if s.FractionalBits, err = requireInt(fracV, "auto sample fractional_bits"); err != nil {
				return nil, err
			}
			contV, err := expr.Eval(auto.HasContinuation, iterEnv)
			if err != nil {
				return nil, err
			}
			if s.HasContinuation, err = requireBool(contV, "auto sample has_continuation"); err != nil {
				return nil, err
			}

			samples = append(samples, s)
		}
	}
	return samples, nil
}
