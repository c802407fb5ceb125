/*
NAME
  inflate.go

DESCRIPTION
  inflate.go implements Inflate, the template package's single public
  operation: deriving a concrete pixel.Format from a FormatTemplate and
  an instance's (width, height, siting, matrix), per spec.md §4.2's
  eight-step inflation algorithm.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package template

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ausocean/xyuv/expr"
	"github.com/ausocean/xyuv/pixel"
)

// Inflate derives a concrete, dimension-bound pixel.Format from tmpl
// for the given image dimensions, chroma siting and conversion matrix
// (spec.md §4.2).
func Inflate(tmpl *FormatTemplate, w, h int, siting pixel.ChromaSiting, matrix pixel.ConversionMatrix) (*pixel.Format, error) {
	if w <= 0 || h <= 0 {
		f := &pixel.Format{ImageW: w, ImageH: h}
		return nil, f.Validate()
	}

	// Step 1: bind well-known names.
	env := expr.Env{
		"image_w": expr.Int(int64(w)),
		"image_h": expr.Int(int64(h)),
		"subsampling_mode.macro_px_w": expr.Int(int64(siting.Subsampling.MacroPxW)),
		"subsampling_mode.macro_px_h": expr.Int(int64(siting.Subsampling.MacroPxH)),
	}

	// Steps 2-3: build the field graph and topologically order it.
	fields, autoGenPrefixes := buildFields(tmpl)
	order, err := topoOrder(fields)
	if err != nil {
		return nil, err
	}

	// Step 4a: no field may depend on an auto-generated sample's output.
	for name, e := range fields {
		for _, v := range expr.FreeVars(e) {
			for _, prefix := range autoGenPrefixes {
				if strings.HasPrefix(v, prefix) {
					return nil, newDependencyError("field %s depends on auto-generated sample output %s", name, v)
				}
			}
		}
	}

	// Step 5: evaluate in topological order.
	for _, name := range order {
		v, err := expr.Eval(fields[name], env)
		if err != nil {
			return nil, errors.Wrapf(err, "evaluating template field %s", name)
		}
		env[name] = v
	}

	// Step 4b: mega-block structural dependency rule, checked against
	// the now-evaluated mega_block_w/h values and the static dependency
	// graph built in step 2.
	if err := checkMegaBlockDeps(tmpl, fields, env); err != nil {
		return nil, err
	}

	format, err := assembleFormat(tmpl, env, matrix)
	if err != nil {
		return nil, err
	}
	format.Siting = siting
	format.ImageW, format.ImageH = w, h

	// Step 7: total frame size.
	size := 0
	for _, pl := range format.Planes {
		if end := pl.BaseOffset + pl.Size; end > size {
			size = end
		}
	}
	format.Size = size

	// Step 8: validate.
	if err := format.Validate(); err != nil {
		return nil, err
	}
	return format, nil
}

// checkMegaBlockDeps enforces: if a plane's mega_block_w > 1, its
// line_stride expression must transitively depend on mega_block_w;
// symmetrically for mega_block_h and plane_size.
func checkMegaBlockDeps(tmpl *FormatTemplate, fields map[string]expr.Expression, env expr.Env) error {
	for i, pl := range tmpl.Planes {
		if pl.BlockOrder.MegaBlockW == nil {
			continue
		}
		prefix := planeFieldPrefix(i)
		mw, _ := requireInt(env[prefix+".block_order.mega_block_w"], prefix+".block_order.mega_block_w")
		mh, _ := requireInt(env[prefix+".block_order.mega_block_h"], prefix+".block_order.mega_block_h")

		if mw > 1 {
			if !transitivelyDependsOn(fields, prefix+".line_stride", prefix+".block_order.mega_block_w") {
				return newDependencyError("plane %d has mega_block_w > 1 but line_stride does not depend on it", i)
			}
			if !transitivelyDependsOn(fields, prefix+".size", prefix+".block_order.mega_block_w") {
				return newDependencyError("plane %d has mega_block_w > 1 but plane_size does not depend on it", i)
			}
		}
		if mh > 1 {
			if !transitivelyDependsOn(fields, prefix+".line_stride", prefix+".block_order.mega_block_h") {
				return newDependencyError("plane %d has mega_block_h > 1 but line_stride does not depend on it", i)
			}
			if !transitivelyDependsOn(fields, prefix+".size", prefix+".block_order.mega_block_h") {
				return newDependencyError("plane %d has mega_block_h > 1 but plane_size does not depend on it", i)
			}
		}
	}
	return nil
}

func planeFieldPrefix(i int) string {
	return "planes[" + itoa(i) + "]"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// transitivelyDependsOn reports whether field's expression reaches dep
// through zero or more hops of the static dependency graph over fields.
func transitivelyDependsOn(fields map[string]expr.Expression, field, dep string) bool {
	e, ok := fields[field]
	if !ok {
		return false
	}
	visited := map[string]bool{field: true}
	stack := []string{}
	for _, v := range expr.FreeVars(e) {
		stack = append(stack, v)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == dep {
			return true
		}
		if visited[n] {
			continue
		}
		visited[n] = true
		ne, ok := fields[n]
		if !ok {
			continue
		}
		stack = append(stack, expr.FreeVars(ne)...)
	}
	return false
}
