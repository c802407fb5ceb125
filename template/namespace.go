/*
NAME
  namespace.go

DESCRIPTION
  namespace.go builds the dotted-path field namespace for a
  FormatTemplate and orders it topologically via Kahn's algorithm
  (spec.md §4.2 step 2-3, §9 "Template topology"): an immutable map
  name -> Expression, rather than back-references between mutable
  nodes.

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
	"sort"

	"github.com/ausocean/xyuv/expr"
	"github.com/ausocean/xyuv/pixel"
)

// channelName returns the dotted-path prefix for channel slot ch, per
// whether the template uses the R/G/B/A or Y/U/V/A naming.
func channelName(ch pixel.Channel, usesRGB bool) string {
	if usesRGB {
		switch ch {
		case pixel.ChannelY:
			return "r_block"
		case pixel.ChannelU:
			return "g_block"
		case pixel.ChannelV:
			return "b_block"
		default:
			return "a_block"
		}
	}
	switch ch {
	case pixel.ChannelY:
		return "y_block"
	case pixel.ChannelU:
		return "u_block"
	case pixel.ChannelV:
		return "v_block"
	default:
		return "a_block"
	}
}

// buildFields flattens tmpl into a dotted-path name -> Expression map,
// skipping auto-generated sample fields (they are evaluated separately,
// once per (block_x, block_y) iteration, not as ordinary graph nodes).
// autoGenPrefixes collects the channel-name prefixes that own an
// auto-generated sample set, for the structural check in step 4a.
func buildFields(tmpl *FormatTemplate) (fields map[string]expr.Expression, autoGenPrefixes []string) {
	fields = make(map[string]expr.Expression)

	if tmpl.Origin != nil {
		fields["origin"] = tmpl.Origin
	}

	for i, pl := range tmpl.Planes {
		prefix := fmt.Sprintf("planes[%d]", i)
		addIfSet(fields, prefix+".base_offset", pl.BaseOffset)
		addIfSet(fields, prefix+".size", pl.Size)
		addIfSet(fields, prefix+".line_stride", pl.LineStride)
		addIfSet(fields, prefix+".block_stride", pl.BlockStride)
		addIfSet(fields, prefix+".interleave_mode", pl.InterleaveMode)
		addIfSet(fields, prefix+".block_order.mega_block_w", pl.BlockOrder.MegaBlockW)
		addIfSet(fields, prefix+".block_order.mega_block_h", pl.BlockOrder.MegaBlockH)
		for k, m := range pl.BlockOrder.XMask {
			addIfSet(fields, fmt.Sprintf("%s.block_order.x_mask[%d]", prefix, k), m)
		}
		for k, m := range pl.BlockOrder.YMask {
			addIfSet(fields, fmt.Sprintf("%s.block_order.y_mask[%d]", prefix, k), m)
		}
	}

	for ch := pixel.Channel(0); ch < 4; ch++ {
		cb := tmpl.Channels[ch]
		if !cb.present() {
			continue
		}
		name := channelName(ch, tmpl.UsesRGB)
		addIfSet(fields, name+".block_w", cb.BlockW)
		addIfSet(fields, name+".block_h", cb.BlockH)

		if cb.AutoGen != nil {
			autoGenPrefixes = append(autoGenPrefixes, name+".samples")
			continue
		}
		for j, s := range cb.Samples {
			sp := fmt.Sprintf("%s.samples[%d]", name, j)
			addIfSet(fields, sp+".plane", s.Plane)
			addIfSet(fields, sp+".offset", s.Offset)
			addIfSet(fields, sp+".integer_bits", s.IntegerBits)
			addIfSet(fields, sp+".fractional_bits", s.FractionalBits)
			addIfSet(fields, sp+".has_continuation", s.HasContinuation)
		}
	}

	return fields, autoGenPrefixes
}

func addIfSet(fields map[string]expr.Expression, name string, e expr.Expression) {
	if e != nil {
		fields[name] = e
	}
}

// topoOrder returns the field names of fields in an order where every
// field's dependencies (restricted to names that are themselves keys
// of fields) precede it. It implements Kahn's algorithm; leftover
// in-degree after processing indicates a cycle.
func topoOrder(fields map[string]expr.Expression) ([]string, error) {
	deps := make(map[string][]string, len(fields))
	inDegree := make(map[string]int, len(fields))
	dependents := make(map[string][]string, len(fields))

	for name, e := range fields {
		var d []string
		for _, v := range expr.FreeVars(e) {
			if _, ok := fields[v]; ok {
				d = append(d, v)
			}
		}
		deps[name] = d
		inDegree[name] = len(d)
		for _, v := range d {
			dependents[v] = append(dependents[v], name)
		}
	}

	// Deterministic ready-queue ordering keeps inflation reproducible.
	var ready []string
	for name, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	var order []string
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n)
		next := append([]string(nil), dependents[n]...)
		sort.Strings(next)
		for _, d := range next {
			inDegree[d]--
			if inDegree[d] == 0 {
				ready = insertSorted(ready, d)
			}
		}
	}

	if len(order) != len(fields) {
		return nil, newDependencyError("template field dependency graph has a cycle")
	}
	return order, nil
}

func insertSorted(s []string, v string) []string {
	i := sort.SearchStrings(s, v)
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
