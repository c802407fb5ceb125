/*
NAME
  chain.go

DESCRIPTION
  chain.go groups a ChannelBlock's flat sample list into per-pixel
  logical sample chains (spec.md §3, §4.4): the first block_w*block_h
  entries are base samples, one per pixel in row-major order; any
  remaining entries are continuation tails, consumed in list order by
  the bases that declare has_continuation == true. Within a chain, the
  base entry is the least-significant limb and later entries are
  increasingly higher-order limbs.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package packer

import "github.com/ausocean/xyuv/pixel"

// chain is one logical sample: a base entry plus its continuation tail.
type chain struct {
	Entries []pixel.Sample
}

// integerBits and fractionalBits are the chain's combined UNORM widths:
// the sum across every entry.
func (c chain) integerBits() int {
	sum := 0
	for _, e := range c.Entries {
		sum += e.IntegerBits
	}
	return sum
}

func (c chain) fractionalBits() int {
	sum := 0
	for _, e := range c.Entries {
		sum += e.FractionalBits
	}
	return sum
}

// buildChains splits cb.Samples into block_w*block_h logical chains, in
// row-major pixel order.
func buildChains(cb pixel.ChannelBlock) []chain {
	n := cb.BlockW * cb.BlockH
	bases := cb.Samples[:n]
	tail := cb.Samples[n:]
	chains := make([]chain, n)
	cursor := 0
	for i, base := range bases {
		entries := []pixel.Sample{base}
		last := base
		for last.HasContinuation {
			next := tail[cursor]
			cursor++
			entries = append(entries, next)
			last = next
		}
		chains[i] = chain{Entries: entries}
	}
	return chains
}
