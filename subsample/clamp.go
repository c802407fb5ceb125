/*
NAME
  clamp.go

DESCRIPTION
  clamp.go defines the clamp-to-edge helper shared by up-sampling and
  down-sampling (spec.md §4.5): any source coordinate that falls outside
  a plane's bounds is pulled back to the nearest edge pixel rather than
  wrapping or erroring.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package subsample implements the chroma subsampler: up-sampling to
// 4:4:4, siting-aware down-sampling, and nearest-neighbor surface
// scaling (spec.md §4.5).
package subsample

// clampToEdge pulls i back into [0, size) by repeating the nearest edge
// index.
func clampToEdge(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
