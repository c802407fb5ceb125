/*
NAME
  errors.go

DESCRIPTION
  Error types raised while constructing and validating the data model:
  FormatError for invariant violations on an instantiated Format, and
  DomainError for caller-supplied dimension/siting conflicts.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pixel

import "fmt"

// FormatError reports that an instantiated Format fails one of the
// invariants in spec.md §3: overlapping samples, a sample exceeding its
// plane's block stride, or overlapping swizzled plane byte ranges.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return "pixel: invalid format: " + e.Msg }

func newFormatError(format string, args ...interface{}) error {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// DomainError reports a caller-supplied dimension or siting conflict,
// e.g. zero image width/height.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return "pixel: domain error: " + e.Msg }

func newDomainError(format string, args ...interface{}) error {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}
