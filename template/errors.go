/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the template package's error kind: DependencyError,
  raised when a template's field dependency graph has a cycle, when
  one of the structural dependency rules in spec.md §4.2 step 4 is
  violated, or when an evaluated field has the wrong type or holds an
  unrecognized enum constant.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package template

import "fmt"

// DependencyError reports a cyclic or structurally invalid template
// field dependency graph, or an evaluated field of the wrong type or
// with an unrecognized enum constant.
type DependencyError struct {
	Msg string
}

func (e *DependencyError) Error() string { return "template dependency: " + e.Msg }

func newDependencyError(format string, args ...interface{}) *DependencyError {
	return &DependencyError{Msg: fmt.Sprintf(format, args...)}
}
