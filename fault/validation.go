// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ViolationKind - category of a single validation failure
type ViolationKind int

// all possible kinds
const (
	MissingSender ViolationKind = iota
	MissingPayload
	RequiredField
	ZeroValue
	FieldTooLong
	TooManyItems
	ImmutableField
	Constraint
)

var kindNames = map[ViolationKind]string{
	MissingSender:  "missing sender",
	MissingPayload: "missing payload",
	RequiredField:  "required field",
	ZeroValue:      "zero value",
	FieldTooLong:   "field too long",
	TooManyItems:   "too many items",
	ImmutableField: "immutable field",
	Constraint:     "constraint",
}

func (k ViolationKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Violation - one failed rule, naming the offending field
type Violation struct {
	Kind   ViolationKind
	Field  string
	Detail string
}

func (v Violation) String() string {
	if "" == v.Detail {
		return fmt.Sprintf("%s: %s", v.Kind, v.Field)
	}
	return fmt.Sprintf("%s: %s: %s", v.Kind, v.Field, v.Detail)
}

// ValidationError - all violations detected in one pass
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	s := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		s[i] = v.String()
	}
	return "validation failed: " + strings.Join(s, "; ")
}

// Add - record a violation
func (e *ValidationError) Add(kind ViolationKind, field string, format string, arguments ...interface{}) {
	e.Violations = append(e.Violations, Violation{
		Kind:   kind,
		Field:  field,
		Detail: fmt.Sprintf(format, arguments...),
	})
}

// Has - check whether a violation of kind was recorded for field
func (e *ValidationError) Has(kind ViolationKind, field string) bool {
	for _, v := range e.Violations {
		if v.Kind == kind && v.Field == field {
			return true
		}
	}
	return false
}

// ErrorOrNil - nil when no violations were recorded
func (e *ValidationError) ErrorOrNil() error {
	if 0 == len(e.Violations) {
		return nil
	}
	return e
}

// IsErrValidation - determine whether err holds validation violations
func IsErrValidation(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// Violations - extract the violations from err, nil if not a validation error
func Violations(err error) []Violation {
	if v, ok := errors.Cause(err).(*ValidationError); ok {
		return v.Violations
	}
	return nil
}
