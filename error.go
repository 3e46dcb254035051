// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import (
	"errors"
	"fmt"
)

// Definition-error kinds. A definition error is a defect in how a guard
// is defined or driven, distinct from a runtime failure inside the
// protected region. Match with [errors.Is]; the wrapping
// [*DefinitionError] carries the guard serial.
var (
	// ErrMissingYield reports a generator definition whose entry phase
	// ran to completion without reaching its suspension point.
	ErrMissingYield = errors.New("definition completed without reaching a suspension point")

	// ErrMultipleYield reports a generator definition that suspended
	// again during its release phase.
	ErrMultipleYield = errors.New("definition suspended again during release")

	// ErrForeignEffect reports a generator definition that performed an
	// effect operation other than Yield or YieldSelf. A Yield whose
	// handle type does not match the guard's is reported the same way.
	ErrForeignEffect = errors.New("definition performed a non-yield effect")

	// ErrSelfHandle reports a YieldSelf whose guard object does not
	// satisfy the declared handle type.
	ErrSelfHandle = errors.New("guard object does not satisfy the handle type")

	// ErrReentered reports Acquire called twice without an intervening
	// Release.
	ErrReentered = errors.New("guard acquired twice without release")

	// ErrNotAcquired reports Release called on a guard whose entry phase
	// never ran.
	ErrNotAcquired = errors.New("guard released before acquire")

	// ErrExhausted reports Release called again after the release phase
	// already completed for the current acquisition.
	ErrExhausted = errors.New("guard released twice for one acquisition")
)

// DefinitionError wraps a definition-error kind with the serial of the
// offending guard. Unwrap exposes the kind for errors.Is matching.
type DefinitionError struct {
	Kind   error
	Serial Serial
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("scope: guard #%d: %v", e.Serial, e.Kind)
}

func (e *DefinitionError) Unwrap() error { return e.Kind }

func defErr(kind error, serial Serial) *DefinitionError {
	return &DefinitionError{Kind: kind, Serial: serial}
}

// PanicError carries a panic value recovered from a protected region.
// The front-ends deliver it to Release as a failure exit; if the release
// outcome propagates, the original panic is re-raised unchanged.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("scope: panic in protected region: %v", e.Value)
}
