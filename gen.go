// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import (
	"code.hybscloud.com/kont"
)

// GenGuard adapts a generator-style definition to the Guard protocol.
// A definition is a kont computation of result type [Outcome] that
// performs exactly one Yield (or YieldSelf) effect: the code before the
// suspension point is the entry phase, the code after it is the release
// phase, and the resumption value is the [Exit] signal.
//
// Each Acquire instantiates a fresh computation from the definition
// factory, so one GenGuard may be reused serially across scoped blocks
// and decorated calls. The suspension is one-shot (affine): the engine
// tracks Fresh/Suspended/Resumed/Exhausted explicitly and reports every
// illegal transition with a distinct definition-error kind.
type GenGuard[T any] struct {
	def    func() kont.Expr[Outcome]
	susp   *kont.Suspension[Outcome]
	state  guardState
	serial Serial
}

// Gen creates a generator-style guard from a Cont-world definition
// factory. The factory runs once per Acquire; the computation is reified
// to Expr-world for stepping.
func Gen[T any](def func() kont.Eff[Outcome]) *GenGuard[T] {
	return GenExpr[T](func() kont.Expr[Outcome] {
		return kont.Reify(def())
	})
}

// GenExpr creates a generator-style guard from an Expr-world definition
// factory. The factory runs once per Acquire.
func GenExpr[T any](def func() kont.Expr[Outcome]) *GenGuard[T] {
	return &GenGuard[T]{def: def, serial: nextSerial()}
}

// Serial returns the serial number assigned to this guard.
func (g *GenGuard[T]) Serial() Serial {
	return g.serial
}

// Acquire runs a fresh computation up to its suspension point and
// returns the yielded handle.
//
// A definition that completes without suspending aborts acquisition:
// with a Replace outcome, the replacement error is the acquisition
// failure (the entry phase aborted deliberately); with any other
// outcome, acquisition fails with ErrMissingYield. A suspension on a
// foreign effect operation fails with ErrForeignEffect.
func (g *GenGuard[T]) Acquire() (T, error) {
	var zero T
	if g.state == stateSuspended || g.state == stateResumed {
		return zero, defErr(ErrReentered, g.serial)
	}
	out, susp := kont.StepExpr(g.def())
	if susp == nil {
		if err, ok := out.Replacement(); ok {
			return zero, err
		}
		return zero, defErr(ErrMissingYield, g.serial)
	}
	switch op := susp.Op().(type) {
	case Yield[T]:
		g.susp, g.state = susp, stateSuspended
		return op.Handle, nil
	case YieldSelf:
		h, ok := any(g).(T)
		if !ok {
			susp.Discard()
			return zero, defErr(ErrSelfHandle, g.serial)
		}
		g.susp, g.state = susp, stateSuspended
		return h, nil
	default:
		susp.Discard()
		return zero, defErr(ErrForeignEffect, g.serial)
	}
}

// Release resumes the suspended computation with the exit signal. The
// release phase runs with the failure visible at the suspension point
// and its returned Outcome is the release decision.
//
// Releasing a fresh guard reports ErrNotAcquired; releasing past an
// exhausted cycle reports ErrExhausted; a definition that suspends again
// during its release phase reports ErrMultipleYield. All three surface
// as Replace outcomes so they stay distinguishable from procedure
// failures.
func (g *GenGuard[T]) Release(exit Exit) Outcome {
	switch g.state {
	case stateFresh:
		return Replace(defErr(ErrNotAcquired, g.serial))
	case stateResumed, stateExhausted:
		return Replace(defErr(ErrExhausted, g.serial))
	}
	susp := g.susp
	g.susp = nil
	g.state = stateResumed
	out, next := susp.Resume(exit)
	g.state = stateExhausted
	if next != nil {
		next.Discard()
		return Replace(defErr(ErrMultipleYield, g.serial))
	}
	return out
}
