// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import (
	"errors"

	"code.hybscloud.com/kont"
)

// Stack records inner guards acquired by a nested-delegation body, in
// acquisition order. On resumption it releases them in strict reverse
// order, clean or failing.
type Stack struct {
	releases []func(Exit) Outcome
}

// Enter acquires g and records its release on the stack. On acquisition
// failure nothing is recorded and g receives no release call; the body
// should return the error, which unwinds the already-acquired guards in
// reverse order before the failure propagates out of Acquire.
func Enter[H any](s *Stack, g Guard[H]) (H, error) {
	h, err := g.Acquire()
	if err != nil {
		var zero H
		return zero, err
	}
	s.releases = append(s.releases, g.Release)
	return h, nil
}

// Nested creates a guard from a single procedure that enters zero or
// more inner guards through its [Stack], in forward order, and holds
// them across the suspension point. Built on the generator engine: the
// body runs as the entry phase, its value is yielded as the handle, and
// the release phase is the stack unwind.
//
// Failure precedence during unwind: the pending failure is threaded from
// the last-acquired guard to the first; Swallow clears it, Replace makes
// the replacement pending with the superseded failure joined to it, and
// Propagate leaves it. Whatever is pending after the first-acquired
// guard releases is the nested guard's outcome.
func Nested[T any](body func(*Stack) (T, error)) *GenGuard[T] {
	return GenExpr[T](func() kont.Expr[Outcome] {
		s := &Stack{}
		h, err := body(s)
		if err != nil {
			return ExprDone(Replace(s.unwindAcquire(err)))
		}
		return ExprYieldBind(h, func(exit Exit) kont.Expr[Outcome] {
			return ExprDone(s.unwind(exit))
		})
	})
}

// unwind releases the recorded guards in reverse order of acquisition,
// threading the pending failure through each release decision, and
// translates the final pending state back into an Outcome relative to
// the original exit.
func (s *Stack) unwind(exit Exit) Outcome {
	pending := exit
	for i := len(s.releases) - 1; i >= 0; i-- {
		out := s.releases[i](pending)
		if out.Swallows() {
			pending = Exit{}
			continue
		}
		if err, ok := out.Replacement(); ok {
			if pending.Failed() && !errors.Is(err, pending.Err()) {
				err = errors.Join(err, pending.Err())
			}
			pending = Exit{err: err, origin: pending.origin}
		}
	}
	switch {
	case !pending.Failed():
		if exit.Failed() {
			return Swallow()
		}
		return Propagate()
	case errors.Is(pending.Err(), exit.Err()) && exit.Failed():
		return Propagate()
	default:
		return Replace(pending.Err())
	}
}

// unwindAcquire releases the already-acquired guards after a failure
// while entering a later one. Swallowing cannot rescue the acquisition:
// without a handle there is nothing to hand to the caller, so the
// original failure still propagates unless a release raised a
// replacement.
func (s *Stack) unwindAcquire(err error) error {
	out := s.unwind(failExit(err, 2))
	if rerr, ok := out.Replacement(); ok {
		return rerr
	}
	return err
}
