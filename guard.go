// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

// Guard is the two-operation protocol every definition style is
// normalized to. Acquire obtains the handle; Release must run exactly
// once for every successful Acquire, on every exit path, with the
// appropriate [Exit] signal.
//
// Acquire must not be called twice on the same guard without an
// intervening Release. All external resource state changes happen inside
// Acquire and Release; a guard performs no background activity.
//
// A guard instance may be reused serially (one cycle per scoped block or
// decorated call). Concurrent reuse of one instance by overlapping
// usages is caller responsibility: guards hold no internal lock.
type Guard[T any] interface {
	Acquire() (T, error)
	Release(exit Exit) Outcome
}

// guardState is the explicit lifecycle of one acquisition cycle.
// Fresh → Suspended → Resumed → Exhausted; a new Acquire on an
// exhausted guard starts a fresh cycle.
type guardState uint8

const (
	stateFresh guardState = iota
	stateSuspended
	stateResumed
	stateExhausted
)

type outcomeKind uint8

const (
	outcomePropagate outcomeKind = iota
	outcomeSwallow
	outcomeReplace
)

// Outcome is the release decision: propagate the failure unchanged,
// swallow it, or raise a replacement failure. The zero value propagates.
type Outcome struct {
	kind outcomeKind
	err  error
}

// Propagate returns the outcome that surfaces the exit failure, if any,
// unchanged to the caller of the usage front-end.
func Propagate() Outcome { return Outcome{} }

// Swallow returns the outcome that discards the exit failure; the
// scoped block or decorated call then completes normally.
func Swallow() Outcome { return Outcome{kind: outcomeSwallow} }

// Replace returns the outcome that surfaces err instead of the exit
// failure. A release phase that itself fails reports the failure this
// way. Replace(nil) propagates.
func Replace(err error) Outcome {
	if err == nil {
		return Outcome{}
	}
	return Outcome{kind: outcomeReplace, err: err}
}

// Swallows reports whether the outcome discards the exit failure.
func (o Outcome) Swallows() bool { return o.kind == outcomeSwallow }

// Replacement returns the replacement failure, if the outcome raises one.
func (o Outcome) Replacement() (error, bool) {
	if o.kind == outcomeReplace {
		return o.err, true
	}
	return nil, false
}

// FuncGuard adapts explicit acquire/release functions to the Guard
// protocol. It is the identity adaptation: the functions run as given,
// with the same misuse checks as the other adapters.
type FuncGuard[T any] struct {
	acquire func() (T, error)
	release func(Exit) Outcome
	state   guardState
	serial  Serial
}

// New creates a guard from explicit acquire and release functions.
// A nil release is treated as Propagate.
func New[T any](acquire func() (T, error), release func(Exit) Outcome) *FuncGuard[T] {
	return &FuncGuard[T]{acquire: acquire, release: release, serial: nextSerial()}
}

// Serial returns the serial number assigned to this guard.
func (g *FuncGuard[T]) Serial() Serial {
	return g.serial
}

// Acquire runs the acquire function. On error the guard stays fresh and
// Release must not be called.
func (g *FuncGuard[T]) Acquire() (T, error) {
	if g.state == stateSuspended || g.state == stateResumed {
		var zero T
		return zero, defErr(ErrReentered, g.serial)
	}
	h, err := g.acquire()
	if err != nil {
		var zero T
		return zero, err
	}
	g.state = stateSuspended
	return h, nil
}

// Release runs the release function with the exit signal and returns
// its outcome. Driving errors are reported as Replace outcomes with a
// distinct definition-error kind.
func (g *FuncGuard[T]) Release(exit Exit) Outcome {
	switch g.state {
	case stateFresh:
		return Replace(defErr(ErrNotAcquired, g.serial))
	case stateResumed, stateExhausted:
		return Replace(defErr(ErrExhausted, g.serial))
	}
	g.state = stateResumed
	var out Outcome
	if g.release != nil {
		out = g.release(exit)
	}
	g.state = stateExhausted
	return out
}
