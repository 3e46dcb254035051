// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

// With drives g for the duration of body: Acquire, run body with the
// handle, Release exactly once with the appropriate exit signal on every
// path out of body, including panic. A swallowed failure is discarded
// and With returns nil; otherwise the original or replacement failure is
// returned. On acquisition failure body does not run and Release is not
// called.
func With[T any](g Guard[T], body func(T) error) error {
	_, err := run(g, func(h T) (struct{}, error) {
		return struct{}{}, body(h)
	}, callerOrigin(2))
	return err
}

// Do is the value-returning scoped-block form of [With].
func Do[T, R any](g Guard[T], body func(T) (R, error)) (R, error) {
	return run(g, body, callerOrigin(2))
}

// Wrap decorates a callable so that each invocation performs one
// independent acquire/release cycle around it, returning the callable's
// result on clean completion. The wrapper has the wrapped callable's
// exact type-level signature; runtime metadata (the name reported by
// reflection) is not preserved, which callers needing introspection must
// supply themselves.
func Wrap[T, R any](g Guard[T], fn func() (R, error)) func() (R, error) {
	return func() (R, error) {
		return run(g, func(T) (R, error) { return fn() }, callerOrigin(2))
	}
}

// Wrap1 is [Wrap] for single-argument callables.
func Wrap1[T, A, R any](g Guard[T], fn func(A) (R, error)) func(A) (R, error) {
	return func(a A) (R, error) {
		return run(g, func(T) (R, error) { return fn(a) }, callerOrigin(2))
	}
}

// Wrap2 is [Wrap] for two-argument callables.
func Wrap2[T, A, B, R any](g Guard[T], fn func(A, B) (R, error)) func(A, B) (R, error) {
	return func(a A, b B) (R, error) {
		return run(g, func(T) (R, error) { return fn(a, b) }, callerOrigin(2))
	}
}

// run performs one acquire/body/release cycle. origin is the caller
// location recorded on failure exits.
func run[T, R any](g Guard[T], body func(T) (R, error), origin string) (R, error) {
	var zero R
	h, err := g.Acquire()
	if err != nil {
		return zero, err
	}

	var (
		result    R
		exit      Exit
		recovered any
		panicked  bool
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked, recovered = true, r
				exit = Exit{err: &PanicError{Value: r}, origin: origin}
			}
		}()
		var berr error
		result, berr = body(h)
		if berr != nil {
			exit = Exit{err: berr, origin: origin}
		}
	}()

	out := g.Release(exit)
	if out.Swallows() {
		if exit.Failed() {
			return zero, nil
		}
		return result, nil
	}
	if rerr, ok := out.Replacement(); ok {
		return zero, rerr
	}
	if panicked {
		panic(recovered)
	}
	if exit.Failed() {
		return zero, exit.Err()
	}
	return result, nil
}
