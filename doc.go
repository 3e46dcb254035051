// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scope provides scoped resource guards via algebraic effects
// on [code.hybscloud.com/kont].
//
// A guard acquires a resource, exposes a handle to a protected region,
// and releases the resource on every path out of that region. Three
// definition styles are normalized to one protocol, driven by two usage
// front-ends.
//
// # Architecture
//
//   - Protocol: [Guard] is Acquire/Release with an [Exit] signal and an [Outcome] decision (propagate, swallow, replace).
//   - Engine: generator-style definitions suspend once at [Yield]; [GenGuard] drives them through [code.hybscloud.com/kont] one-shot suspensions with an explicit Fresh/Suspended/Resumed/Exhausted state machine.
//   - Errors: definition defects ([ErrMissingYield], [ErrExhausted], ...) are reported distinctly from runtime failures, which travel through Release's Exit.
//   - Identity: guards carry monotonically increasing serials via [code.hybscloud.com/atomix].
//
// # API Topologies
//
//   - Adapters: [New] (explicit acquire/release), [Gen]/[GenExpr] (generator-style), [Nested] (nested delegation with strict reverse-order release).
//   - Cont-world: [YieldBind], [YieldSelfBind], [Done].
//   - Expr-world: Zero-allocation variants [ExprYieldBind], [ExprYieldSelfBind], [ExprDone]. Bridge via [Reify] and [Reflect].
//   - Front-ends: [With] and [Do] (scoped block), [Wrap]/[Wrap1]/[Wrap2] (decorator, one cycle per invocation).
//
// # Concurrency
//
// Guards are synchronous and single-threaded: Acquire and Release run to
// completion on the calling goroutine and hold no internal lock.
// Concurrent reuse of one guard instance by overlapping usages is caller
// responsibility. Cancellation is expressed only as a failure exit.
//
// # Example
//
//	open := scope.Gen[*os.File](func() kont.Eff[scope.Outcome] {
//		f, err := os.Open(name)
//		if err != nil {
//			return scope.Done(scope.Replace(err))
//		}
//		return scope.YieldBind(f, func(exit scope.Exit) kont.Eff[scope.Outcome] {
//			return scope.Done(scope.Replace(f.Close()))
//		})
//	})
//	err := scope.With(open, func(f *os.File) error {
//		_, err := io.Copy(dst, f)
//		return err
//	})
package scope
