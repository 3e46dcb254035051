// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased operation to eliminate heap escapes when boxing
// the empty YieldSelf struct into any during Expr-world construction.
var exprYieldSelf kont.Erased = YieldSelf{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func yieldBindUnwind(data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(Exit) kont.Expr[Outcome])
	result := f(current.(Exit))
	return kont.Erased(result.Value), result.Frame
}

// ExprYieldBind yields h as the guard handle and passes the exit signal
// to cleanup on resumption.
// Fuses ExprPerform(Yield[T]{Handle: h}) + ExprBind.
func ExprYieldBind[T any](h T, cleanup func(Exit) kont.Expr[Outcome]) kont.Expr[Outcome] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = cleanup
	bf.Unwind = yieldBindUnwind
	ef := kont.AcquireEffectFrame()
	ef.Operation = Yield[T]{Handle: h}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[Outcome](ef)
}

// ExprYieldSelfBind yields the guard object itself as the handle and
// passes the exit signal to cleanup on resumption.
// Fuses ExprPerform(YieldSelf{}) + ExprBind.
func ExprYieldSelfBind(cleanup func(Exit) kont.Expr[Outcome]) kont.Expr[Outcome] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = cleanup
	bf.Unwind = yieldBindUnwind
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprYieldSelf
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[Outcome](ef)
}

// ExprDone finishes a definition phase with the given release outcome.
// Before the suspension point, ExprDone(Replace(err)) aborts acquisition
// with err.
func ExprDone(o Outcome) kont.Expr[Outcome] {
	return kont.ExprReturn(o)
}
