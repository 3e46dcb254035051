// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import (
	"code.hybscloud.com/kont"
)

// YieldBind yields h as the guard handle and passes the exit signal to
// cleanup on resumption.
// Fuses Perform(Yield[T]{Handle: h}) + Bind.
func YieldBind[T any](h T, cleanup func(Exit) kont.Eff[Outcome]) kont.Eff[Outcome] {
	return kont.Bind(kont.Perform(Yield[T]{Handle: h}), cleanup)
}

// YieldSelfBind yields the guard object itself as the handle and passes
// the exit signal to cleanup on resumption.
// Fuses Perform(YieldSelf{}) + Bind.
func YieldSelfBind(cleanup func(Exit) kont.Eff[Outcome]) kont.Eff[Outcome] {
	return kont.Bind(kont.Perform(YieldSelf{}), cleanup)
}

// Done finishes a definition phase with the given release outcome.
// Before the suspension point, Done(Replace(err)) aborts acquisition
// with err.
func Done(o Outcome) kont.Eff[Outcome] {
	return kont.Pure(o)
}
