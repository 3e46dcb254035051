// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world guard definition to Expr-world.
// The resulting Expr can back a guard via [GenExpr].
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world guard definition to Cont-world.
// The resulting Eff can back a guard via [Gen].
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
