// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import (
	"code.hybscloud.com/kont"
)

// Yield is the effect operation marking the single suspension point of a
// generator-style definition. Perform(Yield[T]{Handle: h}) hands h to the
// usage front-end as the guard handle; the resumption value is the [Exit]
// signal for the release phase.
//
// The operation is resolved by the adapter that drives the definition,
// not by a kont handler: the adapter needs the suspension itself to hold
// the entry/exit boundary open between Acquire and Release.
type Yield[T any] struct {
	kont.Phantom[Exit]
	Handle T
}

// YieldSelf is the sentinel suspension point meaning "the handle is the
// guard object itself". Distinguishable from any legitimate Yield
// handle; resolved by the adapter before control returns to the
// front-end, which fails with ErrSelfHandle if the guard object does not
// satisfy the declared handle type.
type YieldSelf struct {
	kont.Phantom[Exit]
}
