// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope_test

import (
	"errors"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/scope"
)

var errBody = errors.New("body failed")

// traceFunc returns an explicit-style guard recording acquire/release
// events for name into trace.
func traceFunc(trace *[]string, name string) *scope.FuncGuard[string] {
	return scope.New(func() (string, error) {
		*trace = append(*trace, "acquire "+name)
		return name, nil
	}, func(scope.Exit) scope.Outcome {
		*trace = append(*trace, "release "+name)
		return scope.Propagate()
	})
}

// traceGen returns a generator-style guard with the same observable
// behavior as traceFunc.
func traceGen(trace *[]string, name string) *scope.GenGuard[string] {
	return scope.Gen[string](func() kont.Eff[scope.Outcome] {
		*trace = append(*trace, "acquire "+name)
		return scope.YieldBind(name, func(scope.Exit) kont.Eff[scope.Outcome] {
			*trace = append(*trace, "release "+name)
			return scope.Done(scope.Propagate())
		})
	})
}

// traceNested returns a nested-delegation guard delegating to a single
// traceFunc inner guard, again with the same observable behavior.
func traceNested(trace *[]string, name string) *scope.GenGuard[string] {
	return scope.Nested[string](func(s *scope.Stack) (string, error) {
		return scope.Enter(s, traceFunc(trace, name))
	})
}

// counterGuard increments c on acquire and decrements on release.
func counterGuard(c *int) *scope.FuncGuard[int] {
	return scope.New(func() (int, error) {
		*c++
		return *c, nil
	}, func(scope.Exit) scope.Outcome {
		*c--
		return scope.Propagate()
	})
}
