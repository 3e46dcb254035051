// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/scope"
)

func TestWithHandleVisible(t *testing.T) {
	g := scope.New(func() (string, error) { return "handle", nil }, nil)

	var got string
	if err := scope.With(g, func(h string) error {
		got = h
		return nil
	}); err != nil {
		t.Fatalf("With error: %v", err)
	}
	if got != "handle" {
		t.Fatalf("handle got %q, want %q", got, "handle")
	}
}

func TestDoReturnsValue(t *testing.T) {
	g := scope.New(func() (int, error) { return 21, nil }, nil)

	v, err := scope.Do(g, func(h int) (int, error) { return h * 2, nil })
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestWithBodyFailureAfterCleanup(t *testing.T) {
	var trace []string
	g := traceFunc(&trace, "r")

	err := scope.With(g, func(string) error { return errBody })
	if !errors.Is(err, errBody) {
		t.Fatalf("got %v, want %v", err, errBody)
	}
	// cleanup deterministically ran before the failure surfaced
	assertTrace(t, trace, []string{"acquire r", "release r"})
}

func TestWithPanicReleasesAndRepanics(t *testing.T) {
	var trace []string
	var seen scope.Exit
	g := scope.New(func() (string, error) {
		trace = append(trace, "acquire")
		return "h", nil
	}, func(exit scope.Exit) scope.Outcome {
		trace = append(trace, "release")
		seen = exit
		return scope.Propagate()
	})

	defer func() {
		r := recover()
		if r != "boom" {
			t.Fatalf("recovered %v, want %q", r, "boom")
		}
		assertTrace(t, trace, []string{"acquire", "release"})
		var pe *scope.PanicError
		if !errors.As(seen.Err(), &pe) {
			t.Fatalf("release saw %v, want *PanicError", seen.Err())
		}
		if pe.Value != "boom" {
			t.Fatalf("panic value got %v, want %q", pe.Value, "boom")
		}
	}()
	scope.With(g, func(string) error { panic("boom") })
	t.Fatal("unreachable")
}

func TestWithPanicSwallowed(t *testing.T) {
	g := scope.New(func() (string, error) { return "h", nil },
		func(scope.Exit) scope.Outcome { return scope.Swallow() })

	if err := scope.With(g, func(string) error { panic("boom") }); err != nil {
		t.Fatalf("swallowed panic surfaced: %v", err)
	}
}

func TestWrapIndependentCycles(t *testing.T) {
	c := 0
	g := counterGuard(&c)
	calls := 0

	wrapped := scope.Wrap(g, func() (int, error) {
		calls++
		if c != 1 {
			t.Fatalf("call %d: counter got %d, want 1", calls, c)
		}
		return calls, nil
	})

	for i := 1; i <= 2; i++ {
		v, err := wrapped()
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if v != i {
			t.Fatalf("call %d got %d", i, v)
		}
		if c != 0 {
			t.Fatalf("call %d: residual counter %d", i, c)
		}
	}
}

func TestWrap1(t *testing.T) {
	c := 0
	g := counterGuard(&c)

	double := scope.Wrap1(g, func(n int) (int, error) { return n * 2, nil })
	v, err := double(21)
	if err != nil {
		t.Fatalf("wrapped call error: %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
	if c != 0 {
		t.Fatalf("residual counter %d", c)
	}
}

func TestWrap2(t *testing.T) {
	c := 0
	g := counterGuard(&c)

	join := scope.Wrap2(g, func(a, b string) (string, error) {
		return fmt.Sprintf("%s:%s", a, b), nil
	})
	v, err := join("x", "y")
	if err != nil {
		t.Fatalf("wrapped call error: %v", err)
	}
	if v != "x:y" {
		t.Fatalf("got %q, want %q", v, "x:y")
	}
}

func TestWrapFailurePropagates(t *testing.T) {
	c := 0
	g := counterGuard(&c)

	failing := scope.Wrap(g, func() (int, error) { return 0, errBody })
	if _, err := failing(); !errors.Is(err, errBody) {
		t.Fatalf("got %v, want %v", err, errBody)
	}
	if c != 0 {
		t.Fatalf("residual counter %d", c)
	}
}

func TestOpenCounterBalance(t *testing.T) {
	c := 0
	g := counterGuard(&c)

	for i := 0; i < 100; i++ {
		fail := i%2 == 0
		err := scope.With(g, func(int) error {
			if fail {
				return errBody
			}
			return nil
		})
		if fail != (err != nil) {
			t.Fatalf("usage %d: err %v, fail %v", i, err, fail)
		}
		if c != 0 {
			t.Fatalf("usage %d: counter %d, want 0", i, c)
		}
	}
}

func TestWithSwallowOnCleanExitKeepsResult(t *testing.T) {
	// A release that swallows on a clean exit has nothing to discard.
	g := scope.Gen[int](func() kont.Eff[scope.Outcome] {
		return scope.YieldBind(1, func(scope.Exit) kont.Eff[scope.Outcome] {
			return scope.Done(scope.Swallow())
		})
	})

	v, err := scope.Do(g, func(int) (string, error) { return "kept", nil })
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if v != "kept" {
		t.Fatalf("got %q, want %q", v, "kept")
	}
}
