// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import (
	"runtime"
	"strconv"
)

// Exit is the outcome reported to Release: a clean exit, or a failure
// exit carrying the error and its originating location. Exactly one Exit
// is delivered per successful Acquire. The zero value is a clean exit.
type Exit struct {
	err    error
	origin string
}

// CleanExit returns the clean exit signal.
func CleanExit() Exit { return Exit{} }

// FailExit returns a failure exit carrying err, with the caller's
// location as origin. A nil err yields a clean exit.
func FailExit(err error) Exit {
	return failExit(err, 2)
}

func failExit(err error, skip int) Exit {
	if err == nil {
		return Exit{}
	}
	return Exit{err: err, origin: callerOrigin(skip + 1)}
}

func callerOrigin(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return file + ":" + strconv.Itoa(line)
}

// Failed reports whether the exit carries a failure.
func (e Exit) Failed() bool { return e.err != nil }

// Err returns the failure, or nil on a clean exit.
func (e Exit) Err() error { return e.err }

// Origin returns the file:line where the failure was recorded, or ""
// for a clean exit.
func (e Exit) Origin() string { return e.origin }
