// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// SetExitFunc allows setting a function that will be called to exit
// the process when a Fatal message is generated. The supplied bool,
// if true, suppresses the stack trace, which is useful for test
// callers wishing to keep the logs reasonably clean.
//
// Call with a nil function to undo.
func SetExitFunc(hideStack bool, f func(int)) {
	logging.mu.Lock()
	defer logging.mu.Unlock()

	logging.mu.exitOverride.f = f
	logging.mu.exitOverride.hideStack = hideStack
}

// ResetExitFunc undoes any prior call to SetExitFunc.
func ResetExitFunc() {
	SetExitFunc(false, nil)
}

// exitProcess terminates the process after a fatal entry has been written
// to out. It is called with the logging lock released.
func exitProcess(out io.Writer, exit func(int), hideStack bool) {
	if !hideStack {
		fmt.Fprintf(out, "stack trace:\n%s", debug.Stack())
	}
	if exit != nil {
		exit(2)
		return
	}
	os.Exit(2)
}
