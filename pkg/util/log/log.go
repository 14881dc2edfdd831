// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is a small leveled logger for command-line tools. Entries
// carry the logtags found in the context and their arguments are treated
// as sensitive unless they implement redact.SafeValue or are wrapped with
// redact.Safe.
package log

import (
	"context"
	"io"
	"os"
	"sync"
	"time"
)

// logging is the process-wide logger state.
var logging struct {
	mu struct {
		sync.Mutex
		out         io.Writer
		minSeverity Severity
		redactable  bool
		color       *colorProfile
		now         func() time.Time

		exitOverride struct {
			f         func(int)
			hideStack bool
		}
	}
}

// OrigStderr is the stderr stream the process started with.
var OrigStderr = os.Stderr

func init() {
	logging.mu.out = OrigStderr
	logging.mu.minSeverity = Severity_INFO
	logging.mu.now = time.Now
	logging.mu.color = stderrColorProfile()
}

// SetOutput directs log entries to w. Entries written to anything other
// than a terminal are not colored.
func SetOutput(w io.Writer) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.out = w
	logging.mu.color = nil
	if f, ok := w.(*os.File); ok && f == OrigStderr {
		logging.mu.color = stderrColorProfile()
	}
}

// SetMinSeverity drops entries less severe than sev. FATAL entries are
// never dropped.
func SetMinSeverity(sev Severity) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.minSeverity = min(sev, Severity_FATAL)
}

// SetRedactable controls whether entries keep the markers that delimit
// sensitive information.
func SetRedactable(redactable bool) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.redactable = redactable
}

// setNow overrides the clock used to timestamp entries.
func setNow(now func() time.Time) func() {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.now
	logging.mu.now = now
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.now = prev
	}
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_INFO, 1, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_WARNING, 1, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_ERROR, 1, format, args)
}

// Fatalf logs to the FATAL severity and then exits the process with
// status 2, or calls the function installed with SetExitFunc.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, Severity_FATAL, 1, format, args)
}
