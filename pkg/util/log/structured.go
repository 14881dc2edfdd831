// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// redactableIndicator separates the entry header from a message that
// still carries redaction markers.
const redactableIndicator = "⋮"

// FormatWithContextTags formats the string and prepends the context
// tags. Redaction markers are stripped.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	return renderMessage(ctx, format, args).StripMarkers()
}

// renderMessage formats the message and prepends the context tags as
// "[k1=v1,k2=v2] ". Tag values and arguments are marked unsafe unless
// their type says otherwise. Single-letter keys are written without the
// "=" so that a tag ("n", 1) renders as "n1".
func renderMessage(ctx context.Context, format string, args []interface{}) redact.RedactableString {
	var b redact.StringBuilder
	if tags := logtags.FromContext(ctx); tags != nil {
		b.SafeRune('[')
		for i, t := range tags.Get() {
			if i > 0 {
				b.SafeRune(',')
			}
			b.SafeString(redact.SafeString(t.Key()))
			if v := t.Value(); v != nil {
				if len(t.Key()) > 1 {
					b.SafeRune('=')
				}
				b.Print(v)
			}
		}
		b.SafeString("] ")
	}
	b.Printf(format, args...)
	return b.RedactableString()
}

// addStructured renders an entry and writes it to the log output. depth is
// the number of frames between the caller of interest and addStructured.
func addStructured(
	ctx context.Context, sev Severity, depth int, format string, args []interface{},
) {
	logging.mu.Lock()
	if sev < logging.mu.minSeverity {
		logging.mu.Unlock()
		return
	}
	file, line := "???", 0
	if _, f, l, ok := runtime.Caller(depth + 1); ok {
		file, line = filepath.Base(f), l
	}
	msg := renderMessage(ctx, format, args)

	var buf strings.Builder
	writeHeader(&buf, sev, file, line)
	if logging.mu.redactable {
		buf.WriteString(redactableIndicator)
		buf.WriteByte(' ')
		buf.WriteString(string(msg))
	} else {
		buf.WriteString(msg.StripMarkers())
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		buf.WriteByte('\n')
	}
	out := logging.mu.out
	_, _ = io.WriteString(out, buf.String())

	if sev != Severity_FATAL {
		logging.mu.Unlock()
		return
	}
	exit, hideStack := logging.mu.exitOverride.f, logging.mu.exitOverride.hideStack
	logging.mu.Unlock()
	exitProcess(out, exit, hideStack)
}

// writeHeader writes the entry prefix:
//
//	I261018 09:12:44.123456 main.go:42
func writeHeader(buf *strings.Builder, sev Severity, file string, line int) {
	cp := logging.mu.color
	now := logging.mu.now()
	if cp != nil {
		switch sev {
		case Severity_INFO:
			buf.Write(cp.infoPrefix)
		case Severity_WARNING:
			buf.Write(cp.warnPrefix)
		default:
			buf.Write(cp.errorPrefix)
		}
	}
	buf.WriteByte(sev.char())
	if cp != nil {
		buf.Write(colorReset)
		buf.Write(cp.timePrefix)
	}
	buf.WriteString(now.Format("060102 15:04:05.000000"))
	if cp != nil {
		buf.Write(colorReset)
	}
	fmt.Fprintf(buf, " %s:%d ", file, line)
}
