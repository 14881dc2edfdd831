// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

// captureLog redirects the log to a buffer for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	SetOutput(&buf)
	restore := setNow(func() time.Time {
		return time.Date(2026, 10, 18, 9, 12, 44, 123456000, time.UTC)
	})
	t.Cleanup(func() {
		restore()
		SetOutput(OrigStderr)
		SetMinSeverity(Severity_INFO)
		SetRedactable(false)
		ResetExitFunc()
	})
	return &buf
}

func TestEntryFormat(t *testing.T) {
	buf := captureLog(t)
	ctx := logtags.AddTag(context.Background(), "n", 1)
	ctx = logtags.AddTag(ctx, "cmd", "vector")
	Infof(ctx, "size %d, capacity %d", 3, 5)

	line := buf.String()
	require.True(t, strings.HasPrefix(line, "I261018 09:12:44.123456 log_test.go:"), line)
	require.True(t, strings.HasSuffix(line, " [n1,cmd=vector] size 3, capacity 5\n"), line)
}

func TestSeverityFilter(t *testing.T) {
	buf := captureLog(t)
	ctx := context.Background()
	SetMinSeverity(Severity_WARNING)
	Infof(ctx, "dropped")
	Warningf(ctx, "kept")
	Errorf(ctx, "also kept")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, byte('W'), lines[0][0])
	require.Equal(t, byte('E'), lines[1][0])
}

func TestRedactable(t *testing.T) {
	buf := captureLog(t)
	ctx := context.Background()

	Infof(ctx, "value %s, size %d", "secret", redact.Safe(3))
	require.Contains(t, buf.String(), " value secret, size 3\n")
	buf.Reset()

	SetRedactable(true)
	Infof(ctx, "value %s, size %d", "secret", redact.Safe(3))
	require.Contains(t, buf.String(), " ⋮ value ‹secret›, size 3\n")
}

func TestFatal(t *testing.T) {
	buf := captureLog(t)
	var code int
	SetExitFunc(true /* hideStack */, func(c int) { code = c })
	Fatalf(context.Background(), "boom")
	require.Equal(t, 2, code)
	require.True(t, strings.HasPrefix(buf.String(), "F"))
	require.NotContains(t, buf.String(), "stack trace")

	// FATAL entries survive any severity filter.
	buf.Reset()
	SetMinSeverity(Severity_FATAL + 1)
	SetExitFunc(false, func(c int) { code = c + 1 })
	Fatalf(context.Background(), "boom")
	require.Equal(t, 3, code)
	require.Contains(t, buf.String(), "stack trace")
}

func TestFormatWithContextTags(t *testing.T) {
	ctx := logtags.AddTag(context.Background(), "file", "/tmp/x")
	require.Equal(t, "[file=/tmp/x] read 3 elements",
		FormatWithContextTags(ctx, "read %d elements", 3))
	require.Equal(t, "plain", FormatWithContextTags(context.Background(), "plain"))
}

func TestParseSeverity(t *testing.T) {
	for in, exp := range map[string]Severity{
		"info": Severity_INFO, "W": Severity_WARNING, "Error": Severity_ERROR, "fatal": Severity_FATAL,
	} {
		sev, err := ParseSeverity(in)
		require.NoError(t, err)
		require.Equal(t, exp, sev)
	}
	_, err := ParseSeverity("loud")
	require.Error(t, err)
	_, err = ParseSeverity("")
	require.Error(t, err)
}

func TestEveryN(t *testing.T) {
	start := time.Now()
	e := Every(time.Minute)
	for _, tc := range []struct {
		offset time.Duration
		exp    bool
	}{
		{0, true},
		{time.Second, false},
		{time.Minute - 1, false},
		{time.Minute, true},
		{time.Minute + time.Second, false},
		{3 * time.Minute, true},
	} {
		require.Equal(t, tc.exp, e.shouldLog(start.Add(tc.offset)), "%s", tc.offset)
	}
}

func TestColorProfileForTerm(t *testing.T) {
	require.Equal(t, colorProfile256, colorProfileForTerm("xterm-256color"))
	require.Equal(t, colorProfile8, colorProfileForTerm("screen"))
	require.Nil(t, colorProfileForTerm("dumb"))
}
