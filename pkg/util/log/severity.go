// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Severity is the importance of a log entry.
type Severity int32

const (
	Severity_UNKNOWN Severity = iota
	Severity_INFO
	Severity_WARNING
	Severity_ERROR
	Severity_FATAL
)

var severityNames = [...]string{
	Severity_UNKNOWN: "UNKNOWN",
	Severity_INFO:    "INFO",
	Severity_WARNING: "WARNING",
	Severity_ERROR:   "ERROR",
	Severity_FATAL:   "FATAL",
}

// String implements the fmt.Stringer interface.
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// SafeValue implements the redact.SafeValue interface.
func (Severity) SafeValue() {}

var _ redact.SafeValue = Severity(0)

// char returns the one-letter prefix of log lines of this severity.
func (s Severity) char() byte {
	return s.String()[0]
}

// ParseSeverity returns the severity named by s, ignoring case. Any prefix
// of the name ("W", "warn") is accepted.
func ParseSeverity(s string) (Severity, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s != "" {
		for sev := Severity_INFO; sev <= Severity_FATAL; sev++ {
			if strings.HasPrefix(sev.String(), s) {
				return sev, nil
			}
		}
	}
	return Severity_UNKNOWN, errors.Newf("unknown severity %q", s)
}
