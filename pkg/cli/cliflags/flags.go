// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cliflags holds the names, environment variables and help text of
// the command-line flags of the containers tool.
package cliflags

import (
	"fmt"
	"strings"
)

// FlagInfo contains the static information for a CLI flag and helper
// to format the description.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// can also be set. It is used when the flag is not given on the
	// command line.
	EnvVar string

	// Description of the flag.
	Description string
}

// Usage returns a formatted usage string for the flag.
func (f FlagInfo) Usage() string {
	s := strings.TrimSpace(f.Description)
	if f.EnvVar != "" {
		s = fmt.Sprintf("%s\nEnvironment variable: %s", s, f.EnvVar)
	}
	return s
}

// Flags shared by all subcommands.
var (
	LogLevel = FlagInfo{
		Name:        "log-level",
		EnvVar:      "CONTAINERS_LOG_LEVEL",
		Description: `Minimum severity of log entries written to stderr (info, warning, error, fatal).`,
	}

	RedactableLogs = FlagInfo{
		Name:        "redactable-logs",
		EnvVar:      "CONTAINERS_REDACTABLE_LOGS",
		Description: `Keep the markers around sensitive data in log entries.`,
	}

	NoColor = FlagInfo{
		Name:        "no-color",
		Description: `Disable colored log output.`,
	}

	Values = FlagInfo{
		Name:        "values",
		Shorthand:   "v",
		EnvVar:      "CONTAINERS_VALUES",
		Description: `Comma-separated list of integers the container starts with.`,
	}
)

// Flags of the vector subcommand.
var (
	InsertAt = FlagInfo{
		Name:        "insert-at",
		Description: `Position at which --insert places its value. Defaults to the end.`,
	}

	Insert = FlagInfo{
		Name:        "insert",
		Description: `Value to insert into the vector.`,
	}

	EraseFrom = FlagInfo{
		Name:        "erase-from",
		Description: `First position of the range to erase.`,
	}

	EraseTo = FlagInfo{
		Name:        "erase-to",
		Description: `Position one past the end of the range to erase. Defaults to --erase-from plus one.`,
	}
)

// Flags of the list subcommand.
var (
	Sort = FlagInfo{
		Name:        "sort",
		Description: `Sort the list in non-decreasing order.`,
	}

	Reverse = FlagInfo{
		Name:        "reverse",
		Description: `Print the list back to front.`,
	}

	In = FlagInfo{
		Name: "in",
		Description: `Binary file whose elements are appended to the list. The file holds
little-endian 64-bit integers.`,
	}

	Out = FlagInfo{
		Name:        "out",
		Description: `Binary file the list is written to, in the format read by --in.`,
	}
)
