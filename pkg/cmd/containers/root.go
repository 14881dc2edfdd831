// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/containers/pkg/cli/cliflags"
	"github.com/cockroachdb/containers/pkg/util/log"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cliContext is the state shared by the subcommands.
type cliContext struct {
	fs  vfs.FS
	out io.Writer

	logLevel       string
	redactableLogs bool
	noColor        bool
	values         []int
}

func newRootCmd(fs vfs.FS, out io.Writer) *cobra.Command {
	c := &cliContext{fs: fs, out: out}
	rootCmd := &cobra.Command{
		Use:           "containers",
		Short:         "Exercise the vector and list containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyEnv(cmd.Flags(),
				cliflags.LogLevel, cliflags.RedactableLogs, cliflags.Values); err != nil {
				return err
			}
			return c.setupLogging()
		},
	}
	rootCmd.SetOut(out)

	pf := rootCmd.PersistentFlags()
	stringFlag(pf, &c.logLevel, cliflags.LogLevel, "info")
	boolFlag(pf, &c.redactableLogs, cliflags.RedactableLogs)
	boolFlag(pf, &c.noColor, cliflags.NoColor)
	pf.IntSliceVarP(&c.values, cliflags.Values.Name, cliflags.Values.Shorthand, nil, cliflags.Values.Usage())

	rootCmd.AddCommand(newVectorCmd(c), newListCmd(c))
	return rootCmd
}

func (c *cliContext) setupLogging() error {
	sev, err := log.ParseSeverity(c.logLevel)
	if err != nil {
		return errors.Wrapf(err, "--%s", cliflags.LogLevel.Name)
	}
	log.SetMinSeverity(sev)
	log.SetRedactable(c.redactableLogs)
	if c.noColor {
		log.DisableColor()
	}
	return nil
}

func (c *cliContext) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func stringFlag(f *pflag.FlagSet, p *string, info cliflags.FlagInfo, def string) {
	f.StringVarP(p, info.Name, info.Shorthand, def, info.Usage())
}

func boolFlag(f *pflag.FlagSet, p *bool, info cliflags.FlagInfo) {
	f.BoolVarP(p, info.Name, info.Shorthand, false, info.Usage())
}

func intFlag(f *pflag.FlagSet, p *int, info cliflags.FlagInfo) {
	f.IntVarP(p, info.Name, info.Shorthand, 0, info.Usage())
}

// applyEnv sets every flag that was not given on the command line from its
// environment variable, if that is set.
func applyEnv(f *pflag.FlagSet, infos ...cliflags.FlagInfo) error {
	for _, info := range infos {
		if info.EnvVar == "" || f.Changed(info.Name) {
			continue
		}
		v, ok := os.LookupEnv(info.EnvVar)
		if !ok {
			continue
		}
		if err := f.Set(info.Name, v); err != nil {
			return errors.Wrapf(err, "%s", info.EnvVar)
		}
	}
	return nil
}
