// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/containers/pkg/cli/cliflags"
	"github.com/cockroachdb/containers/pkg/util/container/linkedlist"
	"github.com/cockroachdb/containers/pkg/util/log"
	"github.com/cockroachdb/logtags"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newListCmd(c *cliContext) *cobra.Command {
	var sortList, reverse bool
	var in, out string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Build a list, optionally sort it and save or load it",
		Long: `
Builds a list from --values, appends the elements stored in --in, sorts it
if --sort is given, and prints it front to back (or back to front with
--reverse). --out saves the resulting list.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logtags.AddTag(context.Background(), "list", nil)
			l := linkedlist.New[int64]()
			for _, v := range c.values {
				if err := l.PushBack(int64(v)); err != nil {
					return err
				}
			}
			if in != "" {
				before := l.Len()
				if err := linkedlist.ReadFile(c.fs, in, l); err != nil {
					return err
				}
				log.Infof(logtags.AddTag(ctx, "in", in), "read %d elements", l.Len()-before)
			}
			if sortList {
				linkedlist.SortOrdered(l)
			}

			// Lists loaded with --in can be long; report progress at most
			// once a second.
			progress := log.Every(time.Second)
			parts := make([]string, 0, l.Len())
			format := func(v int64) {
				if progress.ShouldLog() {
					log.Infof(ctx, "formatting element %d of %d", len(parts)+1, l.Len())
				}
				parts = append(parts, strconv.FormatInt(v, 10))
			}
			if reverse {
				for it := l.RBegin(); it.Valid(); it = it.Next() {
					format(it.Value())
				}
			} else {
				for v := range l.Values() {
					format(v)
				}
			}
			c.printf("%s\n", strings.Join(parts, " "))

			if out != "" {
				if err := linkedlist.WriteFile(c.fs, out, l); err != nil {
					return err
				}
				log.Infof(logtags.AddTag(ctx, "out", out), "wrote %s",
					humanize.IBytes(uint64(8*l.Len())))
			}
			return nil
		},
	}
	f := cmd.Flags()
	boolFlag(f, &sortList, cliflags.Sort)
	boolFlag(f, &reverse, cliflags.Reverse)
	stringFlag(f, &in, cliflags.In, "")
	stringFlag(f, &out, cliflags.Out, "")
	return cmd
}
