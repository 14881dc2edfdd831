// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"context"

	"github.com/cockroachdb/containers/pkg/cli/cliflags"
	"github.com/cockroachdb/containers/pkg/util/container/vector"
	"github.com/cockroachdb/containers/pkg/util/log"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newVectorCmd(c *cliContext) *cobra.Command {
	var insertAt, insertVal, eraseFrom, eraseTo int
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Build a vector, optionally insert into and erase from it",
		Long: `
Builds a vector from --values and prints it with its length and capacity.
--insert places a value at --insert-at (by default at the end), and
--erase-from/--erase-to erase a range. The vector is printed again after
the edits.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logtags.AddTag(context.Background(), "vector", nil)
			v := vector.Of(c.values...)
			c.printVector("before", v)

			flags := cmd.Flags()
			if flags.Changed(cliflags.Insert.Name) {
				at := v.Len()
				if flags.Changed(cliflags.InsertAt.Name) {
					at = insertAt
				}
				if at < 0 || at > v.Len() {
					return errors.Newf("--%s=%d outside [0,%d]",
						cliflags.InsertAt.Name, errors.Safe(at), errors.Safe(v.Len()))
				}
				if _, err := v.Insert(v.Begin().Add(at), insertVal); err != nil {
					return err
				}
				log.Infof(ctx, "inserted %d at %d", insertVal, at)
			}
			if flags.Changed(cliflags.EraseFrom.Name) {
				to := eraseFrom + 1
				if flags.Changed(cliflags.EraseTo.Name) {
					to = eraseTo
				}
				if it := v.EraseRange(v.Begin().Add(eraseFrom), v.Begin().Add(to)); it.IsNull() {
					return errors.Newf("cannot erase [%d,%d) from a vector of length %d",
						errors.Safe(eraseFrom), errors.Safe(to), errors.Safe(v.Len()))
				}
				log.Infof(ctx, "erased [%d,%d)", eraseFrom, to)
			}
			c.printVector("after", v)
			return nil
		},
	}
	f := cmd.Flags()
	intFlag(f, &insertAt, cliflags.InsertAt)
	intFlag(f, &insertVal, cliflags.Insert)
	intFlag(f, &eraseFrom, cliflags.EraseFrom)
	intFlag(f, &eraseTo, cliflags.EraseTo)
	return cmd
}

func (c *cliContext) printVector(label string, v *vector.Vector[int]) {
	c.printf("%s: %s len=%d cap=%d (%s)\n", label, v, v.Len(), v.Cap(),
		humanize.IBytes(uint64(v.AllocStats().LiveBytes)))
}
