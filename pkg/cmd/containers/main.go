// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// containers exercises the vector and list containers from the command
// line.
//
//	containers vector --values=1,2,3,4,5 --insert-at=3 --insert=70
//	containers list --values=5,1,4 --sort --out=list.bin
//	containers list --in=list.bin --reverse
package main

import (
	"context"
	"os"

	"github.com/cockroachdb/containers/pkg/util/log"
	"github.com/cockroachdb/pebble/vfs"
)

func main() {
	cmd := newRootCmd(vfs.Default, os.Stdout)
	if err := cmd.Execute(); err != nil {
		log.Errorf(context.Background(), "%v", err)
		os.Exit(1)
	}
}
