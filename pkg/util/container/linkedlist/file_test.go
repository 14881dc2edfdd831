// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linkedlist

import (
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/oserror"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/require"
)

func TestWriteReadFile(t *testing.T) {
	fs := vfs.NewMem()
	l := Of[int64](7, -1, 1<<40, 0)
	require.NoError(t, WriteFile(fs, "list.bin", l))

	f, err := fs.Open("list.bin")
	require.NoError(t, err)
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Len(t, b, 4*8)
	require.Equal(t, []byte{7, 0, 0, 0, 0, 0, 0, 0}, b[:8])
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, b[8:16])

	// Reading appends to whatever the list already holds.
	out := Of[int64](42)
	require.NoError(t, ReadFile(fs, "list.bin", out))
	require.Equal(t, []int64{42, 7, -1, 1 << 40, 0}, values(out))

	// Rewriting truncates.
	require.NoError(t, WriteFile(fs, "list.bin", Of[int64](5)))
	out.Clear()
	require.NoError(t, ReadFile(fs, "list.bin", out))
	require.Equal(t, []int64{5}, values(out))
}

func TestWriteReadStructs(t *testing.T) {
	type point struct {
		X, Y int32
	}
	fs := vfs.NewMem()
	l := Of(point{1, 2}, point{-3, 4})
	require.NoError(t, WriteFile(fs, "points", l))
	out := New[point]()
	require.NoError(t, ReadFile(fs, "points", out))
	require.True(t, Equal(l, out))
}

func TestReadFileErrors(t *testing.T) {
	fs := vfs.NewMem()

	err := ReadFile(fs, "missing", New[int64]())
	require.Error(t, err)
	require.True(t, oserror.IsNotExist(err), "%v", err)

	f, err := fs.Create("short", vfs.WriteCategoryUnspecified)
	require.NoError(t, err)
	_, err = f.Write([]byte{1, 0, 0, 0, 2})
	require.NoError(t, err)
	require.NoError(t, f.Close())
	l := Of[int32](9)
	require.Error(t, ReadFile(fs, "short", l))
	require.Equal(t, []int32{9}, values(l))

	require.True(t, errors.Is(WriteFile(fs, "ints", Of(1, 2)), ErrNotFixedSize))
	require.True(t, errors.Is(ReadFile(fs, "short", New[string]()), ErrNotFixedSize))
}

func TestUnexportedFieldsRejected(t *testing.T) {
	type point struct {
		x, y int32
	}
	type wrapped struct {
		P [2]point
	}
	fs := vfs.NewMem()
	require.True(t, errors.Is(WriteFile(fs, "points", Of(point{1, 2})), ErrNotFixedSize))
	require.True(t, errors.Is(WriteFile(fs, "wrapped", New[wrapped]()), ErrNotFixedSize))

	// A file written with the same layout through an exported type.
	type exported struct {
		X, Y int32
	}
	require.NoError(t, WriteFile(fs, "points", Of(exported{1, 2})))
	l := Of(point{5, 6})
	require.True(t, errors.Is(ReadFile(fs, "points", l), ErrNotFixedSize))
	require.Equal(t, []point{{5, 6}}, values(l))

	type padded struct {
		A int32
		_ int32
	}
	require.NoError(t, WriteFile(fs, "padded", Of(padded{A: 3})))
	out := New[padded]()
	require.NoError(t, ReadFile(fs, "padded", out))
	require.Equal(t, int32(3), out.Front().A)
}
