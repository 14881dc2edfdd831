// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linkedlist

import (
	"bytes"
	"encoding/binary"
	"io"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble/vfs"
)

// ErrNotFixedSize is returned when persisting a list whose element type has
// no fixed-size binary encoding.
var ErrNotFixedSize = errors.New("element type has no fixed-size encoding")

func elemSize[T any]() (int, error) {
	var zero T
	size := binary.Size(zero)
	if size <= 0 || !settable(reflect.TypeOf(&zero).Elem()) {
		return 0, errors.Wrapf(ErrNotFixedSize, "%T", zero)
	}
	return size, nil
}

// settable returns false if decoding into t would have to set an unexported
// struct field. binary.Read skips blank fields.
func settable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return settable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Name == "_" {
				continue
			}
			if !f.IsExported() || !settable(f.Type) {
				return false
			}
		}
	}
	return true
}

// WriteFile writes the elements of l to the named file, front to back, as
// the concatenation of their little-endian encodings. The file is created
// or truncated and synced before it is closed.
//
// T must have a fixed-size encoding in the sense of encoding/binary, i.e.
// int64 rather than int, and its struct fields must be exported.
func WriteFile[T any](fs vfs.FS, name string, l *List[T]) (err error) {
	size, err := elemSize[T]()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.Grow(size * l.size)
	for v := range l.Values() {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			return errors.Wrapf(err, "encoding list element")
		}
	}

	f, err := fs.Create(name, vfs.WriteCategoryUnspecified)
	if err != nil {
		return errors.Wrapf(err, "creating %s", name)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "closing %s", name)
		}
	}()
	if _, err := f.Write(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	return errors.Wrapf(f.Sync(), "syncing %s", name)
}

// ReadFile decodes the elements stored in the named file by WriteFile and
// appends them to l. A file whose length is not a multiple of the element
// size is rejected before l is modified.
func ReadFile[T any](fs vfs.FS, name string, l *List[T]) error {
	size, err := elemSize[T]()
	if err != nil {
		return err
	}
	f, err := fs.Open(name)
	if err != nil {
		return errors.Wrapf(err, "opening %s", name)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	if len(b)%size != 0 {
		return errors.Newf("%s: length %d is not a multiple of the element size %d",
			name, errors.Safe(len(b)), errors.Safe(size))
	}
	r := bytes.NewReader(b)
	for r.Len() > 0 {
		var v T
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return errors.Wrapf(err, "decoding %s", name)
		}
		if err := l.PushBack(v); err != nil {
			return err
		}
	}
	return nil
}
