/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs

import (
	"errors"
	"io/fs"
	"testing"
)

func TestMapFileSystem(t *testing.T) {
	mfs := New()
	mfs.AddFile("/project/.config/adorable.yaml", "prefix: rh\n", 0644)

	t.Run("read", func(t *testing.T) {
		data, err := mfs.ReadFile("/project/.config/adorable.yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "prefix: rh\n" {
			t.Errorf("unexpected content %q", data)
		}
	})

	t.Run("unclean path", func(t *testing.T) {
		if !mfs.Exists("/project/./sub/../.config/adorable.yaml") {
			t.Error("expected cleaned path to exist")
		}
	})

	t.Run("directories are implied", func(t *testing.T) {
		if mfs.Exists("/project/.config") {
			t.Error("directories should not report as existing files")
		}
		info, err := mfs.Stat("/project/.config")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !info.IsDir() {
			t.Error("expected directory")
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := mfs.ReadFile("/project/missing.yaml")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("walk", func(t *testing.T) {
		var files []string
		err := fs.WalkDir(mfs, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 1 || files[0] != "project/.config/adorable.yaml" {
			t.Errorf("unexpected files %v", files)
		}
	})
}
