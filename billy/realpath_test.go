package billy

import (
	"os"
	"path/filepath"
	"testing"
)

// The conformance suite covers the walking resolver through the in-memory
// and chrooted backends; these tests cover the native backend, whose
// resolution goes through the OS.

func TestBaseOSFSRealpath(t *testing.T) {
	fsys := NewBaseOSFS()

	t.Run("existing directory resolves to absolute path", func(t *testing.T) {
		dir := t.TempDir()
		got, err := fsys.Realpath(dir)
		if err != nil {
			t.Fatalf("Realpath(%q) returned error: %v", dir, err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("Realpath(%q) = %q, want absolute path", dir, got)
		}
	})

	t.Run("relative path resolves against working directory", func(t *testing.T) {
		got, err := fsys.Realpath(".")
		if err != nil {
			t.Fatalf("Realpath(.) returned error: %v", err)
		}
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd failed: %v", err)
		}
		want, err := filepath.EvalSymlinks(wd)
		if err != nil {
			t.Fatalf("EvalSymlinks(%q) failed: %v", wd, err)
		}
		if got != want {
			t.Errorf("Realpath(.) = %q, want %q", got, want)
		}
	})

	t.Run("symlink resolves to its target", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "target.txt")
		if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		link := filepath.Join(dir, "alias")
		if err := os.Symlink(target, link); err != nil {
			t.Fatalf("Symlink failed: %v", err)
		}

		got, err := fsys.Realpath(link)
		if err != nil {
			t.Fatalf("Realpath(%q) returned error: %v", link, err)
		}
		want, err := filepath.EvalSymlinks(target)
		if err != nil {
			t.Fatalf("EvalSymlinks(%q) failed: %v", target, err)
		}
		if got != want {
			t.Errorf("Realpath(%q) = %q, want %q", link, got, want)
		}
	})

	t.Run("missing path fails", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "absent")
		if _, err := fsys.Realpath(missing); err == nil {
			t.Errorf("Realpath(%q) = nil error, want not-exist", missing)
		}
	})
}
