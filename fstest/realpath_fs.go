package fstest

import (
	"os"
	"testing"

	filemethod "github.com/abskihDDloh/file-method"
)

// TestSymlinkFS tests symlink creation and metadata: Symlink, Lstat,
// Readlink, and link-following Stat.
func TestSymlinkFS(t *testing.T, filesystem filemethod.Filesystem) {
	if err := filesystem.MkdirAll("/links", 0o755); err != nil {
		t.Fatalf("MkdirAll(/links): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("/links/target.txt", []byte("payload"), 0o644); err != nil {
		t.Fatalf("WriteFile(/links/target.txt): setup failed: %v", err)
	}
	if err := filesystem.Symlink("target.txt", "/links/alias"); err != nil {
		t.Fatalf("Symlink(/links/alias): setup failed: %v", err)
	}

	t.Run("LstatReportsLink", func(t *testing.T) {
		info, err := filesystem.Lstat("/links/alias")
		if err != nil {
			t.Errorf("Lstat(%q): got error %v, want nil", "/links/alias", err)
			return
		}
		if info.Mode()&os.ModeSymlink == 0 {
			t.Errorf("Lstat(): mode = %v, want symlink", info.Mode())
		}
	})

	t.Run("ReadlinkReportsTarget", func(t *testing.T) {
		target, err := filesystem.Readlink("/links/alias")
		if err != nil {
			t.Errorf("Readlink(%q): got error %v, want nil", "/links/alias", err)
			return
		}
		if target != "target.txt" {
			t.Errorf("Readlink() = %q, want %q", target, "target.txt")
		}
	})

	t.Run("StatFollowsLink", func(t *testing.T) {
		info, err := filesystem.Stat("/links/alias")
		if err != nil {
			t.Errorf("Stat(%q): got error %v, want nil", "/links/alias", err)
			return
		}
		if !info.Mode().IsRegular() {
			t.Errorf("Stat(): mode = %v, want regular file", info.Mode())
		}
	})
}

// TestRealpathFS tests canonical path resolution: clean paths, dot
// segments, symlink expansion, and the failure cases.
func TestRealpathFS(t *testing.T, filesystem filemethod.Filesystem) {
	if err := filesystem.MkdirAll("/real/inner", 0o755); err != nil {
		t.Fatalf("MkdirAll(/real/inner): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("/real/inner/file.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(/real/inner/file.txt): setup failed: %v", err)
	}

	t.Run("CleanPath", func(t *testing.T) {
		got, err := filesystem.Realpath("/real/inner/file.txt")
		if err != nil {
			t.Errorf("Realpath(): got error %v, want nil", err)
			return
		}
		if got != "/real/inner/file.txt" {
			t.Errorf("Realpath() = %q, want %q", got, "/real/inner/file.txt")
		}
	})

	t.Run("DotSegments", func(t *testing.T) {
		got, err := filesystem.Realpath("/real/./inner/../inner/file.txt")
		if err != nil {
			t.Errorf("Realpath(): got error %v, want nil", err)
			return
		}
		if got != "/real/inner/file.txt" {
			t.Errorf("Realpath() = %q, want %q", got, "/real/inner/file.txt")
		}
	})

	t.Run("SymlinkToFile", func(t *testing.T) {
		if err := filesystem.Symlink("inner/file.txt", "/real/shortcut"); err != nil {
			t.Fatalf("Symlink(/real/shortcut): setup failed: %v", err)
		}
		got, err := filesystem.Realpath("/real/shortcut")
		if err != nil {
			t.Errorf("Realpath(): got error %v, want nil", err)
			return
		}
		if got != "/real/inner/file.txt" {
			t.Errorf("Realpath() = %q, want %q", got, "/real/inner/file.txt")
		}
	})

	t.Run("SymlinkChain", func(t *testing.T) {
		if err := filesystem.Symlink("shortcut", "/real/hop"); err != nil {
			t.Fatalf("Symlink(/real/hop): setup failed: %v", err)
		}
		got, err := filesystem.Realpath("/real/hop")
		if err != nil {
			t.Errorf("Realpath(): got error %v, want nil", err)
			return
		}
		if got != "/real/inner/file.txt" {
			t.Errorf("Realpath() = %q, want %q", got, "/real/inner/file.txt")
		}
	})

	t.Run("DotDotAfterSymlink", func(t *testing.T) {
		if err := filesystem.MkdirAll("/other", 0o755); err != nil {
			t.Fatalf("MkdirAll(/other): setup failed: %v", err)
		}
		if err := filesystem.Symlink("/real/inner", "/other/dirlink"); err != nil {
			t.Fatalf("Symlink(/other/dirlink): setup failed: %v", err)
		}
		// ".." must apply to the resolved target, not to the link's parent:
		// a lexical resolution would look under /other and fail.
		got, err := filesystem.Realpath("/other/dirlink/../inner/file.txt")
		if err != nil {
			t.Errorf("Realpath(): got error %v, want nil", err)
			return
		}
		if got != "/real/inner/file.txt" {
			t.Errorf("Realpath() = %q, want %q", got, "/real/inner/file.txt")
		}
	})

	t.Run("NotExist", func(t *testing.T) {
		if _, err := filesystem.Realpath("/real/absent"); err == nil {
			t.Errorf("Realpath(): got nil error, want not-exist")
		}
	})

	t.Run("BrokenLink", func(t *testing.T) {
		if err := filesystem.Symlink("absent", "/real/dangling"); err != nil {
			t.Fatalf("Symlink(/real/dangling): setup failed: %v", err)
		}
		if _, err := filesystem.Realpath("/real/dangling"); err == nil {
			t.Errorf("Realpath(): got nil error, want broken-link failure")
		}
	})

	t.Run("LinkLoop", func(t *testing.T) {
		if err := filesystem.Symlink("loopB", "/real/loopA"); err != nil {
			t.Fatalf("Symlink(/real/loopA): setup failed: %v", err)
		}
		if err := filesystem.Symlink("loopA", "/real/loopB"); err != nil {
			t.Fatalf("Symlink(/real/loopB): setup failed: %v", err)
		}
		if _, err := filesystem.Realpath("/real/loopA"); err == nil {
			t.Errorf("Realpath(): got nil error, want loop failure")
		}
	})
}
