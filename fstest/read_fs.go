package fstest

import (
	"errors"
	"io"
	"testing"

	filemethod "github.com/abskihDDloh/file-method"
)

// TestReadFS tests the read-side operations: Stat, ReadDir, Open, plus the
// write-side fixture operations the suite itself relies on.
func TestReadFS(t *testing.T, filesystem filemethod.Filesystem) {
	testContent := []byte("test file content")

	if err := filesystem.MkdirAll("/testdir", 0o755); err != nil {
		t.Fatalf("MkdirAll(/testdir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("/testdir/testfile.txt", testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(/testdir/testfile.txt): setup failed: %v", err)
	}

	t.Run("StatFile", func(t *testing.T) {
		testReadFSStatFile(t, filesystem, testContent)
	})
	t.Run("StatDir", func(t *testing.T) {
		testReadFSStatDir(t, filesystem)
	})
	t.Run("StatNotExist", func(t *testing.T) {
		testReadFSStatNotExist(t, filesystem)
	})
	t.Run("ReadDir", func(t *testing.T) {
		testReadFSReadDir(t, filesystem)
	})
	t.Run("OpenRead", func(t *testing.T) {
		testReadFSOpenRead(t, filesystem, testContent)
	})
	t.Run("Remove", func(t *testing.T) {
		testReadFSRemove(t, filesystem)
	})
}

// testReadFSStatFile tests Stat() on an existing regular file.
func testReadFSStatFile(t *testing.T, filesystem filemethod.Filesystem, testContent []byte) {
	info, err := filesystem.Stat("/testdir/testfile.txt")
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", "/testdir/testfile.txt", err)
		return
	}
	if !info.Mode().IsRegular() {
		t.Errorf("Stat(): mode = %v, want regular file", info.Mode())
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("Stat(): size = %d, want %d", info.Size(), len(testContent))
	}
}

// testReadFSStatDir tests Stat() on an existing directory.
func testReadFSStatDir(t *testing.T, filesystem filemethod.Filesystem) {
	info, err := filesystem.Stat("/testdir")
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", "/testdir", err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Stat(): IsDir() = false, want true")
	}
}

// testReadFSStatNotExist tests that Stat() on a missing path fails.
func testReadFSStatNotExist(t *testing.T, filesystem filemethod.Filesystem) {
	if _, err := filesystem.Stat("/testdir/no-such-entry"); err == nil {
		t.Errorf("Stat(%q): got nil error, want not-exist", "/testdir/no-such-entry")
	}
}

// testReadFSReadDir tests ReadDir() listing of immediate entries.
func testReadFSReadDir(t *testing.T, filesystem filemethod.Filesystem) {
	if err := filesystem.WriteFile("/testdir/second.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(/testdir/second.txt): setup failed: %v", err)
	}

	entries, err := filesystem.ReadDir("/testdir")
	if err != nil {
		t.Errorf("ReadDir(%q): got error %v, want nil", "/testdir", err)
		return
	}
	names := make(map[string]bool, len(entries))
	for _, entry := range entries {
		names[entry.Name()] = true
	}
	if !names["testfile.txt"] || !names["second.txt"] {
		t.Errorf("ReadDir(): entries = %v, want testfile.txt and second.txt", names)
	}
}

// testReadFSOpenRead tests Open() followed by a full read.
func testReadFSOpenRead(t *testing.T, filesystem filemethod.Filesystem, testContent []byte) {
	f, err := filesystem.Open("/testdir/testfile.txt")
	if err != nil {
		t.Errorf("Open(%q): got error %v, want nil", "/testdir/testfile.txt", err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	data := make([]byte, len(testContent))
	n, err := f.Read(data)
	if err != nil && !errors.Is(err, io.EOF) {
		t.Errorf("Read(): got error %v, want nil or EOF", err)
		return
	}
	if n != len(testContent) {
		t.Errorf("Read(): read %d bytes, want %d", n, len(testContent))
	}
	if string(data) != string(testContent) {
		t.Errorf("Read(): got %q, want %q", string(data), string(testContent))
	}
}

// testReadFSRemove tests Remove() of a regular file.
func testReadFSRemove(t *testing.T, filesystem filemethod.Filesystem) {
	if err := filesystem.WriteFile("/testdir/doomed.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(/testdir/doomed.txt): setup failed: %v", err)
	}
	if err := filesystem.Remove("/testdir/doomed.txt"); err != nil {
		t.Errorf("Remove(%q): got error %v, want nil", "/testdir/doomed.txt", err)
		return
	}
	if _, err := filesystem.Stat("/testdir/doomed.txt"); err == nil {
		t.Errorf("Stat() after Remove(): got nil error, want not-exist")
	}
}
