package pathcheck_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filemethod "github.com/abskihDDloh/file-method"
	"github.com/abskihDDloh/file-method/billy"
	"github.com/abskihDDloh/file-method/pathcheck"
)

// newMemFS returns an in-memory filesystem pre-populated with a directory
// containing one regular file.
func newMemFS(t *testing.T) filemethod.Filesystem {
	t.Helper()
	fsys := billy.NewInMemoryFS()
	require.NoError(t, fsys.MkdirAll("/docs", 0o755))
	require.NoError(t, fsys.WriteFile("/docs/report.pdf", []byte("%PDF"), 0o644))
	return fsys
}

func TestValidateDirectory(t *testing.T) {
	t.Run("existing directory returns canonical path", func(t *testing.T) {
		fsys := newMemFS(t)
		got, err := pathcheck.ValidateDirectory(fsys, "/docs")
		require.NoError(t, err)
		assert.Equal(t, "/docs", got)
	})

	t.Run("dot segments are resolved", func(t *testing.T) {
		fsys := newMemFS(t)
		got, err := pathcheck.ValidateDirectory(fsys, "/docs/./../docs")
		require.NoError(t, err)
		assert.Equal(t, "/docs", got)
	})

	t.Run("symlinked directory resolves to its target", func(t *testing.T) {
		fsys := newMemFS(t)
		require.NoError(t, fsys.Symlink("/docs", "/d"))
		got, err := pathcheck.ValidateDirectory(fsys, "/d")
		require.NoError(t, err)
		assert.Equal(t, "/docs", got)
	})

	t.Run("regular file fails with NOT_A_DIRECTORY", func(t *testing.T) {
		fsys := newMemFS(t)
		_, err := pathcheck.ValidateDirectory(fsys, "/docs/report.pdf")
		require.Error(t, err)
		assert.Equal(t, filemethod.CodeNotADirectory, filemethod.CodeOf(err))
		assert.Contains(t, err.Error(), "/docs/report.pdf")
	})

	t.Run("missing path fails with IO_ERROR", func(t *testing.T) {
		fsys := newMemFS(t)
		_, err := pathcheck.ValidateDirectory(fsys, "/absent")
		require.Error(t, err)
		assert.Equal(t, filemethod.CodeIO, filemethod.CodeOf(err))
	})
}

func TestValidateFile(t *testing.T) {
	t.Run("existing file returns canonical path", func(t *testing.T) {
		fsys := newMemFS(t)
		got, err := pathcheck.ValidateFile(fsys, "/docs/report.pdf")
		require.NoError(t, err)
		assert.Equal(t, "/docs/report.pdf", got)
	})

	t.Run("directory fails with NOT_A_FILE", func(t *testing.T) {
		fsys := newMemFS(t)
		_, err := pathcheck.ValidateFile(fsys, "/docs")
		require.Error(t, err)
		assert.Equal(t, filemethod.CodeNotAFile, filemethod.CodeOf(err))
		assert.Contains(t, err.Error(), "/docs")
	})

	t.Run("missing path fails with IO_ERROR", func(t *testing.T) {
		fsys := newMemFS(t)
		_, err := pathcheck.ValidateFile(fsys, "/docs/absent.pdf")
		require.Error(t, err)
		assert.Equal(t, filemethod.CodeIO, filemethod.CodeOf(err))
	})
}

func TestCanonicalize(t *testing.T) {
	t.Run("failure preserves the underlying cause", func(t *testing.T) {
		fsys := newMemFS(t)
		_, err := pathcheck.Canonicalize(fsys, "/absent")
		require.Error(t, err)
		assert.Equal(t, filemethod.CodeIO, filemethod.CodeOf(err))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("broken symlink fails with IO_ERROR", func(t *testing.T) {
		fsys := newMemFS(t)
		require.NoError(t, fsys.Symlink("/docs/absent.pdf", "/dangling"))
		_, err := pathcheck.Canonicalize(fsys, "/dangling")
		require.Error(t, err)
		assert.Equal(t, filemethod.CodeIO, filemethod.CodeOf(err))
	})
}

// TestValidateOnNativeFS exercises the native OS backend, where canonical
// resolution goes through the operating system.
func TestValidateOnNativeFS(t *testing.T) {
	fsys := billy.NewBaseOSFS()

	dir := t.TempDir()
	file := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(file, []byte("%PDF"), 0o644))

	// t.TempDir may itself sit behind a symlink (e.g. /tmp on macOS), so
	// expectations are canonicalized the same way.
	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	t.Run("directory validates to canonical absolute path", func(t *testing.T) {
		got, err := pathcheck.ValidateDirectory(fsys, dir)
		require.NoError(t, err)
		assert.Equal(t, wantDir, got)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("file validates to canonical absolute path", func(t *testing.T) {
		got, err := pathcheck.ValidateFile(fsys, file)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(wantDir, "report.pdf"), got)
	})

	t.Run("file is not a directory", func(t *testing.T) {
		_, err := pathcheck.ValidateDirectory(fsys, file)
		require.Error(t, err)
		assert.Equal(t, filemethod.CodeNotADirectory, filemethod.CodeOf(err))
	})

	t.Run("directory is not a file", func(t *testing.T) {
		_, err := pathcheck.ValidateFile(fsys, dir)
		require.Error(t, err)
		assert.Equal(t, filemethod.CodeNotAFile, filemethod.CodeOf(err))
	})

	t.Run("missing path fails with IO_ERROR", func(t *testing.T) {
		_, err := pathcheck.ValidateDirectory(fsys, filepath.Join(dir, "absent"))
		require.Error(t, err)
		assert.Equal(t, filemethod.CodeIO, filemethod.CodeOf(err))
	})
}
