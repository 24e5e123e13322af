// Package billy provides Filesystem backends built on go-billy: the native
// OS filesystem, an OS filesystem chrooted at a directory, and an in-memory
// filesystem for tests.
package billy

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	filemethod "github.com/abskihDDloh/file-method"
)

// FS implements the Filesystem interface using go-billy.
type FS struct {
	fs billy.Filesystem

	// realpath overrides canonical resolution for backends whose paths are
	// native OS paths; when nil, resolution walks the backend itself.
	realpath func(name string) (string, error)
}

// Stat implements Filesystem.Stat.
func (b *FS) Stat(name string) (os.FileInfo, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", name, err)
	}
	return info, nil
}

// Lstat implements Filesystem.Lstat.
func (b *FS) Lstat(name string) (os.FileInfo, error) {
	info, err := b.fs.Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("billy: lstat %q: %w", name, err)
	}
	return info, nil
}

// ReadDir implements Filesystem.ReadDir.
func (b *FS) ReadDir(dirname string) ([]os.FileInfo, error) {
	list, err := b.fs.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", dirname, err)
	}
	return list, nil
}

// Readlink implements Filesystem.Readlink.
func (b *FS) Readlink(name string) (string, error) {
	target, err := b.fs.Readlink(name)
	if err != nil {
		return "", fmt.Errorf("billy: readlink %q: %w", name, err)
	}
	return target, nil
}

// Open implements Filesystem.Open.
//
//nolint:ireturn // API returns the File interface by design for flexibility.
func (b *FS) Open(name string) (filemethod.File, error) {
	f, err := b.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("billy: open %q: %w", name, err)
	}
	return &File{
		file: f,
		fs:   b,
	}, nil
}

// Join implements Filesystem.Join.
func (b *FS) Join(elem ...string) string {
	return b.fs.Join(elem...)
}

// MkdirAll implements Filesystem.MkdirAll.
func (b *FS) MkdirAll(path string, perm os.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("billy: mkdirall %q: %w", path, err)
	}
	return nil
}

// WriteFile implements Filesystem.WriteFile.
func (b *FS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	if err := util.WriteFile(b.fs, filename, data, perm); err != nil {
		return fmt.Errorf("billy: writefile %q: %w", filename, err)
	}
	return nil
}

// Symlink implements Filesystem.Symlink.
func (b *FS) Symlink(target, link string) error {
	if err := b.fs.Symlink(target, link); err != nil {
		return fmt.Errorf("billy: symlink %q -> %q: %w", link, target, err)
	}
	return nil
}

// Remove implements Filesystem.Remove.
func (b *FS) Remove(name string) error {
	if err := b.fs.Remove(name); err != nil {
		return fmt.Errorf("billy: remove %q: %w", name, err)
	}
	return nil
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // returning interface here is intentional to expose the adapter target.
func (b *FS) Raw() billy.Filesystem {
	return b.fs
}

// NewFS creates a new FS using the given go-billy filesystem. Canonical
// resolution walks the filesystem itself, so paths are rooted at the
// backend's "/".
func NewFS(fsys billy.Filesystem) *FS {
	return &FS{
		fs: fsys,
	}
}

// NewInMemoryFS creates a new in-memory filesystem.
func NewInMemoryFS() *FS {
	return &FS{
		fs: memfs.New(),
	}
}

// NewOSFS creates a new OS filesystem rooted at path. Paths handed to it
// are interpreted relative to that root.
func NewOSFS(path string) *FS {
	return &FS{
		fs: osfs.New(path),
	}
}
