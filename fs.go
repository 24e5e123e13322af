// Package filemethod defines the filesystem abstraction and error taxonomy
// shared by the path validation and file seeking packages. Concrete
// backends live in the billy subpackage.
package filemethod

import (
	"io/fs"
	"os"
)

// Filesystem is the surface the validator and seeker are written against.
// Paths handed to a Filesystem are interpreted by the backend: the native
// OS backend accepts ordinary OS paths (relative paths resolve against the
// process working directory), while chrooted and in-memory backends treat
// paths as rooted at their own "/".
type Filesystem interface {
	// Stat returns metadata for the named entry, following symlinks.
	Stat(name string) (os.FileInfo, error)

	// Lstat returns metadata for the named entry without following a
	// trailing symlink.
	Lstat(name string) (os.FileInfo, error)

	// ReadDir lists the immediate entries of the named directory.
	ReadDir(name string) ([]os.FileInfo, error)

	// Readlink returns the target of the named symlink.
	Readlink(name string) (string, error)

	// Realpath resolves name to its canonical form: absolute, with every
	// symlink expanded and every "." and ".." segment applied. It fails if
	// any component of the path does not exist.
	Realpath(name string) (string, error)

	// Open opens the named file for reading.
	Open(name string) (File, error)

	// Join joins path elements using the backend's separator rules.
	Join(elem ...string) string

	// MkdirAll creates the named directory along with any missing parents.
	MkdirAll(path string, perm os.FileMode) error

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// Symlink creates a symlink at link pointing to target.
	Symlink(target, link string) error

	// Remove removes the named file or empty directory.
	Remove(name string) error
}

// File represents an open file handle supporting basic read operations.
// Implementations should behave consistently with the standard library.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	Stat() (fs.FileInfo, error)
}
