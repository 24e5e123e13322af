// Package pathcheck validates filesystem paths: it canonicalizes them and
// asserts that they denote a directory or a regular file.
package pathcheck

import (
	filemethod "github.com/abskihDDloh/file-method"
)

// Canonicalize resolves path to its canonical form: absolute, with every
// symlink and dot segment resolved. It fails with CodeIO when the path
// does not exist or cannot be resolved.
func Canonicalize(fsys filemethod.Filesystem, path string) (string, error) {
	resolved, err := fsys.Realpath(path)
	if err != nil {
		return "", filemethod.NewError(filemethod.CodeIO, path, err)
	}
	return resolved, nil
}

// ValidateDirectory canonicalizes path and asserts the result denotes a
// directory. It returns the canonical path on success, a CodeNotADirectory
// error carrying the resolved path when the entry is of another type, and
// propagates canonicalization failures unchanged.
func ValidateDirectory(fsys filemethod.Filesystem, path string) (string, error) {
	resolved, err := Canonicalize(fsys, path)
	if err != nil {
		return "", err
	}
	info, err := fsys.Stat(resolved)
	if err != nil {
		return "", filemethod.NewError(filemethod.CodeIO, resolved, err)
	}
	if !info.IsDir() {
		return "", filemethod.NewError(filemethod.CodeNotADirectory, resolved, nil)
	}
	return resolved, nil
}

// ValidateFile canonicalizes path and asserts the result denotes a regular
// file. It returns the canonical path on success, a CodeNotAFile error
// carrying the resolved path when the entry is of another type, and
// propagates canonicalization failures unchanged.
func ValidateFile(fsys filemethod.Filesystem, path string) (string, error) {
	resolved, err := Canonicalize(fsys, path)
	if err != nil {
		return "", err
	}
	info, err := fsys.Stat(resolved)
	if err != nil {
		return "", filemethod.NewError(filemethod.CodeIO, resolved, err)
	}
	if !info.Mode().IsRegular() {
		return "", filemethod.NewError(filemethod.CodeNotAFile, resolved, nil)
	}
	return resolved, nil
}
