package billy

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// maxLinkDepth caps symlink expansion, mirroring the kernel's nesting limit.
const maxLinkDepth = 40

var errTooManyLinks = errors.New("too many levels of symbolic links")

// Realpath implements Filesystem.Realpath.
func (b *FS) Realpath(name string) (string, error) {
	if b.realpath != nil {
		return b.realpath(name)
	}
	resolved, err := b.walkRealpath(name, 0)
	if err != nil {
		return "", fmt.Errorf("billy: realpath %q: %w", name, err)
	}
	return resolved, nil
}

// osRealpath canonicalizes a native OS path: absolute, with every symlink
// and dot segment resolved. It fails if the path does not exist.
func osRealpath(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("billy: realpath %q: %w", name, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("billy: realpath %q: %w", name, err)
	}
	return resolved, nil
}

// walkRealpath resolves name segment by segment against the backend,
// expanding symlinks as they are met so that ".." applies to the resolved
// parent rather than the lexical one. Every component must exist.
func (b *FS) walkRealpath(name string, depth int) (string, error) {
	if depth > maxLinkDepth {
		return "", errTooManyLinks
	}
	resolved := "/"
	segs := strings.Split(name, "/")
	for i, seg := range segs {
		switch seg {
		case "", ".":
			continue
		case "..":
			resolved = path.Dir(resolved)
			continue
		}
		next := path.Join(resolved, seg)
		info, err := b.fs.Lstat(next)
		if err != nil {
			return "", err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			resolved = next
			continue
		}
		target, err := b.fs.Readlink(next)
		if err != nil {
			return "", err
		}
		if !path.IsAbs(target) {
			target = resolved + "/" + target
		}
		return b.walkRealpath(target+"/"+strings.Join(segs[i+1:], "/"), depth+1)
	}
	return resolved, nil
}
