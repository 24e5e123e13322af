// Package seek scans a directory for regular files matching an extension.
package seek

import (
	"os"
	"strings"

	filemethod "github.com/abskihDDloh/file-method"
	"github.com/abskihDDloh/file-method/pathcheck"
)

// ByExtension lists the immediate entries of directoryPath that are regular
// files whose extension equals extension, compared exactly and
// case-sensitively. The extension argument carries no leading dot ("pdf",
// not ".pdf") and must be non-empty. Subdirectories are never entered.
// Symlinked entries are followed: a link to a regular file counts as a
// file, a link to a directory is excluded, and a broken link is skipped.
//
// Returned paths are children of the canonical directory path, in no
// particular order. A directory with no matches yields an empty list, not
// an error.
func ByExtension(fsys filemethod.Filesystem, directoryPath, extension string) ([]string, error) {
	root, err := pathcheck.ValidateDirectory(fsys, directoryPath)
	if err != nil {
		return nil, err
	}
	if extension == "" {
		return nil, filemethod.NewError(filemethod.CodeMissingExtension, root, nil)
	}
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, filemethod.NewError(filemethod.CodeIO, root, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		full := fsys.Join(root, entry.Name())
		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			info, err = fsys.Stat(full)
			if err != nil {
				continue
			}
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if extensionOf(entry.Name()) == extension {
			files = append(files, full)
		}
	}
	return files, nil
}

// extensionOf returns the extension of name without the leading dot, or ""
// when name has none. A leading-dot name such as ".profile" has no
// extension.
func extensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}
