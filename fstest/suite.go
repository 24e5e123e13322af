// Package fstest provides a conformance test suite for validating
// Filesystem backend implementations against the interface contracts the
// validator and seeker depend on.
//
// The suite is designed to validate interface contracts, not
// backend-specific behavior. Each test function can also be invoked
// directly by a backend package that only implements part of the surface.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestSuite(t, func() filemethod.Filesystem {
//	        return mybackend.New()
//	    })
//	}
package fstest

import (
	"testing"

	filemethod "github.com/abskihDDloh/file-method"
)

// TestSuite runs all conformance tests against a filesystem backend.
// The newFS function should return a fresh, empty filesystem for each
// test; tests create and modify files, so each invocation should start
// clean. Backend paths are rooted at the backend's "/", so the suite is
// not meant for filesystems that pass paths through to the host natively.
func TestSuite(t *testing.T, newFS func() filemethod.Filesystem) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newFS())
	})

	t.Run("SymlinkFS", func(t *testing.T) {
		TestSymlinkFS(t, newFS())
	})

	t.Run("RealpathFS", func(t *testing.T) {
		TestRealpathFS(t, newFS())
	})
}
