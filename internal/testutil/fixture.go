// Package testutil materializes fixture trees for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

const (
	fixtureDirectoryPermissions = 0o755
	fixtureFilePermissions      = 0o644
	directoryMarkerSuffix       = "/"
)

// WriteTree writes every file of a txtar archive below root.
// A member whose name ends with a slash creates an empty directory.
func WriteTree(testingHandle *testing.T, root string, archive string) {
	testingHandle.Helper()
	parsedArchive := txtar.Parse([]byte(archive))
	for _, archiveFile := range parsedArchive.Files {
		targetPath := filepath.Join(root, filepath.FromSlash(archiveFile.Name))
		if len(archiveFile.Name) > 0 && archiveFile.Name[len(archiveFile.Name)-1:] == directoryMarkerSuffix {
			if mkdirError := os.MkdirAll(targetPath, fixtureDirectoryPermissions); mkdirError != nil {
				testingHandle.Fatalf("create directory %s: %v", targetPath, mkdirError)
			}
			continue
		}
		if mkdirError := os.MkdirAll(filepath.Dir(targetPath), fixtureDirectoryPermissions); mkdirError != nil {
			testingHandle.Fatalf("create directory %s: %v", filepath.Dir(targetPath), mkdirError)
		}
		if writeError := os.WriteFile(targetPath, archiveFile.Data, fixtureFilePermissions); writeError != nil {
			testingHandle.Fatalf("write %s: %v", targetPath, writeError)
		}
	}
}

// NewTree creates a temporary directory populated from archive and returns its path.
func NewTree(testingHandle *testing.T, archive string) string {
	testingHandle.Helper()
	root := testingHandle.TempDir()
	WriteTree(testingHandle, root, archive)
	return root
}

// ReadFile returns the content of path or fails the test.
func ReadFile(testingHandle *testing.T, path string) string {
	testingHandle.Helper()
	// #nosec G304
	content, readError := os.ReadFile(path)
	if readError != nil {
		testingHandle.Fatalf("read %s: %v", path, readError)
	}
	return string(content)
}
