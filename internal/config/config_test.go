package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// TestLoadIgnoreFileSections verifies section headers, comments and the unsectioned slash rule.
func TestLoadIgnoreFileSections(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	ignoreFilePath := filepath.Join(rootDirectory, IgnoreFileName)
	writeTestFile(testingHandle, ignoreFilePath, "# leading entries\nbuild/\nzz_generated.go\n\n[directories]\ninternal/mocks\n[FILES]\nwire_gen.go\n")

	exclusions, loadError := LoadIgnoreFile(ignoreFilePath)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreFile failed: %v", loadError)
	}
	expected := Exclusions{
		Directories: []string{"build", "internal/mocks"},
		Files:       []string{"zz_generated.go", "wire_gen.go"},
	}
	if !reflect.DeepEqual(exclusions, expected) {
		testingHandle.Fatalf("unexpected exclusions: got %+v want %+v", exclusions, expected)
	}
}

// TestLoadIgnoreFileMissing verifies that an absent file yields no entries.
func TestLoadIgnoreFileMissing(testingHandle *testing.T) {
	exclusions, loadError := LoadIgnoreFile(filepath.Join(testingHandle.TempDir(), IgnoreFileName))
	if loadError != nil {
		testingHandle.Fatalf("unexpected error: %v", loadError)
	}
	if len(exclusions.Directories) != 0 || len(exclusions.Files) != 0 {
		testingHandle.Fatalf("expected no entries, got %+v", exclusions)
	}
}

// TestLoadProjectExclusions verifies that configured entries come first and the file is optional.
func TestLoadProjectExclusions(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, IgnoreFileName), "testdata/\n")

	testCases := []struct {
		name                string
		useIgnoreFile       bool
		expectedDirectories []string
	}{
		{name: "with_file", useIgnoreFile: true, expectedDirectories: []string{"vendor", "testdata"}},
		{name: "without_file", useIgnoreFile: false, expectedDirectories: []string{"vendor"}},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			exclusions, loadError := LoadProjectExclusions(rootDirectory, testCase.useIgnoreFile, []string{"vendor"}, []string{"main.go"})
			if loadError != nil {
				subTest.Fatalf("LoadProjectExclusions failed: %v", loadError)
			}
			if !reflect.DeepEqual(exclusions.Directories, testCase.expectedDirectories) {
				subTest.Fatalf("unexpected directories: %v", exclusions.Directories)
			}
			if !reflect.DeepEqual(exclusions.Files, []string{"main.go"}) {
				subTest.Fatalf("unexpected files: %v", exclusions.Files)
			}
		})
	}
}
