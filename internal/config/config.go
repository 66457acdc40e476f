// Package config loads gotxt configuration files and the per-project
// exclusion file.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// IgnoreFileName is the exclusion file read from the source root.
	IgnoreFileName = ".gotxtignore"
	// directoriesSectionHeader identifies the section listing directory paths.
	directoriesSectionHeader = "[directories]"
	// filesSectionHeader identifies the section listing bare file names.
	filesSectionHeader = "[files]"
	commentPrefix      = "#"
	directorySuffix    = "/"
)

// Exclusions holds the entries read from an exclusion file.
type Exclusions struct {
	Directories []string
	Files       []string
}

// LoadIgnoreFile reads an exclusion file. Entries under [directories] are
// directory paths relative to the source root and entries under [files] are
// bare file names. Before any section header an entry ending with a slash is a
// directory and any other entry is a file name. A missing file yields no entries.
//
// #nosec G304
func LoadIgnoreFile(ignoreFilePath string) (Exclusions, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return Exclusions{}, nil
		}
		return Exclusions{}, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var exclusions Exclusions
	currentSectionHeader := ""
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		if strings.EqualFold(trimmedLine, directoriesSectionHeader) {
			currentSectionHeader = directoriesSectionHeader
			continue
		}
		if strings.EqualFold(trimmedLine, filesSectionHeader) {
			currentSectionHeader = filesSectionHeader
			continue
		}
		switch {
		case currentSectionHeader == directoriesSectionHeader:
			exclusions.Directories = append(exclusions.Directories, trimmedLine)
		case currentSectionHeader == filesSectionHeader:
			exclusions.Files = append(exclusions.Files, trimmedLine)
		case strings.HasSuffix(trimmedLine, directorySuffix):
			exclusions.Directories = append(exclusions.Directories, strings.TrimSuffix(trimmedLine, directorySuffix))
		default:
			exclusions.Files = append(exclusions.Files, trimmedLine)
		}
	}
	if scanError := scanner.Err(); scanError != nil {
		return Exclusions{}, scanError
	}
	return exclusions, nil
}

// LoadProjectExclusions combines the exclusion file of sourceDirectory, when
// enabled, with the configured directories and files.
func LoadProjectExclusions(sourceDirectory string, useIgnoreFile bool, directories []string, files []string) (Exclusions, error) {
	combined := Exclusions{
		Directories: append([]string{}, directories...),
		Files:       append([]string{}, files...),
	}
	if !useIgnoreFile {
		return combined, nil
	}
	ignoreFilePath := filepath.Join(sourceDirectory, IgnoreFileName)
	fromFile, loadError := LoadIgnoreFile(ignoreFilePath)
	if loadError != nil {
		return Exclusions{}, fmt.Errorf("loading %s from %s: %w", IgnoreFileName, sourceDirectory, loadError)
	}
	combined.Directories = append(combined.Directories, fromFile.Directories...)
	combined.Files = append(combined.Files, fromFile.Files...)
	return combined, nil
}
