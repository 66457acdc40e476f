// Package utils contains general helper functions used across the gotxt tool.
package utils

import (
	"path/filepath"
	"strings"
)

const (
	// CurrentDirectoryPath is the relative path reported for the processing root.
	CurrentDirectoryPath = "."
	// PathSegmentSeparator is the canonical separator used in relative paths.
	PathSegmentSeparator = "/"
)

// DeduplicatePatterns removes duplicate entries from a slice while preserving order.
// The first occurrence of each unique entry is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// NormalizeSeparators converts every backslash into the canonical forward slash.
func NormalizeSeparators(path string) string {
	return strings.ReplaceAll(filepath.ToSlash(path), "\\", PathSegmentSeparator)
}

// JoinRelative appends a child name to a relative directory path.
func JoinRelative(relativeDirectory string, childName string) string {
	if relativeDirectory == "" || relativeDirectory == CurrentDirectoryPath {
		return childName
	}
	return relativeDirectory + PathSegmentSeparator + childName
}
