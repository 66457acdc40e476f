// Package exclusion holds the name-based rules that prune directories and
// files from an export.
package exclusion

import (
	"sort"
	"strings"

	"github.com/temirov/gotxt/internal/utils"
)

const (
	hiddenEntryPrefix = "."
	currentPathPrefix = "./"
)

// noiseEntries lists version-control, editor, dependency and manifest entries
// that never take part in an export regardless of configuration.
var noiseEntries = map[string]struct{}{
	".git":         {},
	".vscode":      {},
	".idea":        {},
	"node_modules": {},
	"__pycache__":  {},
	"vendor":       {},
	"go.mod":       {},
	"go.sum":       {},
}

// IsNoise reports whether an entry name belongs to the fixed ignore list or is hidden.
func IsNoise(entryName string) bool {
	if _, isNoise := noiseEntries[entryName]; isNoise {
		return true
	}
	return strings.HasPrefix(entryName, hiddenEntryPrefix)
}

// MatchesDirectory reports whether relativePath equals one of the directories
// or lies beneath one of them. Separators are normalized to forward slashes
// before comparison.
func MatchesDirectory(relativePath string, directories []string) bool {
	normalizedPath := utils.NormalizeSeparators(relativePath)
	if normalizedPath == "" || normalizedPath == utils.CurrentDirectoryPath {
		return false
	}
	for _, directory := range directories {
		if normalizedPath == directory || strings.HasPrefix(normalizedPath, directory+utils.PathSegmentSeparator) {
			return true
		}
	}
	return false
}

// Set is the immutable collection of excluded directory paths and file names for one run.
type Set struct {
	directories []string
	files       map[string]struct{}
}

// NewSet builds a Set from directory relative paths and bare file names.
// Entries are trimmed and normalized; empty entries are dropped.
func NewSet(directories []string, files []string) Set {
	normalizedDirectories := make([]string, 0, len(directories))
	for _, directory := range directories {
		normalized := normalizeDirectory(directory)
		if normalized == "" {
			continue
		}
		normalizedDirectories = append(normalizedDirectories, normalized)
	}
	fileSet := make(map[string]struct{}, len(files))
	for _, fileName := range files {
		trimmed := strings.TrimSpace(fileName)
		if trimmed == "" {
			continue
		}
		fileSet[trimmed] = struct{}{}
	}
	return Set{
		directories: utils.DeduplicatePatterns(normalizedDirectories),
		files:       fileSet,
	}
}

func normalizeDirectory(directory string) string {
	normalized := utils.NormalizeSeparators(strings.TrimSpace(directory))
	for strings.HasPrefix(normalized, currentPathPrefix) {
		normalized = strings.TrimPrefix(normalized, currentPathPrefix)
	}
	normalized = strings.Trim(normalized, utils.PathSegmentSeparator)
	if normalized == utils.CurrentDirectoryPath {
		return ""
	}
	return normalized
}

// IsExcludedDirectory reports whether the directory at relativePath must be pruned.
func (set Set) IsExcludedDirectory(relativePath string) bool {
	return MatchesDirectory(relativePath, set.directories)
}

// IsExcludedFile reports whether a bare file name is excluded.
func (set Set) IsExcludedFile(fileName string) bool {
	_, excluded := set.files[fileName]
	return excluded
}

// Directories returns the excluded directories sorted lexicographically.
func (set Set) Directories() []string {
	sorted := append([]string{}, set.directories...)
	sort.Strings(sorted)
	return sorted
}

// Files returns the excluded file names sorted lexicographically.
func (set Set) Files() []string {
	sorted := make([]string, 0, len(set.files))
	for fileName := range set.files {
		sorted = append(sorted, fileName)
	}
	sort.Strings(sorted)
	return sorted
}

// HasDirectories reports whether any directory exclusion is configured.
func (set Set) HasDirectories() bool {
	return len(set.directories) > 0
}

// HasFiles reports whether any file exclusion is configured.
func (set Set) HasFiles() bool {
	return len(set.files) > 0
}

// IsEmpty reports whether no exclusion is configured at all.
func (set Set) IsEmpty() bool {
	return !set.HasDirectories() && !set.HasFiles()
}
