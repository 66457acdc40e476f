package commands

import (
	"fmt"
	"strings"

	"github.com/temirov/gotxt/internal/exclusion"
	"github.com/temirov/gotxt/internal/output"
	"github.com/temirov/gotxt/internal/types"
)

// treeIndex records every retained directory listing of one walk so the
// diagram can be rendered without touching the filesystem again.
type treeIndex struct {
	exclusions exclusion.Set
	extension  string
	reporter   Reporter
	listings   map[string]DirectoryListing
	qualifying map[string]bool
}

func (index *treeIndex) EnterDirectory(listing DirectoryListing) (Decision, error) {
	index.listings[listing.Node.RelativePath] = listing
	return DecisionEnter, nil
}

func (index *treeIndex) DirectoryExcluded(types.TraversalNode) {}

func (index *treeIndex) DirectoryUnreadable(node types.TraversalNode, readError error) {
	index.reporter.Warn(fmt.Sprintf(warningSkipSubdirFormat, node.RelativePath, readError))
}

// listedFiles returns the files of a listing shown in the diagram. Noise names
// are hidden here although the document body still carries them.
func (index *treeIndex) listedFiles(listing DirectoryListing) []string {
	var listed []string
	for _, fileName := range listing.Files {
		if !hasExtension(fileName, index.extension) || exclusion.IsNoise(fileName) || index.exclusions.IsExcludedFile(fileName) {
			continue
		}
		listed = append(listed, fileName)
	}
	return listed
}

// qualifies reports whether the directory or any retained descendant lists at
// least one file. Results are memoized so every directory is evaluated once.
func (index *treeIndex) qualifies(relativePath string) bool {
	if known, evaluated := index.qualifying[relativePath]; evaluated {
		return known
	}
	listing, recorded := index.listings[relativePath]
	result := false
	if recorded {
		result = len(index.listedFiles(listing)) > 0
		for _, subdirectory := range listing.Subdirectories {
			if index.qualifies(subdirectory.RelativePath) {
				result = true
			}
		}
	}
	index.qualifying[relativePath] = result
	return result
}

// QualifyingDirectories walks root once and reports, for every retained
// directory, whether it or a descendant holds a listed file of the extension.
func QualifyingDirectories(root string, exclusions exclusion.Set, extension string) (map[string]bool, error) {
	index, indexError := buildTreeIndex(root, exclusions, extension, nil)
	if indexError != nil {
		return nil, indexError
	}
	for relativePath := range index.listings {
		index.qualifies(relativePath)
	}
	return index.qualifying, nil
}

func buildTreeIndex(root string, exclusions exclusion.Set, extension string, reporter Reporter) (*treeIndex, error) {
	index := &treeIndex{
		exclusions: exclusions,
		extension:  normalizeExtension(extension),
		reporter:   reporterOrNop(reporter),
		listings:   map[string]DirectoryListing{},
		qualifying: map[string]bool{},
	}
	if walkError := Walk(root, exclusions, index); walkError != nil {
		return nil, walkError
	}
	return index, nil
}

// RenderTree produces the tree diagram of root followed by the section terminator.
// The root line is always present; other directories appear only when they or
// a descendant contain a listed file.
func RenderTree(root string, exclusions exclusion.Set, extension string, reporter Reporter) (string, error) {
	index, indexError := buildTreeIndex(root, exclusions, extension, reporter)
	if indexError != nil {
		return "", fmt.Errorf(errorRenderTreeFormat, root, indexError)
	}

	var builder strings.Builder
	rootListing := index.listings[rootRelativePath]
	builder.WriteString(output.TreeRootLine(rootListing.Node.Name()))
	builder.WriteString(output.TreeFileLines(index.listedFiles(rootListing), rootListing.Node.Depth))
	for _, subdirectory := range rootListing.Subdirectories {
		index.renderDirectory(&builder, subdirectory.RelativePath)
	}
	builder.WriteString(output.SectionTerminator)
	return builder.String(), nil
}

func (index *treeIndex) renderDirectory(builder *strings.Builder, relativePath string) {
	if !index.qualifies(relativePath) {
		return
	}
	listing := index.listings[relativePath]
	builder.WriteString(output.TreeDirectoryLine(listing.Node.Name(), listing.Node.Depth))
	builder.WriteString(output.TreeFileLines(index.listedFiles(listing), listing.Node.Depth))
	for _, subdirectory := range listing.Subdirectories {
		index.renderDirectory(builder, subdirectory.RelativePath)
	}
}
