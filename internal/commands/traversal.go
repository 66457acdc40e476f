// Package commands contains the export engine: traversal, tree rendering and
// file concatenation.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/temirov/gotxt/internal/exclusion"
	"github.com/temirov/gotxt/internal/types"
	"github.com/temirov/gotxt/internal/utils"
)

const (
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// warningSkipSubdirFormat is used when a subdirectory cannot be processed.
	warningSkipSubdirFormat = "Warning: skipping subdirectory %s due to error: %v"
)

// Decision tells Walk whether to descend into the subdirectories of a listing.
type Decision int

const (
	// DecisionEnter continues into the retained subdirectories.
	DecisionEnter Decision = iota
	// DecisionSkip prunes the whole subtree below the directory.
	DecisionSkip
)

// DirectoryListing is the filtered content of one directory.
// Files holds sorted names of non-directory entries; Subdirectories holds the
// retained child directories in read order.
type DirectoryListing struct {
	Node           types.TraversalNode
	Files          []string
	Subdirectories []types.TraversalNode
}

// Visitor receives the directories reached by Walk in pre-order.
type Visitor interface {
	EnterDirectory(listing DirectoryListing) (Decision, error)
	DirectoryExcluded(node types.TraversalNode)
	DirectoryUnreadable(node types.TraversalNode, readError error)
}

// Walk visits root and every retained directory below it. Noise directories and
// directories matched by the exclusion set are pruned before descent, so the
// visitor never sees their content. File names are passed through unfiltered. Only a failure to read the
// root itself is returned; unreadable subdirectories are handed to the visitor.
func Walk(root string, exclusions exclusion.Set, visitor Visitor) error {
	absoluteRoot, absoluteError := filepath.Abs(root)
	if absoluteError != nil {
		return fmt.Errorf(errorAbsolutePathFormat, root, absoluteError)
	}
	rootNode := types.TraversalNode{
		AbsolutePath: filepath.Clean(absoluteRoot),
		RelativePath: utils.CurrentDirectoryPath,
		Depth:        0,
	}
	return walkDirectory(rootNode, exclusions, visitor)
}

func walkDirectory(node types.TraversalNode, exclusions exclusion.Set, visitor Visitor) error {
	listing, listError := listDirectory(node, exclusions, visitor)
	if listError != nil {
		if node.Depth == 0 {
			return listError
		}
		visitor.DirectoryUnreadable(node, listError)
		return nil
	}

	decision, visitError := visitor.EnterDirectory(listing)
	if visitError != nil {
		return visitError
	}
	if decision == DecisionSkip {
		return nil
	}

	for _, subdirectory := range listing.Subdirectories {
		if walkError := walkDirectory(subdirectory, exclusions, visitor); walkError != nil {
			return walkError
		}
	}
	return nil
}

func listDirectory(node types.TraversalNode, exclusions exclusion.Set, visitor Visitor) (DirectoryListing, error) {
	directoryEntries, readDirectoryError := os.ReadDir(node.AbsolutePath)
	if readDirectoryError != nil {
		return DirectoryListing{}, fmt.Errorf(errorReadDirectoryFormat, node.AbsolutePath, readDirectoryError)
	}

	listing := DirectoryListing{Node: node}
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if !directoryEntry.IsDir() {
			listing.Files = append(listing.Files, entryName)
			continue
		}
		if exclusion.IsNoise(entryName) {
			continue
		}
		childNode := types.TraversalNode{
			AbsolutePath: filepath.Join(node.AbsolutePath, entryName),
			RelativePath: utils.JoinRelative(node.RelativePath, entryName),
			Depth:        node.Depth + 1,
		}
		if exclusions.IsExcludedDirectory(childNode.RelativePath) {
			visitor.DirectoryExcluded(childNode)
			continue
		}
		listing.Subdirectories = append(listing.Subdirectories, childNode)
	}
	sort.Strings(listing.Files)
	return listing, nil
}
