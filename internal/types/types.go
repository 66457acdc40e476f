// Package types defines every cross‑package data structure used by the gotxt CLI.
package types

import "path/filepath"

const (
	CommandExport = "export"
	CommandSwitch = "switch"
	CommandInit   = "init"

	// DefaultExtension selects Go sources when no extension is configured.
	DefaultExtension = ".go"
)

// TraversalNode describes a directory reached while walking an export root.
type TraversalNode struct {
	AbsolutePath string
	RelativePath string
	Depth        int
}

// Name returns the final path element of the node; the root reports its directory name.
func (node TraversalNode) Name() string {
	return filepath.Base(node.AbsolutePath)
}

// FileRecord is one file selected for the document body.
type FileRecord struct {
	RelativePath string
	Content      string
	ReadError    error
}

// ExportStats summarizes a finished export run.
type ExportStats struct {
	FilesFound         bool
	ExportedFiles      int
	IgnoredFiles       int
	IgnoredDirectories int
	ExportedBytes      int64
	OutputPath         string
}

// RewriteStats summarizes a finished import switch run.
type RewriteStats struct {
	ScannedFiles     int
	UpdatedFiles     int
	RewrittenImports int
	SkippedFiles     int
	ManifestChanged  bool
	DryRun           bool
}
