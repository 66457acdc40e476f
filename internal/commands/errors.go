package commands

import "errors"

var (
	// ErrConfiguration reports a source root that is missing or not a directory.
	ErrConfiguration = errors.New("configuration error")
	// ErrOutputSetup reports a destination that could not be prepared.
	ErrOutputSetup = errors.New("output setup error")
	// ErrOutputWrite reports a failure while writing the destination document.
	ErrOutputWrite = errors.New("output write failure")
)

const (
	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorSourceFolderFormat is used when the export root is unusable.
	errorSourceFolderFormat = "%w: source folder '%s' does not exist or is not a directory"
	// errorCreateOutputDirectoryFormat is used when the destination directory cannot be created.
	errorCreateOutputDirectoryFormat = "%w: creating output directory '%s': %v"
	// errorOpenOutputFormat is used when the destination file cannot be opened.
	errorOpenOutputFormat = "%w: opening output file '%s': %v"
	// errorWriteOutputFormat is used when writing the destination file fails.
	errorWriteOutputFormat = "%w: writing output file '%s': %v"
	// errorRenderTreeFormat is used when the tree diagram cannot be produced.
	errorRenderTreeFormat = "rendering tree for %s: %w"
)
