package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/gotxt/internal/exclusion"
	"github.com/temirov/gotxt/internal/output"
	"github.com/temirov/gotxt/internal/types"
)

const (
	infoOutputDirectoryCreatedFormat = "Output directory '%s' created."
	infoTreeWrittenFormat            = "Directory structure written to '%s'."
	outputDirectoryPermissions       = 0o755
)

// ExportOptions configures a full project export.
type ExportOptions struct {
	SourceFolder string
	OutputPath   string
	Exclusions   exclusion.Set
	Extension    string
	Reporter     Reporter
}

// Export writes the project document for SourceFolder to OutputPath: a header,
// the exclusions summary, the tree diagram and one content block per file.
// A missing source folder produces no output file.
func Export(options ExportOptions) (types.ExportStats, error) {
	reporter := reporterOrNop(options.Reporter)
	extension := normalizeExtension(options.Extension)

	absoluteSource, sourceError := validateSourceFolder(options.SourceFolder)
	if sourceError != nil {
		return types.ExportStats{}, sourceError
	}

	destination, absoluteOutput, openError := openOutput(options.OutputPath, reporter)
	if openError != nil {
		return types.ExportStats{}, openError
	}

	writer := output.NewDocumentWriter(destination)
	stats, exportError := writeProjectDocument(writer, absoluteSource, options, extension, reporter)
	stats.OutputPath = absoluteOutput
	return stats, finishOutput(writer, destination, absoluteOutput, exportError)
}

func writeProjectDocument(writer *output.DocumentWriter, absoluteSource string, options ExportOptions, extension string, reporter Reporter) (types.ExportStats, error) {
	writer.WriteString(output.ProjectHeader(extension))
	if !options.Exclusions.IsEmpty() {
		writer.WriteString(output.ExclusionsBlock(options.Exclusions.Files(), options.Exclusions.Directories()))
	}

	treeText, treeError := RenderTree(absoluteSource, options.Exclusions, extension, reporter)
	if treeError != nil {
		return types.ExportStats{}, treeError
	}
	if writeError := writer.WriteString(treeText); writeError != nil {
		return types.ExportStats{}, writeError
	}
	reporter.Info(fmt.Sprintf(infoTreeWrittenFormat, filepath.Base(options.OutputPath)))

	stats, concatenateError := Concatenate(writer, absoluteSource, options.Exclusions, extension, reporter)
	if concatenateError != nil {
		return stats, concatenateError
	}
	if !stats.FilesFound {
		warning := output.MissingFilesWarning(extension, options.SourceFolder)
		reporter.Warn(warning)
		writer.WriteString(warning)
	}
	return stats, writer.Err()
}

// validateSourceFolder resolves folder and confirms it is an existing directory.
func validateSourceFolder(folder string) (string, error) {
	absoluteFolder, absoluteError := filepath.Abs(folder)
	if absoluteError != nil {
		return "", fmt.Errorf(errorSourceFolderFormat, ErrConfiguration, folder)
	}
	folderInformation, statError := os.Stat(absoluteFolder)
	if statError != nil || !folderInformation.IsDir() {
		return "", fmt.Errorf(errorSourceFolderFormat, ErrConfiguration, folder)
	}
	return filepath.Clean(absoluteFolder), nil
}

// openOutput creates missing parent directories and opens the destination with truncation.
func openOutput(outputPath string, reporter Reporter) (*os.File, string, error) {
	absoluteOutput, absoluteError := filepath.Abs(outputPath)
	if absoluteError != nil {
		return nil, "", fmt.Errorf(errorOpenOutputFormat, ErrOutputSetup, outputPath, absoluteError)
	}
	outputDirectory := filepath.Dir(outputPath)
	if _, statError := os.Stat(outputDirectory); errors.Is(statError, os.ErrNotExist) {
		if mkdirError := os.MkdirAll(outputDirectory, outputDirectoryPermissions); mkdirError != nil {
			return nil, "", fmt.Errorf(errorCreateOutputDirectoryFormat, ErrOutputSetup, outputDirectory, mkdirError)
		}
		reporter.Info(fmt.Sprintf(infoOutputDirectoryCreatedFormat, outputDirectory))
	}
	// #nosec G304
	destination, createError := os.Create(absoluteOutput)
	if createError != nil {
		return nil, "", fmt.Errorf(errorOpenOutputFormat, ErrOutputSetup, outputPath, createError)
	}
	return destination, absoluteOutput, nil
}

// finishOutput flushes and closes the destination. Write failures are reported
// as ErrOutputWrite; other failures are returned unchanged.
func finishOutput(writer *output.DocumentWriter, destination *os.File, absoluteOutput string, runError error) error {
	flushError := writer.Flush()
	closeError := destination.Close()
	if writer.Err() != nil {
		return fmt.Errorf(errorWriteOutputFormat, ErrOutputWrite, absoluteOutput, writer.Err())
	}
	if runError != nil {
		return runError
	}
	if flushError != nil {
		return fmt.Errorf(errorWriteOutputFormat, ErrOutputWrite, absoluteOutput, flushError)
	}
	if closeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, ErrOutputWrite, absoluteOutput, closeError)
	}
	return nil
}
