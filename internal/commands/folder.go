package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/temirov/gotxt/internal/exclusion"
	"github.com/temirov/gotxt/internal/output"
	"github.com/temirov/gotxt/internal/types"
)

const errorReadFolderFormat = "reading folder %s: %w"

// FolderOptions configures a non-recursive export of a single folder.
// Only the file names of Exclusions apply; directory exclusions are ignored.
type FolderOptions struct {
	Folder     string
	OutputPath string
	Exclusions exclusion.Set
	Extension  string
	Reporter   Reporter
}

// ExportFolder writes the document for the files of the extension located
// directly inside Folder. Subdirectories are never visited.
func ExportFolder(options FolderOptions) (types.ExportStats, error) {
	reporter := reporterOrNop(options.Reporter)
	extension := normalizeExtension(options.Extension)

	absoluteFolder, folderError := validateSourceFolder(options.Folder)
	if folderError != nil {
		return types.ExportStats{}, folderError
	}

	destination, absoluteOutput, openError := openOutput(options.OutputPath, reporter)
	if openError != nil {
		return types.ExportStats{}, openError
	}

	writer := output.NewDocumentWriter(destination)
	stats, exportError := writeFolderDocument(writer, absoluteFolder, options, extension, reporter)
	stats.OutputPath = absoluteOutput
	return stats, finishOutput(writer, destination, absoluteOutput, exportError)
}

func writeFolderDocument(writer *output.DocumentWriter, absoluteFolder string, options FolderOptions, extension string, reporter Reporter) (types.ExportStats, error) {
	var stats types.ExportStats
	writer.WriteString(output.FolderHeader(filepath.Base(absoluteFolder), absoluteFolder))
	if options.Exclusions.HasFiles() {
		writer.WriteString(output.ExclusionsBlock(options.Exclusions.Files(), nil))
	}

	candidateNames, listError := listFolderFiles(absoluteFolder, extension)
	if listError != nil {
		return stats, listError
	}
	if len(candidateNames) == 0 {
		warning := output.FolderEmptyWarning(extension, options.Folder)
		reporter.Warn(warning)
		writer.WriteString(warning + "\n")
		return stats, writer.Err()
	}

	var includedNames []string
	for _, fileName := range candidateNames {
		if options.Exclusions.IsExcludedFile(fileName) {
			stats.IgnoredFiles++
			reporter.FileIgnored(fileName)
			continue
		}
		includedNames = append(includedNames, fileName)
	}
	writer.WriteString(output.FolderListing(extension, includedNames))

	language := output.LanguageIdentifier(extension)
	for _, fileName := range includedNames {
		record := ReadFileRecord(filepath.Join(absoluteFolder, fileName), fileName)
		stats.FilesFound = true
		stats.ExportedFiles++
		stats.ExportedBytes += int64(len(record.Content))
		reporter.FileAdded(fileName)
		if writeError := writer.WriteString(output.ContentBlock(fileName, record.Content, record.ReadError, language)); writeError != nil {
			return stats, writeError
		}
	}

	if !stats.FilesFound {
		warning := output.FolderNoValidWarning(extension, options.Folder)
		reporter.Warn(warning)
		writer.WriteString(warning)
	}
	return stats, writer.Err()
}

// listFolderFiles returns the sorted names of regular files of the extension inside folder.
func listFolderFiles(folder string, extension string) ([]string, error) {
	directoryEntries, readError := os.ReadDir(folder)
	if readError != nil {
		return nil, fmt.Errorf(errorReadFolderFormat, folder, readError)
	}
	var fileNames []string
	for _, directoryEntry := range directoryEntries {
		if !hasExtension(directoryEntry.Name(), extension) {
			continue
		}
		entryInformation, statError := os.Stat(filepath.Join(folder, directoryEntry.Name()))
		if statError != nil || !entryInformation.Mode().IsRegular() {
			continue
		}
		fileNames = append(fileNames, directoryEntry.Name())
	}
	sort.Strings(fileNames)
	return fileNames, nil
}
