package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/gotxt/internal/exclusion"
	"github.com/temirov/gotxt/internal/output"
	"github.com/temirov/gotxt/internal/types"
	"github.com/temirov/gotxt/internal/utils"
)

// concatenation is the Visitor appending one content block per selected file.
type concatenation struct {
	writer     *output.DocumentWriter
	exclusions exclusion.Set
	extension  string
	language   string
	reporter   Reporter
	stats      types.ExportStats
}

func (engine *concatenation) EnterDirectory(listing DirectoryListing) (Decision, error) {
	for _, fileName := range listing.Files {
		if !hasExtension(fileName, engine.extension) {
			continue
		}
		relativePath := utils.JoinRelative(listing.Node.RelativePath, fileName)
		if engine.exclusions.IsExcludedFile(fileName) {
			engine.stats.IgnoredFiles++
			engine.reporter.FileIgnored(relativePath)
			continue
		}

		record := ReadFileRecord(filepath.Join(listing.Node.AbsolutePath, fileName), relativePath)
		engine.stats.FilesFound = true
		engine.stats.ExportedFiles++
		engine.stats.ExportedBytes += int64(len(record.Content))
		engine.reporter.FileAdded(relativePath)
		if writeError := engine.writer.WriteString(output.ContentBlock(record.RelativePath, record.Content, record.ReadError, engine.language)); writeError != nil {
			return DecisionSkip, writeError
		}
	}
	return DecisionEnter, nil
}

func (engine *concatenation) DirectoryExcluded(node types.TraversalNode) {
	engine.stats.IgnoredDirectories++
	engine.reporter.DirectoryIgnored(node.RelativePath)
}

func (engine *concatenation) DirectoryUnreadable(node types.TraversalNode, readError error) {
	engine.reporter.Warn(fmt.Sprintf(warningSkipSubdirFormat, node.RelativePath, readError))
}

// ReadFileRecord loads a file as UTF-8 text. Failures are kept on the record
// instead of being returned so that one unreadable file never stops an export.
func ReadFileRecord(absolutePath string, relativePath string) types.FileRecord {
	record := types.FileRecord{RelativePath: relativePath}
	fileBytes, readError := os.ReadFile(absolutePath)
	if readError != nil {
		record.ReadError = readError
		return record
	}
	decoded, decodeError := utils.DecodeText(fileBytes)
	if decodeError != nil {
		record.ReadError = decodeError
		return record
	}
	record.Content = decoded
	return record
}

// Concatenate walks root with the same pruning rules as RenderTree and writes a
// content block for every file of the extension whose name is not excluded.
// Files are visited directory by directory in lexicographic order.
func Concatenate(writer *output.DocumentWriter, root string, exclusions exclusion.Set, extension string, reporter Reporter) (types.ExportStats, error) {
	normalizedExtension := normalizeExtension(extension)
	engine := &concatenation{
		writer:     writer,
		exclusions: exclusions,
		extension:  normalizedExtension,
		language:   output.LanguageIdentifier(normalizedExtension),
		reporter:   reporterOrNop(reporter),
	}
	walkError := Walk(root, exclusions, engine)
	return engine.stats, walkError
}
