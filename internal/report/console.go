// Package report prints human progress lines for export and switch runs and
// mirrors them as structured log entries.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/temirov/gotxt/internal/types"
	"github.com/temirov/gotxt/internal/utils"
)

const (
	addedSymbol     = "✓"
	ignoredSymbol   = "-"
	rewrittenSymbol = "⟳"
	infoSymbol      = "ℹ️ "
	warningSymbol   = "⚠️ "
	successSymbol   = "✅"
	entryIndent     = "   "

	bannerTitleFormat     = "🚀 %s"
	bannerFieldFormat     = "   %s: %s"
	addedFormat           = "%s%s Added: %s"
	ignoredFileFormat     = "%s%s Ignored file: %s"
	ignoredDirFormat      = "%s%s Ignored directory: %s"
	rewrittenFormat       = "%s%s %s (%d imports)"
	diffHeaderFormat      = "--- %s"
	exportSuccessFormat   = "%s Export finished: %s"
	exportCountsFormat    = "   %d files exported (%s), %d files ignored, %d directories ignored"
	exportEmptyFormat     = "%s Export finished without matching files: %s"
	switchSummaryFormat   = "%s %d of %d files updated, %d imports rewritten, %d files skipped"
	switchManifestChanged = "   manifest updated"
	switchManifestSame    = "   manifest unchanged"
	switchDryRunNotice    = "   dry run: nothing was written"
	nextStepsTitle        = "Next steps:"
	nextStepFormat        = "   %d. %s"

	logFieldPath         = "path"
	logFieldReplacements = "replacements"
	logMessageAdded      = "file added"
	logMessageIgnored    = "file ignored"
	logMessageDirIgnored = "directory ignored"
	logMessageRewritten  = "imports rewritten"
)

// SwitchFollowUps are the commands to run after a switch changes a module.
var SwitchFollowUps = []string{"go mod tidy", "go mod download (if needed)"}

// Console writes colored progress lines to an output stream and structured
// entries to a zap logger. The zero logger is replaced by a no-op logger.
type Console struct {
	output io.Writer
	logger *zap.Logger
}

// NewConsole builds a Console writing to output.
func NewConsole(output io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{output: output, logger: logger}
}

func (console *Console) println(line string) {
	fmt.Fprintln(console.output, line)
}

// Banner prints a title followed by aligned label/value pairs.
func (console *Console) Banner(title string, fields [][2]string) {
	console.println(color.New(color.Bold).Sprintf(bannerTitleFormat, title))
	for _, field := range fields {
		console.println(fmt.Sprintf(bannerFieldFormat, field[0], color.CyanString(field[1])))
	}
}

// Info prints an informational line.
func (console *Console) Info(message string) {
	console.println(infoSymbol + " " + message)
	console.logger.Debug(message)
}

// Warn prints a warning line.
func (console *Console) Warn(message string) {
	line := message
	if !strings.HasPrefix(line, strings.TrimSpace(warningSymbol)) {
		line = warningSymbol + " " + line
	}
	console.println(color.YellowString(line))
	console.logger.Warn(message)
}

// FileAdded reports a file written to the document.
func (console *Console) FileAdded(relativePath string) {
	console.println(fmt.Sprintf(addedFormat, entryIndent, color.GreenString(addedSymbol), relativePath))
	console.logger.Debug(logMessageAdded, zap.String(logFieldPath, relativePath))
}

// FileIgnored reports a file skipped by name.
func (console *Console) FileIgnored(relativePath string) {
	console.println(fmt.Sprintf(ignoredFileFormat, entryIndent, color.YellowString(ignoredSymbol), relativePath))
	console.logger.Debug(logMessageIgnored, zap.String(logFieldPath, relativePath))
}

// DirectoryIgnored reports a directory pruned by path.
func (console *Console) DirectoryIgnored(relativePath string) {
	console.println(fmt.Sprintf(ignoredDirFormat, entryIndent, color.YellowString(ignoredSymbol), relativePath))
	console.logger.Debug(logMessageDirIgnored, zap.String(logFieldPath, relativePath))
}

// FileRewritten reports a source file whose imports changed.
func (console *Console) FileRewritten(path string, replacements int) {
	console.println(fmt.Sprintf(rewrittenFormat, entryIndent, color.BlueString(rewrittenSymbol), path, replacements))
	console.logger.Debug(logMessageRewritten, zap.String(logFieldPath, path), zap.Int(logFieldReplacements, replacements))
}

// Diff prints the line diff computed for path during a dry run.
func (console *Console) Diff(path string, lineDiff string) {
	console.println(color.New(color.Bold).Sprintf(diffHeaderFormat, path))
	for _, line := range strings.Split(strings.TrimSuffix(lineDiff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			console.println(color.GreenString(line))
		case strings.HasPrefix(line, "-"):
			console.println(color.RedString(line))
		default:
			console.println(line)
		}
	}
}

// ExportSummary prints the outcome of an export run.
func (console *Console) ExportSummary(stats types.ExportStats) {
	if stats.FilesFound {
		console.println(fmt.Sprintf(exportSuccessFormat, successSymbol, color.CyanString(stats.OutputPath)))
	} else {
		console.println(color.YellowString(fmt.Sprintf(exportEmptyFormat, strings.TrimSpace(warningSymbol), stats.OutputPath)))
	}
	console.println(fmt.Sprintf(exportCountsFormat, stats.ExportedFiles, utils.FormatFileSize(stats.ExportedBytes), stats.IgnoredFiles, stats.IgnoredDirectories))
	console.logger.Info("export finished",
		zap.String("output", stats.OutputPath),
		zap.Bool("files_found", stats.FilesFound),
		zap.Int("exported_files", stats.ExportedFiles),
		zap.Int("ignored_files", stats.IgnoredFiles),
		zap.Int("ignored_directories", stats.IgnoredDirectories),
		zap.Int64("exported_bytes", stats.ExportedBytes))
}

// SwitchSummary prints the outcome of a switch run and, after a real run,
// the follow-up commands.
func (console *Console) SwitchSummary(stats types.RewriteStats) {
	console.println(fmt.Sprintf(switchSummaryFormat, successSymbol, stats.UpdatedFiles, stats.ScannedFiles, stats.RewrittenImports, stats.SkippedFiles))
	if stats.ManifestChanged {
		console.println(switchManifestChanged)
	} else {
		console.println(switchManifestSame)
	}
	console.logger.Info("switch finished",
		zap.Int("scanned_files", stats.ScannedFiles),
		zap.Int("updated_files", stats.UpdatedFiles),
		zap.Int("rewritten_imports", stats.RewrittenImports),
		zap.Int("skipped_files", stats.SkippedFiles),
		zap.Bool("manifest_changed", stats.ManifestChanged),
		zap.Bool("dry_run", stats.DryRun))
	if stats.DryRun {
		console.println(color.YellowString(switchDryRunNotice))
		return
	}
	console.println("")
	console.println(color.YellowString(warningSymbol + " " + nextStepsTitle))
	for index, followUp := range SwitchFollowUps {
		console.println(fmt.Sprintf(nextStepFormat, index+1, followUp))
	}
}
