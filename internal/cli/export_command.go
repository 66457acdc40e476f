package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/temirov/gotxt/internal/commands"
	"github.com/temirov/gotxt/internal/config"
	"github.com/temirov/gotxt/internal/exclusion"
	"github.com/temirov/gotxt/internal/services/clipboard"
	"github.com/temirov/gotxt/internal/types"
)

const (
	exportUse              = types.CommandExport + " [source]"
	exportAlias            = "e"
	exportShortDescription = "export a source tree into one text document (" + exportAlias + ")"
	exportLongDescription  = `Walk the source directory (default: current directory), keep files of the target extension and write
a directory tree followed by the content of every kept file into a single text document.
Use --folder to export only the files directly inside one folder.`
	exportUsageExample = `  # Export the whole project
  gotxt export

  # Export one folder with a custom output name
  gotxt export --folder pkg/agents --output agents.txt

  # Skip generated code and mocks
  gotxt export -d internal/mocks -i wire_gen.go`

	outputFlagName          = "output"
	outputFlagShorthand     = "o"
	folderFlagName          = "folder"
	folderFlagShorthand     = "f"
	extensionFlagName       = "ext"
	excludeDirFlagName      = "exclude-dir"
	excludeDirShorthand     = "d"
	ignoreFileFlagName      = "ignore-file"
	ignoreFileShorthand     = "i"
	noIgnoreFileFlagName    = "no-ignore-file"
	copyFlagName            = "copy"
	outputFlagDescription   = "output file (default <project>_codigo_completo.txt or <folder>_codigo.txt in the working directory)"
	folderFlagDescription   = "export only this folder, non-recursively"
	extensionDescription    = "target file extension"
	excludeDirDescription   = "directory path relative to the source to exclude (repeatable)"
	ignoreFileDescription   = "file name to exclude (repeatable)"
	noIgnoreFileDescription = "do not read " + config.IgnoreFileName
	copyFlagDescription     = "copy the produced document to the clipboard"

	projectOutputSuffix = "_codigo_completo.txt"
	folderOutputSuffix  = "_codigo.txt"
	defaultSourcePath   = "."

	bannerProjectTitle  = "MODE: export whole project"
	bannerFolderTitle   = "MODE: export single folder"
	bannerSourceLabel   = "Source"
	bannerFolderLabel   = "Folder"
	bannerOutputLabel   = "Output"
	copiedMessageFormat = "Document copied to clipboard (%s)."
	copyFailedFormat    = "copying %s to clipboard: %w"
)

// exportOptions stores the export flags.
type exportOptions struct {
	output             string
	folder             string
	extension          string
	excludeDirectories []string
	ignoreFiles        []string
	noIgnoreFile       bool
	copy               bool
}

// createExportCommand returns the export subcommand.
func createExportCommand(app *application) *cobra.Command {
	var options exportOptions
	exportCommand := &cobra.Command{
		Use:     exportUse,
		Aliases: []string{exportAlias},
		Short:   exportShortDescription,
		Long:    exportLongDescription,
		Example: exportUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			source := defaultSourcePath
			if len(arguments) == 1 {
				source = arguments[0]
			}
			return app.runExport(command, source, options)
		},
	}
	flags := exportCommand.Flags()
	flags.StringVarP(&options.output, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	flags.StringVarP(&options.folder, folderFlagName, folderFlagShorthand, "", folderFlagDescription)
	flags.StringVar(&options.extension, extensionFlagName, types.DefaultExtension, extensionDescription)
	flags.StringSliceVarP(&options.excludeDirectories, excludeDirFlagName, excludeDirShorthand, nil, excludeDirDescription)
	flags.StringSliceVarP(&options.ignoreFiles, ignoreFileFlagName, ignoreFileShorthand, nil, ignoreFileDescription)
	flags.BoolVar(&options.noIgnoreFile, noIgnoreFileFlagName, false, noIgnoreFileDescription)
	flags.BoolVar(&options.copy, copyFlagName, false, copyFlagDescription)
	return exportCommand
}

// mergeExportOptions applies configured defaults to flags the user left unset.
// Exclusion lists from flags extend the configured ones.
func mergeExportOptions(command *cobra.Command, options exportOptions, configuration config.ExportConfiguration) exportOptions {
	merged := options
	flags := command.Flags()
	if !flags.Changed(extensionFlagName) && configuration.Extension != "" {
		merged.extension = configuration.Extension
	}
	if !flags.Changed(outputFlagName) && configuration.Output != "" {
		merged.output = configuration.Output
	}
	if !flags.Changed(copyFlagName) && configuration.Clipboard != nil {
		merged.copy = *configuration.Clipboard
	}
	if !flags.Changed(noIgnoreFileFlagName) && configuration.UseIgnoreFile != nil {
		merged.noIgnoreFile = !*configuration.UseIgnoreFile
	}
	merged.excludeDirectories = append(append([]string{}, configuration.ExcludeDirectories...), options.excludeDirectories...)
	merged.ignoreFiles = append(append([]string{}, configuration.IgnoreFiles...), options.ignoreFiles...)
	return merged
}

func (app *application) runExport(command *cobra.Command, source string, flagOptions exportOptions) error {
	options := mergeExportOptions(command, flagOptions, app.configuration.Export)
	console := app.console()

	sourcePath, sourceError := app.resolvePath(source)
	if sourceError != nil {
		return sourceError
	}
	exclusions, exclusionError := config.LoadProjectExclusions(sourcePath, !options.noIgnoreFile, options.excludeDirectories, options.ignoreFiles)
	if exclusionError != nil {
		return exclusionError
	}
	exclusionSet := exclusion.NewSet(exclusions.Directories, exclusions.Files)

	var stats types.ExportStats
	var exportError error
	if options.folder != "" {
		folderPath, folderError := app.resolvePath(options.folder)
		if folderError != nil {
			return folderError
		}
		outputPath, outputError := app.defaultOutput(options.output, filepath.Base(filepath.Clean(folderPath))+folderOutputSuffix)
		if outputError != nil {
			return outputError
		}
		console.Banner(bannerFolderTitle, [][2]string{{bannerFolderLabel, folderPath}, {bannerOutputLabel, outputPath}})
		stats, exportError = commands.ExportFolder(commands.FolderOptions{
			Folder:     folderPath,
			OutputPath: outputPath,
			Exclusions: exclusionSet,
			Extension:  options.extension,
			Reporter:   console,
		})
	} else {
		outputPath, outputError := app.defaultOutput(options.output, filepath.Base(filepath.Clean(sourcePath))+projectOutputSuffix)
		if outputError != nil {
			return outputError
		}
		console.Banner(bannerProjectTitle, [][2]string{{bannerSourceLabel, sourcePath}, {bannerOutputLabel, outputPath}})
		stats, exportError = commands.Export(commands.ExportOptions{
			SourceFolder: sourcePath,
			OutputPath:   outputPath,
			Exclusions:   exclusionSet,
			Extension:    options.extension,
			Reporter:     console,
		})
	}
	if exportError != nil {
		return exportError
	}
	console.ExportSummary(stats)

	if options.copy {
		if copyError := clipboard.CopyDocument(app.dependencies.Copier, stats.OutputPath); copyError != nil {
			return fmt.Errorf(copyFailedFormat, stats.OutputPath, copyError)
		}
		console.Info(fmt.Sprintf(copiedMessageFormat, stats.OutputPath))
	}
	return nil
}

// defaultOutput resolves the requested output or, when empty, the default name in the working directory.
func (app *application) defaultOutput(requested string, defaultName string) (string, error) {
	if requested == "" {
		requested = defaultName
	}
	return app.resolvePath(requested)
}
