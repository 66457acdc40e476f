// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gotxt/internal/config"
	"github.com/temirov/gotxt/internal/report"
	"github.com/temirov/gotxt/internal/services/clipboard"
	"github.com/temirov/gotxt/internal/types"
	"github.com/temirov/gotxt/internal/utils"
)

const (
	configFlagName       = "config"
	verboseFlagName      = "verbose"
	versionFlagName      = "version"
	versionTemplate      = "gotxt version: %s\n"
	rootUse              = "gotxt"
	rootShortDescription = "gotxt command line interface"
	rootLongDescription  = `gotxt exports a source tree into a single text document and switches a Go module between an upstream import path and a fork.
Configuration is read from ~/.gotxt/config.yaml and ./config.yaml; flags override both.`
	configFlagDescription  = "configuration file replacing ./config.yaml"
	verboseFlagDescription = "log every processed file"
	versionFlagDescription = "display application version"

	initUse                  = types.CommandInit
	initShortDescription     = "write a default configuration file"
	initLongDescription      = `Write a commented default configuration to ./config.yaml, or to ~/.gotxt/config.yaml with --global.`
	globalFlagName           = "global"
	globalFlagDescription    = "write the global configuration"
	forceFlagName            = "force"
	forceFlagDescription     = "overwrite an existing configuration"
	initWrittenFormat        = "Configuration written to %s"
	workingDirectoryErrorFmt = "unable to determine working directory: %w"
	loadConfigurationErrFmt  = "loading configuration: %w"
)

// Dependencies carries the collaborators shared by every command.
type Dependencies struct {
	Logger           *zap.Logger
	LogLevel         zap.AtomicLevel
	Output           io.Writer
	Copier           clipboard.Copier
	WorkingDirectory string
}

// application holds per-invocation state resolved before a command runs.
type application struct {
	dependencies      Dependencies
	configurationPath string
	verbose           bool
	configuration     config.ApplicationConfiguration
}

// Execute runs the gotxt application.
func Execute(logger *zap.Logger, level zap.AtomicLevel) error {
	rootCommand := NewRootCommand(Dependencies{
		Logger:   logger,
		LogLevel: level,
		Output:   os.Stdout,
		Copier:   clipboard.NewService(),
	})
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command and its subcommands.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.Output == nil {
		dependencies.Output = os.Stdout
	}
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewService()
	}
	if dependencies.LogLevel == (zap.AtomicLevel{}) {
		dependencies.LogLevel = zap.NewAtomicLevel()
	}
	app := &application{dependencies: dependencies}
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(app.dependencies.Output, versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
			if app.verbose {
				app.dependencies.LogLevel.SetLevel(zap.DebugLevel)
			}
			if command.Name() == types.CommandInit {
				return nil
			}
			return app.loadConfiguration()
		},
	}
	rootCommand.SetOut(dependencies.Output)
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&app.configurationPath, configFlagName, "", configFlagDescription)
	rootCommand.PersistentFlags().BoolVar(&app.verbose, verboseFlagName, false, verboseFlagDescription)
	rootCommand.AddCommand(
		createExportCommand(app),
		createSwitchCommand(app),
		createInitCommand(app),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

func (app *application) workingDirectory() (string, error) {
	if app.dependencies.WorkingDirectory != "" {
		return app.dependencies.WorkingDirectory, nil
	}
	currentDirectory, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf(workingDirectoryErrorFmt, err)
	}
	return currentDirectory, nil
}

func (app *application) loadConfiguration() error {
	workingDirectory, workingDirectoryError := app.workingDirectory()
	if workingDirectoryError != nil {
		return workingDirectoryError
	}
	loadedConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: app.configurationPath,
	})
	if loadError != nil {
		return fmt.Errorf(loadConfigurationErrFmt, loadError)
	}
	app.configuration = loadedConfiguration
	return nil
}

// resolvePath anchors a relative path at the working directory.
func (app *application) resolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	workingDirectory, workingDirectoryError := app.workingDirectory()
	if workingDirectoryError != nil {
		return "", workingDirectoryError
	}
	return filepath.Join(workingDirectory, path), nil
}

func (app *application) console() *report.Console {
	return report.NewConsole(app.dependencies.Output, app.dependencies.Logger)
}

// createInitCommand returns the init subcommand.
func createInitCommand(app *application) *cobra.Command {
	var global bool
	var force bool
	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := app.workingDirectory()
			if workingDirectoryError != nil {
				return workingDirectoryError
			}
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: workingDirectory,
			})
			if initError != nil {
				return initError
			}
			app.console().Info(fmt.Sprintf(initWrittenFormat, writtenPath))
			return nil
		},
	}
	initCommand.Flags().BoolVar(&global, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, forceFlagName, false, forceFlagDescription)
	return initCommand
}
