package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/gotxt/internal/config"
	"github.com/temirov/gotxt/internal/imports"
	"github.com/temirov/gotxt/internal/types"
)

const (
	switchUse              = types.CommandSwitch + " [local|upstream|1|2]"
	switchAlias            = "s"
	switchShortDescription = "switch imports between the upstream module and a fork (" + switchAlias + ")"
	switchLongDescription  = `Rewrite the import specs of every .go file below --root and edit go.mod.
local (1): imports point at the fork, the module is renamed to the fork and "replace <upstream> => ./" is added.
upstream (2): imports point back at the upstream, the module is renamed back and the replace directive is dropped.`
	switchUsageExample = `  # Work against the local fork
  gotxt switch local

  # Preview the switch back to upstream
  gotxt switch 2 --dry-run`

	modeFlagName        = "mode"
	modeFlagDescription = "switch direction"
	upstreamFlagName    = "upstream"
	upstreamDescription = "upstream module path"
	forkFlagName        = "fork"
	forkDescription     = "fork module path"
	manifestFlagName    = "manifest"
	manifestDescription = "manifest path (default <root>/go.mod)"
	rootFlagName        = "root"
	rootDescription     = "tree whose imports are rewritten"
	dryRunFlagName      = "dry-run"
	dryRunDescription   = "print line diffs and write nothing"
	defaultSwitchRoot   = "."

	bannerSwitchLocalTitle    = "Switching to the LOCAL fork"
	bannerSwitchUpstreamTitle = "Switching to the UPSTREAM module"
	bannerFromLabel           = "From"
	bannerToLabel             = "To"
	bannerRootLabel           = "Root"
	conflictingModesFormat    = "%w: argument %q conflicts with --mode %q"
)

var errModeRequired = errors.New("a mode is required: local|upstream|1|2")

// switchOptions stores the switch flags.
type switchOptions struct {
	mode     imports.Mode
	upstream string
	fork     string
	manifest string
	root     string
	dryRun   bool
}

// createSwitchCommand returns the switch subcommand.
func createSwitchCommand(app *application) *cobra.Command {
	var options switchOptions
	switchCommand := &cobra.Command{
		Use:     switchUse,
		Aliases: []string{switchAlias},
		Short:   switchShortDescription,
		Long:    switchLongDescription,
		Example: switchUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			resolved, resolveError := resolveSwitchMode(options, arguments)
			if resolveError != nil {
				return resolveError
			}
			return app.runSwitch(mergeSwitchOptions(command, resolved, app.configuration.Switch))
		},
	}
	flags := switchCommand.Flags()
	registerModeFlag(flags, &options.mode)
	flags.StringVar(&options.upstream, upstreamFlagName, imports.DefaultUpstreamPath, upstreamDescription)
	flags.StringVar(&options.fork, forkFlagName, imports.DefaultForkPath, forkDescription)
	flags.StringVar(&options.manifest, manifestFlagName, "", manifestDescription)
	flags.StringVar(&options.root, rootFlagName, defaultSwitchRoot, rootDescription)
	flags.BoolVar(&options.dryRun, dryRunFlagName, false, dryRunDescription)
	return switchCommand
}

// resolveSwitchMode combines the positional mode with --mode.
func resolveSwitchMode(options switchOptions, arguments []string) (switchOptions, error) {
	resolved := options
	if len(arguments) == 1 {
		positionalMode, parseError := imports.ParseMode(arguments[0])
		if parseError != nil {
			return resolved, parseError
		}
		if resolved.mode != 0 && resolved.mode != positionalMode {
			return resolved, fmt.Errorf(conflictingModesFormat, imports.ErrInvalidMode, arguments[0], resolved.mode.String())
		}
		resolved.mode = positionalMode
	}
	if resolved.mode == 0 {
		return resolved, errModeRequired
	}
	return resolved, nil
}

// mergeSwitchOptions applies configured defaults to flags the user left unset.
func mergeSwitchOptions(command *cobra.Command, options switchOptions, configuration config.SwitchConfiguration) switchOptions {
	merged := options
	flags := command.Flags()
	if !flags.Changed(upstreamFlagName) && configuration.Upstream != "" {
		merged.upstream = configuration.Upstream
	}
	if !flags.Changed(forkFlagName) && configuration.Fork != "" {
		merged.fork = configuration.Fork
	}
	if !flags.Changed(manifestFlagName) && configuration.Manifest != "" {
		merged.manifest = configuration.Manifest
	}
	if !flags.Changed(rootFlagName) && configuration.Root != "" {
		merged.root = configuration.Root
	}
	if !flags.Changed(dryRunFlagName) && configuration.DryRun != nil {
		merged.dryRun = *configuration.DryRun
	}
	return merged
}

func (app *application) runSwitch(options switchOptions) error {
	console := app.console()
	rootPath, rootError := app.resolvePath(options.root)
	if rootError != nil {
		return rootError
	}
	manifestPath := options.manifest
	if manifestPath != "" {
		resolvedManifest, manifestError := app.resolvePath(manifestPath)
		if manifestError != nil {
			return manifestError
		}
		manifestPath = resolvedManifest
	}

	title := bannerSwitchLocalTitle
	if options.mode == imports.ModeUpstream {
		title = bannerSwitchUpstreamTitle
	}
	fromModule, toModule := options.mode.Direction(options.upstream, options.fork)
	console.Banner(title, [][2]string{{bannerFromLabel, fromModule}, {bannerToLabel, toModule}, {bannerRootLabel, rootPath}})

	stats, switchError := imports.Switch(imports.Options{
		Mode:         options.mode,
		UpstreamPath: options.upstream,
		ForkPath:     options.fork,
		ManifestPath: manifestPath,
		Root:         rootPath,
		DryRun:       options.dryRun,
		Reporter:     console,
	})
	if switchError != nil {
		return switchError
	}
	console.SwitchSummary(stats)
	return nil
}
