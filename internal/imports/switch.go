package imports

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/module"

	"github.com/temirov/gotxt/internal/types"
)

const (
	// DefaultUpstreamPath is the module path imports point at in upstream mode.
	DefaultUpstreamPath = "github.com/tmc/langchaingo"
	// DefaultForkPath is the module path imports point at in local mode.
	DefaultForkPath = "github.com/devmiahub/langchaingo"
	// DefaultManifestName is the manifest looked up under the root when no path is given.
	DefaultManifestName = "go.mod"

	warningSkipFormat           = "Skipping file: %v"
	infoScanningFormat          = "Found %d Go files under %s."
	infoManifestUnchangedFormat = "%s needs no changes."
	infoManifestUpdatedFormat   = "%s updated."
)

// Reporter receives progress notices while a switch runs.
type Reporter interface {
	Info(message string)
	Warn(message string)
	FileRewritten(path string, replacements int)
	Diff(path string, lineDiff string)
}

type nopReporter struct{}

func (nopReporter) Info(string)               {}
func (nopReporter) Warn(string)               {}
func (nopReporter) FileRewritten(string, int) {}
func (nopReporter) Diff(string, string)       {}

// Options configures one switch run.
type Options struct {
	Mode         Mode
	UpstreamPath string
	ForkPath     string
	ManifestPath string
	Root         string
	DryRun       bool
	Reporter     Reporter
}

// Switch rewrites every import of the outgoing module path below Root and
// updates the manifest for the selected mode. With DryRun set nothing is
// written and line diffs are handed to the reporter instead.
func Switch(options Options) (types.RewriteStats, error) {
	stats := types.RewriteStats{DryRun: options.DryRun}
	reporter := options.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	if options.Mode != ModeLocal && options.Mode != ModeUpstream {
		return stats, fmt.Errorf(errorInvalidModeFmt, ErrInvalidMode, options.Mode.String(), modeChoicesText)
	}
	if validationError := validateModulePaths(options.UpstreamPath, options.ForkPath); validationError != nil {
		return stats, validationError
	}

	root := options.Root
	if root == "" {
		root = "."
	}
	manifestPath := options.ManifestPath
	if manifestPath == "" {
		manifestPath = filepath.Join(root, DefaultManifestName)
	}
	manifestContent, readManifestError := os.ReadFile(manifestPath)
	if readManifestError != nil {
		if errors.Is(readManifestError, os.ErrNotExist) {
			return stats, fmt.Errorf(errorManifestFormat, ErrManifestMissing, manifestPath)
		}
		return stats, fmt.Errorf(errorReadManifestFormat, manifestPath, readManifestError)
	}
	updatedManifest, manifestChanged, manifestError := UpdateManifest(manifestPath, manifestContent, options.Mode, options.UpstreamPath, options.ForkPath)
	if manifestError != nil {
		return stats, manifestError
	}

	goFiles, discoverError := DiscoverGoFiles(root)
	if discoverError != nil {
		return stats, discoverError
	}
	reporter.Info(fmt.Sprintf(infoScanningFormat, len(goFiles), root))

	oldModule, newModule := options.Mode.Direction(options.UpstreamPath, options.ForkPath)
	for _, goFile := range goFiles {
		stats.ScannedFiles++
		replacements, rewriteError := rewriteFile(goFile, oldModule, newModule, options.DryRun, reporter)
		if rewriteError != nil {
			if errors.Is(rewriteError, errUnparseable) {
				stats.SkippedFiles++
				reporter.Warn(fmt.Sprintf(warningSkipFormat, rewriteError))
				continue
			}
			return stats, rewriteError
		}
		if replacements > 0 {
			stats.UpdatedFiles++
			stats.RewrittenImports += replacements
		}
	}

	stats.ManifestChanged = manifestChanged
	if !manifestChanged {
		reporter.Info(fmt.Sprintf(infoManifestUnchangedFormat, manifestPath))
		return stats, nil
	}
	if options.DryRun {
		reporter.Diff(manifestPath, LineDiff(string(manifestContent), string(updatedManifest)))
		return stats, nil
	}
	if writeError := writePreservingMode(manifestPath, updatedManifest); writeError != nil {
		return stats, fmt.Errorf(errorWriteManifestFormat, manifestPath, writeError)
	}
	reporter.Info(fmt.Sprintf(infoManifestUpdatedFormat, manifestPath))
	return stats, nil
}

var errUnparseable = errors.New("unparseable Go source")

func rewriteFile(goFile string, oldModule string, newModule string, dryRun bool, reporter Reporter) (int, error) {
	// #nosec G304
	source, readError := os.ReadFile(goFile)
	if readError != nil {
		return 0, fmt.Errorf(errorReadSourceFormat, goFile, readError)
	}
	rewritten, replacements, rewriteError := RewriteSource(goFile, source, oldModule, newModule)
	if rewriteError != nil {
		return 0, fmt.Errorf(errorUnparseableFormat, errUnparseable, goFile, rewriteError)
	}
	if replacements == 0 {
		return 0, nil
	}
	if dryRun {
		reporter.Diff(goFile, LineDiff(string(source), string(rewritten)))
	} else if writeError := writePreservingMode(goFile, rewritten); writeError != nil {
		return 0, fmt.Errorf(errorWriteSourceFormat, goFile, writeError)
	}
	reporter.FileRewritten(goFile, replacements)
	return replacements, nil
}

func writePreservingMode(path string, content []byte) error {
	fileInformation, statError := os.Stat(path)
	if statError != nil {
		return statError
	}
	return os.WriteFile(path, content, fileInformation.Mode().Perm())
}

func validateModulePaths(upstreamPath string, forkPath string) error {
	for _, modulePath := range []string{upstreamPath, forkPath} {
		if checkError := module.CheckImportPath(modulePath); checkError != nil {
			return fmt.Errorf(errorModulePathFormat, ErrInvalidModulePath, modulePath, checkError)
		}
	}
	if upstreamPath == forkPath {
		return fmt.Errorf(errorSamePathsFormat, ErrInvalidModulePath, upstreamPath)
	}
	return nil
}
