package imports

import (
	"bytes"
	"fmt"

	"golang.org/x/mod/modfile"
)

const localReplacementPath = "./"

// UpdateManifest applies a switch to the content of a go.mod file.
// ModeLocal renames the module from upstream to fork and adds
// "replace upstream => ./" when no replacement of upstream exists.
// ModeUpstream renames the module back and drops the replacement of upstream.
// The manifest is reformatted only when it changes.
func UpdateManifest(manifestPath string, content []byte, mode Mode, upstreamPath string, forkPath string) ([]byte, bool, error) {
	manifest, parseError := modfile.Parse(manifestPath, content, nil)
	if parseError != nil {
		return nil, false, fmt.Errorf(errorParseManifestFormat, manifestPath, parseError)
	}

	oldModule, newModule := mode.Direction(upstreamPath, forkPath)
	changed := false
	if manifest.Module != nil {
		if renamedPath, renamed := RewriteImportPath(manifest.Module.Mod.Path, oldModule, newModule); renamed && renamedPath != manifest.Module.Mod.Path {
			if moduleError := manifest.AddModuleStmt(renamedPath); moduleError != nil {
				return nil, false, fmt.Errorf(errorEditManifestFormat, manifestPath, moduleError)
			}
			changed = true
		}
	}

	switch mode {
	case ModeLocal:
		if !hasReplacement(manifest, upstreamPath) {
			if replaceError := manifest.AddReplace(upstreamPath, "", localReplacementPath, ""); replaceError != nil {
				return nil, false, fmt.Errorf(errorEditManifestFormat, manifestPath, replaceError)
			}
			changed = true
		}
	case ModeUpstream:
		for _, replacement := range manifest.Replace {
			if replacement.Old.Path != upstreamPath {
				continue
			}
			if dropError := manifest.DropReplace(replacement.Old.Path, replacement.Old.Version); dropError != nil {
				return nil, false, fmt.Errorf(errorEditManifestFormat, manifestPath, dropError)
			}
			changed = true
		}
	}

	if !changed {
		return content, false, nil
	}
	manifest.Cleanup()
	formatted := modfile.Format(manifest.Syntax)
	return formatted, !bytes.Equal(formatted, content), nil
}

func hasReplacement(manifest *modfile.File, modulePath string) bool {
	for _, replacement := range manifest.Replace {
		if replacement.Old.Path == modulePath {
			return true
		}
	}
	return false
}
