// Package imports switches a Go module between an upstream import path and a
// fork: it rewrites import specs of every source file and edits the manifest.
package imports

import (
	"fmt"
	"strings"
)

// Mode selects the direction of a switch.
type Mode int

const (
	// ModeLocal points imports at the fork and replaces the upstream with the working tree.
	ModeLocal Mode = iota + 1
	// ModeUpstream points imports back at the upstream and drops the replacement.
	ModeUpstream
)

const (
	modeLocalName       = "local"
	modeUpstreamName    = "upstream"
	modeLocalAlias      = "1"
	modeUpstreamAlias   = "2"
	errorInvalidModeFmt = "%w: %q (expected %s)"
)

// ModeChoices lists the accepted mode spellings for help text.
var ModeChoices = []string{modeLocalName, modeUpstreamName, modeLocalAlias, modeUpstreamAlias}

var modeChoicesText = strings.Join(ModeChoices, "|")

// ParseMode accepts a mode name or its numeric alias.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case modeLocalName, modeLocalAlias:
		return ModeLocal, nil
	case modeUpstreamName, modeUpstreamAlias:
		return ModeUpstream, nil
	default:
		return 0, fmt.Errorf(errorInvalidModeFmt, ErrInvalidMode, value, modeChoicesText)
	}
}

// String returns the canonical mode name.
func (mode Mode) String() string {
	switch mode {
	case ModeLocal:
		return modeLocalName
	case ModeUpstream:
		return modeUpstreamName
	default:
		return ""
	}
}

// Direction returns the module path being replaced and its replacement.
func (mode Mode) Direction(upstreamPath string, forkPath string) (string, string) {
	if mode == ModeUpstream {
		return forkPath, upstreamPath
	}
	return upstreamPath, forkPath
}
