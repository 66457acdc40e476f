package commands

import (
	"strings"

	"github.com/temirov/gotxt/internal/types"
	"github.com/temirov/gotxt/internal/utils"
)

const (
	rootRelativePath = utils.CurrentDirectoryPath
	extensionPrefix  = "."
)

// normalizeExtension trims the extension and guarantees a leading dot.
// An empty extension selects Go sources.
func normalizeExtension(extension string) string {
	trimmed := strings.TrimSpace(extension)
	if trimmed == "" {
		return types.DefaultExtension
	}
	if !strings.HasPrefix(trimmed, extensionPrefix) {
		return extensionPrefix + trimmed
	}
	return trimmed
}

func hasExtension(fileName string, extension string) bool {
	return strings.HasSuffix(fileName, extension)
}
