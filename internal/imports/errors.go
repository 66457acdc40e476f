package imports

import "errors"

var (
	// ErrInvalidMode reports an unknown switch direction.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrInvalidModulePath reports an upstream or fork path that is not a valid import path.
	ErrInvalidModulePath = errors.New("invalid module path")
	// ErrManifestMissing reports a go.mod that cannot be found.
	ErrManifestMissing = errors.New("manifest not found")
)

const (
	errorModulePathFormat    = "%w: %q: %v"
	errorSamePathsFormat     = "%w: upstream and fork are both %q"
	errorManifestFormat      = "%w: %s"
	errorReadManifestFormat  = "reading manifest %s: %w"
	errorParseManifestFormat = "parsing manifest %s: %w"
	errorEditManifestFormat  = "editing manifest %s: %w"
	errorWriteManifestFormat = "writing manifest %s: %w"
	errorDiscoverFormat      = "discovering Go files under %s: %w"
	errorReadSourceFormat    = "reading %s: %w"
	errorWriteSourceFormat   = "writing %s: %w"
	errorUnquoteImportFormat = "unquoting import %s: %w"
	errorUnparseableFormat   = "%w: %s: %v"
)
