package imports

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	goFilesPattern       = "**/*.go"
	skippedPathPattern   = "**/{.git,vendor,node_modules}/**"
	pathSeparator        = "/"
	rawStringQuote       = '`'
	rawStringQuoteString = "`"
)

// RewriteImportPath replaces oldModule in importPath when the path is the
// module itself or one of its packages. Paths merely sharing a textual prefix
// are left alone.
func RewriteImportPath(importPath string, oldModule string, newModule string) (string, bool) {
	if importPath == oldModule {
		return newModule, true
	}
	if strings.HasPrefix(importPath, oldModule+pathSeparator) {
		return newModule + strings.TrimPrefix(importPath, oldModule), true
	}
	return importPath, false
}

type importEdit struct {
	start       int
	end         int
	replacement string
}

// RewriteSource rewrites the import specs of one Go source file. Only the
// bytes of each matching import literal change; the quoting style is kept.
// It returns the new content and the number of rewritten imports.
func RewriteSource(fileName string, source []byte, oldModule string, newModule string) ([]byte, int, error) {
	fileSet := token.NewFileSet()
	parsedFile, parseError := parser.ParseFile(fileSet, fileName, source, parser.ImportsOnly)
	if parseError != nil {
		return nil, 0, parseError
	}

	var edits []importEdit
	for _, importSpec := range parsedFile.Imports {
		literal := importSpec.Path.Value
		importPath, unquoteError := strconv.Unquote(literal)
		if unquoteError != nil {
			return nil, 0, fmt.Errorf(errorUnquoteImportFormat, literal, unquoteError)
		}
		rewrittenPath, rewritten := RewriteImportPath(importPath, oldModule, newModule)
		if !rewritten {
			continue
		}
		start := fileSet.Position(importSpec.Path.Pos()).Offset
		edits = append(edits, importEdit{
			start:       start,
			end:         start + len(literal),
			replacement: quoteLike(literal, rewrittenPath),
		})
	}
	if len(edits) == 0 {
		return source, 0, nil
	}

	var rewrittenSource bytes.Buffer
	rewrittenSource.Grow(len(source))
	cursor := 0
	for _, edit := range edits {
		rewrittenSource.Write(source[cursor:edit.start])
		rewrittenSource.WriteString(edit.replacement)
		cursor = edit.end
	}
	rewrittenSource.Write(source[cursor:])
	return rewrittenSource.Bytes(), len(edits), nil
}

func quoteLike(originalLiteral string, importPath string) string {
	if originalLiteral != "" && originalLiteral[0] == rawStringQuote {
		return rawStringQuoteString + importPath + rawStringQuoteString
	}
	return strconv.Quote(importPath)
}

// DiscoverGoFiles returns every .go file below root, sorted, skipping
// version-control, vendored and node dependency directories.
func DiscoverGoFiles(root string) ([]string, error) {
	var goFiles []string
	walkError := doublestar.GlobWalk(os.DirFS(root), goFilesPattern, func(matchedPath string, entry fs.DirEntry) error {
		if entry.IsDir() {
			return nil
		}
		skipped, matchError := doublestar.Match(skippedPathPattern, matchedPath)
		if matchError != nil {
			return matchError
		}
		if skipped {
			return nil
		}
		goFiles = append(goFiles, filepath.Join(root, filepath.FromSlash(matchedPath)))
		return nil
	})
	if walkError != nil {
		return nil, fmt.Errorf(errorDiscoverFormat, root, walkError)
	}
	sort.Strings(goFiles)
	return goFiles, nil
}
