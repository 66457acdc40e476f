package imports

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	removedLinePrefix = "- "
	addedLinePrefix   = "+ "
	lineBreak         = "\n"
)

// LineDiff renders the lines removed and added between before and after.
// Unchanged lines are omitted; identical inputs produce an empty string.
func LineDiff(before string, after string) string {
	differ := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := differ.DiffLinesToChars(before, after)
	diffs := differ.DiffCharsToLines(differ.DiffMain(beforeChars, afterChars, false), lineArray)

	var builder strings.Builder
	for _, difference := range diffs {
		var prefix string
		switch difference.Type {
		case diffmatchpatch.DiffDelete:
			prefix = removedLinePrefix
		case diffmatchpatch.DiffInsert:
			prefix = addedLinePrefix
		default:
			continue
		}
		for _, line := range strings.SplitAfter(difference.Text, lineBreak) {
			if line == "" {
				continue
			}
			builder.WriteString(prefix)
			builder.WriteString(strings.TrimSuffix(line, lineBreak))
			builder.WriteString(lineBreak)
		}
	}
	return builder.String()
}
