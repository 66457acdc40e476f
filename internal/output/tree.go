package output

import "strings"

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeIndent          = "    "
	directorySuffix     = "/"
)

// TreeRootLine renders the always-present root line of the tree diagram.
func TreeRootLine(rootName string) string {
	return rootName + directorySuffix + "\n"
}

// TreeDirectoryLine renders a directory found depth levels below the root.
func TreeDirectoryLine(directoryName string, depth int) string {
	return strings.Repeat(treeIndent, depth) + treeLastConnector + directoryName + directorySuffix + "\n"
}

// TreeFileLines renders the files of a directory at the given depth.
// The last file uses the terminal connector.
func TreeFileLines(fileNames []string, directoryDepth int) string {
	var builder strings.Builder
	indent := strings.Repeat(treeIndent, directoryDepth+1)
	for index, fileName := range fileNames {
		connector := treeBranchConnector
		if index == len(fileNames)-1 {
			connector = treeLastConnector
		}
		builder.WriteString(indent)
		builder.WriteString(connector)
		builder.WriteString(fileName)
		builder.WriteString("\n")
	}
	return builder.String()
}
