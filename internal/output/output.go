// Package output formats the blocks of an export document.
package output

import (
	"fmt"
	"strings"
)

const (
	// RuleWidth is the width of the section rule separating document blocks.
	RuleWidth = 80
	// exceptionsRuleWidth is the width of the rule closing the exclusions block.
	exceptionsRuleWidth = 30

	ruleCharacter       = "="
	exceptionsCharacter = "-"
	listSeparator       = ", "

	projectHeaderFormat     = "Estrutura do Projeto e Arquivos %s Encontrados:\n"
	exceptionsTitle         = "\n--- EXCEÇÕES APLICADAS ---\n"
	ignoredFilesFormat      = "Arquivos ignorados: %s\n"
	ignoredDirectoriesFmt   = "Pastas ignoradas: %s\n"
	fileHeaderFormat        = "--- Arquivo: %s ---\n"
	fenceOpenFormat         = "```%s\n"
	fenceClose              = "\n```\n"
	readErrorFormat         = "\n[ERRO AO LER ARQUIVO: %v]\n"
	missingFilesFormat      = "⚠️  Nenhum arquivo %s encontrado em '%s' (após aplicar filtros e exceções)."
	folderHeaderFormat      = "Exportação da Pasta: %s\nCaminho: %s\n"
	folderListingFormat     = "Arquivos %s encontrados na pasta:\n"
	folderListingItemFormat = "  - %s\n"
	folderEmptyFormat       = "⚠️  Nenhum arquivo %s encontrado na pasta '%s'."
	folderNoValidFormat     = "⚠️  Nenhum arquivo %s válido encontrado na pasta '%s' (após aplicar filtros)."
)

// SectionRule is the fixed-width rule written between document sections.
var SectionRule = strings.Repeat(ruleCharacter, RuleWidth)

// SectionTerminator closes the tree diagram and every content block.
var SectionTerminator = "\n" + SectionRule + "\n\n"

// languageIdentifiers maps file extensions to fenced code block tags.
var languageIdentifiers = map[string]string{
	".go":    "go",
	".py":    "python",
	".ts":    "typescript",
	".tsx":   "tsx",
	".js":    "javascript",
	".rs":    "rust",
	".java":  "java",
	".rb":    "ruby",
	".sh":    "bash",
	".md":    "markdown",
	".yaml":  "yaml",
	".yml":   "yaml",
	".proto": "protobuf",
	".sql":   "sql",
}

// LanguageIdentifier returns the fence tag for a target extension.
func LanguageIdentifier(extension string) string {
	normalized := strings.ToLower(extension)
	if identifier, known := languageIdentifiers[normalized]; known {
		return identifier
	}
	return strings.TrimPrefix(normalized, ".")
}

// ProjectHeader returns the first line of a full project export.
func ProjectHeader(extension string) string {
	return fmt.Sprintf(projectHeaderFormat, extension)
}

// ExclusionsBlock lists the configured exclusions. It is empty when nothing is excluded.
func ExclusionsBlock(ignoredFiles []string, ignoredDirectories []string) string {
	if len(ignoredFiles) == 0 && len(ignoredDirectories) == 0 {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(exceptionsTitle)
	if len(ignoredFiles) > 0 {
		fmt.Fprintf(&builder, ignoredFilesFormat, strings.Join(ignoredFiles, listSeparator))
	}
	if len(ignoredDirectories) > 0 {
		fmt.Fprintf(&builder, ignoredDirectoriesFmt, strings.Join(ignoredDirectories, listSeparator))
	}
	builder.WriteString(strings.Repeat(exceptionsCharacter, exceptionsRuleWidth))
	builder.WriteString("\n\n")
	return builder.String()
}

// ContentBlock renders the header, fenced body and rule for one file.
// A read failure replaces the body with an inline error marker.
func ContentBlock(headerPath string, record string, readError error, language string) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, fileHeaderFormat, headerPath)
	fmt.Fprintf(&builder, fenceOpenFormat, language)
	if readError != nil {
		fmt.Fprintf(&builder, readErrorFormat, readError)
	} else {
		builder.WriteString(record)
	}
	builder.WriteString(fenceClose)
	builder.WriteString(SectionTerminator)
	return builder.String()
}

// MissingFilesWarning is appended to a project export that selected no file.
func MissingFilesWarning(extension string, sourceFolder string) string {
	return fmt.Sprintf(missingFilesFormat, extension, sourceFolder)
}

// FolderHeader opens a single-folder export.
func FolderHeader(folderName string, absolutePath string) string {
	return fmt.Sprintf(folderHeaderFormat, folderName, absolutePath)
}

// FolderListing enumerates the files included in a single-folder export.
func FolderListing(extension string, fileNames []string) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, folderListingFormat, extension)
	for _, fileName := range fileNames {
		fmt.Fprintf(&builder, folderListingItemFormat, fileName)
	}
	builder.WriteString(SectionTerminator)
	return builder.String()
}

// FolderEmptyWarning reports a folder without any file of the target extension.
func FolderEmptyWarning(extension string, folder string) string {
	return fmt.Sprintf(folderEmptyFormat, extension, folder)
}

// FolderNoValidWarning reports a folder whose files were all excluded by name.
func FolderNoValidWarning(extension string, folder string) string {
	return fmt.Sprintf(folderNoValidFormat, extension, folder)
}
