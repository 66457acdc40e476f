package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/temirov/gotxt/internal/commands"
	"github.com/temirov/gotxt/internal/imports"
	"github.com/temirov/gotxt/internal/testutil"
	"github.com/temirov/gotxt/internal/utils"
)

const projectArchive = `
-- go.mod --
module github.com/tmc/langchaingo

go 1.22
-- main.go --
package main

import "github.com/tmc/langchaingo/llms"

func main() { _ = llms.X }
-- llms/llms.go --
package llms

var X int
-- llms/llms_gen.go --
package llms
-- internal/mocks/mock.go --
package mocks
`

type recordingCopier struct {
	copied string
}

func (copier *recordingCopier) Copy(text string) error {
	copier.copied = text
	return nil
}

func runCommand(t *testing.T, workingDirectory string, copier *recordingCopier, arguments ...string) (string, error) {
	t.Helper()
	previousNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previousNoColor })
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))

	var output bytes.Buffer
	rootCommand := NewRootCommand(Dependencies{
		Output:           &output,
		Copier:           copier,
		WorkingDirectory: workingDirectory,
	})
	rootCommand.SetArgs(arguments)
	rootCommand.SetErr(&output)
	executeError := rootCommand.Execute()
	return output.String(), executeError
}

func TestExportCommandWritesDefaultOutput(t *testing.T) {
	workingDirectory := testutil.NewTree(t, projectArchive)
	consoleOutput, err := runCommand(t, workingDirectory, &recordingCopier{}, "export", "-d", "internal/mocks", "-i", "llms_gen.go")
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, consoleOutput)
	}
	outputPath := filepath.Join(workingDirectory, filepath.Base(workingDirectory)+projectOutputSuffix)
	document := testutil.ReadFile(t, outputPath)
	for _, expected := range []string{"--- Arquivo: main.go ---", "--- Arquivo: llms/llms.go ---", "Pastas ignoradas: internal/mocks", "Arquivos ignorados: llms_gen.go"} {
		if !strings.Contains(document, expected) {
			t.Fatalf("expected %q in document:\n%s", expected, document)
		}
	}
	if strings.Contains(document, "mock.go") || strings.Contains(document, "--- Arquivo: llms/llms_gen.go") {
		t.Fatalf("excluded content exported:\n%s", document)
	}
	if !strings.Contains(consoleOutput, "Export finished: "+outputPath) {
		t.Fatalf("missing summary in console output:\n%s", consoleOutput)
	}
}

func TestExportCommandAppliesConfigurationAndIgnoreFile(t *testing.T) {
	workingDirectory := testutil.NewTree(t, projectArchive+"-- config.yaml --\nexport:\n  output: out/doc.txt\n  ignore_files: [llms_gen.go]\n  copy: true\n-- .gotxtignore --\ninternal/\n")
	copier := &recordingCopier{}
	consoleOutput, err := runCommand(t, workingDirectory, copier, "export")
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, consoleOutput)
	}
	document := testutil.ReadFile(t, filepath.Join(workingDirectory, "out", "doc.txt"))
	if strings.Contains(document, "mock.go") || strings.Contains(document, "--- Arquivo: llms/llms_gen.go") {
		t.Fatalf("configured exclusions ignored:\n%s", document)
	}
	if copier.copied != document {
		t.Fatalf("clipboard content differs from the document")
	}
}

func TestExportCommandFolderMode(t *testing.T) {
	workingDirectory := testutil.NewTree(t, projectArchive)
	consoleOutput, err := runCommand(t, workingDirectory, &recordingCopier{}, "export", "--folder", "llms")
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, consoleOutput)
	}
	document := testutil.ReadFile(t, filepath.Join(workingDirectory, "llms"+folderOutputSuffix))
	if !strings.HasPrefix(document, "Exportação da Pasta: llms\n") || !strings.Contains(document, "  - llms_gen.go\n") {
		t.Fatalf("unexpected folder document:\n%s", document)
	}
}

func TestExportCommandMissingSource(t *testing.T) {
	workingDirectory := t.TempDir()
	_, err := runCommand(t, workingDirectory, &recordingCopier{}, "export", "absent")
	if !errors.Is(err, commands.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestSwitchCommand(t *testing.T) {
	testCases := []struct {
		name          string
		arguments     []string
		expectedError error
		expectChanged bool
	}{
		{name: "local_by_alias", arguments: []string{"switch", "1"}, expectChanged: true},
		{name: "local_by_flag_dry_run", arguments: []string{"switch", "--mode", "local", "--dry-run"}},
		{name: "missing_mode", arguments: []string{"switch"}, expectedError: errModeRequired},
		{name: "conflicting_modes", arguments: []string{"switch", "local", "--mode", "upstream"}, expectedError: imports.ErrInvalidMode},
		{name: "invalid_positional", arguments: []string{"switch", "sideways"}, expectedError: imports.ErrInvalidMode},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			workingDirectory := testutil.NewTree(t, projectArchive)
			consoleOutput, err := runCommand(t, workingDirectory, &recordingCopier{}, testCase.arguments...)
			if testCase.expectedError != nil {
				if !errors.Is(err, testCase.expectedError) {
					t.Fatalf("expected %v, got %v", testCase.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("switch failed: %v\n%s", err, consoleOutput)
			}
			mainSource := testutil.ReadFile(t, filepath.Join(workingDirectory, "main.go"))
			rewritten := strings.Contains(mainSource, imports.DefaultForkPath+"/llms")
			if rewritten != testCase.expectChanged {
				t.Fatalf("expected rewritten=%v:\n%s", testCase.expectChanged, mainSource)
			}
			if testCase.expectChanged && !strings.Contains(consoleOutput, "go mod tidy") {
				t.Fatalf("missing follow-up hints:\n%s", consoleOutput)
			}
		})
	}
}

func TestInitCommandWritesLocalConfiguration(t *testing.T) {
	workingDirectory := t.TempDir()
	if _, err := runCommand(t, workingDirectory, &recordingCopier{}, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	configuration := testutil.ReadFile(t, filepath.Join(workingDirectory, utils.ConfigFileName))
	if !strings.Contains(configuration, "export:") || !strings.Contains(configuration, "switch:") {
		t.Fatalf("unexpected configuration:\n%s", configuration)
	}
	if _, err := runCommand(t, workingDirectory, &recordingCopier{}, "init"); err == nil {
		t.Fatalf("expected an error when the configuration exists")
	}
	if _, err := runCommand(t, workingDirectory, &recordingCopier{}, "init", "--force"); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
}
