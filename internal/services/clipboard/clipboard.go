// Package clipboard copies finished documents to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// ErrUnavailable reports that no clipboard utility is installed.
var ErrUnavailable = errors.New("clipboard unavailable")

const errorReadDocumentFormat = "reading %s for clipboard: %w"

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a Clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// CopyDocument copies the content of the document at documentPath.
func CopyDocument(copier Copier, documentPath string) error {
	// #nosec G304
	document, readError := os.ReadFile(documentPath)
	if readError != nil {
		return fmt.Errorf(errorReadDocumentFormat, documentPath, readError)
	}
	return copier.Copy(string(document))
}

var _ Copier = (*Service)(nil)
