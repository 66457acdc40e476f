package output

import (
	"bufio"
	"io"
)

// DocumentWriter buffers document blocks and remembers the first write failure.
// Once a write fails every later write is a no-op returning the same error.
type DocumentWriter struct {
	buffered *bufio.Writer
	err      error
}

// NewDocumentWriter wraps destination with a buffered, error-remembering writer.
func NewDocumentWriter(destination io.Writer) *DocumentWriter {
	return &DocumentWriter{buffered: bufio.NewWriter(destination)}
}

// WriteString appends text to the document.
func (writer *DocumentWriter) WriteString(text string) error {
	if writer.err != nil {
		return writer.err
	}
	_, writeError := writer.buffered.WriteString(text)
	if writeError != nil {
		writer.err = writeError
	}
	return writer.err
}

// Flush pushes buffered bytes to the destination.
func (writer *DocumentWriter) Flush() error {
	if writer.err != nil {
		return writer.err
	}
	if flushError := writer.buffered.Flush(); flushError != nil {
		writer.err = flushError
	}
	return writer.err
}

// Err returns the first failure observed by the writer.
func (writer *DocumentWriter) Err() error {
	return writer.err
}
