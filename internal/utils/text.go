package utils

import (
	"golang.org/x/text/encoding/unicode"
)

// DecodeText interprets data as UTF-8 text. Invalid byte sequences are replaced
// with the Unicode replacement character instead of failing the read.
func DecodeText(data []byte) (string, error) {
	decoded, decodeError := unicode.UTF8.NewDecoder().Bytes(data)
	if decodeError != nil {
		return "", decodeError
	}
	return string(decoded), nil
}
