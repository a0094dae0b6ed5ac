package utils

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DetectContentType detects the file type by reading the MIME type information of the file content.
func DetectContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer file.Close()

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading %s: %w", fname, err)
	}

	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(buffer[:n]), nil
}

// IsImageContent reports whether the sniffed content type of fname is an image.
func IsImageContent(fname string) (bool, error) {
	ctype, err := DetectContentType(fname)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(ctype, "image/"), nil
}
