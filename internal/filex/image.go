// Package filex reads game art from the local filesystem for the CLI:
// either inlined as a data URI or as raw bytes for a presigned upload.
package filex

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// MaxInlineImageBytes caps images embedded as data URIs. Larger files must
// go through the presigned-upload path and be referenced by URL.
const MaxInlineImageBytes = 5 * 1024 * 1024

// ReadImage loads the file and returns its bytes plus the sniffed MIME type.
// Non-image files are rejected.
func ReadImage(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}

	mime := http.DetectContentType(data)
	if len(mime) < 6 || mime[:6] != "image/" {
		return nil, "", fmt.Errorf("%s: not an image (detected %s)", path, mime)
	}
	return data, mime, nil
}

// ImageDataURI loads the file and encodes it as a data URI suitable for the
// Image field of a game entry. Files over MaxInlineImageBytes are rejected;
// the store would refuse them anyway.
func ImageDataURI(path string) (string, error) {
	data, mime, err := ReadImage(path)
	if err != nil {
		return "", err
	}
	if len(data) > MaxInlineImageBytes {
		return "", fmt.Errorf("%s: image exceeds %d bytes, upload it instead", path, MaxInlineImageBytes)
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
