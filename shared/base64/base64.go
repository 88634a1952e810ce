package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const dataURLMarker = ";base64,"

var ErrNotDataURL = errors.New("value is not a base64 data URL")

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, dataURLMarker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// IsDataURL reports whether file looks like "data:<mime>;base64,<payload>".
func IsDataURL(file string) bool {
	return strings.HasPrefix(file, "data:") && GetContentType(file) != ""
}

// Decode returns the content type and raw bytes of a base64 data URL.
func Decode(file string) (string, []byte, error) {
	if !IsDataURL(file) {
		return "", nil, ErrNotDataURL
	}

	payload := file[strings.Index(file, dataURLMarker)+len(dataURLMarker):]

	data, err := stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return GetContentType(file), data, nil
}
