package imaging

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const base64Marker = ";base64,"

// EncodeDataURI returns data as a "data:<mime>;base64,<payload>" string.
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + base64Marker + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI splits a base64 data URI into its MIME type and payload.
func DecodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURI)
	}

	mime, payload, ok := strings.Cut(rest, base64Marker)
	if !ok {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURI)
	}
	if mime == "" {
		return "", nil, fmt.Errorf("%w: missing media type", ErrInvalidDataURI)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("%w: empty payload", ErrInvalidDataURI)
	}

	return mime, data, nil
}

// IsImageDataURI reports whether s looks like a base64 image data URI
// without decoding the payload.
func IsImageDataURI(s string) bool {
	rest, ok := strings.CutPrefix(s, "data:image/")
	if !ok {
		return false
	}
	mime, payload, ok := strings.Cut(rest, base64Marker)
	return ok && mime != "" && payload != ""
}
