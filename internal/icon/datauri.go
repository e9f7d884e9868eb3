package icon

import (
	"encoding/base64"
	"strings"

	"github.com/craftstat/craftstat/internal/exception"
)

const (
	uriPrefix    = "data:image/"
	uriSeparator = ";base64,"
)

// ParseDataURI splits a data:image/<ext>;base64,<body> payload into its
// image extension and decoded bytes. Anything not matching that exact
// grammar is exception.ErrMalformedIcon.
func ParseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, uriPrefix)

	if !ok {
		return "", nil, exception.ErrMalformedIcon
	}

	ext, body, found := strings.Cut(rest, uriSeparator)

	if !found || ext == "" {
		return "", nil, exception.ErrMalformedIcon
	}

	data, err := base64.StdEncoding.DecodeString(body)

	if err != nil {
		return "", nil, exception.ErrMalformedIcon
	}

	return ext, data, nil
}
