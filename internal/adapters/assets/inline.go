// Package assets converts uploaded image files into the inlined
// binary-as-text form the store keeps next to plain URLs. Image fields accept
// either; documents carry their own assets so there is no separate file host.
package assets

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/layensweets/site/internal/domain"
)

// MaxBytes is the per-image ceiling, enforced before any encoding or store
// write. Inlined assets ride inside a single JSON document, so one oversized
// image can push the whole document past the backend's payload limit.
const MaxBytes = 1 << 20

// Inline reads r and returns a data URI. domain.ErrAssetTooLarge when the
// file exceeds MaxBytes, an error for anything that does not sniff as an
// image.
func Inline(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxBytes {
		return "", domain.ErrAssetTooLarge
	}
	if len(data) == 0 {
		return "", errors.New("empty file")
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", errors.New("not an image: " + mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// IsInlined reports whether the value of an image field carries inlined data
// rather than a URL.
func IsInlined(v string) bool {
	return strings.HasPrefix(v, "data:")
}
