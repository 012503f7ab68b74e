// Package upload stores payment-receipt files. Only the stored path
// matters to the rest of the system; the files themselves are an external
// concern.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// ErrDisallowedType is returned for any extension outside jpg/jpeg/png/pdf.
var ErrDisallowedType = fmt.Errorf("file type not allowed: only jpg, jpeg, png and pdf are accepted")

// SaveReceipt writes the uploaded receipt under dir with a unique name and
// returns the stored path. The caller persists that path on the purchase.
func SaveReceipt(dir, originalName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrDisallowedType
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := "comprovante_" + uuid.NewString() + ext
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create receipt file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write receipt file: %w", err)
	}
	return path, nil
}
