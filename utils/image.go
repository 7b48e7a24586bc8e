package utils

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// IsDataURI reports whether s looks like an inline base64 image payload
// rather than an already-stored path/URL.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:image/")
}

// SaveBase64Image decodes a data:image/... URI into folder and returns the
// stored path. Filenames are random so uploads never collide.
func SaveBase64Image(dataURI, folder string) (string, error) {
	i := strings.Index(dataURI, ";base64,")
	if !IsDataURI(dataURI) || i < 0 {
		return "", errors.New("invalid image data URI")
	}

	ext := ".png"
	switch dataURI[5:i] {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}

	data, err := base64.StdEncoding.DecodeString(dataURI[i+len(";base64,"):])
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(folder, uuid.NewString()+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
