package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// DesignExtensions lists the file extensions accepted for design files.
var DesignExtensions = []string{".toml", ".yaml", ".yml", ".json"}

// ValidatePath validates a local file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateDesignPath validates a design file path and its extension.
// The extension check is case-insensitive.
func ValidateDesignPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range DesignExtensions {
		if ext == allowed {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported design file %q (want one of %s)",
		filepath.Base(path), strings.Join(DesignExtensions, ", "))
}

// ValidateView checks that a view name is "side", "front" or "both".
func ValidateView(view string) error {
	switch view {
	case "side", "front", "both":
		return nil
	}
	return New(ErrCodeInvalidView, "invalid view: %s (must be 'side', 'front', or 'both')", view)
}
