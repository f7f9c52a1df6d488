package errors

import (
	"strings"
	"unicode"
)

// ValidateSceneName validates a scene name used to look up manifest files.
// It rejects names that could be used for path traversal.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateSceneName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidScene, "scene name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidScene, "scene name too long (max 128 characters)")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "scene name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidScene, "scene name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidScene, "scene name cannot contain path traversal sequences (..)")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidScene, "scene name cannot be a hidden file")
	}

	return nil
}

// outputFormats are the formats the render pipeline can produce.
var outputFormats = map[string]bool{
	"svg": true,
	"png": true,
	"pdf": true,
}

// ValidateFormat validates a render output format name.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !outputFormats[format] {
		return New(ErrCodeInvalidFormat, "unsupported format %q (expected svg, png or pdf)", format)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
// Relative and absolute paths are both allowed; the checks only reject
// values that cannot be a sane file path.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}
