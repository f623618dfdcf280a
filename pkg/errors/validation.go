package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// MaxKeyLength bounds storage keys so they fit file names and Redis keys.
const MaxKeyLength = 128

// ValidateStateKey validates a storage key for safety and correctness.
// Keys become file names and remote document ids, so the rules are
// conservative:
//   - No empty keys
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of MaxKeyLength characters
func ValidateStateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "state key cannot be empty")
	}

	if len(key) > MaxKeyLength {
		return New(ErrCodeInvalidKey, "state key too long (max %d characters)", MaxKeyLength)
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidKey, "state key contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(key, pattern) {
			return New(ErrCodeInvalidKey, "state key contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateSessionID checks that id is a canonical UUID as issued by the
// HTTP API.
func ValidateSessionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "session id cannot be empty")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid session id %q", id)
	}
	if parsed.String() != strings.ToLower(id) {
		return New(ErrCodeInvalidInput, "session id %q is not in canonical form", id)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is asked to write.
// It rejects control characters and checks the extension matches format
// when one is given.
func ValidateOutputPath(path, format string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if format != "" {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if ext != "" && ext != format {
			return New(ErrCodeInvalidFormat, "output %q does not match format %s", path, format)
		}
	}

	return nil
}

// formatRegex matches the output formats the renderers understand.
var formatRegex = regexp.MustCompile(`^(svg|png|json|css)$`)

// ValidateFormat validates an output format name.
func ValidateFormat(format string) error {
	if !formatRegex.MatchString(format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want svg, png, json or css)", format)
	}
	return nil
}
