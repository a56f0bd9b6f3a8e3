package errors

import (
	"strings"
	"unicode"

	"github.com/blockforge/blockforge/pkg/model"
)

// ValidateKind validates a block kind string from external input
// (CLI flags, API payloads).
func ValidateKind(kind string) error {
	if !model.Kind(kind).Valid() {
		return New(ErrCodeInvalidKind, "unknown block kind: %q (want logical or functional)", kind)
	}
	return nil
}

// ValidateSide validates a port side string from external input.
func ValidateSide(side string) error {
	if !model.Side(side).Valid() {
		return New(ErrCodeInvalidSide, "unknown port side: %q (want left, right, top or bottom)", side)
	}
	return nil
}

// ValidateSnapshotName validates a snapshot name used as a storage key
// or filename. It rejects names that could be used for path traversal.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateSnapshotName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "snapshot name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidName, "snapshot name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "snapshot name contains control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\", "\x00"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "snapshot name contains invalid sequence: %q", pattern)
		}
	}

	return nil
}
