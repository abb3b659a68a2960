package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxDimension bounds viewport sides to keep band arithmetic in a sane range.
const MaxDimension = 1 << 16

// ValidateDimension checks a viewport side length.
// It must be finite, positive and at most [MaxDimension].
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %v", name, v)
	}
	if v > MaxDimension {
		return New(ErrCodeInvalidInput, "%s too large (max %d)", name, MaxDimension)
	}
	return nil
}

// ValidateMagnitude checks a single segment value.
// Negative, NaN and infinite values would break the monotonic y0/y1 stacking.
func ValidateMagnitude(v float64) error {
	switch {
	case math.IsNaN(v):
		return New(ErrCodeMalformedInput, "segment value is NaN")
	case math.IsInf(v, 0):
		return New(ErrCodeMalformedInput, "segment value is infinite")
	case v < 0:
		return New(ErrCodeMalformedInput, "segment value %v is negative", v)
	}
	return nil
}

// ValidateIdentity checks a bar's unique_id.
// Identities become element keys, so they must be non-empty and free of
// control characters.
func ValidateIdentity(id string) error {
	if id == "" {
		return New(ErrCodeMalformedInput, "unique_id cannot be empty")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeMalformedInput, "unique_id %q contains control characters", id)
		}
	}
	return nil
}

// SnapshotExtensions lists the file extensions accepted for dataset snapshots.
var SnapshotExtensions = map[string]bool{
	".json": true,
	".toml": true,
}

// ValidateSnapshotPath validates a dataset snapshot path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .json or .toml (case-insensitive)
func ValidateSnapshotPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !SnapshotExtensions[ext] {
		return New(ErrCodeInvalidFormat, "unsupported snapshot extension %q (must be .json or .toml)", ext)
	}
	return nil
}
