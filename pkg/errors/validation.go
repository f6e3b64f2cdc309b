package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidateFinite reports an INVALID_GEOMETRY error naming the first value
// that is NaN or infinite. what describes the geometry, e.g. "rectangle".
func ValidateFinite(what string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidGeometry, "%s: value %d is not finite (%v)", what, i, v)
		}
	}
	return nil
}

// colorRegex accepts hex colours, css colour keywords, "none", and the
// rgb()/rgba()/hsl()/var() functional forms.
var colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|(rgb|rgba|hsl|hsla|var)\([0-9a-zA-Z%.,\s_-]*\))$`)

// ValidateColor validates a paint value before it is written into an SVG
// attribute. An empty string means "not set" and is accepted.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if len(color) > 64 {
		return New(ErrCodeInvalidInput, "colour too long (max 64 characters)")
	}
	if !colorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid colour: %q", color)
	}
	return nil
}

// classRegex matches a space-separated list of CSS class names.
var classRegex = regexp.MustCompile(`^[A-Za-z_-][A-Za-z0-9_-]*( [A-Za-z_-][A-Za-z0-9_-]*)*$`)

// ValidateClass validates a CSS class list attached to a drawn path.
func ValidateClass(class string) error {
	if class == "" {
		return nil
	}
	if !classRegex.MatchString(class) {
		return New(ErrCodeInvalidInput, "invalid class list: %q", class)
	}
	return nil
}

// ValidatePath validates a scene file path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidInput, "path has leading or trailing whitespace")
	}

	return nil
}
