package validators

import (
	"regexp"
	"strings"
)

var (
	legacyPlatePattern   = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlatePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
	plateMaskAllowed     = regexp.MustCompile(`[^A-Z0-9-]`)
)

// ValidatePlate checks a Brazilian vehicle plate in either the legacy
// format (ABC1234) or the Mercosul format (ABC1D23). Hyphens, spaces
// and case are ignored.
func ValidatePlate(plate string) bool {
	cleaned := NormalizePlate(plate)
	return legacyPlatePattern.MatchString(cleaned) || mercosulPlatePattern.MatchString(cleaned)
}

// FormatPlate inserts the display hyphen after the third character
// (ABC-1234, ABC-1D23). Values that match neither format are returned
// cleaned but otherwise untouched; no validation happens here.
func FormatPlate(plate string) string {
	cleaned := NormalizePlate(plate)
	if legacyPlatePattern.MatchString(cleaned) || mercosulPlatePattern.MatchString(cleaned) {
		return cleaned[:3] + "-" + cleaned[3:]
	}
	return cleaned
}

// NormalizePlate strips hyphens and spaces and uppercases, producing
// the canonical form sent to the backend.
func NormalizePlate(plate string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(plate))
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return cleaned
}

// MaskPlate constrains live input while typing: uppercase, drop
// anything outside [A-Z0-9-], cap at 8 characters (7 plus hyphen).
func MaskPlate(value string) string {
	cleaned := plateMaskAllowed.ReplaceAllString(strings.ToUpper(value), "")
	if len(cleaned) > 8 {
		cleaned = cleaned[:8]
	}
	return cleaned
}
