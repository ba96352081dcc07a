package recipe

import "strings"

// versionSeparators are tried in priority order, not by leftmost position.
var versionSeparators = []string{".", "-", "_"}

// ExtractMajorVersion returns the leading numeric component of version,
// used to select version-specific add-on packages. The candidate is the
// substring before the first separator found (checking "." before "-"
// before "_"), with non-digit characters dropped; a candidate with no
// digits at all is returned unchanged.
func ExtractMajorVersion(version string) string {
	candidate := version
	for _, sep := range versionSeparators {
		if idx := strings.Index(version, sep); idx >= 0 {
			candidate = version[:idx]
			break
		}
	}

	var digits strings.Builder
	for _, ch := range candidate {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
		}
	}
	if digits.Len() == 0 {
		return candidate
	}
	return digits.String()
}
