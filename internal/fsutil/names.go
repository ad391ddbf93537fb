package fsutil

import "strings"

// maxNameLen bounds names built from recording file names.
const maxNameLen = 128

// SafeName reduces s to ASCII letters, digits, dot, underscore and dash so it
// can be embedded in an output file name. Other runs of characters become a
// single underscore, and leading or trailing dots and underscores are
// dropped. An empty result is returned as "unnamed".
func SafeName(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		if b.Len() >= maxNameLen {
			break
		}
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'),
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
			lastUnderscore = r == '_'
		case !lastUnderscore:
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "unnamed"
	}
	return out
}
