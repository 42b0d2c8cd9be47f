package nixgen

import (
	"fmt"
	"strings"
)

// Quote renders s as a double-quoted Nix string literal. Backslash, double
// quote and the ${ interpolation opener are escaped; newline, tab and
// carriage return use their escape sequences. Any other control character
// has no representation inside a Nix string literal, so Quote fails with the
// field name for the defect report.
func Quote(field, s string) (string, error) {
	var b strings.Builder
	b.WriteByte('"')

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '$' && i+1 < len(runes) && runes[i+1] == '{':
			b.WriteString(`\${`)
			i++
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20 || r == 0x7f:
			return "", &SynthesisError{
				Field:  field,
				Reason: fmt.Sprintf("control character U+%04X has no Nix string representation", r),
			}
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')
	return b.String(), nil
}

// Bool renders a Nix boolean literal.
func Bool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// validIdentifier reports whether s can stand unquoted as a Nix attribute
// name: [a-zA-Z_][a-zA-Z0-9_'-]*.
func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '\'' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// AttrName renders s as a Nix attribute name, quoting it when it is not a
// plain identifier (user names and mount points frequently are not).
func AttrName(field, s string) (string, error) {
	if validIdentifier(s) {
		return s, nil
	}
	return Quote(field, s)
}
