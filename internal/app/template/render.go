package template

import (
	"strings"
)

// RenderString replaces {{var}} placeholders whose key is in vars.
// Any other {{...}} text, such as Blade echoes, is copied unchanged.
func RenderString(input string, vars map[string]string) string {
	if input == "" {
		return ""
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String()
		}
		out.WriteString(rest[:start])
		rest = rest[start:]

		end := strings.Index(rest[2:], "}}")
		if end == -1 {
			out.WriteString(rest)
			return out.String()
		}
		end += 2

		if value, ok := vars[strings.TrimSpace(rest[2:end])]; ok {
			out.WriteString(value)
		} else {
			out.WriteString(rest[:end+2])
		}
		rest = rest[end+2:]
	}
}

// Unresolved returns the identifier placeholders of input that have no
// value in vars, in order of appearance.
func Unresolved(input string, vars map[string]string) []string {
	var missing []string
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			return missing
		}
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return missing
		}
		key := strings.TrimSpace(rest[:end])
		if _, ok := vars[key]; !ok && isIdentifier(key) {
			missing = append(missing, key)
		}
		rest = rest[end+2:]
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
