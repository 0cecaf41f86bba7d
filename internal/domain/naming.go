package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Class name suffixes per unit kind.
const (
	FeatureSuffix    = "Feature"
	JobSuffix        = "Job"
	OperationSuffix  = "Operation"
	ControllerSuffix = "Controller"
	RequestSuffix    = "Request"
	PolicySuffix     = "Policy"
)

// Studly converts s to upper camel case: it splits on every non-alphanumeric
// rune and upper-cases the first rune of each segment, keeping the rest as is.
// "create post" and "create_post" both become "CreatePost"; "2fa" stays "2fa".
func Studly(s string) string {
	segments := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range segments {
		b.WriteString(UpperFirst(seg))
	}
	return b.String()
}

// Snake converts a studly name to snake case ("CreatePost" -> "create_post").
func Snake(s string) string {
	s = Studly(s)

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// NormalizeSuffix returns the canonical class name for input carrying suffix
// exactly once; repeated trailing suffixes collapse into one. A trailing
// "<suffix>.<ext>" is accepted as input, so
// "ChargeCardJob.php", "charge card job" and "chargeCard" all give "ChargeCardJob".
// The result is idempotent and never empty.
func NormalizeSuffix(input, suffix string) string {
	s := trimExtensionAfter(strings.TrimSpace(input), suffix)
	s = Studly(s)
	for suffix != "" && strings.HasSuffix(s, suffix) {
		s = strings.TrimSuffix(s, suffix)
	}
	return s + suffix
}

func FeatureName(s string) string    { return NormalizeSuffix(s, FeatureSuffix) }
func JobName(s string) string        { return NormalizeSuffix(s, JobSuffix) }
func OperationName(s string) string  { return NormalizeSuffix(s, OperationSuffix) }
func ControllerName(s string) string { return NormalizeSuffix(s, ControllerSuffix) }
func RequestName(s string) string    { return NormalizeSuffix(s, RequestSuffix) }
func PolicyName(s string) string     { return NormalizeSuffix(s, PolicySuffix) }

// Device, domain and model names carry no suffix.
func DeviceName(s string) string { return Studly(s) }
func DomainName(s string) string { return Studly(s) }
func ModelName(s string) string  { return Studly(s) }

// RealName turns a class or file name into its human title, dropping the
// trailing suffix (and extension): "CreateArticleFeature.php" -> "Create Article".
func RealName(name, suffix string) string {
	name = trimExtensionAfter(name, suffix)
	if i := strings.LastIndex(name, "."); i > 0 && isExtension(name[i:]) {
		name = name[:i]
	}
	if suffix != "" {
		name = strings.TrimSuffix(name, suffix)
	}

	var words []string
	start := 0
	for i, r := range name {
		if i > start && unicode.IsUpper(r) {
			words = append(words, name[start:i])
			start = i
		}
	}
	if start < len(name) {
		words = append(words, name[start:])
	}

	for i := range words {
		words[i] = strings.TrimSpace(words[i])
	}
	return strings.Join(nonEmpty(words), " ")
}

// ClassName glues a title back into a suffixed class name.
func ClassName(title, suffix string) string {
	return strings.ReplaceAll(title, " ", "") + suffix
}

// trimExtensionAfter drops ".ext" when it directly follows suffix
// (compared case-insensitively).
func trimExtensionAfter(s, suffix string) string {
	i := strings.LastIndex(s, ".")
	if i <= 0 || !isExtension(s[i:]) {
		return s
	}
	if suffix == "" || strings.HasSuffix(strings.ToLower(s[:i]), strings.ToLower(suffix)) {
		return s[:i]
	}
	return s
}

func isExtension(s string) bool {
	if len(s) < 2 || s[0] != '.' {
		return false
	}
	for _, r := range s[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func nonEmpty(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
