package util

import "strings"

// Mask redacts s for display in logs. The first and last characters are
// kept for values longer than four characters; shorter values are fully
// replaced. Email addresses keep their domain: "jane.doe@example.com"
// becomes "j******e@example.com".
func Mask(s string) string {
	if s == "" {
		return ""
	}
	if local, domain, ok := strings.Cut(s, "@"); ok && local != "" && domain != "" {
		return maskRunes(local) + "@" + domain
	}
	return maskRunes(s)
}

func maskRunes(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return string(r[0]) + strings.Repeat("*", len(r)-2) + string(r[len(r)-1])
}

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
