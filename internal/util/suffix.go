package util

import (
	"strings"
	"unicode"
)

// SanitizeSuffix приводит суффикс к алфавиту идентификаторов реестра: [A-Za-z0-9._-].
// Прочие символы заменяются на "_".
func SanitizeSuffix(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
