package envfile

import (
	"strings"
	"unicode"
)

// needsQuoting lists the characters (besides whitespace) that force a value
// into quotes on write.
const needsQuoting = "\"\\=:.$()"

// EscapeValue renders a value for storage. An empty value stays empty and
// is never quoted. A value containing whitespace or one of the characters
// in needsQuoting, or any value when forceQuote is set, is wrapped in
// double quotes with backslashes doubled and inner double quotes escaped,
// so that one round of unescaping on read restores the original. Everything
// else is emitted verbatim, maximally readable.
func EscapeValue(value string, forceQuote bool) string {
	if value == "" {
		return ""
	}
	if !forceQuote && !mustQuote(value) {
		return value
	}
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func mustQuote(value string) bool {
	if strings.ContainsAny(value, needsQuoting) {
		return true
	}
	return strings.IndexFunc(value, unicode.IsSpace) >= 0
}

// FormatValue is the read-path inverse of EscapeValue: it cuts the value at
// the first unescaped '#', trims whitespace, strips exactly one layer of
// matching surrounding quotes (newlines inside are fine) and, for quoted
// values, resolves backslash escapes to their literal character.
func FormatValue(raw string) string {
	v := strings.TrimSpace(cutComment(raw))
	if len(v) >= 2 {
		if q := v[0]; (q == '"' || q == '\'') && v[len(v)-1] == q {
			return unescape(v[1 : len(v)-1])
		}
	}
	return v
}

// cutComment returns s up to its first unescaped '#'.
func cutComment(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '#':
			return s[:i]
		}
	}
	return s
}

// unescape resolves backslash escapes: any \x becomes the literal x. A
// trailing lone backslash is kept as-is.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
