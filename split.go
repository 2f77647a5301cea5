// File: caep/split.go
package caep

import "strings"

// escapeSplit splits value on every occurrence of delim that is not
// immediately preceded by a backslash, then removes one level of escaping
// from each resulting part (`\\` becomes `\`, `\,` becomes `,` when the
// delimiter is `,`). maxSplit limits the number of splits performed;
// 0 means unlimited.
func escapeSplit(value, delim string, maxSplit int) []string {
	if delim == "" {
		return []string{unescape(value)}
	}

	var parts []string
	start := 0
	splits := 0
	for i := 0; i+len(delim) <= len(value); {
		if maxSplit > 0 && splits >= maxSplit {
			break
		}
		if value[i:i+len(delim)] == delim && (i == 0 || value[i-1] != '\\') {
			parts = append(parts, unescape(value[start:i]))
			i += len(delim)
			start = i
			splits++
			continue
		}
		i++
	}

	return append(parts, unescape(value[start:]))
}

// unescape removes every backslash that is not itself escaped. A single
// trailing backslash has nothing to escape and is passed through.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && (i == 0 || s[i-1] != '\\') && i != len(s)-1 {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// escapeToken escapes backslashes and each of the given delimiters in s so
// that a later escapeSplit reproduces s exactly.
func escapeToken(s string, delims ...string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	for _, d := range delims {
		if d == "" {
			continue
		}
		s = strings.ReplaceAll(s, d, `\`+d)
	}
	return s
}

// joinList renders parts as a single delimited string, escaping delimiter
// occurrences inside each part. It is the inverse of escapeSplit for the
// unescaped case.
func joinList(parts []string, delim string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = escapeToken(p, delim)
	}
	return strings.Join(escaped, delim)
}
