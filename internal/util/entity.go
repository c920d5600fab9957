// Package util holds small helpers shared by more than one package that don't deserve their
// own home: an entity-aware semicolon tokenizer and a CLI progress bar.
package util

// SplitSemicolonEntityAware splits s on top-level ';' characters, except that a ';' closing an
// HTML-style character entity (&#123; or &amp;, i.e. "&" followed by one or more '#'-or-alnum
// bytes) does not split. This is a simple state flag over the byte stream, not a full HTML-entity
// validator, per the reference grammar's own design note.
func SplitSemicolonEntityAware(s string) []string {
	var tokens []string
	i := 0
	ampersand := -1
	for j := 0; j < len(s); j++ {
		c := s[j]
		switch c {
		case '&':
			ampersand = j
		case ';':
			if ampersand >= 0 && j-ampersand > 1 {
				// closes a well-formed entity reference; not a top-level separator.
				ampersand = -1
				continue
			}
			tokens = append(tokens, s[i:j])
			i = j + 1
		default:
			if ampersand >= 0 && !(c == '#' || isASCIIAlnum(c)) {
				ampersand = -1
			}
		}
	}
	if i != len(s) {
		tokens = append(tokens, s[i:])
	}
	return tokens
}

func isASCIIAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
