// Package ztables holds the built-in phrase tables and the run-length compression format they
// are stored in (spec §4.B): a pair of parallel pipe-separated strings (froms, tos), where a
// byte in [0x00, 0x20) at the head of an entry is a back-reference length rather than literal
// text: into the previous from-entry for a from-entry, and into its own row's from for a
// to-entry.
package ztables

import "strings"

// Pair is one expanded (from, to) phrase mapping.
type Pair struct {
	From string
	To   string
}

// Expand decodes a compressed table into (from, to) pairs. froms and tos must split into the
// same number of '|'-separated entries; empty-from rows are filtered (spec §4.B invariant).
// The compression is column-local: a from-entry's back-reference reuses the previous from-entry,
// and independently a to-entry's back-reference reuses that row's own (already expanded) from.
func Expand(froms, tos string) ([]Pair, error) {
	fromParts := strings.Split(froms, "|")
	toParts := strings.Split(tos, "|")
	if len(fromParts) != len(toParts) {
		return nil, &MismatchedColumnsError{FromCount: len(fromParts), ToCount: len(toParts)}
	}

	pairs := make([]Pair, 0, len(fromParts))
	var prevFrom string
	for i, rawFrom := range fromParts {
		from := expandEntry(rawFrom, prevFrom)
		prevFrom = from
		to := expandEntry(toParts[i], from)
		if from == "" {
			continue
		}
		pairs = append(pairs, Pair{From: from, To: to})
	}
	return pairs, nil
}

// expandEntry decodes one compressed entry relative to base: a leading byte in [0x00, 0x20)
// means "reuse the first k runes of base, then append the rest of entry as literal text".
func expandEntry(entry, base string) string {
	if entry == "" {
		return ""
	}
	lead := entry[0]
	if lead >= 0x20 {
		return entry
	}
	k := int(lead)
	rest := entry[1:]
	if k == 0 {
		return rest
	}
	baseRunes := []rune(base)
	if k > len(baseRunes) {
		k = len(baseRunes)
	}
	return string(baseRunes[:k]) + rest
}

// MismatchedColumnsError reports a (froms, tos) pair whose '|'-split entry counts disagree.
type MismatchedColumnsError struct {
	FromCount int
	ToCount   int
}

func (e *MismatchedColumnsError) Error() string {
	return "ztables: mismatched column counts"
}
