// Package automaton implements the leftmost-longest multi-pattern substitution engine (spec
// §4.E): a trie of source phrases supporting "longest match starting at position i" in time
// bounded by the longest stored pattern, plus a shadowed two-trie scan that lets per-document
// overrides (add/remove) take effect without rebuilding the (potentially large) primary trie.
package automaton

import (
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

type node struct {
	children  map[rune]*node
	hasValue  bool
	isRemoved bool
	value     string
}

// Trie is an immutable, concurrency-safe multi-pattern matcher built from a fixed set of
// (from, to) pairs. The zero value is an empty trie (matches nothing).
type Trie struct {
	root    *node
	maxRune int // longest pattern length in runes, recorded on insert; not read by the scans
}

// Pair is a single (from, to) or, when Remove is true, a (from, "") tombstone contributed by a
// document-local remove rule.
type Pair struct {
	From   string
	To     string
	Remove bool
}

// Build constructs a Trie from the given pairs. Later pairs with the same From key overwrite
// earlier ones, matching the builder's "adds are applied in order, last wins" rule; a Remove
// pair tombstones any prior mapping for that exact key without deleting shorter or longer keys
// that happen to share a prefix.
func Build(pairs []Pair) *Trie {
	t := &Trie{root: &node{children: make(map[rune]*node)}}
	for _, p := range pairs {
		if p.From == "" {
			continue
		}
		t.insert(p.From, p.To, p.Remove)
	}
	return t
}

func (t *Trie) insert(from, to string, remove bool) {
	n := t.root
	count := 0
	for _, r := range from {
		count++
		child, ok := n.children[r]
		if !ok {
			child = &node{children: make(map[rune]*node)}
			n.children[r] = child
		}
		n = child
	}
	n.hasValue = !remove
	n.isRemoved = remove
	n.value = to
	if count > t.maxRune {
		t.maxRune = count
	}
}

// Match is one candidate match starting at a given position: Len is in runes.
type Match struct {
	Len    int
	Value  string
	Remove bool
}

// MatchesAt returns every pattern in the trie that matches starting at runes[i:], longest
// first. Cost is bounded by the longest stored pattern, not by len(runes).
func (t *Trie) MatchesAt(runes []rune, i int) []Match {
	if t == nil || t.root == nil {
		return nil
	}
	var matches []Match
	n := t.root
	for j := i; j < len(runes); j++ {
		child, ok := n.children[runes[j]]
		if !ok {
			break
		}
		n = child
		if n.hasValue || n.isRemoved {
			matches = append(matches, Match{Len: j - i + 1, Value: n.value, Remove: n.isRemoved})
		}
	}
	// reverse into longest-first order
	for l, r := 0, len(matches)-1; l < r; l, r = l+1, r-1 {
		matches[l], matches[r] = matches[r], matches[l]
	}
	return matches
}

// LongestMatch returns the single longest non-removed match starting at runes[i:], if any.
func (t *Trie) LongestMatch(runes []rune, i int) (value string, length int, ok bool) {
	m, found := firstNonRemove(t.MatchesAt(runes, i))
	return m.Value, m.Len, found
}

// Convert runs a plain leftmost-longest scan with a single trie: at every position, the
// longest matching pattern is substituted and the scan jumps past it; positions with no match
// are copied through verbatim, one rune at a time (spec §8 properties 1–4).
func Convert(t *Trie, input string) string {
	return ConvertShadowed(t, nil, input)
}

// ConvertShadowed scans input once, comparing secondary and primary's matches at every position
// (both anchored at the same start, so only their lengths need comparing; spec §4.E step 3):
//  1. if secondary has a non-removed match and primary has none, or primary's longest match is
//     not strictly longer than secondary's, secondary's match wins;
//  2. otherwise, if primary's longest match is itself tombstoned by a same-length secondary
//     removal, exactly one literal codepoint is emitted and the scan retries from the next
//     position — it does not fall back to a shorter primary alternative at this position;
//  3. otherwise primary's longest match is used;
//  4. otherwise the rune is copied literally.
//
// This gives the same output as rebuilding a single merged trie from (primary's pairs + adds -
// removes), except where primary's longest match at a position is tombstoned and a shorter
// primary match starts there too: a rebuilt trie would use the shorter match, while this scan
// emits one literal codepoint (step 2). It runs in O(n·m) time instead of the cost of
// reconstructing the whole primary trie, where m is bounded by the longest pattern length
// (spec §9, "Shadowing vs rebuild"). Grounded on
// `original_source/src/converter.rs`'s `convert_to_with` (the `a.0 > b.0 || (a.0 == b.0 && a.1 <=
// b.1)` tie-break, and the tombstone recovery that skips one codepoint rather than retrying with
// a shorter match).
func ConvertShadowed(primary, secondary *Trie, input string) string {
	runes := []rune(input)
	out := bytebufferpool.Get()
	defer bytebufferpool.Put(out)

	writeLiteral := func(i int) {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], runes[i])
		out.Write(buf[:n])
	}

	for i := 0; i < len(runes); {
		var secMatches []Match
		if secondary != nil {
			secMatches = secondary.MatchesAt(runes, i)
		}
		secMatch, foundSec := firstNonRemove(secMatches)

		var primMatches []Match
		if primary != nil {
			primMatches = primary.MatchesAt(runes, i)
		}
		primMatch, foundPrim := firstNonRemove(primMatches)

		switch {
		case foundSec && (!foundPrim || primMatch.Len <= secMatch.Len):
			out.WriteString(secMatch.Value)
			i += secMatch.Len
		case foundPrim && tombstonedBySecondary(primMatch, secMatches):
			writeLiteral(i)
			i++
		case foundPrim:
			out.WriteString(primMatch.Value)
			i += primMatch.Len
		default:
			writeLiteral(i)
			i++
		}
	}
	return out.String()
}

// CountReplaced returns the number of codepoints covered by successful matches when scanning
// input with t, using the same leftmost-longest decision as Convert (spec §4.G).
func CountReplaced(t *Trie, input string) int {
	runes := []rune(input)
	count := 0
	for i := 0; i < len(runes); {
		if _, length, ok := t.LongestMatch(runes, i); ok {
			count += length
			i += length
			continue
		}
		i++
	}
	return count
}

// firstNonRemove returns the longest non-removed match in a longest-first match list.
func firstNonRemove(matches []Match) (Match, bool) {
	for _, m := range matches {
		if !m.Remove {
			return m, true
		}
	}
	return Match{}, false
}

// tombstonedBySecondary reports whether m (a match anchored at the same position as secMatches)
// has the same length as one of secMatches' removed entries — meaning m's source text is exactly
// a key the secondary overlay tombstones, since two matches anchored at one position with equal
// length necessarily cover the same source text.
func tombstonedBySecondary(m Match, secMatches []Match) bool {
	for _, sm := range secMatches {
		if sm.Remove && sm.Len == m.Len {
			return true
		}
	}
	return false
}
