// Package zhconv converts Chinese text between script families (Traditional/Simplified) and
// regional variants, with optional MediaWiki-style inline conversion markup support (see the
// wikitext subpackage). The core is the nine-variant built-in registry (see Get) plus the
// Builder for assembling custom converters from tables, ad-hoc pairs, and page rules.
package zhconv

import (
	"zhconv/internal/automaton"
	"zhconv/variant"
)

// Converter is a stateless, read-only, concurrency-safe substitution engine for one target
// variant. The zero value is not usable; construct with Builder.Build or Get.
type Converter struct {
	target variant.Variant
	trie   *automaton.Trie
}

// Target returns the variant this converter produces output for.
func (c *Converter) Target() variant.Variant { return c.target }

// Convert replaces every non-overlapping, leftmost, longest match of a source phrase with its
// mapped text, in a single linear pass. An empty/nil converter is the identity function.
func (c *Converter) Convert(s string) string {
	if c == nil {
		return s
	}
	return automaton.Convert(c.trie, s)
}

// ConvertShadowed converts s using this converter as primary and secondary (if non-nil) as a
// per-document override: at each position, secondary's match wins unless primary's match there
// is strictly longer, and primary matches explicitly marked Remove in secondary's build are
// tombstoned (see Builder).
func (c *Converter) ConvertShadowed(secondary *Converter, s string) string {
	var secTrie *automaton.Trie
	if secondary != nil {
		secTrie = secondary.trie
	}
	if c == nil {
		return automaton.ConvertShadowed(nil, secTrie, s)
	}
	return automaton.ConvertShadowed(c.trie, secTrie, s)
}

// CountReplaced returns the number of codepoints covered by successful matches when scanning s,
// using the same leftmost-longest decision Convert makes (spec §4.G). An empty/nil converter
// replaces nothing.
func (c *Converter) CountReplaced(s string) int {
	if c == nil {
		return 0
	}
	return automaton.CountReplaced(c.trie, s)
}

// Convert is a package-level convenience wrapping Get(target).Convert(s).
func Convert(target variant.Variant, s string) string {
	return Get(target).Convert(s)
}
