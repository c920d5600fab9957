// Package rule implements the Conv/ConvRule/PageRules grammar that turns the textual
// `-{ FLAGS | BODY }-` directive syntax into typed substitution rules (spec §4.C).
package rule

import (
	"fmt"
	"strings"

	"zhconv/internal/util"
	"zhconv/variant"
)

// ConvKind distinguishes a verbatim rule body from a variant-keyed mapping.
type ConvKind int

const (
	ConvAsis ConvKind = iota
	ConvMap
)

// Conv is a single rule body: either verbatim text that escapes conversion entirely, or a
// mapping mixing bidirectional and unidirectional entries in any order.
type Conv struct {
	Kind           ConvKind
	Asis           string
	Bidirectional  *variant.TextMap
	Unidirectional *variant.PairMap
}

// InvalidConv is returned when a rule body cannot be parsed as structured Conv syntax: a
// malformed variant tag, a missing ':' separator, or an empty FROM before '=>'.
type InvalidConv struct {
	Body string
}

func (e *InvalidConv) Error() string {
	return fmt.Sprintf("invalid conv body: %q", e.Body)
}

func cutColon(s string) (before, after string, ok bool) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// ParseConv parses a Conv body per spec §4.C: tokenize by ';' (entity-aware), classify each
// segment as unidirectional ("FROM=>variant:TO") or bidirectional ("variant:TEXT"). A single
// unclassifiable segment (no ':' and no "=>" anywhere in the whole body) is not an error: the
// whole body escapes conversion as Asis, matching the design note that unrecognisable content
// is preserved literally rather than rejected.
func ParseConv(body string) (Conv, error) {
	rawSegments := util.SplitSemicolonEntityAware(body)
	segments := make([]string, 0, len(rawSegments))
	for _, s := range rawSegments {
		if t := strings.TrimSpace(s); t != "" {
			segments = append(segments, t)
		}
	}
	if len(segments) == 0 {
		return Conv{Kind: ConvAsis, Asis: body}, nil
	}
	if len(segments) == 1 && !strings.Contains(segments[0], ":") && !strings.Contains(segments[0], "=>") {
		return Conv{Kind: ConvAsis, Asis: body}, nil
	}

	bidi := variant.NewTextMap()
	uni := variant.NewPairMap()
	for _, seg := range segments {
		if idx := strings.Index(seg, "=>"); idx >= 0 {
			left := strings.TrimSpace(seg[:idx])
			right := seg[idx+2:]
			vtag, text, ok := cutColon(right)
			if !ok || left == "" {
				return Conv{}, &InvalidConv{Body: body}
			}
			v, err := variant.Parse(strings.TrimSpace(vtag))
			if err != nil {
				return Conv{}, &InvalidConv{Body: body}
			}
			uni.Append(v, left, strings.TrimSpace(text))
			continue
		}
		vtag, text, ok := cutColon(seg)
		if !ok {
			return Conv{}, &InvalidConv{Body: body}
		}
		v, err := variant.Parse(strings.TrimSpace(vtag))
		if err != nil {
			return Conv{}, &InvalidConv{Body: body}
		}
		bidi.Set(v, strings.TrimSpace(text))
	}
	return Conv{Kind: ConvMap, Bidirectional: bidi, Unidirectional: uni}, nil
}

// TextForTarget renders the text of this Conv for a target variant: the verbatim string for
// Asis, or the bidirectional-with-fallback text (empty if no mapping resolves) for a Map.
func (c *Conv) TextForTarget(target variant.Variant) string {
	if c == nil {
		return ""
	}
	if c.Kind == ConvAsis {
		return c.Asis
	}
	if c.Bidirectional != nil {
		if t, ok := c.Bidirectional.GetTextWithFallback(target); ok {
			return t
		}
	}
	return ""
}

// ConvPairs yields the (from, to) substitution pairs this Conv contributes for a build
// targeting the given variant, combining both the bidirectional and unidirectional parts.
func (c *Conv) ConvPairs(target variant.Variant) []variant.Pair {
	if c == nil {
		return nil
	}
	if c.Kind == ConvAsis {
		if c.Asis == "" {
			return nil
		}
		return []variant.Pair{{From: c.Asis, To: c.Asis}}
	}
	var pairs []variant.Pair
	if c.Bidirectional != nil {
		pairs = append(pairs, c.Bidirectional.ConvPairs(target)...)
	}
	if c.Unidirectional != nil {
		pairs = append(pairs, c.Unidirectional.ConvPairs(target)...)
	}
	return pairs
}

// Description renders a human-readable dump of the Conv: bidirectional entries joined as
// "Name：Text；", followed by unidirectional entries as "FROM⇒VARIANT: TO".
func (c *Conv) Description() string {
	if c == nil {
		return ""
	}
	if c.Kind == ConvAsis {
		return c.Asis
	}
	var b strings.Builder
	if c.Bidirectional != nil {
		for _, e := range c.Bidirectional.Entries() {
			fmt.Fprintf(&b, "%s：%s；", e.Variant.DisplayName(), e.Value)
		}
	}
	if c.Unidirectional != nil {
		for _, v := range variant.All {
			for _, p := range c.Unidirectional.ConvPairs(v) {
				fmt.Fprintf(&b, "%s⇒%s: %s", p.From, v.String(), p.To)
			}
		}
	}
	return b.String()
}
