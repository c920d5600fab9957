// Package wikitext implements the two-mode (basic/extended) MediaWiki-style inline conversion
// scanner layered on top of zhconv.Converter: `-{BODY}-` rule tokens, extended-mode HTML-block
// passthrough, global-rule extraction, and bracket-balanced nested rules up to depth 10.
package wikitext

import (
	"regexp"
	"strings"

	"zhconv"
	"zhconv/rule"
	"zhconv/variant"
)

// maxNestedDepth bounds how many `-{` a rule body may nest before further opens stop being
// treated as rule tokens (spec §4.F "compat quirk"). A depth-10 stack is already pathological
// wikitext; this only prevents unbounded stack growth on adversarial input.
const maxNestedDepth = 10

var (
	startOfRule = regexp.MustCompile(`-\{`)
	// startOfRuleOrHTML additionally matches HTML-ish blocks that extended mode must pass through
	// untouched rather than scan into for rule tokens.
	startOfRuleOrHTML = regexp.MustCompile(`(?s)-\{|<script.*?>.*?</script>|<style.*?>.*?</style>|<code>.*?</code>|<pre.*?>.*?</pre>`)
	innerToken        = regexp.MustCompile(`-\{|\}-`)
)

// Options controls which wikitext features are active.
type Options struct {
	// SkipHTMLBlocks makes <script>/<style>/<code>/<pre...> blocks pass through verbatim,
	// without attempting to scan them for rule tokens.
	SkipHTMLBlocks bool
	// ApplyGlobalRules extracts a document-wide PageRules pre-pass and converts text spans with
	// a shadowed engine seeded from it, rather than the plain converter.
	ApplyGlobalRules bool
}

// Basic returns Options for basic mode: rules only, no HTML skipping, no global rules.
func Basic() Options { return Options{} }

// Extended returns Options for extended mode: HTML-block passthrough and global rules both on.
func Extended() Options { return Options{SkipHTMLBlocks: true, ApplyGlobalRules: true} }

// ConvertBasic converts text in basic mode (spec §4.F).
func ConvertBasic(c *zhconv.Converter, text string) string {
	return Convert(c, text, Basic())
}

// ConvertExtended converts text in extended mode (spec §4.F).
func ConvertExtended(c *zhconv.Converter, text string) string {
	return Convert(c, text, Extended())
}

// Convert scans text for `-{...}-` rule tokens, converting everything else with c (or, when
// global rules are requested and present, a shadowed engine seeded from a pre-pass over the
// whole document — spec §4.F "Global-rule application").
func Convert(c *zhconv.Converter, text string, opts Options) string {
	var secondary *zhconv.Converter
	if opts.ApplyGlobalRules {
		pr := rule.ExtractPageRules(text)
		secondary = zhconv.NewBuilder(c.Target()).PageRules(pr).BuildSecondary()
	}
	convertSpan := func(s string) string {
		if secondary != nil {
			return c.ConvertShadowed(secondary, s)
		}
		return c.Convert(s)
	}

	outerPattern := startOfRule
	if opts.SkipHTMLBlocks {
		outerPattern = startOfRuleOrHTML
	}

	var out strings.Builder
	pos := 0
	for {
		loc := outerPattern.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		out.WriteString(convertSpan(text[pos:start]))
		if text[start:end] != "-{" {
			// an HTML-ish block: passed through untouched
			out.WriteString(text[start:end])
			pos = end
			continue
		}
		pos = start + 2
		pos = scanRule(&out, text, pos, c.Target())
	}
	out.WriteString(convertSpan(text[pos:]))
	return out.String()
}

// scanRule consumes one top-level rule starting just after its opening `-{`, handling nested
// rules up to maxNestedDepth, and returns the position just past the last token it consumed. If
// the text ends with pieces still open, they are emitted verbatim, outermost first, each
// prefixed with `-{`; the text after the last token is left to the caller.
func scanRule(out *strings.Builder, text string, pos int, target variant.Variant) int {
	pieces := []*strings.Builder{{}}
	for len(pieces) > 0 {
		loc := innerToken.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		s, e := pos+loc[0], pos+loc[1]
		tok := text[s:e]
		top := pieces[len(pieces)-1]
		if tok == "-{" {
			if len(pieces) >= maxNestedDepth {
				// not a rule start at this depth: emitted verbatim, scanning resumes past it
				top.WriteString(text[pos:e])
				pos = e
				continue
			}
			top.WriteString(text[pos:s])
			pieces = append(pieces, &strings.Builder{})
			pos = e
			continue
		}
		// "}-": close the innermost piece
		top.WriteString(text[pos:s])
		pieces = pieces[:len(pieces)-1]
		r := rule.ParseConvRuleInfallible(top.String())
		rendered := r.Render(target)
		if len(pieces) > 0 {
			pieces[len(pieces)-1].WriteString(rendered)
		} else {
			out.WriteString(rendered)
		}
		pos = e
	}
	for i := 0; i < len(pieces); i++ {
		out.WriteString("-{")
		out.WriteString(pieces[i].String())
	}
	return pos
}
