package wikitext

import (
	"testing"

	"zhconv"
	"zhconv/variant"
)

// Scenario 5 (spec §8): an Asis-wrapped single character escapes an otherwise-matching phrase
// override, so "天-{干}-物燥" keeps its bare 干 instead of becoming the 天乾物燥 phrase override.
func TestScenario5AsisEscapesPhraseOverride(t *testing.T) {
	c := zhconv.Get(variant.ZhHant)
	got := ConvertBasic(c, "天-{干}-物燥 小心火烛")
	want := "天干物燥 小心火燭"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 6: a bare bidirectional rule with no flags renders Normal output for the active
// target and contributes nothing to global state.
func TestScenario6BareBidirectionalRuleRendersNormal(t *testing.T) {
	c := zhconv.Get(variant.ZhCN)
	got := ConvertExtended(c, "-{zh-tw:鼠麴草;zh-cn:香茅}-是菊科草本植物。")
	want := "香茅是菊科草本植物。"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 7: an H-flagged global add rule renders empty inline but still shadows the following
// plain text through to the end of the document.
func TestScenario7HiddenAddRuleShadowsFollowingText(t *testing.T) {
	c := zhconv.Get(variant.ZhCN)
	got := ConvertExtended(c, "-{H|zh:馬;zh-cn:鹿;}-馬克思主義")
	want := "鹿克思主义"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 8: a bare remove flag ("-") renders as empty output (not Normal), per the
// flags-present default-output-None reading of spec §4.C.
func TestScenario8BareRemoveFlagRendersEmpty(t *testing.T) {
	c := zhconv.Get(variant.ZhCN)
	got := ConvertExtended(c, "&二極體\n-{-|zh-hans:二极管; zh-hant:二極體}-\n")
	want := "&二极体\n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Property 7: with no -{ token anywhere, basic-mode wikitext conversion matches plain Convert.
func TestPassthroughEqualsPlainConvertWhenNoRuleTokens(t *testing.T) {
	c := zhconv.Get(variant.ZhHant)
	text := "天干物燥 小心火烛，鼠曲草。"
	if got, want := ConvertBasic(c, text), c.Convert(text); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Property 7 (extended): HTML-skip blocks are preserved byte-for-byte even if their contents
// would otherwise match a conversion rule.
func TestExtendedModePreservesHTMLBlocksVerbatim(t *testing.T) {
	c := zhconv.Get(variant.ZhHant)
	text := "前 <code>鼠曲草</code> 后烛"
	got := ConvertExtended(c, text)
	want := "前 <code>鼠曲草</code> 后燭"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Basic mode does not recognize HTML blocks, so their contents are scanned and converted like
// ordinary text.
func TestBasicModeDoesNotSkipHTMLBlocks(t *testing.T) {
	c := zhconv.Get(variant.ZhHant)
	got := ConvertBasic(c, "<code>鼠曲草</code>")
	want := "<code>鼠麴草</code>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Property 8: a nest deeper than 10 stops contributing to output as a rule; the 11th nested
// `-{` is emitted verbatim instead of being silently dropped. Depths 1-10 are trivial (no
// `:`/`=>` inside) Asis rules, so each collapses to its bare inner text once closed; only the
// 11th `-{` (which never becomes a piece) and the one unmatched trailing `}-` survive as literal
// text, leaving "-{x}-" rather than the full 11-deep input reproduced verbatim.
func TestEleventhNestedOpenIsEmittedVerbatim(t *testing.T) {
	c := zhconv.Get(variant.Zh)
	var body string
	for i := 0; i < 11; i++ {
		body += "-{"
	}
	body += "x"
	for i := 0; i < 11; i++ {
		body += "}-"
	}
	got := ConvertBasic(c, body)
	want := "-{x}-"
	if got != want {
		t.Errorf("11-deep nest: got %q, want %q", got, want)
	}
}

func TestAsisRuleEmitsLiteralInnerText(t *testing.T) {
	c := zhconv.Get(variant.Zh)
	got := ConvertBasic(c, "-{plain text}-")
	want := "plain text"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
