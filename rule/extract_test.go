package rule

import (
	"testing"

	"zhconv/variant"
)

func TestExtractPageRulesKeepsOnlyActionOrTitleRules(t *testing.T) {
	text := "前缀 -{zh-tw:鼠麴草;zh-cn:香茅}- 中段 -{H|zh:馬;zh-cn:鹿;}- 尾部 -{T|zh-hans:测试;zh-hant:測試}-"
	pr := ExtractPageRules(text)

	adds := pr.AddPairs(variant.ZhCN)
	if len(adds) != 2 {
		t.Fatalf("expected 2 add pairs (from the H rule only), got %+v", adds)
	}
	title, ok := pr.GetTitle(variant.ZhCN)
	if !ok || title != "测试" {
		t.Errorf("GetTitle(ZhCN) = %q, %v", title, ok)
	}
}

func TestExtractPageRulesIgnoresNonActionRules(t *testing.T) {
	pr := ExtractPageRules("just text -{zh-tw:鼠麴草;zh-cn:香茅}- more text")
	if len(pr.AddPairs(variant.ZhCN)) != 0 || len(pr.RemovePairs(variant.ZhCN)) != 0 {
		t.Errorf("bare bidirectional rule has no action and should contribute nothing")
	}
}
