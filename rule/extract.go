package rule

import "regexp"

// outerRule is the conservative, non-nested regex used to extract top-level `-{...}-`
// occurrences for global-rule collection (spec §4.C "PageRules extraction"). It does not
// attempt to balance nested `-{` tokens — that precision belongs to the wikitext scanner's full
// bracket-balanced pass (spec §4.F), which reuses this function only to seed global rules
// before running its own nested-aware scan.
var outerRule = regexp.MustCompile(`(?s)-\{(.*?)\}-`)

// ExtractPageRules scans text for top-level -{...}- occurrences, parses each as a ConvRule
// (tolerantly — a corrupt rule is simply not an action/title rule and is dropped), and keeps
// only those carrying an Action or SetTitle. This function is total: it never fails.
func ExtractPageRules(text string) *PageRules {
	pr := NewPageRules()
	for _, m := range outerRule.FindAllStringSubmatch(text, -1) {
		r := ParseConvRuleInfallible(m[1])
		pr.Add(r)
	}
	return pr
}
