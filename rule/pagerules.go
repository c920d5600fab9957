package rule

import "zhconv/variant"

// PageRules accumulates the global-rule effects (Action and SetTitle ConvRules) encountered
// while scanning one document, in encounter order, and resolves them for a target variant at
// build time.
type PageRules struct {
	rules []ConvRule
}

// NewPageRules returns an empty rule set.
func NewPageRules() *PageRules { return &PageRules{} }

// Add records a parsed rule. Rules without an action and without SetTitle are ignored: they
// have no global effect.
func (p *PageRules) Add(r ConvRule) {
	if r.Action != nil || r.SetTitle {
		p.rules = append(p.rules, r)
	}
}

// AddPairs returns the pairs contributed by Add-action rules, in encounter order.
func (p *PageRules) AddPairs(target variant.Variant) []variant.Pair {
	var pairs []variant.Pair
	for _, r := range p.rules {
		action, ps, ok := r.Targeted(target)
		if ok && action == ActionAdd {
			pairs = append(pairs, ps...)
		}
	}
	return pairs
}

// RemovePairs returns the pairs contributed by Remove-action rules, in encounter order.
func (p *PageRules) RemovePairs(target variant.Variant) []variant.Pair {
	var pairs []variant.Pair
	for _, r := range p.rules {
		action, ps, ok := r.Targeted(target)
		if ok && action == ActionRemove {
			pairs = append(pairs, ps...)
		}
	}
	return pairs
}

// GetTitle resolves the page title for target from the last SetTitle rule encountered whose
// conv has a mapping reachable (directly or by one fallback hop) from target, mirroring
// TextMap.GetTextWithFallback's asymmetric lattice.
func (p *PageRules) GetTitle(target variant.Variant) (string, bool) {
	for i := len(p.rules) - 1; i >= 0; i-- {
		r := p.rules[i]
		if !r.SetTitle || r.Conv == nil || r.Conv.Bidirectional == nil {
			continue
		}
		if t, ok := r.Conv.Bidirectional.GetTextWithFallback(target); ok {
			return t, true
		}
	}
	return "", false
}
