// Package detect provides lightweight, heuristic Chinese-variant detection helpers built on top
// of the built-in converter registry's replacement counts (spec §4.G). These are deliberately
// simple ratio heuristics, not a statistical classifier: they exist to give a caller a quick,
// cheap signal, not a guarantee.
package detect

import (
	"math"
	"sort"

	"zhconv"
	"zhconv/variant"
)

// CountReplaced returns the number of codepoints covered by successful matches when scanning
// text with c, in a single linear pass identical to the one Convert performs.
func CountReplaced(c *zhconv.Converter, text string) int {
	return c.CountReplaced(text)
}

// IsHansConfidence estimates confidence that text is written in Simplified script, as
// c_hant / (c_hant + c_hans), where c_hant and c_hans are the replacement counts of the built-in
// zh->Hant and zh->Hans converters. Returns NaN when both counts are zero (no discriminating
// evidence either way).
func IsHansConfidence(text string) float64 {
	hant := float64(CountReplaced(zhconv.Get(variant.ZhHant), text))
	hans := float64(CountReplaced(zhconv.Get(variant.ZhHans), text))
	return hant / (hant + hans)
}

// VariantConfidence pairs a variant with its inferred confidence score.
type VariantConfidence struct {
	Variant    variant.Variant
	Confidence float64
}

// hantOrder and regionOrder are the two tie-break orderings named in spec §4.G: Hant ordering
// applies when the TW and HK scores tie, region ordering otherwise.
var hantOrder = []variant.Variant{variant.ZhHans, variant.ZhHant, variant.ZhTW, variant.ZhCN, variant.ZhHK}
var regionOrder = []variant.Variant{variant.ZhTW, variant.ZhHK, variant.ZhHant, variant.ZhHans, variant.ZhCN}

// InferVariantConfidence returns (variant, confidence) pairs for Hans, Hant, TW, CN, and HK,
// sorted descending by confidence. Each is 1 - min(non_v_score, total_score) / total_score,
// where total_score = c_CN + c_TW + c_HK - c_Hant and non_v_score is total_score with v's own
// signed contribution removed (so Hans, which contributes nothing to total_score, always scores
// 0 by this formula whenever total_score is nonzero — an artifact of the heuristic, not a bug).
func InferVariantConfidence(text string) []VariantConfidence {
	cHans := float64(CountReplaced(zhconv.Get(variant.ZhHans), text))
	cHant := float64(CountReplaced(zhconv.Get(variant.ZhHant), text))
	cTW := float64(CountReplaced(zhconv.Get(variant.ZhTW), text))
	cCN := float64(CountReplaced(zhconv.Get(variant.ZhCN), text))
	cHK := float64(CountReplaced(zhconv.Get(variant.ZhHK), text))

	total := cCN + cTW + cHK - cHant

	contribution := map[variant.Variant]float64{
		variant.ZhHans: 0,
		variant.ZhHant: -cHant,
		variant.ZhTW:   cTW,
		variant.ZhCN:   cCN,
		variant.ZhHK:   cHK,
	}

	confidence := func(v variant.Variant) float64 {
		nonV := total - contribution[v]
		return 1 - math.Min(nonV, total)/total
	}

	results := make([]VariantConfidence, 0, 5)
	for _, v := range []variant.Variant{variant.ZhHans, variant.ZhHant, variant.ZhTW, variant.ZhCN, variant.ZhHK} {
		results = append(results, VariantConfidence{Variant: v, Confidence: confidence(v)})
	}

	order := regionOrder
	if cTW == cHK {
		order = hantOrder
	}
	rank := make(map[variant.Variant]int, len(order))
	for i, v := range order {
		rank[v] = i
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		return rank[results[i].Variant] < rank[results[j].Variant]
	})
	return results
}
