package detect

import (
	"math"
	"testing"

	"zhconv"
	"zhconv/variant"
)

func TestCountReplacedCountsCodepointsNotRules(t *testing.T) {
	n := CountReplaced(zhconv.Get(variant.ZhHant), "天干物燥 小心火烛")
	// "天干物燥" (phrase override, 4 codepoints) + "烛" (1 codepoint) = 5.
	if n != 5 {
		t.Errorf("CountReplaced = %d, want 5", n)
	}
}

func TestIsHansConfidenceOneForSimplifiedText(t *testing.T) {
	// "长" is a zh->Hant source key (simplified), not a zh->Hans one, so c_hant=1, c_hans=0.
	got := IsHansConfidence("长城")
	if got != 1 {
		t.Errorf("IsHansConfidence(长城) = %v, want 1", got)
	}
}

func TestIsHansConfidenceZeroForTraditionalText(t *testing.T) {
	// "長" is a zh->Hans source key (traditional), not a zh->Hant one, so c_hant=0, c_hans=1.
	got := IsHansConfidence("長城")
	if got != 0 {
		t.Errorf("IsHansConfidence(長城) = %v, want 0", got)
	}
}

func TestIsHansConfidenceNaNWhenNoEvidence(t *testing.T) {
	got := IsHansConfidence("hello world 123")
	if !math.IsNaN(got) {
		t.Errorf("IsHansConfidence = %v, want NaN", got)
	}
}

func TestInferVariantConfidenceSortedDescending(t *testing.T) {
	results := InferVariantConfidence("阿拉伯联合酋长国")
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Confidence > results[i-1].Confidence {
			t.Errorf("not sorted descending at index %d: %+v", i, results)
		}
	}
}

func TestInferVariantConfidenceHansAlwaysZeroWhenDiscriminated(t *testing.T) {
	results := InferVariantConfidence("阿拉伯联合酋长国")
	for _, r := range results {
		if r.Variant == variant.ZhHans {
			if r.Confidence != 0 {
				t.Errorf("Hans confidence = %v, want 0 (see DESIGN.md)", r.Confidence)
			}
		}
	}
}
