package variant

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Variant
	}{
		{"zh", Zh},
		{"ZH", Zh},
		{"zh-Hant", ZhHant},
		{"zh-hant", ZhHant},
		{"zh-TW", ZhTW},
		{"Zh-Tw", ZhTW},
		{"zh-HK", ZhHK},
		{"zh-MO", ZhMO},
		{"zh-CN", ZhCN},
		{"zh-SG", ZhSG},
		{"zh-MY", ZhMY},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("zh-XX")
	if err == nil {
		t.Fatal("expected error for unknown variant tag")
	}
	var iv *InvalidVariant
	if !errorsAs(err, &iv) {
		t.Fatalf("expected *InvalidVariant, got %T", err)
	}
}

func errorsAs(err error, target **InvalidVariant) bool {
	if iv, ok := err.(*InvalidVariant); ok {
		*target = iv
		return true
	}
	return false
}

func TestTextMapFallback(t *testing.T) {
	m := NewTextMap()
	m.Set(ZhHant, "電腦")
	m.Set(ZhHans, "计算机")

	if got, ok := m.GetTextWithFallback(ZhTW); !ok || got != "電腦" {
		t.Errorf("ZhTW fallback = %q, %v, want 電腦, true", got, ok)
	}
	if got, ok := m.GetTextWithFallback(ZhCN); !ok || got != "计算机" {
		t.Errorf("ZhCN fallback = %q, %v, want 计算机, true", got, ok)
	}
	if _, ok := m.GetTextWithFallback(Zh); !ok {
		t.Errorf("Zh should fall back to Hans or Hant")
	}
}

func TestTextMapConvPairsScriptOnlyEmpty(t *testing.T) {
	m := NewTextMap()
	m.Set(ZhHant, "電腦")
	m.Set(ZhHans, "计算机")
	for _, v := range []Variant{Zh, ZhHant, ZhHans} {
		if pairs := m.ConvPairs(v); len(pairs) != 0 {
			t.Errorf("ConvPairs(%v) = %v, want empty", v, pairs)
		}
	}
}

func TestTextMapConvPairsRegion(t *testing.T) {
	m := NewTextMap()
	m.Set(ZhTW, "鼠麴草")
	m.Set(ZhCN, "香茅")

	pairs := m.ConvPairs(ZhCN)
	want := map[string]string{"鼠麴草": "香茅", "香茅": "香茅"}
	if len(pairs) != len(want) {
		t.Fatalf("ConvPairs(ZhCN) = %v, want %d pairs", pairs, len(want))
	}
	for _, p := range pairs {
		if want[p.From] != p.To {
			t.Errorf("pair %v not expected", p)
		}
	}
}

func TestPairMapNoFallback(t *testing.T) {
	m := NewPairMap()
	m.Append(ZhCN, "巨集", "宏")

	if pairs := m.ConvPairs(ZhCN); len(pairs) != 1 || pairs[0].To != "宏" {
		t.Errorf("ConvPairs(ZhCN) = %v", pairs)
	}
	if pairs := m.ConvPairs(ZhTW); len(pairs) != 0 {
		t.Errorf("ConvPairs(ZhTW) should not fall back, got %v", pairs)
	}
}
