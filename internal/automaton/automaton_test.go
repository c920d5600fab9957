package automaton

import "testing"

func TestConvertIdentityOnEmptyTrie(t *testing.T) {
	empty := Build(nil)
	s := "天干物燥 小心火烛"
	if got := Convert(empty, s); got != s {
		t.Errorf("Convert(empty, %q) = %q, want identity", s, got)
	}
}

func TestConvertLeftmostLongest(t *testing.T) {
	trie := Build([]Pair{
		{From: "鼠曲", To: "鼠麴"},
		{From: "鼠曲草", To: "鼠麴草"},
	})
	if got := Convert(trie, "鼠曲草"); got != "鼠麴草" {
		t.Errorf("Convert = %q, want 鼠麴草 (longest match must win over 鼠曲)", got)
	}
}

func TestConvertPhraseOverrideBeatsCharLevel(t *testing.T) {
	trie := Build([]Pair{
		{From: "天干物燥", To: "天乾物燥"},
		{From: "烛", To: "燭"},
	})
	if got := Convert(trie, "天干物燥 小心火烛"); got != "天乾物燥 小心火燭" {
		t.Errorf("Convert = %q", got)
	}
}

func TestConvertNonMatchingRunesPassThrough(t *testing.T) {
	trie := Build([]Pair{{From: "国", To: "國"}})
	if got := Convert(trie, "abc国xyz"); got != "abc國xyz" {
		t.Errorf("Convert = %q", got)
	}
}

func TestShadowedOverrideWins(t *testing.T) {
	primary := Build([]Pair{{From: "馬", To: "马"}, {From: "義", To: "义"}})
	secondary := Build([]Pair{{From: "馬", To: "鹿"}, {From: "鹿", To: "鹿"}})
	got := ConvertShadowed(primary, secondary, "馬克思主義")
	if want := "鹿克思主义"; got != want {
		t.Errorf("ConvertShadowed = %q, want %q", got, want)
	}
}

func TestShadowedRemoveSkipsOneCodepointRatherThanShorterPrimaryMatch(t *testing.T) {
	primary := Build([]Pair{
		{From: "鼠曲", To: "AA"},
		{From: "鼠曲草", To: "BBB"},
	})
	withoutRemoval := Convert(primary, "鼠曲草")
	if withoutRemoval != "BBB" {
		t.Fatalf("test setup issue: expected BBB without removal, got %q", withoutRemoval)
	}

	// Primary's longest match at position 0 is "鼠曲草" (3 runes), tombstoned by the secondary
	// removal of the same length. Per spec §4.E step 3, this skips exactly one literal codepoint
	// ("鼠") rather than falling back to the shorter "鼠曲" match at position 0; the scan then
	// retries from position 1, where no pattern starts with "曲", so the whole input survives
	// unconverted.
	secondary := Build([]Pair{{From: "鼠曲草", Remove: true}})
	got := ConvertShadowed(primary, secondary, "鼠曲草")
	if want := "鼠曲草"; got != want {
		t.Errorf("ConvertShadowed = %q, want %q (tombstoned match yields to literal skip, not a shorter primary match)", got, want)
	}
}

func TestShadowPreservesPrimaryWhenNoSecondaryMatch(t *testing.T) {
	primary := Build([]Pair{{From: "国", To: "國"}, {From: "联", To: "聯"}})
	secondary := Build([]Pair{{From: "馬", To: "鹿"}})
	input := "中华人民共和国联合声明"
	if got, want := ConvertShadowed(primary, secondary, input), Convert(primary, input); got != want {
		t.Errorf("ConvertShadowed = %q, want %q (equal to primary-only scan)", got, want)
	}
}

func TestShadowNilSecondaryEqualsConvert(t *testing.T) {
	primary := Build([]Pair{{From: "国", To: "國"}})
	input := "国国国"
	if got, want := ConvertShadowed(primary, nil, input), Convert(primary, input); got != want {
		t.Errorf("ConvertShadowed(nil) = %q, want %q", got, want)
	}
}
