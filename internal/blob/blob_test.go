package blob

import (
	"testing"

	"zhconv/internal/automaton"
)

func samplePairs() []automaton.Pair {
	return []automaton.Pair{
		{From: "国", To: "國"},
		{From: "鼠曲草", To: "鼠麴草"},
		{From: "旧词", To: "", Remove: true},
	}
}

func TestEncodeDecodeUncompressed(t *testing.T) {
	pairs := samplePairs()
	data, err := Encode(pairs, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertPairsEqual(t, got, pairs)
}

func TestEncodeDecodeZstd(t *testing.T) {
	pairs := samplePairs()
	data, err := Encode(pairs, true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if data[0] != 'z' || data[3] != 'z' {
		t.Fatalf("expected zstd-tagged header, got %v", data[:4])
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertPairsEqual(t, got, pairs)
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	if _, err := Decode([]byte{1, 2}); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestDecodeRejectsUnknownMagic(t *testing.T) {
	if _, err := Decode([]byte("xxxx")); err == nil {
		t.Fatal("expected error for unrecognized header")
	}
}

func assertPairsEqual(t *testing.T, got, want []automaton.Pair) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d pairs, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
