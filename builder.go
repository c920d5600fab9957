package zhconv

import (
	"sort"
	"strings"

	"zhconv/internal/automaton"
	"zhconv/internal/ztables"
	"zhconv/rule"
	"zhconv/variant"
)

// Builder assembles a Converter from tables, ad-hoc (from, to) pairs, Convs, raw rule lines,
// and PageRules, per spec §4.D. All methods are chainable and none observe intermediate state;
// Build compiles the accumulated mapping into an automaton. Builder is single-owner mutable
// (spec §5): do not share one across goroutines without external synchronization, though Clone
// returns an independent copy of the accumulated state that can fork a build pipeline safely.
type Builder struct {
	target  variant.Variant
	tables  [][]ztables.Pair
	adds    map[string]string
	removes map[string]bool
}

// NewBuilder returns a Builder targeting v with no tables or pairs yet.
func NewBuilder(v variant.Variant) *Builder {
	return &Builder{target: v, adds: map[string]string{}, removes: map[string]bool{}}
}

// Clone forks an independent copy of the builder's accumulated state.
func (b *Builder) Clone() *Builder {
	nb := &Builder{
		target:  b.target,
		adds:    make(map[string]string, len(b.adds)),
		removes: make(map[string]bool, len(b.removes)),
	}
	nb.tables = append(nb.tables, b.tables...)
	for k, v := range b.adds {
		nb.adds[k] = v
	}
	for k := range b.removes {
		nb.removes[k] = true
	}
	return nb
}

// Target changes the target variant used to resolve Convs added afterward.
func (b *Builder) Target(v variant.Variant) *Builder {
	b.target = v
	return b
}

// Table appends a built-in table (by ztables name) as a mapping source, in the order given:
// earlier tables are overridden by later ones, which is how a regional overlay (e.g. tw_overlay)
// takes precedence over its script base (hans2hant) when both are added in that order.
func (b *Builder) Table(name string) *Builder {
	pairs, _ := ztables.Builtin(name)
	if pairs != nil {
		b.tables = append(b.tables, pairs)
	}
	return b
}

// Tables appends several built-in tables in order; see Table.
func (b *Builder) Tables(names []string) *Builder {
	for _, n := range names {
		b.Table(n)
	}
	return b
}

// ConvPairs adds raw (from, to) pairs, taking precedence over table entries with the same from.
func (b *Builder) ConvPairs(pairs []variant.Pair) *Builder {
	for _, p := range pairs {
		if p.From == "" {
			continue
		}
		b.adds[p.From] = p.To
	}
	return b
}

// UnconvPairs marks raw (from, to) pairs as removed; any rule with the same from, whether from
// a table, ConvPairs, ConvLines, or Convs, is excised regardless of source (spec §4.D).
func (b *Builder) UnconvPairs(pairs []variant.Pair) *Builder {
	for _, p := range pairs {
		if p.From == "" {
			continue
		}
		b.removes[p.From] = true
	}
	return b
}

// Convs adds the pairs each Conv contributes for the builder's current target.
func (b *Builder) Convs(convs []*rule.Conv) *Builder {
	for _, c := range convs {
		b.ConvPairs(c.ConvPairs(b.target))
	}
	return b
}

// Unconvs marks the pairs each Conv contributes for the builder's current target as removed.
func (b *Builder) Unconvs(convs []*rule.Conv) *Builder {
	for _, c := range convs {
		b.UnconvPairs(c.ConvPairs(b.target))
	}
	return b
}

// ConvLines parses each non-empty trimmed line as a Conv body (the same grammar as a rule's
// BODY) and adds its pairs; an unparsable line is skipped rather than failing the whole batch,
// matching the tolerant parsing policy used for per-document rules (spec §7).
func (b *Builder) ConvLines(lines []string) *Builder {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		conv, err := rule.ParseConv(line)
		if err != nil {
			continue
		}
		b.ConvPairs(conv.ConvPairs(b.target))
	}
	return b
}

// PageRules merges a PageRules' Add and Remove pairs (resolved for the builder's target) into
// the builder's adds and removes.
func (b *Builder) PageRules(pr *rule.PageRules) *Builder {
	b.ConvPairs(pr.AddPairs(b.target))
	b.UnconvPairs(pr.RemovePairs(b.target))
	return b
}

// RulesFromPage extracts PageRules from raw text (spec §4.C's conservative non-nested regex)
// and merges them; a convenience wrapper around PageRules(rule.ExtractPageRules(text)).
func (b *Builder) RulesFromPage(text string) *Builder {
	return b.PageRules(rule.ExtractPageRules(text))
}

// buildMapping computes the final (from, to) pairs per spec §4.D: table entries not removed,
// then adds not removed (overwriting table entries with the same key). removes always wins.
func (b *Builder) buildMapping() []automaton.Pair {
	merged := make(map[string]string)
	var order []string
	for _, table := range b.tables {
		for _, p := range table {
			if b.removes[p.From] {
				continue
			}
			if _, seen := merged[p.From]; !seen {
				order = append(order, p.From)
			}
			merged[p.From] = p.To
		}
	}
	for from, to := range b.adds {
		if b.removes[from] {
			continue
		}
		if _, seen := merged[from]; !seen {
			order = append(order, from)
		}
		merged[from] = to
	}

	pairs := make([]automaton.Pair, 0, len(order))
	for _, from := range order {
		pairs = append(pairs, automaton.Pair{From: from, To: merged[from]})
	}
	return pairs
}

// Dump returns the builder's final (from, to) mapping, sorted by From, for the CLI's
// --dump_table flag (spec §6). Removed entries are excluded rather than listed as tombstones:
// a dump describes what the converter will actually do, not its construction history.
func (b *Builder) Dump() []variant.Pair {
	merged := b.buildMapping()
	pairs := make([]variant.Pair, 0, len(merged))
	for _, p := range merged {
		pairs = append(pairs, variant.Pair{From: p.From, To: p.To})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].From < pairs[j].From })
	return pairs
}

// Build compiles the accumulated tables, pairs, and rules into a Converter. The builder remains
// usable afterward for further chaining and repeated builds.
func (b *Builder) Build() *Converter {
	return &Converter{target: b.target, trie: automaton.Build(b.buildMapping())}
}

// BuildSecondary compiles the builder's adds/removes only (ignoring tables) into a Converter
// meant to be used as the secondary half of Converter.ConvertShadowed: its removes surface as
// tombstones in the resulting trie rather than being silently excised, so a shadowed scan can
// suppress a primary match without needing the primary's own table contents here.
func (b *Builder) BuildSecondary() *Converter {
	pairs := make([]automaton.Pair, 0, len(b.adds)+len(b.removes))
	for from, to := range b.adds {
		if b.removes[from] {
			continue
		}
		pairs = append(pairs, automaton.Pair{From: from, To: to})
	}
	for from := range b.removes {
		pairs = append(pairs, automaton.Pair{From: from, Remove: true})
	}
	return &Converter{target: b.target, trie: automaton.Build(pairs)}
}
