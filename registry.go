package zhconv

import (
	"sync"

	"zhconv/internal/automaton"
	"zhconv/internal/ztables"
	"zhconv/internal/zhlog"
	"zhconv/variant"
)

// tableNames lists, per variant, the built-in tables to compose in order
// [Hans_or_Hant_base, regional_overlay] (spec §4.H). Zh has none: it is the identity variant.
var tableNames = map[variant.Variant][]string{
	variant.Zh:     nil,
	variant.ZhHant: {ztables.TableHans2Hant},
	variant.ZhHans: {ztables.TableHant2Hans},
	variant.ZhTW:   {ztables.TableHans2Hant, ztables.TableTWOverlay},
	variant.ZhHK:   {ztables.TableHans2Hant, ztables.TableHKOverlay},
	variant.ZhMO:   {ztables.TableHans2Hant, ztables.TableMOOverlay},
	variant.ZhCN:   {ztables.TableHant2Hans, ztables.TableCNOverlay},
	variant.ZhSG:   {ztables.TableHant2Hans, ztables.TableSGOverlay},
	variant.ZhMY:   {ztables.TableHant2Hans, ztables.TableMYOverlay},
}

type registrySlot struct {
	once      sync.Once
	converter *Converter
}

var registry = func() map[variant.Variant]*registrySlot {
	m := make(map[variant.Variant]*registrySlot, len(variant.All))
	for _, v := range variant.All {
		m[v] = &registrySlot{}
	}
	return m
}()

// NewBuilderFromBuiltin returns a fresh Builder pre-seeded with v's built-in tables, the same
// ones Get(v) compiles into the cached registry converter. Callers that need to layer ad-hoc
// rules or extra rule files on top of a built-in target (e.g. the CLI's --rule/--rules_file)
// start here instead of Get, since Get's result is shared process-wide and must stay immutable.
func NewBuilderFromBuiltin(v variant.Variant) *Builder {
	return NewBuilder(v).Tables(tableNames[v])
}

// Get returns the process-wide built-in converter for v, constructing it on first access. Each
// of the nine slots transitions from unset to set at most once, guarded by sync.Once, which
// guarantees no reader ever observes a partially built converter and that concurrent first
// access races to exactly one winner (spec §5).
func Get(v variant.Variant) *Converter {
	slot := registry[v]
	slot.once.Do(func() {
		zhlog.Debugf("zhconv: building built-in converter for %s\n", v)
		names := tableNames[v]
		if len(names) == 0 {
			slot.converter = &Converter{target: v, trie: automaton.Build(nil)}
			return
		}
		slot.converter = NewBuilder(v).Tables(names).Build()
	})
	return slot.converter
}
