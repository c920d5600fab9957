package variant

// Pair is a single (from, to) conversion pair.
type Pair struct {
	From string
	To   string
}

// fallback is the substitution lattice of spec §3: for each target, an ordered list of
// variants tried (in order) if the target itself is absent from a map. There is no implicit
// final fallback to Zh and the lists are not walked recursively — only one hop.
var fallback = map[Variant][]Variant{
	Zh:     {ZhHans, ZhHant, ZhCN, ZhTW, ZhHK, ZhSG, ZhMO, ZhMY},
	ZhHans: {ZhCN, ZhSG, ZhMY},
	ZhHant: {ZhTW, ZhHK, ZhMO},
	ZhCN:   {ZhHans, ZhSG, ZhMY},
	ZhSG:   {ZhHans, ZhCN, ZhMY},
	ZhMY:   {ZhHans, ZhSG, ZhCN},
	ZhTW:   {ZhHant, ZhHK, ZhMO},
	ZhHK:   {ZhHant, ZhMO, ZhTW},
	ZhMO:   {ZhHant, ZhHK, ZhTW},
}

// Map is a mapping from Variant to T, carrying at most one entry per variant.
type Map[T any] struct {
	entries map[Variant]T
}

// NewMap creates an empty Map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{entries: make(map[Variant]T)}
}

// Set records the value for a variant, overwriting any previous entry.
func (m *Map[T]) Set(v Variant, val T) {
	if m.entries == nil {
		m.entries = make(map[Variant]T)
	}
	m.entries[v] = val
}

// Get returns the value set for a variant, if any.
func (m *Map[T]) Get(v Variant) (T, bool) {
	val, ok := m.entries[v]
	return val, ok
}

// IsEmpty reports whether the map carries no entries.
func (m *Map[T]) IsEmpty() bool {
	return len(m.entries) == 0
}

// Len reports the number of entries.
func (m *Map[T]) Len() int {
	return len(m.entries)
}

// Entries returns the (variant, value) pairs in the stable declaration order of variant.All,
// so rendering (e.g. Description output) is deterministic despite Go's randomized map order.
func (m *Map[T]) Entries() []struct {
	Variant Variant
	Value   T
} {
	out := make([]struct {
		Variant Variant
		Value   T
	}, 0, len(m.entries))
	for _, v := range All {
		if val, ok := m.entries[v]; ok {
			out = append(out, struct {
				Variant Variant
				Value   T
			}{v, val})
		}
	}
	return out
}

// TextMap is the bidirectional specialization: VariantMap<string>.
type TextMap struct {
	Map[string]
}

// NewTextMap creates an empty TextMap.
func NewTextMap() *TextMap {
	return &TextMap{Map: *NewMap[string]()}
}

// GetTextWithFallback walks the fallback lattice for target, returning the first present text.
func (m *TextMap) GetTextWithFallback(target Variant) (string, bool) {
	if t, ok := m.Get(target); ok {
		return t, true
	}
	for _, fb := range fallback[target] {
		if t, ok := m.Get(fb); ok {
			return t, true
		}
	}
	return "", false
}

// ConvPairs resolves the target text through the lattice, then yields (from, to) for every
// entry in the map whose text is non-empty, with to fixed to the resolved target text.
// For script-only targets (Zh/Hant/Hans) it yields nothing: those are used only for fallback,
// per spec §4.A.
func (m *TextMap) ConvPairs(target Variant) []Pair {
	switch target {
	case Zh, ZhHant, ZhHans:
		return nil
	}
	to, ok := m.GetTextWithFallback(target)
	if !ok {
		return nil
	}
	var pairs []Pair
	for _, e := range m.Entries() {
		if e.Value == "" {
			continue
		}
		pairs = append(pairs, Pair{From: e.Value, To: to})
	}
	return pairs
}

// PairMap is the unidirectional specialization: VariantMap<sequence of (from, to)>.
type PairMap struct {
	Map[[]Pair]
}

// NewPairMap creates an empty PairMap.
func NewPairMap() *PairMap {
	return &PairMap{Map: *NewMap[[]Pair]()}
}

// ConvPairs returns the exact bucket for target with no fallback: unidirectional lookup never
// falls back, per spec §4.A.
func (m *PairMap) ConvPairs(target Variant) []Pair {
	if p, ok := m.Get(target); ok {
		return p
	}
	return nil
}

// Append adds one more (from, to) pair to the bucket for v.
func (m *PairMap) Append(v Variant, from, to string) {
	existing, _ := m.Get(v)
	m.Set(v, append(existing, Pair{From: from, To: to}))
}
