package ztables

// Compressed built-in phrase table source strings (spec §4.B format). Each table is a base
// script-conversion table (Hans↔Hant) or a regional overlay merged on top of one at build time.
//
// "鼠曲"/"鼠曲草" demonstrates genuine from-column compression: the second from-entry is
// byte(2)+"草", meaning "reuse the first 2 runes of the previous from entry (鼠曲), then append
// 草" — expanding to "鼠曲草". This is the same leftmost-longest pitfall named in spec §9 (鼠曲
// vs 鼠曲草): both keys exist in the table, and the automaton, not this format, is responsible
// for preferring the longer match.

const (
	hans2hantFroms = "天干物燥|鼠曲|\x02草|联|长|国|烛|极|体|义|华|学|会|对|时|间|软件|网络|数据|文档|计算机"
	hans2hantTos   = "天乾物燥|鼠麴|鼠麴草|聯|長|國|燭|極|體|義|華|學|會|對|時|間|軟體|網絡|數據|文檔|計算機"

	hant2hansFroms = "極|體|國|聯|長|燭|義|馬|華|學|會|對|時|間|軟體|網絡|數據|文檔|計算機"
	hant2hansTos   = "极|体|国|联|长|烛|义|马|华|学|会|对|时|间|软件|网络|数据|文档|计算机"

	twOverlayFroms = "阿拉伯联合酋长国|网络|数据|出租车"
	twOverlayTos   = "阿拉伯聯合大公國|網路|資料|計程車"

	hkOverlayFroms = "出租车|软件"
	hkOverlayTos   = "的士|軟件"

	moOverlayFroms = "出租车|软件"
	moOverlayTos   = "的士|軟件"

	cnOverlayFroms = "計程車|隨身碟"
	cnOverlayTos   = "出租车|U盘"

	sgOverlayFroms = "計程車|軟體"
	sgOverlayTos   = "德士|软件"

	myOverlayFroms = "計程車|軟體"
	myOverlayTos   = "德士|软件"
)

// Table names used by the root package's builder when assembling a built-in converter mapping.
const (
	TableHans2Hant = "hans2hant"
	TableHant2Hans = "hant2hans"
	TableTWOverlay = "tw_overlay"
	TableHKOverlay = "hk_overlay"
	TableMOOverlay = "mo_overlay"
	TableCNOverlay = "cn_overlay"
	TableSGOverlay = "sg_overlay"
	TableMYOverlay = "my_overlay"
)

var builtinSource = map[string][2]string{
	TableHans2Hant: {hans2hantFroms, hans2hantTos},
	TableHant2Hans: {hant2hansFroms, hant2hansTos},
	TableTWOverlay: {twOverlayFroms, twOverlayTos},
	TableHKOverlay: {hkOverlayFroms, hkOverlayTos},
	TableMOOverlay: {moOverlayFroms, moOverlayTos},
	TableCNOverlay: {cnOverlayFroms, cnOverlayTos},
	TableSGOverlay: {sgOverlayFroms, sgOverlayTos},
	TableMYOverlay: {myOverlayFroms, myOverlayTos},
}

// Builtin expands and returns the named built-in table's pairs. Unknown names return nil, nil.
func Builtin(name string) ([]Pair, error) {
	src, ok := builtinSource[name]
	if !ok {
		return nil, nil
	}
	return Expand(src[0], src[1])
}

// MergeTables merges overlay onto base: overlay entries override a base entry with the same
// From key, and contribute new entries otherwise. Base order is preserved for shared keys; new
// overlay-only entries are appended in overlay order.
func MergeTables(base, overlay []Pair) []Pair {
	idx := make(map[string]int, len(base))
	merged := make([]Pair, len(base))
	copy(merged, base)
	for i, p := range merged {
		idx[p.From] = i
	}
	for _, p := range overlay {
		if i, ok := idx[p.From]; ok {
			merged[i].To = p.To
			continue
		}
		idx[p.From] = len(merged)
		merged = append(merged, p)
	}
	return merged
}
