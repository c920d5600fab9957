// Package variant enumerates the Chinese script/region variants and the fallback
// lattice used to resolve a variant-keyed mapping down to a concrete text.
package variant

import "strings"

// Variant is one of the nine closed Chinese script/region variants.
type Variant int

const (
	// Zh is the null/identity variant: no conversion is applied.
	Zh Variant = iota
	ZhHant
	ZhHans
	ZhTW
	ZhHK
	ZhMO
	ZhCN
	ZhSG
	ZhMY
)

// All lists every variant in declaration order.
var All = []Variant{Zh, ZhHant, ZhHans, ZhTW, ZhHK, ZhMO, ZhCN, ZhSG, ZhMY}

var tags = map[Variant]string{
	Zh:     "zh",
	ZhHant: "zh-Hant",
	ZhHans: "zh-Hans",
	ZhTW:   "zh-TW",
	ZhHK:   "zh-HK",
	ZhMO:   "zh-MO",
	ZhCN:   "zh-CN",
	ZhSG:   "zh-SG",
	ZhMY:   "zh-MY",
}

var names = map[Variant]string{
	Zh:     "原文",
	ZhHant: "繁體",
	ZhHans: "简体",
	ZhTW:   "臺灣",
	ZhHK:   "香港",
	ZhMO:   "澳門",
	ZhCN:   "大陆",
	ZhSG:   "新加坡",
	ZhMY:   "大马",
}

var byTag map[string]Variant

func init() {
	byTag = make(map[string]Variant, len(tags))
	for v, t := range tags {
		byTag[strings.ToLower(t)] = v
	}
	// common aliases accepted by the reference implementation and the CLI.
	byTag["zh-hant"] = ZhHant
	byTag["zh-hans"] = ZhHans
	byTag["zh-cn"] = ZhCN
	byTag["zh-tw"] = ZhTW
	byTag["zh-hk"] = ZhHK
	byTag["zh-mo"] = ZhMO
	byTag["zh-sg"] = ZhSG
	byTag["zh-my"] = ZhMY
}

// String renders the IETF-like kebab tag for the variant, e.g. "zh-Hant".
func (v Variant) String() string {
	if t, ok := tags[v]; ok {
		return t
	}
	return "zh"
}

// DisplayName returns the human-readable name of the variant.
func (v Variant) DisplayName() string {
	if n, ok := names[v]; ok {
		return n
	}
	return names[Zh]
}

// InvalidVariant is returned by Parse when the input does not name a known variant.
type InvalidVariant struct {
	Tag string
}

func (e *InvalidVariant) Error() string {
	return "invalid variant: " + e.Tag
}

// Parse parses a case-insensitive, hyphenated IETF-like variant tag, e.g. "zh-Hant", "ZH-tw".
func Parse(text string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if v, ok := byTag[key]; ok {
		return v, nil
	}
	return Zh, &InvalidVariant{Tag: text}
}
