package zhconv

import (
	"testing"

	"zhconv/variant"
)

func TestGetZhIsIdentity(t *testing.T) {
	c := Get(variant.Zh)
	if c.Convert("鼠曲草") != "鼠曲草" {
		t.Errorf("Zh converter must be identity")
	}
}

func TestGetZhHantConvertsSimplifiedPhrase(t *testing.T) {
	c := Get(variant.ZhHant)
	if got := c.Convert("天干物燥"); got != "天乾物燥" {
		t.Errorf("ZhHant phrase override: got %q", got)
	}
	if got := c.Convert("鼠曲草"); got != "鼠麴草" {
		t.Errorf("ZhHant leftmost-longest: got %q", got)
	}
}

func TestGetZhTWOverlayWinsOverBase(t *testing.T) {
	c := Get(variant.ZhTW)
	if got := c.Convert("阿拉伯联合酋长国"); got != "阿拉伯聯合大公國" {
		t.Errorf("ZhTW overlay: got %q", got)
	}
}

func TestGetIsCachedAcrossCalls(t *testing.T) {
	a := Get(variant.ZhCN)
	b := Get(variant.ZhCN)
	if a != b {
		t.Errorf("Get must return the same cached *Converter for repeated calls")
	}
}

func TestPackageLevelConvertUsesRegistry(t *testing.T) {
	if got := Convert(variant.ZhHant, "鼠曲草"); got != "鼠麴草" {
		t.Errorf("package-level Convert: got %q", got)
	}
}
