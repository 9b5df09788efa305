package analyze

import (
	"path"
	"strings"
)

// Unit 是一次配对/匹配产出的临时三元组，立即被 Task 构造消费，不做保留。
type Unit struct {
	// ID 在 flat 层级下是去扩展名的文件基名，在 paged 层级下是目录名，
	// 在显式 task 列表下是 task_custom_id（允许空串）。
	ID        string
	TextPath  string
	AudioPath string
}

// Pair 把文本与音频 entry 按"基名去末级扩展名"的键配对。
//
// 规则：
// - 只输出两侧都存在的键，每键至多一次
// - 输出顺序跟随 texts 内键的首次出现位置（texts 已排序 ⇒ 结果确定）
// - 同一列表内键重复时后写覆盖先写（既定策略，见 DESIGN.md）
func Pair(texts, audios []string) []Unit {
	dText := make(map[string]string, len(texts))
	order := make([]string, 0, len(texts))
	for _, p := range texts {
		k := pairKey(p)
		if _, ok := dText[k]; !ok {
			order = append(order, k)
		}
		dText[k] = p
	}

	dAudio := make(map[string]string, len(audios))
	for _, p := range audios {
		dAudio[pairKey(p)] = p
	}

	units := make([]Unit, 0, len(order))
	for _, k := range order {
		a, ok := dAudio[k]
		if !ok {
			continue
		}
		units = append(units, Unit{ID: k, TextPath: dText[k], AudioPath: a})
	}
	return units
}

// pairKey 取基名并去掉末级扩展名：`foo/text/a.txt` → `a`。
func pairKey(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
