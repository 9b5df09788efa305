// Package analyze 把容器 entry 列表 + 归一化配置推导成 Job/Task 图。
//
// 全部组件都是对内存字符串的纯计算；唯一的容器读取发生在
// Analyzer 读配置 entry 时。确定性要求：相同输入必须产出相同的
// Task 顺序——靠过滤结果与目录匹配结果的强制排序保证。
package analyze

import (
	"path"
	"regexp"
	"sort"
	"strings"
)

// FilterEntries 返回位于 root[/relativePath] 之下、去掉该前缀后的剩余部分
// 能被 pattern（子串语义，不整串匹配）命中的 entry；输出字典序排序、无重复。
//
// 前缀判定按路径段边界：root=`text` 不会命中 `text2/a.txt`，
// 也不会把 root 本身当作自己的 entry。
func FilterEntries(entries []string, root, relativePath string, pattern *regexp.Regexp) []string {
	target := root
	if relativePath != "" {
		target = path.Join(root, relativePath)
	}
	// 容器根（"" 或 "."）没有前缀可言：剩余部分就是 entry 本身。
	prefix := target + "/"
	if target == "" || target == "." {
		prefix = ""
	}

	out := make([]string, 0, 8)
	seen := make(map[string]struct{}, 8)
	for _, e := range entries {
		if !strings.HasPrefix(e, prefix) {
			continue
		}
		rest := e[len(prefix):]
		if !pattern.MatchString(rest) {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
