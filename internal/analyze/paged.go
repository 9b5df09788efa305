package analyze

import (
	"regexp"
	"sort"
	"strings"
)

// MatchDirectories 返回 root 下一级、名字被 pattern 从开头命中、且内部
// 至少还有一层内容的子目录名；去重后按字典序排序。
//
// "至少还有一层"意味着直接位于 root 下的文件（深度 1）不会让其
// 所在名字成为目录候选：entry `root/foo` 不产出 foo，`root/foo/bar` 产出。
func MatchDirectories(entries []string, root string, pattern *regexp.Regexp) []string {
	prefix := root + "/"
	if root == "" || root == "." {
		prefix = ""
	}

	set := make(map[string]struct{}, 8)
	for _, e := range entries {
		if !strings.HasPrefix(e, prefix) {
			continue
		}
		parts := strings.Split(e[len(prefix):], "/")
		if len(parts) < 2 {
			continue
		}
		name := parts[0]
		// 锚定在名字开头（即便传入未锚定的 pattern 也保持该语义）。
		loc := pattern.FindStringIndex(name)
		if loc == nil || loc[0] != 0 {
			continue
		}
		set[name] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
