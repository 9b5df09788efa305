// Package container 把"打包产物"（目录树 / zip / tar 归档）统一成只读的 entry 视图。
//
// 约束（硬契约，analyze 依赖这些不变量）：
// - Entries() 返回的路径统一使用 '/' 分隔、字典序排序、无重复、只含文件
// - 分析期间容器视为不可变；本包不做任何写入
package container

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
)

// 配置入口文件名（固定约定）。
const (
	ConfigTXTName = "config.txt"
	ConfigXMLName = "config.xml"
)

// Container 是归档/目录的只读视图：排好序的 entry 列表 + 按需读取单个 entry。
type Container interface {
	Entries() []string
	ReadEntry(p string) ([]byte, error)

	HasConfigTXT() bool
	HasConfigXML() bool
	// ConfigTXTEntry / ConfigXMLEntry 返回配置 entry 的完整路径；不存在时为空串。
	ConfigTXTEntry() string
	ConfigXMLEntry() string
}

// Open 根据路径类型挑选实现：目录 → Dir；*.zip → Zip；*.tar/*.tar.gz/*.tgz → Tar。
func Open(p string) (Container, error) {
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return OpenDir(p)
	}

	name := strings.ToLower(p)
	switch {
	case strings.HasSuffix(name, ".zip"):
		return OpenZip(p)
	case strings.HasSuffix(name, ".tar"),
		strings.HasSuffix(name, ".tar.gz"),
		strings.HasSuffix(name, ".tgz"):
		return OpenTar(p)
	default:
		return nil, fmt.Errorf("无法识别的容器类型：%q（支持目录、.zip、.tar、.tar.gz、.tgz）", p)
	}
}

// index 是各实现共享的 entry 索引：排序去重 + 配置 entry 定位。
type index struct {
	entries  []string
	txtEntry string
	xmlEntry string
}

func newIndex(entries []string) index {
	entries = normalizeEntries(entries)
	return index{
		entries:  entries,
		txtEntry: findConfigEntry(entries, ConfigTXTName),
		xmlEntry: findConfigEntry(entries, ConfigXMLName),
	}
}

// Entries 返回的切片由调用方按只读使用（不复制，分析是单次同步计算）。
func (ix index) Entries() []string { return ix.entries }

func (ix index) HasConfigTXT() bool     { return ix.txtEntry != "" }
func (ix index) HasConfigXML() bool     { return ix.xmlEntry != "" }
func (ix index) ConfigTXTEntry() string { return ix.txtEntry }
func (ix index) ConfigXMLEntry() string { return ix.xmlEntry }

// normalizeEntries 统一分隔符、去掉空项与目录项（以 '/' 结尾），排序去重。
func normalizeEntries(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, e := range in {
		e = strings.ReplaceAll(e, `\`, "/")
		e = strings.TrimPrefix(e, "./")
		if e == "" || strings.HasSuffix(e, "/") {
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

// findConfigEntry 在排好序的 entries 里找第一个基名为 name 的条目。
// 排序保证"多个同名配置"时的确定性选择。
func findConfigEntry(entries []string, name string) string {
	for _, e := range entries {
		if path.Base(e) == name {
			return e
		}
	}
	return ""
}

// checkEntryPath 拒绝越界路径（绝对路径、".."）；p 必须是归一化的相对路径。
func checkEntryPath(p string) error {
	clean := path.Clean(p)
	if p == "" || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("非法 entry 路径：%q", p)
	}
	return nil
}
