// Package jobconf 负责两种配置形式的归一化：
// 行式 config.txt ↔ 规范配置串（`k=v|k=v`）↔ 键值 Map；
// XML 结构化 config.xml → Job 作用域 Map + 按序的 Task Map 列表。
package jobconf

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// ErrCodeMalformed 表示必填键缺失、取值非法或内容无法解析。
	ErrCodeMalformed = "config_malformed"
)

// Error 是配置归一化阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Key  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Key != "" && e.Err != nil:
		return fmt.Sprintf("%s：键 %q：%v", e.Code, e.Key, e.Err)
	case e.Key != "":
		return fmt.Sprintf("%s：键 %q 缺失或非法", e.Code, e.Key)
	case e.Err != nil:
		return fmt.Sprintf("%s：%v", e.Code, e.Err)
	default:
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Map 是配置的键值视图。未知键原样保留（透传，不报错）。
type Map map[string]string

// Get 依次在若干 Map 中查找 key，返回第一个非空值。
func Get(key string, maps ...Map) string {
	for _, m := range maps {
		if v := m[key]; v != "" {
			return v
		}
	}
	return ""
}

// ParseString 把规范配置串 `k=v|k=v` 解析为 Map。
// 空段与不含 '=' 的段被忽略；同键后写覆盖先写。
func ParseString(s string) Map {
	m := make(Map, 16)
	for _, seg := range strings.Split(s, "|") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		k, v, ok := strings.Cut(seg, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" {
			continue
		}
		m[k] = v
	}
	return m
}

// FromTXT 把行式 config.txt 的原始内容转成规范配置串：
// 去 BOM、按行切分（容忍 CRLF）、丢弃空行与不含 '=' 的行，用 '|' 连接。
func FromTXT(b []byte) string {
	s := strings.TrimPrefix(string(b), "\uFEFF")
	lines := strings.Split(s, "\n")

	segs := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || !strings.Contains(line, "=") {
			continue
		}
		segs = append(segs, line)
	}
	return strings.Join(segs, "|")
}

// Serialize 把 Map 还原为规范配置串。
// 键按字典序排列（确定性输出），空值键跳过。
func Serialize(m Map) string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	segs := make([]string, 0, len(keys))
	for _, k := range keys {
		segs = append(segs, k+"="+m[k])
	}
	return strings.Join(segs, "|")
}
