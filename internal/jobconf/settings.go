package jobconf

import (
	"fmt"
	"regexp"

	"github.com/John-Robertt/TAJA/internal/domain"
)

// JobSettings 是 Job 作用域配置的强类型视图。
//
// 约束：必填项在 Resolve 时一次性校验，正则在此处预编译；
// 后续组件直接消费字段，不再做二次查找/解析。
type JobSettings struct {
	Language string

	HierarchyType   domain.HierarchyType
	HierarchyPrefix string

	OutHierarchyType   domain.HierarchyType
	OutHierarchyPrefix string

	TextRelativePath string
	// TextNamePattern 按子串语义匹配（regexp 默认不锚定）。
	TextNamePattern   *regexp.Regexp
	AudioRelativePath string
	AudioNamePattern  *regexp.Regexp

	// TaskDirNamePattern 已锚定在目录名开头；仅 paged 层级需要。
	TaskDirNamePattern *regexp.Regexp
}

// Resolve 把 Job 作用域 Map 解析为 JobSettings。
//
// discovery=true（txt 形式的隐式发现）时必填：层级类型、输入/输出前缀、
// 文本/音频文件名模式，以及 paged 层级下的目录名模式和输出文件名。
// discovery=false（XML 形式，task 显式列出）时只要求输出前缀与输出层级类型。
func Resolve(m Map, discovery bool) (JobSettings, error) {
	js := JobSettings{
		Language:           m[KeyJobLanguage],
		HierarchyPrefix:    m[KeyHierarchyPrefix],
		OutHierarchyPrefix: m[KeyOutHierarchyPrefix],
		TextRelativePath:   m[KeyTextRelativePath],
		AudioRelativePath:  m[KeyAudioRelativePath],
	}

	outKind, ok := domain.ParseHierarchyType(m[KeyOutHierarchyType])
	if !ok {
		return JobSettings{}, &Error{Code: ErrCodeMalformed, Key: KeyOutHierarchyType}
	}
	js.OutHierarchyType = outKind
	if js.OutHierarchyPrefix == "" {
		return JobSettings{}, &Error{Code: ErrCodeMalformed, Key: KeyOutHierarchyPrefix}
	}

	if !discovery {
		return js, nil
	}

	kind, ok := domain.ParseHierarchyType(m[KeyHierarchyType])
	if !ok {
		return JobSettings{}, &Error{Code: ErrCodeMalformed, Key: KeyHierarchyType}
	}
	js.HierarchyType = kind
	if js.HierarchyPrefix == "" {
		return JobSettings{}, &Error{Code: ErrCodeMalformed, Key: KeyHierarchyPrefix}
	}
	if m[KeyTaskOutFileName] == "" {
		return JobSettings{}, &Error{Code: ErrCodeMalformed, Key: KeyTaskOutFileName}
	}

	var err error
	if js.TextNamePattern, err = compileSearch(m, KeyTextNamePattern); err != nil {
		return JobSettings{}, err
	}
	if js.AudioNamePattern, err = compileSearch(m, KeyAudioNamePattern); err != nil {
		return JobSettings{}, err
	}

	if kind == domain.HierarchyPaged {
		raw := m[KeyTaskDirNamePattern]
		if raw == "" {
			return JobSettings{}, &Error{Code: ErrCodeMalformed, Key: KeyTaskDirNamePattern}
		}
		// 目录名模式锚定在名字开头（与文件名模式的子串语义不同）。
		re, err := regexp.Compile("^(?:" + raw + ")")
		if err != nil {
			return JobSettings{}, &Error{Code: ErrCodeMalformed, Key: KeyTaskDirNamePattern, Err: err}
		}
		js.TaskDirNamePattern = re
	}

	return js, nil
}

func compileSearch(m Map, key string) (*regexp.Regexp, error) {
	raw := m[key]
	if raw == "" {
		return nil, &Error{Code: ErrCodeMalformed, Key: key}
	}
	re, err := regexp.Compile(raw)
	if err != nil {
		return nil, &Error{Code: ErrCodeMalformed, Key: key, Err: fmt.Errorf("正则无效：%w", err)}
	}
	return re, nil
}
