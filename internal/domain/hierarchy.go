package domain

import "strings"

// HierarchyType 描述 task 资源在容器内的组织方式。
//
// 约束：只有两种取值；解析失败时宁可报错，也不允许猜测默认值。
type HierarchyType string

const (
	// HierarchyFlat：全部文本/音频文件直接位于共享根目录下，按去扩展名配对。
	HierarchyFlat HierarchyType = "flat"
	// HierarchyPaged：每个子目录一个 task，子目录按名字模式筛选。
	HierarchyPaged HierarchyType = "paged"
)

// ParseHierarchyType 校验并解析层级类型字符串（大小写不敏感）。
func ParseHierarchyType(s string) (HierarchyType, bool) {
	switch HierarchyType(strings.ToLower(strings.TrimSpace(s))) {
	case HierarchyFlat:
		return HierarchyFlat, true
	case HierarchyPaged:
		return HierarchyPaged, true
	default:
		return "", false
	}
}
