package domain

// Task 是一个"文本 ↔ 音频"的最小对齐工作单元。
//
// 约束：
// - Task 由其 Job 独占；构造完成后不再被改写或重新挂载
// - CustomID 允许为空串（XML 形式未给出 task_custom_id 时）
type Task struct {
	// Description 仅用于诊断展示，不参与任何匹配。
	Description string

	// Language 是已解析完成的语言（task 覆盖 job；两者都缺失则构造失败）。
	Language string

	CustomID  string
	TextPath  string
	AudioPath string

	// SyncMapPath 是计算得到的同步映射输出路径（占位符已替换）。
	SyncMapPath string

	// AudioRef / PageRef 是下游渲染用的引用模板（占位符已替换；缺失保持空串）。
	AudioRef string
	PageRef  string

	// ConfigString 是该 task 自包含的规范配置串。
	ConfigString string
}
