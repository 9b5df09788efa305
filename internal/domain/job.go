package domain

// Job 是一次容器分析的顶层产物：规范配置串 + 有序的 Task 集合。
//
// 约束：
// - Tasks 的顺序 = 发现顺序，返回给调用方后不再变化
// - 每次分析调用构造独立的 Job，不与历史结果共享
type Job struct {
	ConfigString string
	Tasks        []Task
}

// AddTask 按发现顺序追加一个 Task。
func (j *Job) AddTask(t Task) {
	j.Tasks = append(j.Tasks, t)
}

// Len 返回 Task 数量（j 允许为 nil，表示"无配置"的空结果）。
func (j *Job) Len() int {
	if j == nil {
		return 0
	}
	return len(j.Tasks)
}
