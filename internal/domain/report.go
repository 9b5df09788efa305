package domain

import "sort"

const (
	ConfigKindXML    = "xml"
	ConfigKindTXT    = "txt"
	ConfigKindString = "string"
	ConfigKindNone   = "none"
)

// Report 是对外稳定输出（stdout JSON）的结构。
type Report struct {
	Container  string `json:"container"`
	ConfigKind string `json:"config_kind"`

	ConfigString string `json:"config_string,omitempty"`

	Summary ReportSummary `json:"summary"`
	Tasks   []TaskResult  `json:"tasks"`
	Skipped []SkipResult  `json:"skipped"`
}

type ReportSummary struct {
	Tasks   int `json:"tasks"`
	Skipped int `json:"skipped"`
}

type TaskResult struct {
	Description string `json:"description"`
	CustomID    string `json:"custom_id"`
	Language    string `json:"language"`
	TextPath    string `json:"text_path"`
	AudioPath   string `json:"audio_path"`
	SyncMapPath string `json:"sync_map_path"`
	AudioRef    string `json:"audio_ref,omitempty"`
	PageRef     string `json:"page_ref,omitempty"`
}

type SkipResult struct {
	Directory  string `json:"directory"`
	Reason     string `json:"reason"`
	TextCount  int    `json:"text_count"`
	AudioCount int    `json:"audio_count"`
}

// NewReport 由分析结果构造 Report（job 允许为 nil，表示"无配置"）。
func NewReport(containerPath, kind string, job *Job, skips []Skip) Report {
	r := Report{
		Container:  containerPath,
		ConfigKind: kind,
		Tasks:      make([]TaskResult, 0, job.Len()),
		Skipped:    make([]SkipResult, 0, len(skips)),
	}
	if job != nil {
		r.ConfigString = job.ConfigString
		for _, t := range job.Tasks {
			r.Tasks = append(r.Tasks, TaskResult{
				Description: t.Description,
				CustomID:    t.CustomID,
				Language:    t.Language,
				TextPath:    t.TextPath,
				AudioPath:   t.AudioPath,
				SyncMapPath: t.SyncMapPath,
				AudioRef:    t.AudioRef,
				PageRef:     t.PageRef,
			})
		}
	}
	for _, s := range skips {
		r.Skipped = append(r.Skipped, SkipResult{
			Directory:  s.Directory,
			Reason:     s.Reason,
			TextCount:  s.TextCount,
			AudioCount: s.AudioCount,
		})
	}
	r.Finalize()
	return r
}

// Finalize 做两件事：
// 1) skipped 稳定排序：按 directory 字典序（tasks 保持发现顺序，不重排）
// 2) summary 由列表计算得出
func (r *Report) Finalize() {
	sort.SliceStable(r.Skipped, func(i, j int) bool {
		return r.Skipped[i].Directory < r.Skipped[j].Directory
	})
	r.Summary = ReportSummary{
		Tasks:   len(r.Tasks),
		Skipped: len(r.Skipped),
	}
}
