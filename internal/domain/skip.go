package domain

const (
	// SkipAmbiguousText：paged 目录内文本候选多于一个。
	SkipAmbiguousText = "ambiguous_text"
	// SkipAmbiguousAudio：paged 目录内音频候选多于一个。
	SkipAmbiguousAudio = "ambiguous_audio"
)

// Skip 记录 paged 层级中被跳过目录的诊断信息。
//
// 约束：跳过是局部恢复，不是错误——同级目录继续处理（宁可少产出，也不猜测歧义）。
type Skip struct {
	Directory string
	Reason    string // Skip* 常量

	TextCount  int
	AudioCount int
}
