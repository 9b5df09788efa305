package analyze

import (
	"errors"
	"fmt"
	"path"

	"github.com/John-Robertt/TAJA/internal/container"
	"github.com/John-Robertt/TAJA/internal/domain"
	"github.com/John-Robertt/TAJA/internal/jobconf"
)

const (
	// ErrCodeMissingLanguage 表示某个 task 在 task/job 两级都解析不到语言。
	ErrCodeMissingLanguage = "missing_language"
	// ErrCodeEntryRead 表示配置 entry 读取失败。
	ErrCodeEntryRead = "entry_read_failed"
)

// Error 是分析阶段的结构化错误（带 error_code）。
type Error struct {
	Code   string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "" && e.Err != nil:
		return fmt.Sprintf("%s：%s：%v", e.Code, e.Detail, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("%s：%s", e.Code, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("%s：%v", e.Code, e.Err)
	default:
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；既认本包的 *Error，也认 jobconf 的。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return jobconf.Code(err)
}

// Analyzer 对单个容器做一次性分析。
// 每次调用构造独立的 Job/Task 图；容器在调用期间视为只读不可变。
type Analyzer struct {
	c container.Container
}

func New(c container.Container) *Analyzer {
	return &Analyzer{c: c}
}

// Analyze 检测容器内的配置形式并产出 Job。
//
// 两种形式都不存在时返回 (nil, nil, nil)：对无关容器来说没有配置
// 是预期情形，不是错误。XML 形式优先于 txt 形式。
func (a *Analyzer) Analyze() (*domain.Job, []domain.Skip, error) {
	switch {
	case a.c.HasConfigXML():
		return a.analyzeXML()
	case a.c.HasConfigTXT():
		return a.analyzeTXT()
	default:
		return nil, nil, nil
	}
}

// AnalyzeWithConfig 用外部提供的 txt 形式配置串分析，
// 不读容器内配置，配置目录视为容器根（空串）。
func (a *Analyzer) AnalyzeWithConfig(configString string) (*domain.Job, []domain.Skip, error) {
	return a.analyzeConfigString(configString, "")
}

func (a *Analyzer) analyzeTXT() (*domain.Job, []domain.Skip, error) {
	entry := a.c.ConfigTXTEntry()
	b, err := a.c.ReadEntry(entry)
	if err != nil {
		return nil, nil, &Error{Code: ErrCodeEntryRead, Detail: entry, Err: err}
	}
	return a.analyzeConfigString(jobconf.FromTXT(b), dirOf(entry))
}

// analyzeConfigString 是 txt 形式的主流程：按配置声明的层级类型
// 做 flat 配对或 paged 目录匹配，逐个构造 Task。
func (a *Analyzer) analyzeConfigString(configString, configDir string) (*domain.Job, []domain.Skip, error) {
	m := jobconf.ParseString(configString)
	js, err := jobconf.Resolve(m, true)
	if err != nil {
		return nil, nil, err
	}

	tasksRoot := joinDir(configDir, js.HierarchyPrefix)
	outRoot := joinDir(configDir, js.OutHierarchyPrefix)
	entries := a.c.Entries()

	job := &domain.Job{ConfigString: configString}

	if js.HierarchyType == domain.HierarchyFlat {
		texts := FilterEntries(entries, tasksRoot, js.TextRelativePath, js.TextNamePattern)
		audios := FilterEntries(entries, tasksRoot, js.AudioRelativePath, js.AudioNamePattern)
		for _, u := range Pair(texts, audios) {
			t, err := buildTask(u, configString, m, m, outRoot, js.OutHierarchyType)
			if err != nil {
				return nil, nil, err
			}
			job.AddTask(t)
		}
		return job, nil, nil
	}

	// paged：每个命中的子目录恰好贡献一个 task；歧义目录跳过、继续处理同级。
	var skips []domain.Skip
	for _, dir := range MatchDirectories(entries, tasksRoot, js.TaskDirNamePattern) {
		dirPath := path.Join(tasksRoot, dir)
		texts := FilterEntries(entries, dirPath, js.TextRelativePath, js.TextNamePattern)
		audios := FilterEntries(entries, dirPath, js.AudioRelativePath, js.AudioNamePattern)

		switch {
		case len(texts) == 1 && len(audios) == 1:
			u := Unit{ID: dir, TextPath: texts[0], AudioPath: audios[0]}
			t, err := buildTask(u, configString, m, m, outRoot, js.OutHierarchyType)
			if err != nil {
				return nil, nil, err
			}
			job.AddTask(t)
		case len(texts) > 1:
			skips = append(skips, domain.Skip{
				Directory: dir, Reason: domain.SkipAmbiguousText,
				TextCount: len(texts), AudioCount: len(audios),
			})
		case len(audios) > 1:
			skips = append(skips, domain.Skip{
				Directory: dir, Reason: domain.SkipAmbiguousAudio,
				TextCount: len(texts), AudioCount: len(audios),
			})
		default:
			// 目录内既无文本也无音频（或只有单侧）：静默跳过。
		}
	}
	return job, skips, nil
}

// analyzeXML 处理显式 task 列表：不做任何发现，逐个映射构造 Task。
func (a *Analyzer) analyzeXML() (*domain.Job, []domain.Skip, error) {
	entry := a.c.ConfigXMLEntry()
	b, err := a.c.ReadEntry(entry)
	if err != nil {
		return nil, nil, &Error{Code: ErrCodeEntryRead, Detail: entry, Err: err}
	}
	configDir := dirOf(entry)

	jm, tms, err := jobconf.ParseXML(b)
	if err != nil {
		return nil, nil, err
	}
	js, err := jobconf.Resolve(jm, false)
	if err != nil {
		return nil, nil, err
	}

	outRoot := joinDir(configDir, js.OutHierarchyPrefix)
	job := &domain.Job{ConfigString: jobconf.Serialize(jm)}

	for i, tm := range tms {
		textPath := tm[jobconf.KeyTaskTextFile]
		audioPath := tm[jobconf.KeyTaskAudioFile]
		if textPath == "" {
			return nil, nil, &jobconf.Error{Code: jobconf.ErrCodeMalformed, Key: jobconf.KeyTaskTextFile,
				Err: fmt.Errorf("task #%d 未给出文本路径", i)}
		}
		if audioPath == "" {
			return nil, nil, &jobconf.Error{Code: jobconf.ErrCodeMalformed, Key: jobconf.KeyTaskAudioFile,
				Err: fmt.Errorf("task #%d 未给出音频路径", i)}
		}

		u := Unit{
			ID:        tm[jobconf.KeyTaskCustomID], // 缺失即空串
			TextPath:  joinDir(configDir, textPath),
			AudioPath: joinDir(configDir, audioPath),
		}
		t, err := buildTask(u, jobconf.Serialize(tm), tm, jm, outRoot, js.OutHierarchyType)
		if err != nil {
			return nil, nil, err
		}
		job.AddTask(t)
	}
	return job, nil, nil
}

// dirOf 取 entry 的目录；根级 entry 的目录是空串（不是 "."）。
func dirOf(entry string) string {
	d := path.Dir(entry)
	if d == "." {
		return ""
	}
	return d
}

// joinDir 把相对路径拼到配置目录下；dir 为空时只做 Clean。
func joinDir(dir, p string) string {
	if dir == "" {
		return path.Clean(p)
	}
	return path.Join(dir, p)
}
