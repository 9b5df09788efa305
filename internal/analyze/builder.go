package analyze

import (
	"fmt"
	"path"
	"strings"

	"github.com/John-Robertt/TAJA/internal/domain"
	"github.com/John-Robertt/TAJA/internal/jobconf"
)

// RefTemplate 是带单一 $PREFIX 槽位的输出引用模板。
// 用类型把"占位符替换"收拢到一个入口，避免散落的裸字符串替换。
type RefTemplate string

// Fill 把全部槽位替换为 id。不含槽位的模板原样返回；
// 只要 id 本身不含槽位记号，Fill 之后再 Fill 就是恒等操作。
func (t RefTemplate) Fill(id string) string {
	return strings.ReplaceAll(string(t), jobconf.PlaceholderToken, id)
}

// buildTask 由一个匹配单元构造完整的 Task。
//
// taskScope 是该 task 自己的配置 Map，jobScope 是 Job 作用域 Map；
// txt 形式下两者是同一个 Map（task 的配置串就是 job 的配置串）。
// 语言解析不到时整个分析调用失败——语言对下游是硬前提，静默丢 task 更糟。
func buildTask(
	u Unit,
	configString string,
	taskScope, jobScope jobconf.Map,
	outRoot string,
	outKind domain.HierarchyType,
) (domain.Task, error) {
	lang := jobconf.Get(jobconf.KeyTaskLanguage, taskScope, jobScope)
	if lang == "" {
		lang = jobScope[jobconf.KeyJobLanguage]
	}
	if lang == "" {
		return domain.Task{}, &Error{Code: ErrCodeMissingLanguage, Detail: u.ID}
	}

	outName := jobconf.Get(jobconf.KeyTaskOutFileName, taskScope, jobScope)
	if outName == "" {
		return domain.Task{}, &jobconf.Error{Code: jobconf.ErrCodeMalformed, Key: jobconf.KeyTaskOutFileName}
	}

	return domain.Task{
		Description:  fmt.Sprintf("Task %s", u.ID),
		Language:     lang,
		CustomID:     u.ID,
		TextPath:     u.TextPath,
		AudioPath:    u.AudioPath,
		SyncMapPath:  syncMapPath(outRoot, outKind, u.ID, outName),
		AudioRef:     RefTemplate(jobconf.Get(jobconf.KeyTaskAudioRef, taskScope, jobScope)).Fill(u.ID),
		PageRef:      RefTemplate(jobconf.Get(jobconf.KeyTaskPageRef, taskScope, jobScope)).Fill(u.ID),
		ConfigString: configString,
	}, nil
}

// syncMapPath 计算同步映射的输出路径。
// paged 输出层级下，每个单元先获得 root/<id> 自己的子目录（镜像输入分页）；
// 拼接后的整串再做一次占位符替换。
func syncMapPath(root string, kind domain.HierarchyType, id, fileName string) string {
	prefix := root
	if kind == domain.HierarchyPaged {
		prefix = path.Join(prefix, id)
	}
	return RefTemplate(path.Join(prefix, fileName)).Fill(id)
}
