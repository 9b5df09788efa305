package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/John-Robertt/TAJA/internal/analyze"
	"github.com/John-Robertt/TAJA/internal/container"
	"github.com/John-Robertt/TAJA/internal/domain"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 || isHelp(args[0]) {
		printUsage()
		return
	}

	switch args[0] {
	case "analyze":
		if code := analyzeCmd(args[1:]); code != 0 {
			os.Exit(code)
		}
	default:
		fmt.Fprintf(os.Stderr, "未知命令：%q\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
}

func analyzeCmd(args []string) int {
	for _, a := range args {
		if isHelp(a) {
			printAnalyzeUsage()
			return 0
		}
	}

	aa, err := parseAnalyzeArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
		printAnalyzeUsage()
		return 2
	}

	c, err := container.Open(aa.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "打开容器失败：%v\n", err)
		return 1
	}
	if closer, ok := c.(io.Closer); ok {
		defer closer.Close()
	}

	an := analyze.New(c)

	var (
		job   *domain.Job
		skips []domain.Skip
		kind  string
	)
	if aa.ConfigString != "" {
		kind = domain.ConfigKindString
		job, skips, err = an.AnalyzeWithConfig(aa.ConfigString)
	} else {
		switch {
		case c.HasConfigXML():
			kind = domain.ConfigKindXML
		case c.HasConfigTXT():
			kind = domain.ConfigKindTXT
		default:
			kind = domain.ConfigKindNone
		}
		job, skips, err = an.Analyze()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "分析失败：%v\n", err)
		return 1
	}

	emitReport(domain.NewReport(aa.Path, kind, job, skips))

	// 无配置或存在被跳过的目录：非零退出，让脚本调用方能感知。
	if kind == domain.ConfigKindNone || len(skips) > 0 {
		return 1
	}
	return 0
}

type analyzeArgs struct {
	Path         string
	ConfigString string
}

func parseAnalyzeArgs(args []string) (analyzeArgs, error) {
	aa := analyzeArgs{}

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--config-string":
			if i+1 >= len(args) {
				return analyzeArgs{}, fmt.Errorf("--config-string 需要一个值")
			}
			i++
			aa.ConfigString = args[i]
		case strings.HasPrefix(a, "--config-string="):
			aa.ConfigString = strings.TrimPrefix(a, "--config-string=")
		case strings.HasPrefix(a, "-"):
			return analyzeArgs{}, fmt.Errorf("未知参数 %q", a)
		default:
			if aa.Path != "" {
				return analyzeArgs{}, fmt.Errorf("重复的容器路径：%q 与 %q", aa.Path, a)
			}
			aa.Path = a
		}
	}

	if aa.Path == "" {
		return analyzeArgs{}, fmt.Errorf("缺少容器路径")
	}
	return aa, nil
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage() {
	fmt.Fprint(os.Stdout, `用法：
  taja analyze <容器路径> [--config-string <配置串>]

命令：
  analyze    分析容器（目录 / .zip / .tar / .tar.gz / .tgz）并输出 Job 计划

使用 "taja analyze --help" 查看详细说明。
`)
}

func printAnalyzeUsage() {
	fmt.Fprint(os.Stdout, `用法：
  taja analyze <容器路径> [--config-string <配置串>]

参数：
  --config-string  不读容器内配置，改用给定的 txt 形式配置串（k=v|k=v）
  -h, --help       显示帮助

输出：
  stdout 仅输出一个 Report JSON；摘要与错误走 stderr。
  退出码：0 正常；1 分析失败、无配置或存在被跳过的目录；2 参数错误。
`)
}

// emitReport：stdout 必须且仅输出一个 Report JSON（摘要走 stderr）。
func emitReport(r domain.Report) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(r)
	fmt.Fprintf(os.Stderr, "完成：tasks=%d skipped=%d\n", r.Summary.Tasks, r.Summary.Skipped)
}
