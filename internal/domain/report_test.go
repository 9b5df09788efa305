package domain

import "testing"

func TestNewReport_SummaryAndOrder(t *testing.T) {
	job := &Job{ConfigString: "job_language=en"}
	job.AddTask(Task{CustomID: "b", Language: "en"})
	job.AddTask(Task{CustomID: "a", Language: "en"})

	skips := []Skip{
		{Directory: "9", Reason: SkipAmbiguousAudio, AudioCount: 2},
		{Directory: "2", Reason: SkipAmbiguousText, TextCount: 3},
	}

	r := NewReport("book.zip", ConfigKindTXT, job, skips)

	if r.Summary.Tasks != 2 || r.Summary.Skipped != 2 {
		t.Fatalf("summary 错误：%+v", r.Summary)
	}
	// tasks 保持发现顺序，不按 id 重排。
	if r.Tasks[0].CustomID != "b" || r.Tasks[1].CustomID != "a" {
		t.Fatalf("tasks 顺序被改变：%+v", r.Tasks)
	}
	// skipped 按 directory 字典序。
	if r.Skipped[0].Directory != "2" || r.Skipped[1].Directory != "9" {
		t.Fatalf("skipped 未排序：%+v", r.Skipped)
	}
	if r.ConfigString != "job_language=en" {
		t.Fatalf("config_string 错误：%q", r.ConfigString)
	}
}

func TestNewReport_NilJob(t *testing.T) {
	r := NewReport("dir", ConfigKindNone, nil, nil)
	if r.Summary.Tasks != 0 || r.Summary.Skipped != 0 {
		t.Fatalf("空结果 summary 错误：%+v", r.Summary)
	}
	if r.Tasks == nil || r.Skipped == nil {
		t.Fatalf("列表必须是空切片而不是 null（JSON 契约）")
	}
}
