package analyze

import (
	"reflect"
	"regexp"
	"testing"
)

func TestFilterEntries_SegmentBoundary(t *testing.T) {
	entries := []string{
		"text/a.txt",
		"text2/b.txt", // 目录名前缀相同但不是同一目录
		"text",        // root 本身不是自己的 entry
	}
	got := FilterEntries(entries, "text", "", regexp.MustCompile(`\.txt`))
	want := []string{"text/a.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v，实际 %v", want, got)
	}
}

func TestFilterEntries_RelativePathAndSort(t *testing.T) {
	entries := []string{
		"book/res/text/z.txt",
		"book/res/text/a.txt",
		"book/res/audio/a.mp3",
		"book/other/text/b.txt",
	}
	got := FilterEntries(entries, "book/res", "text", regexp.MustCompile(`\.txt`))
	want := []string{"book/res/text/a.txt", "book/res/text/z.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v（排序后），实际 %v", want, got)
	}
}

func TestFilterEntries_SubstringSemantics(t *testing.T) {
	entries := []string{"r/deep/ch1.txt.bak", "r/ch2.txt"}
	// 子串语义：模式命中剩余部分的任意位置，不要求整串匹配。
	got := FilterEntries(entries, "r", "", regexp.MustCompile(`\.txt`))
	want := []string{"r/ch2.txt", "r/deep/ch1.txt.bak"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v，实际 %v", want, got)
	}
}

func TestFilterEntries_NoMatchIsEmptyNotError(t *testing.T) {
	got := FilterEntries([]string{"a/x.bin"}, "a", "", regexp.MustCompile(`\.txt`))
	if len(got) != 0 {
		t.Fatalf("期望空结果，实际 %v", got)
	}
}

func TestFilterEntries_Deduplicates(t *testing.T) {
	entries := []string{"a/x.txt", "a/x.txt"}
	got := FilterEntries(entries, "a", "", regexp.MustCompile(`\.txt`))
	if len(got) != 1 {
		t.Fatalf("期望去重后 1 个，实际 %v", got)
	}
}
