package container

import (
	"archive/zip"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("创建 zip 失败：%v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("写入 entry 失败：%v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("写入内容失败：%v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("关闭 zip 失败：%v", err)
	}
}

func TestOpenZip_EntriesAndRead(t *testing.T) {
	p := filepath.Join(t.TempDir(), "book.zip")
	writeZip(t, p, map[string]string{
		"book/config.txt":    "job_language=en",
		"book/text/ch1.txt":  "hello",
		"book/audio/ch1.mp3": "mp3",
	})

	c, err := OpenZip(p)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	defer c.Close()

	want := []string{"book/audio/ch1.mp3", "book/config.txt", "book/text/ch1.txt"}
	if !reflect.DeepEqual(c.Entries(), want) {
		t.Fatalf("期望 %v，实际 %v", want, c.Entries())
	}
	if !c.HasConfigTXT() || c.ConfigTXTEntry() != "book/config.txt" {
		t.Fatalf("配置 entry 检测失败：%q", c.ConfigTXTEntry())
	}

	b, err := c.ReadEntry("book/text/ch1.txt")
	if err != nil || string(b) != "hello" {
		t.Fatalf("读取失败：%q %v", b, err)
	}
	if _, err := c.ReadEntry("book/nope.txt"); err == nil {
		t.Fatalf("期望不存在的 entry 报错")
	}
}

func TestOpen_PicksByKind(t *testing.T) {
	dir := t.TempDir()

	zp := filepath.Join(dir, "a.zip")
	writeZip(t, zp, map[string]string{"x.txt": "x"})

	c, err := Open(zp)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if _, ok := c.(*Zip); !ok {
		t.Fatalf("期望 *Zip，实际 %T", c)
	}
	if z, ok := c.(*Zip); ok {
		_ = z.Close()
	}

	c, err = Open(dir)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if _, ok := c.(*Dir); !ok {
		t.Fatalf("期望 *Dir，实际 %T", c)
	}

	bad := filepath.Join(dir, "a.bin")
	touch(t, bad, "x")
	if _, err := Open(bad); err == nil {
		t.Fatalf("期望未知类型报错")
	}
}
