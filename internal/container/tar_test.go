package container

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTar(t *testing.T, path string, gz bool, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("创建 tar 失败：%v", err)
	}
	defer f.Close()

	var w io.Writer = f
	var gw *gzip.Writer
	if gz {
		gw = gzip.NewWriter(f)
		w = gw
	}

	tw := tar.NewWriter(w)
	// 固定写入顺序无关紧要：索引层会排序。
	for name, content := range files {
		hdr := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(content)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("写入 header 失败：%v", err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("写入内容失败：%v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("关闭 tar 失败：%v", err)
	}
	if gw != nil {
		if err := gw.Close(); err != nil {
			t.Fatalf("关闭 gzip 失败：%v", err)
		}
	}
}

func TestOpenTar_EntriesAndRead(t *testing.T) {
	p := filepath.Join(t.TempDir(), "book.tar")
	writeTar(t, p, false, map[string]string{
		"config.xml":   "<job></job>",
		"text/a.txt":   "a",
		"audio/a.mp3":  "m",
		"audio/b.flac": "f",
	})

	c, err := OpenTar(p)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	want := []string{"audio/a.mp3", "audio/b.flac", "config.xml", "text/a.txt"}
	if !reflect.DeepEqual(c.Entries(), want) {
		t.Fatalf("期望 %v，实际 %v", want, c.Entries())
	}
	if !c.HasConfigXML() || c.ConfigXMLEntry() != "config.xml" {
		t.Fatalf("配置 entry 检测失败：%q", c.ConfigXMLEntry())
	}

	b, err := c.ReadEntry("text/a.txt")
	if err != nil || string(b) != "a" {
		t.Fatalf("读取失败：%q %v", b, err)
	}
}

func TestOpenTar_Gzipped(t *testing.T) {
	p := filepath.Join(t.TempDir(), "book.tar.gz")
	writeTar(t, p, true, map[string]string{
		"config.txt": "is_hierarchy_type=flat",
	})

	c, err := Open(p)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	b, err := c.ReadEntry("config.txt")
	if err != nil || string(b) != "is_hierarchy_type=flat" {
		t.Fatalf("读取失败：%q %v", b, err)
	}
}
