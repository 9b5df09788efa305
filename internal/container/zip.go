package container

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// Zip 把一个 .zip 归档当作容器。
// 索引在 Open 时建立；ReadEntry 按需解压单个 entry。
type Zip struct {
	rc     *zip.ReadCloser
	byName map[string]*zip.File
	index
}

func OpenZip(p string) (*Zip, error) {
	rc, err := zip.OpenReader(p)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*zip.File, len(rc.File))
	entries := make([]string, 0, len(rc.File))
	for _, f := range rc.File {
		name := strings.ReplaceAll(f.Name, `\`, "/")
		if f.FileInfo().IsDir() {
			continue
		}
		byName[name] = f
		entries = append(entries, name)
	}

	return &Zip{rc: rc, byName: byName, index: newIndex(entries)}, nil
}

func (z *Zip) ReadEntry(p string) ([]byte, error) {
	if err := checkEntryPath(p); err != nil {
		return nil, err
	}
	f, ok := z.byName[p]
	if !ok {
		return nil, fmt.Errorf("entry 不存在：%q", p)
	}
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Close 释放底层 zip 句柄（Dir/Tar 无句柄可释放，只有 Zip 提供 Close）。
func (z *Zip) Close() error { return z.rc.Close() }
