package container

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Tar 把 .tar / .tar.gz / .tgz 归档当作容器。
//
// 索引在 Open 时建立一次；ReadEntry 重新顺序扫描归档。
// 每次分析只读一个配置 entry，重扫的代价可以接受。
type Tar struct {
	path    string
	gzipped bool
	index
}

func OpenTar(p string) (*Tar, error) {
	lower := strings.ToLower(p)
	gz := strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz")

	t := &Tar{path: p, gzipped: gz}

	entries := make([]string, 0, 128)
	err := t.scan(func(hdr *tar.Header, _ io.Reader) (bool, error) {
		if hdr.Typeflag == tar.TypeReg {
			entries = append(entries, hdr.Name)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	t.index = newIndex(entries)
	return t, nil
}

func (t *Tar) ReadEntry(p string) ([]byte, error) {
	if err := checkEntryPath(p); err != nil {
		return nil, err
	}

	var data []byte
	found := false
	err := t.scan(func(hdr *tar.Header, r io.Reader) (bool, error) {
		if hdr.Typeflag != tar.TypeReg {
			return false, nil
		}
		if strings.ReplaceAll(hdr.Name, `\`, "/") != p {
			return false, nil
		}
		b, err := io.ReadAll(r)
		if err != nil {
			return false, err
		}
		data = b
		found = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("entry 不存在：%q", p)
	}
	return data, nil
}

// scan 顺序遍历归档；fn 返回 true 表示提前停止。
func (t *Tar) scan(fn func(hdr *tar.Header, r io.Reader) (bool, error)) error {
	f, err := os.Open(t.path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if t.gzipped {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gr.Close()
		r = gr
	}

	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		stop, err := fn(hdr, tr)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}
