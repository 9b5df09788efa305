package container

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Dir 把一个已解包的目录树当作容器。
type Dir struct {
	root string
	index
}

// OpenDir 扫描 root 下的全部文件建立索引。
// 扫描阶段只列目录，不读文件内容。
func OpenDir(root string) (*Dir, error) {
	root = filepath.Clean(root)

	entries := make([]string, 0, 128)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		entries = append(entries, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Dir{root: root, index: newIndex(entries)}, nil
}

func (d *Dir) ReadEntry(p string) ([]byte, error) {
	if err := checkEntryPath(p); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(d.root, filepath.FromSlash(p)))
}
