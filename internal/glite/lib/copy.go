package lib

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// CopyFile copies a file from src to dst. If dst does not exist, it is
// created. If it does exist, it is overwritten.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	// Ensure the data is written to stable storage.
	return destFile.Sync()
}

// CopyDir replaces dst with a recursive copy of src. A missing src is a
// no-op. The target subtree is destroyed first, which is what makes mirror
// push/pull a wholesale replacement rather than a merge.
func CopyDir(src, dst string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	if err := os.RemoveAll(dst); err != nil {
		return errors.Wrapf(err, "clearing %s", dst)
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		return CopyFile(path, target)
	})
	if err != nil {
		return errors.Wrapf(err, "copying %s", src)
	}
	return nil
}
