package fs

import (
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/djherbis/times"
	"github.com/udhos/equalfile"
)

var fileCompare = equalfile.New(nil, equalfile.Options{})

type OSFS struct{}

func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (OSFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CopyFile copies src to dst. dst must not exist yet: placement has
// already decided on a free name, and O_EXCL keeps a race with another
// process from clobbering it.
func (OSFS) CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	return dstFile.Close()
}

// SameContent reports whether two files are byte-identical.
func (OSFS) SameContent(a, b string) (bool, error) {
	return fileCompare.CompareFile(a, b)
}

func (OSFS) ModTime(path string) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return ts.ModTime(), nil
}
