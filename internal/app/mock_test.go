package app

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/picnoir/picobak/internal/domain"
)

type mockFile struct {
	content string
	modTime time.Time
}

type mockFS struct {
	files    map[string]mockFile
	dirs     map[string]bool
	mkdirs   []string
	copies   [][2]string
	mkdirErr error
	copyErr  error
}

func newMockFS() *mockFS {
	return &mockFS{
		files: map[string]mockFile{},
		dirs:  map[string]bool{},
	}
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return mockFileInfo{name: filepath.Base(path), modTime: m.files[path].modTime}, nil
	}
	if m.dirs[path] {
		return mockFileInfo{name: filepath.Base(path), isDir: true}, nil
	}
	return nil, fs.ErrNotExist
}

func (m *mockFS) Exists(path string) (bool, error) {
	_, file := m.files[path]
	return file || m.dirs[path], nil
}

func (m *mockFS) IsDir(path string) (bool, error) {
	if m.dirs[path] {
		return true, nil
	}
	if _, ok := m.files[path]; ok {
		return false, nil
	}
	return false, fs.ErrNotExist
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	if m.mkdirErr != nil {
		return m.mkdirErr
	}
	m.mkdirs = append(m.mkdirs, path)
	m.dirs[path] = true
	return nil
}

func (m *mockFS) CopyFile(src, dst string) error {
	if m.copyErr != nil {
		return m.copyErr
	}
	m.copies = append(m.copies, [2]string{src, dst})
	m.files[dst] = m.files[src]
	return nil
}

func (m *mockFS) SameContent(a, b string) (bool, error) {
	return m.files[a].content == m.files[b].content, nil
}

func (m *mockFS) ModTime(path string) (time.Time, error) {
	file, ok := m.files[path]
	if !ok {
		return time.Time{}, fs.ErrNotExist
	}
	return file.modTime, nil
}

type mockFileInfo struct {
	name    string
	modTime time.Time
	isDir   bool
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return m.modTime }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() interface{}   { return nil }

type stubExif struct {
	dates map[string]time.Time
	err   error
}

func (s stubExif) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	if s.err != nil {
		return time.Time{}, s.err
	}
	if date, ok := s.dates[path]; ok {
		return date, nil
	}
	return time.Time{}, domain.ErrNoCaptureDate
}
