// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"godescent/hog"

	"golang.org/x/tools/godoc/vfs"
)

var (
	baseDir string
	gameNS  = vfs.NameSpace{}
	hogs    []*hog.Hog
	mutex   sync.RWMutex
)

type File = vfs.ReadSeekCloser

type hogFileSystem struct {
	h *hog.Hog
}

type closer struct {
	*io.SectionReader
}

func (*closer) Close() error {
	return nil
}

type fileInfo struct {
	name string // base name of the file
	size int64  // length in bytes for regular files; system-dependent for others
	dir  bool
}

func (f *fileInfo) Name() string {
	return f.name
}
func (f *fileInfo) Size() int64 {
	return f.size
}
func (f *fileInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}
func (f *fileInfo) ModTime() time.Time {
	return time.Time{}
}
func (f *fileInfo) IsDir() bool {
	return f.dir
}
func (f *fileInfo) Sys() any {
	return nil
}

// inside a hog file there is no directory, all files live in '/'
func (h hogFileSystem) Open(p string) (vfs.ReadSeekCloser, error) {
	f, err := h.h.Open(strings.TrimPrefix(p, "/"))
	if err != nil {
		return nil, err
	}
	return &closer{f}, nil
}

func (h hogFileSystem) Stat(p string) (os.FileInfo, error) {
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." {
		return &fileInfo{name: "/", dir: true}, nil
	}
	s, ok := h.h.Size(p)
	if !ok {
		return nil, os.ErrNotExist
	}
	return &fileInfo{name: path.Base(p), size: s}, nil
}

func (h hogFileSystem) Lstat(p string) (os.FileInfo, error) {
	return h.Stat(p)
}

func (h hogFileSystem) ReadDir(p string) ([]os.FileInfo, error) {
	p = strings.TrimPrefix(p, "/")
	if p != "" && p != "." {
		return nil, os.ErrNotExist
	}
	var r []os.FileInfo
	for _, n := range h.h.Names() {
		s, _ := h.h.Size(n)
		r = append(r, &fileInfo{name: n, size: s})
	}
	return r, nil
}

func (h hogFileSystem) RootType(string) vfs.RootType {
	return ""
}

func (h hogFileSystem) String() string {
	return h.h.String()
}

func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

// UseBaseDir makes dir and all *.hog files inside of it the search path.
// Loose files shadow files inside the archives.
func UseBaseDir(dir string) error {
	mutex.Lock()
	defer mutex.Unlock()
	closeHogs()
	baseDir = dir
	gameNS = vfs.NameSpace{}
	gameNS.Bind("/", vfs.OS(dir), "/", vfs.BindReplace)

	names, err := filepath.Glob(filepath.Join(dir, "*.hog"))
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, n := range names {
		h, err := hog.NewHogReader(n)
		if err != nil {
			return err
		}
		hogs = append(hogs, h)
		gameNS.Bind("/", hogFileSystem{h}, "/", vfs.BindAfter)
	}
	return nil
}

// Close releases all opened hog files.
func Close() {
	mutex.Lock()
	defer mutex.Unlock()
	closeHogs()
	gameNS = vfs.NameSpace{}
}

func closeHogs() {
	for _, h := range hogs {
		h.Close()
	}
	hogs = nil
}

func Stat(name string) (os.FileInfo, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	return gameNS.Stat(path.Join("/", name))
}

func Open(name string) (File, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	return gameNS.Open(path.Join("/", name))
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
