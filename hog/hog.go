// SPDX-License-Identifier: GPL-2.0-or-later

// Package hog reads Descent HOG archives. A HOG file starts with the magic
// "DHF" followed by entries of a 13 byte zero padded name, a little endian
// int32 size and the file data.
package hog

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const nameLen = 13

var magic = []byte("DHF")

type entry struct {
	Name [nameLen]byte
	Size int32
}

type Hog struct {
	f     *os.File
	files map[string]*hfile
	name  string
	size  int64
}

type hfile struct {
	offset int64
	size   int64
}

// Open returns a io.SectionReader for the named entry. Names are matched
// case insensitive, as the DOS tools writing these archives did.
func (h *Hog) Open(name string) (*io.SectionReader, error) {
	f, ok := h.files[strings.ToLower(name)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NewSectionReader(h.f, f.offset, f.size), nil
}

// Size returns the size of the named entry.
func (h *Hog) Size(name string) (int64, bool) {
	f, ok := h.files[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return f.size, true
}

// Names returns the sorted entry names.
func (h *Hog) Names() []string {
	n := make([]string, 0, len(h.files))
	for k := range h.files {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

func (h *Hog) String() string {
	return h.name
}

func (h *Hog) Close() error {
	return h.f.Close()
}

func (h *Hog) init() error {
	var m [3]byte
	if _, err := io.ReadFull(h.f, m[:]); err != nil {
		return errors.Wrap(err, "reading magic")
	}
	if !bytes.Equal(magic, m[:]) {
		return errors.Errorf("%s: not a hog file", h.name)
	}
	offset := int64(len(magic))
	h.files = make(map[string]*hfile)
	for {
		var e entry
		if err := binary.Read(h.f, binary.LittleEndian, &e); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrapf(err, "%s: entry header at %d", h.name, offset)
		}
		offset += nameLen + 4
		if e.Size < 0 {
			return errors.Errorf("%s: negative size at %d", h.name, offset)
		}
		n := bytes.IndexByte(e.Name[:], 0)
		if n < 0 {
			n = nameLen
		}
		name := strings.ToLower(string(e.Name[:n]))
		if h.files[name] != nil {
			return errors.Errorf("%s: files in hog are not unique: %s", h.name, name)
		}
		h.files[name] = &hfile{
			offset: offset,
			size:   int64(e.Size),
		}
		offset += int64(e.Size)
		if offset > h.size {
			return errors.Errorf("%s: not long enough for %s", h.name, name)
		}
		if _, err := h.f.Seek(offset, io.SeekStart); err != nil {
			return errors.Wrapf(err, "%s: seek to %d", h.name, offset)
		}
	}
}

func NewHogReader(name string) (*Hog, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	h := &Hog{f: f, name: name, size: fi.Size()}
	if err := h.init(); err != nil {
		h.Close()
		return nil, err
	}
	return h, nil
}

// Write creates a HOG archive containing files in the given order.
func Write(w io.Writer, names []string, files map[string][]byte) error {
	if _, err := w.Write(magic); err != nil {
		return err
	}
	for _, n := range names {
		if len(n) >= nameLen {
			return errors.Errorf("name too long for hog: %q", n)
		}
		var e entry
		copy(e.Name[:], n)
		e.Size = int32(len(files[n]))
		if err := binary.Write(w, binary.LittleEndian, &e); err != nil {
			return err
		}
		if _, err := w.Write(files[n]); err != nil {
			return err
		}
	}
	return nil
}
