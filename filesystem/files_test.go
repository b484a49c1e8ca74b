// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"godescent/hog"
)

func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "descent.hog"))
	if err != nil {
		t.Fatal(err)
	}
	err = hog.Write(f, []string{"hum.wav", "laser.wav"}, map[string][]byte{
		"hum.wav":   []byte("from hog"),
		"laser.wav": []byte("pew"),
	})
	f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "hum.wav"), []byte("loose file"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestFilesystemOrder(t *testing.T) {
	if err := UseBaseDir(setupDir(t)); err != nil {
		t.Fatalf("UseBaseDir: %v", err)
	}
	defer Close()
	for name, want := range map[string]string{
		"hum.wav":   "loose file",
		"laser.wav": "pew",
	} {
		b, err := ReadFile(name)
		if err != nil {
			t.Errorf("ReadFile(%q): %v", name, err)
			continue
		}
		if string(b) != want {
			t.Errorf("ReadFile(%q) = %q want %q", name, b, want)
		}
	}
	if _, err := Open("missing.wav"); err == nil {
		t.Errorf("Open(missing.wav) succeeded")
	}
	fi, err := Stat("laser.wav")
	if err != nil || fi.Size() != 3 {
		t.Errorf("Stat(laser.wav) = %v, %v", fi, err)
	}
}

func TestExt(t *testing.T) {
	for _, tc := range []struct{ in, ext, strip string }{
		{"sound/hum.wav", ".wav", "sound/hum"},
		{"dir.d/file", "", "dir.d/file"},
		{"a.b.raw", ".raw", "a.b"},
	} {
		if got := Ext(tc.in); got != tc.ext {
			t.Errorf("Ext(%q) = %q want %q", tc.in, got, tc.ext)
		}
		if got := StripExt(tc.in); got != tc.strip {
			t.Errorf("StripExt(%q) = %q want %q", tc.in, got, tc.strip)
		}
	}
}
