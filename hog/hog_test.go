// SPDX-License-Identifier: GPL-2.0-or-later

package hog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeHog(t *testing.T, names []string, files map[string][]byte) string {
	t.Helper()
	var b bytes.Buffer
	if err := Write(&b, names, files); err != nil {
		t.Fatalf("Write: %v", err)
	}
	fn := filepath.Join(t.TempDir(), "descent.hog")
	if err := os.WriteFile(fn, b.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return fn
}

func TestHog(t *testing.T) {
	fn := writeHog(t, []string{"hum.wav", "EXPL01.WAV"}, map[string][]byte{
		"hum.wav":    []byte("hum data"),
		"EXPL01.WAV": []byte("boom"),
	})
	h, err := NewHogReader(fn)
	if err != nil {
		t.Fatalf("could not open %s: %v", fn, err)
	}
	defer h.Close()
	if h.String() != fn {
		t.Errorf("hog String error: want %v got %v", fn, h.String())
	}
	for name, want := range map[string]string{
		"hum.wav":    "hum data",
		"expl01.wav": "boom",
		"Expl01.Wav": "boom",
	} {
		f, err := h.Open(name)
		if err != nil {
			t.Errorf("Open(%q): %v", name, err)
			continue
		}
		b, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("Could not read %s: %v", name, err)
		}
		if string(b) != want {
			t.Errorf("Open(%q) contents = %q want %q", name, b, want)
		}
	}
	if _, err := h.Open("missing.wav"); !os.IsNotExist(err) {
		t.Errorf("Open(missing.wav) = %v want ErrNotExist", err)
	}
	if n := h.Names(); len(n) != 2 || n[0] != "expl01.wav" || n[1] != "hum.wav" {
		t.Errorf("Names() = %v", n)
	}
	if s, ok := h.Size("hum.wav"); !ok || s != 8 {
		t.Errorf("Size(hum.wav) = %v, %v want 8, true", s, ok)
	}
}

func TestNotAHog(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.hog")
	if err := os.WriteFile(fn, []byte("PACK0000"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewHogReader(fn); err == nil {
		t.Errorf("NewHogReader accepted a non hog file")
	}
}

func TestTruncatedHog(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, []string{"a.wav"}, map[string][]byte{"a.wav": []byte("0123456789")}); err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(t.TempDir(), "short.hog")
	if err := os.WriteFile(fn, b.Bytes()[:b.Len()-3], 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewHogReader(fn); err == nil {
		t.Errorf("NewHogReader accepted a truncated hog file")
	}
}
