package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedScreenshots(dir string) *Screenshots {
	s := NewScreenshots(dir, "cube")
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 45, 0, time.UTC) }
	return s
}

func TestFlipRows(t *testing.T) {
	// 1x2: bottom row red, top row blue in GL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows: %v", err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); b == 0 || r != 0 {
		t.Errorf("top row should be blue, got %v", img.At(0, 0))
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("bottom row should be red, got %v", img.At(0, 1))
	}
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	if _, err := FlipRows(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestSaveWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := fixedScreenshots(dir)

	pixels := make([]byte, 4*2*4)
	path, err := s.Save(pixels, 4, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "cube_2026-03-01_12-30-45") {
		t.Errorf("unexpected file name %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("expected 4x2 image, got %v", b)
	}
}

func TestSaveSameSecondDoesNotOverwrite(t *testing.T) {
	s := fixedScreenshots(t.TempDir())
	pixels := make([]byte, 4)

	first, err := s.Save(pixels, 1, 1)
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := s.Save(pixels, 1, 1)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if first == second {
		t.Errorf("second capture overwrote %s", first)
	}
}

func TestCaptureUsesReader(t *testing.T) {
	s := fixedScreenshots(t.TempDir())
	var gotW, gotH int
	s.read = func(w, h int) []byte {
		gotW, gotH = w, h
		return make([]byte, w*h*4)
	}

	if _, err := s.Capture(3, 2); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if gotW != 3 || gotH != 2 {
		t.Errorf("reader got %dx%d, want 3x2", gotW, gotH)
	}
	if _, err := s.Capture(0, 2); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestSaveEncodeFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	s := fixedScreenshots(dir)

	// A 0x0 image passes the size check but png refuses to encode it.
	if _, err := s.Save(nil, 0, 0); err == nil {
		t.Fatal("expected encode error for empty image")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("failed capture left %d file(s) behind", len(entries))
	}
}
