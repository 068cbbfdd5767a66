package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createInMemoryImage creates a solid-color RGBA image.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createTestImage writes a solid-color PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, createInMemoryImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := createTestImage(t, 64, 32, color.RGBA{10, 20, 30, 255})

	img, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if format != "png" {
		t.Errorf("format: got %q, want png", format)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
		t.Errorf("dimensions: got %dx%d, want 64x32", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.jpg")

	_, _, err := Load(path)
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error type: got %T, want *LoadError", err)
	}
	if loadErr.Path != path {
		t.Errorf("Path: got %q, want %q", loadErr.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected the cause to be os.ErrNotExist, got %v", loadErr.Err)
	}
	if !strings.HasPrefix(err.Error(), "Could not read image at ") {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, _, err := Load(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error type: got %T, want *LoadError", err)
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Error("decode failure should not look like a missing file")
	}
}

func TestDescribe(t *testing.T) {
	path := createTestImage(t, 40, 30, color.White)
	img, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	info := Describe(path, img, format)
	if info.Width != 40 || info.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %q, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestDescribe_MissingFileKeepsDimensions(t *testing.T) {
	img := createInMemoryImage(12, 8, color.Black)

	info := Describe(filepath.Join(t.TempDir(), "gone.png"), img, "png")
	if info.Width != 12 || info.Height != 8 {
		t.Errorf("dimensions: got %dx%d, want 12x8", info.Width, info.Height)
	}
	if info.FileSizeBytes != 0 {
		t.Errorf("FileSizeBytes: got %d, want 0", info.FileSizeBytes)
	}
}
