package cli

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

// createTuneImageFile writes a 612x283 grey frame with a dark block in the
// second grid column.
func createTuneImageFile(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 612, 283))
	for y := 0; y < 283; y++ {
		for x := 0; x < 612; x++ {
			c := color.RGBA{180, 180, 180, 255}
			if x >= 100 && x < 160 && y >= 90 && y < 190 {
				c = color.RGBA{20, 20, 20, 255}
			}
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "parkLot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestRun_Tune(t *testing.T) {
	cfg := testConfig(t, 7)
	cfg.TuneImage = createTuneImageFile(t)
	cfg.TuneMask = filepath.Join(t.TempDir(), "mask.png")

	out := run(t, cfg, CommandTune)
	got := gjson.Parse(out)

	if got.Get("report_file").String() != cfg.TuneReport {
		t.Errorf("report_file: got %q", got.Get("report_file").String())
	}
	if n := got.Get("regions.#").Int(); n != 7 {
		t.Fatalf("regions: got %d, want 7", n)
	}
	if got.Get("regions.1.count").Int() == 0 {
		t.Error("second column should have foreground")
	}
	if got.Get("regions.6.region.x").Int() != 522 {
		t.Errorf("last region x: got %d", got.Get("regions.6.region.x").Int())
	}

	data, err := os.ReadFile(cfg.TuneReport)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if !strings.HasPrefix(lines[0], "Spot 1 (x=0, y=60, w=87, h=160): ") {
		t.Errorf("first line: got %q", lines[0])
	}
	if !strings.HasPrefix(lines[6], "Spot 7 (x=522, y=60, w=87, h=160): ") {
		t.Errorf("seventh line: got %q", lines[6])
	}

	if _, err := os.Stat(cfg.TuneMask); err != nil {
		t.Errorf("mask not written: %v", err)
	}
}

func TestRun_TuneArguments(t *testing.T) {
	cfg := testConfig(t, 7)
	report := filepath.Join(t.TempDir(), "custom.txt")

	out := run(t, cfg, CommandTune, createTuneImageFile(t), report)
	if gjson.Get(out, "report_file").String() != report {
		t.Errorf("report_file: got %s", out)
	}
	if _, err := os.Stat(report); err != nil {
		t.Errorf("custom report not written: %v", err)
	}
}

func TestRun_TuneUnreadableImage(t *testing.T) {
	cfg := testConfig(t, 7)
	out := run(t, cfg, CommandTune, "/nonexistent/frame.jpg")
	assertErrorPayload(t, out, "Could not read image at /nonexistent/frame.jpg")

	if _, err := os.Stat(cfg.TuneReport); !os.IsNotExist(err) {
		t.Error("no report should be written for an unreadable frame")
	}
}
