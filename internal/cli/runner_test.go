package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/parkspot/internal/config"
	"github.com/ironsheep/parkspot/internal/tuning"
	"github.com/tidwall/gjson"
)

// createLotImageFile writes a white PNG with a 10x10 black block centred in
// each listed 40x40 spot of a row of spots, and returns its path.
func createLotImageFile(t *testing.T, spots int, occupied ...int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, spots*40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < spots*40; x++ {
			img.Set(x, y, color.White)
		}
	}
	for _, i := range occupied {
		for y := 15; y < 25; y++ {
			for x := i*40 + 15; x < i*40+25; x++ {
				img.Set(x, y, color.Black)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "lot.png")
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

// writeLotFile describes a row of n 40x40 spots with threshold 50.
func writeLotFile(t *testing.T, n int) string {
	t.Helper()

	spots := make([][4]int, n)
	for i := range spots {
		spots[i] = [4]int{i * 40, 0, 40, 40}
	}
	data, _ := json.Marshal(map[string]interface{}{"threshold": 50, "spots": spots})

	path := filepath.Join(t.TempDir(), "lot.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write lot file: %v", err)
	}
	return path
}

// testConfig returns a configuration that keeps every file in temp dirs.
func testConfig(t *testing.T, spots int) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LotFile:       writeLotFile(t, spots),
		SpotBounds:    "clip",
		FreeColor:     "#00FF00",
		OccupiedColor: "#FF0000",
		SimStore:      "file",
		SimIndex:      filepath.Join(dir, "sim_index.txt"),
		SimDatabase:   filepath.Join(dir, "sim_index.db"),
		TuneReport:    filepath.Join(dir, "out2.txt"),
		TuneGrid:      tuning.DefaultGrid(),
	}
}

func run(t *testing.T, cfg *config.Config, command string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	if err := New(cfg, nil, &out).Run(command, args); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.Count(out.String(), "\n") < 1 || !gjson.Valid(out.String()) {
		t.Fatalf("output is not a single JSON document: %q", out.String())
	}
	return out.String()
}

// assertErrorPayload checks that out is {"error": "..."} with no other keys.
func assertErrorPayload(t *testing.T, out, contains string) {
	t.Helper()
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(payload) != 1 {
		t.Errorf("error payload has extra keys: %v", payload)
	}
	msg, ok := payload["error"].(string)
	if !ok || msg == "" {
		t.Fatalf("missing error message: %v", payload)
	}
	if !strings.Contains(msg, contains) {
		t.Errorf("error %q does not mention %q", msg, contains)
	}
}

func TestRun_Read(t *testing.T) {
	cfg := testConfig(t, 3)
	out := run(t, cfg, CommandRead, createLotImageFile(t, 3, 1))

	want := `{"total_slots":3,"free_slots":2,"occupied_slots":1}` + "\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRun_ReadDefaultImage(t *testing.T) {
	cfg := testConfig(t, 3)
	cfg.Image = createLotImageFile(t, 3)

	out := run(t, cfg, CommandRead)
	if gjson.Get(out, "free_slots").Int() != 3 || gjson.Get(out, "occupied_slots").Int() != 0 {
		t.Errorf("empty lot: got %s", out)
	}
}

func TestRun_ReadUnreadableImage(t *testing.T) {
	cfg := testConfig(t, 3)
	missing := filepath.Join(t.TempDir(), "missing.png")

	out := run(t, cfg, CommandRead, missing)
	assertErrorPayload(t, out, "Could not read image at "+missing)
}

func TestRun_ReadCorruptImage(t *testing.T) {
	cfg := testConfig(t, 3)
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	out := run(t, cfg, CommandRead, path)
	assertErrorPayload(t, out, "Could not read image at")
}

func TestRun_ReadInvalidLot(t *testing.T) {
	cfg := testConfig(t, 3)
	if err := os.WriteFile(cfg.LotFile, []byte(`{"spots": [[0, 0, -4, 10]]}`), 0644); err != nil {
		t.Fatalf("failed to write lot file: %v", err)
	}

	out := run(t, cfg, CommandRead, createLotImageFile(t, 3))
	assertErrorPayload(t, out, "invalid lot configuration")
}

func TestRun_ReadRejectPolicy(t *testing.T) {
	cfg := testConfig(t, 4)
	cfg.SpotBounds = "reject"

	// Four spots configured, frame only three spots wide.
	out := run(t, cfg, CommandRead, createLotImageFile(t, 3))
	assertErrorPayload(t, out, "invalid spot")

	cfg.SpotBounds = "clip"
	out = run(t, cfg, CommandRead, createLotImageFile(t, 3))
	if gjson.Get(out, "total_slots").Int() != 4 {
		t.Errorf("clip policy: got %s", out)
	}
}

func TestRun_ReadDebugOutput(t *testing.T) {
	cfg := testConfig(t, 3)
	dir := t.TempDir()
	cfg.DebugImage = filepath.Join(dir, "debug_output.png")
	cfg.DebugSpots = filepath.Join(dir, "spots")

	out := run(t, cfg, CommandRead, createLotImageFile(t, 3, 0))
	if gjson.Get(out, "occupied_slots").Int() != 1 {
		t.Errorf("summary changed by debug output: %s", out)
	}

	if _, err := os.Stat(cfg.DebugImage); err != nil {
		t.Errorf("debug image not written: %v", err)
	}
	for _, name := range []string{"spot_1.png", "spot_2.png", "spot_3.png"} {
		if _, err := os.Stat(filepath.Join(cfg.DebugSpots, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestRun_ReadDebugFailureKeepsSummary(t *testing.T) {
	cfg := testConfig(t, 3)
	cfg.DebugImage = filepath.Join(t.TempDir(), "debug.gif")

	out := run(t, cfg, CommandRead, createLotImageFile(t, 3, 2))
	want := `{"total_slots":3,"free_slots":2,"occupied_slots":1}` + "\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	out := run(t, testConfig(t, 3), "park")
	assertErrorPayload(t, out, "unknown command")
}
