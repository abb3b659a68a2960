package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/stackbar/pkg/cache"
	"github.com/matzehuels/stackbar/pkg/chart/render"
	"github.com/matzehuels/stackbar/pkg/errors"
)

const snapshotA = `{
  "data": [
    {"unique_id": "bar1", "label": "One", "boxes": [10, 20, 30], "image": "one.png"},
    {"unique_id": "bar2", "label": "Two", "boxes": [10, 20, 30]}
  ],
  "legend": ["a", "b", "c"],
  "colors": ["#ff0000", "#00ff00", "#0000ff"]
}`

const snapshotB = `
legend = ["a", "b", "c"]
colors = ["#ff0000", "#00ff00", "#0000ff"]

[config]
start_index = 1

[[data]]
unique_id = "bar1"
label = "One"
boxes = [10.0, 20.0, 30.0]
`

func writeSnapshots(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.toml")
	if err := os.WriteFile(a, []byte(snapshotA), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte(snapshotB), 0o644); err != nil {
		t.Fatal(err)
	}
	return []string{a, b}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"png", true},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()

	if o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("size = %vx%v, want %vx%v", o.Width, o.Height, DefaultWidth, DefaultHeight)
	}
	if o.Frames != DefaultFrames {
		t.Errorf("Frames = %d, want %d", o.Frames, DefaultFrames)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}
	if o.YLabel != render.DefaultYAxisLabel {
		t.Errorf("YLabel = %q, want %q", o.YLabel, render.DefaultYAxisLabel)
	}
	if o.Logger == nil {
		t.Error("Logger not set")
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	neg := -1
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"ok", Options{Paths: []string{"a.json"}}, ""},
		{"no paths", Options{}, errors.ErrCodeInvalidInput},
		{"bad extension", Options{Paths: []string{"a.csv"}}, errors.ErrCodeInvalidFormat},
		{"too many frames", Options{Paths: []string{"a.json"}, Frames: MaxFrames + 1}, errors.ErrCodeInvalidInput},
		{"negative width", Options{Paths: []string{"a.json"}, Width: -5}, errors.ErrCodeInvalidInput},
		{"negative start", Options{Paths: []string{"a.json"}, StartIndex: &neg}, errors.ErrCodeInvalidInput},
		{"easing", Options{Paths: []string{"a.json"}, Easing: "wobble"}, errors.ErrCodeUnsupported},
		{"format", Options{Paths: []string{"a.json"}, Formats: []string{"png"}}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("ValidateAndSetDefaults() error: %v", err)
				}
				return
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	paths := writeSnapshots(t)
	r := NewRunner(nil, nil, nil)

	res, err := r.Execute(context.Background(), Options{Paths: paths, Formats: []string{FormatSVG, FormatJSON}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if res.Stats.Snapshots != 2 || len(res.Datasets) != 2 {
		t.Fatalf("Snapshots = %d, want 2", res.Stats.Snapshots)
	}
	if len(res.Frames) != 2*DefaultFrames {
		t.Fatalf("len(Frames) = %d, want %d", len(res.Frames), 2*DefaultFrames)
	}

	first := res.Reports[0].Partition(render.CollectionBoxes)
	if len(first.Enter) != 6 {
		t.Errorf("first snapshot entered %d boxes, want 6", len(first.Enter))
	}
	second := res.Reports[1].Partition(render.CollectionBoxes)
	if len(second.Update) != 3 || len(second.Exit) != 3 {
		t.Errorf("second snapshot = %d updates, %d exits, want 3, 3", len(second.Update), len(second.Exit))
	}

	last := res.Frames[len(res.Frames)-1]
	if last.Snapshot != 1 || last.Index != DefaultFrames {
		t.Errorf("last frame = %d/%d", last.Snapshot, last.Index)
	}
	if got := last.Name(FormatSVG); got != "frame-001-04.svg" {
		t.Errorf("Name() = %q, want frame-001-04.svg", got)
	}
	svg := string(last.Artifacts[FormatSVG])
	if !strings.Contains(svg, "bar-box") || !strings.Contains(svg, "</svg>") {
		t.Error("last SVG frame has no boxes")
	}
	// bar2 has finished exiting by the last frame.
	if strings.Contains(string(last.Artifacts[FormatJSON]), "bar2:") {
		t.Error("exited boxes still present in the settled frame")
	}
	if res.Frames[0].Offset >= res.Frames[1].Offset {
		t.Errorf("frame offsets not increasing: %v, %v", res.Frames[0].Offset, res.Frames[1].Offset)
	}
}

func TestExecuteStartIndexOverride(t *testing.T) {
	paths := writeSnapshots(t)
	zero := 0
	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Paths: paths, StartIndex: &zero, Frames: 1})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got := res.Datasets[1].Config.StartIndex; got != 0 {
		t.Errorf("StartIndex = %d, want 0", got)
	}
}

func TestExecuteCached(t *testing.T) {
	paths := writeSnapshots(t)
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	opts := Options{Paths: paths, Frames: 2}
	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.Stats.CacheHits != 0 {
		t.Errorf("first run CacheHits = %d, want 0", first.Stats.CacheHits)
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if second.Stats.CacheHits != len(second.Frames) {
		t.Errorf("second run CacheHits = %d, want %d", second.Stats.CacheHits, len(second.Frames))
	}
	for i := range first.Frames {
		if string(first.Frames[i].Artifacts[FormatSVG]) != string(second.Frames[i].Artifacts[FormatSVG]) {
			t.Errorf("frame %d differs between runs", i)
		}
	}

	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if third.Stats.CacheHits != 0 {
		t.Errorf("refresh run CacheHits = %d, want 0", third.Stats.CacheHits)
	}
}

func TestExecuteErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"data": [{"unique_id": "x", "boxes": [1]}], "legend": ["a", "b"], "colors": ["#000", "#fff"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Paths: []string{bad}})
	if !errors.Is(err, errors.ErrCodeConfigMismatch) {
		t.Errorf("Execute(bad) error = %v, want CONFIG_MISMATCH", err)
	}

	_, err = r.Execute(context.Background(), Options{Paths: []string{filepath.Join(dir, "missing.json")}})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Execute(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
