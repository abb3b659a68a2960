package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stackbar/pkg/chart"
	"github.com/matzehuels/stackbar/pkg/chart/layout"
	"github.com/matzehuels/stackbar/pkg/chart/render"
	"github.com/matzehuels/stackbar/pkg/chart/scene"
)

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testPlayer(t *testing.T, now *time.Time) playerModel {
	t.Helper()
	a, err := chart.Decode([]byte(testSnapshot), chart.FormatJSON)
	if err != nil {
		t.Fatalf("Decode(a) error: %v", err)
	}
	b, err := chart.Decode([]byte(testSnapshotRotated), chart.FormatTOML)
	if err != nil {
		t.Fatalf("Decode(b) error: %v", err)
	}
	m, err := newPlayer(context.Background(), []string{"a.json", "b.toml"}, []chart.Dataset{a, b},
		layout.Viewport{Width: 960, Height: 500},
		render.WithClock(func() time.Time { return *now }))
	if err != nil {
		t.Fatalf("newPlayer() error: %v", err)
	}
	return m
}

func update(t *testing.T, m playerModel, msg tea.Msg) (playerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(playerModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm, cmd
}

func TestPlayerSteps(t *testing.T) {
	now := time.Unix(100, 0)
	m := testPlayer(t, &now)

	if got := len(m.report.Partition(render.CollectionBoxes).Enter); got != 6 {
		t.Fatalf("first render entered %d boxes, want 6", got)
	}

	m, _ = update(t, m, key("n"))
	if m.current != 1 {
		t.Fatalf("current = %d, want 1", m.current)
	}
	boxes := m.report.Partition(render.CollectionBoxes)
	if len(boxes.Update) != 6 || len(boxes.Enter) != 0 || len(boxes.Exit) != 0 {
		t.Errorf("rotation partition = %+v, want 6 updates", boxes)
	}

	m, _ = update(t, m, key("r"))
	if got := m.datasets[1].Config.StartIndex; got != 0 {
		t.Errorf("StartIndex after rotate = %d, want 0", got)
	}

	m, _ = update(t, m, key(" "))
	if m.current != 0 {
		t.Errorf("space should wrap to snapshot 0, got %d", m.current)
	}
	m, _ = update(t, m, key("p"))
	if m.current != 1 {
		t.Errorf("p should wrap to snapshot 1, got %d", m.current)
	}

	if m.renderer.Idle() {
		t.Fatal("renderer idle right after a render")
	}
	now = now.Add(time.Second)
	m, _ = update(t, m, tickMsg(now))
	if !m.renderer.Idle() {
		t.Error("renderer still animating after 1s")
	}
	if !strings.Contains(m.View(), "idle") {
		t.Error("View() should report idle")
	}
}

func TestPlayerHover(t *testing.T) {
	now := time.Unix(100, 0)
	m := testPlayer(t, &now)

	m, _ = update(t, m, key("tab"))
	first := m.renderer.Hovered()
	if !strings.HasPrefix(first, "bar1:") {
		t.Fatalf("Hovered() = %q, want a bar1 box", first)
	}
	if !m.surface.Has(render.HoverID) {
		t.Error("overlay missing from the scene")
	}

	m, _ = update(t, m, key("tab"))
	if got := m.renderer.Hovered(); got == first || got == "" {
		t.Errorf("second tab Hovered() = %q", got)
	}

	m, _ = update(t, m, key("esc"))
	if got := m.renderer.Hovered(); got != "" {
		t.Errorf("Hovered() after esc = %q", got)
	}
	if m.surface.Has(render.HoverID) {
		t.Error("overlay still in the scene after esc")
	}
}

func TestPlayerQuit(t *testing.T) {
	now := time.Unix(100, 0)
	m := testPlayer(t, &now)

	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPlayerWindowSize(t *testing.T) {
	now := time.Unix(100, 0)
	m := testPlayer(t, &now)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 13})
	if m.cols != 40 || m.rows != 10 {
		t.Errorf("grid = %dx%d, want 40x10", m.cols, m.rows)
	}
	// title, 10 chart rows, help line
	if got := strings.Count(m.View(), "\n"); got != 11 {
		t.Errorf("View() has %d newlines, want 11", got)
	}
}

func TestNewPlayerEmpty(t *testing.T) {
	if _, err := newPlayer(context.Background(), nil, nil, layout.Viewport{Width: 10, Height: 10}); err == nil {
		t.Error("newPlayer() with no snapshots should fail")
	}
}

func TestRasterRect(t *testing.T) {
	tests := []struct {
		name    string
		opacity float64
		want    string
	}{
		{"opaque", 1, "#ff0000"},
		{"half", 0.5, "#8c0d0d"},
		{"hidden", 0, rasterBackground.Hex()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRaster(10, 4, 10, 4)
			r.rect(scene.Element{
				Kind: scene.KindRect,
				Num: map[string]float64{
					scene.AttrX: 0, scene.AttrY: 0,
					scene.AttrWidth: 5, scene.AttrHeight: 2,
					scene.AttrFillOpacity: tt.opacity,
				},
				Str: map[string]string{scene.AttrFill: "#ff0000"},
			}, 0, 0)

			if got := r.cells[0].bg.Hex(); got != tt.want {
				t.Errorf("inside = %s, want %s", got, tt.want)
			}
			if got := r.cells[1*10+4].bg.Hex(); got != tt.want {
				t.Errorf("corner = %s, want %s", got, tt.want)
			}
			if got := r.cells[5].bg; got != rasterBackground {
				t.Errorf("outside = %s, want background", got.Hex())
			}
			if got := r.cells[2*10].bg; got != rasterBackground {
				t.Errorf("below = %s, want background", got.Hex())
			}
		})
	}
}

func TestRasterize(t *testing.T) {
	g := scene.New(10, 4)
	g.Create("chart", scene.KindGroup, "")
	g.SetNum("chart", scene.AttrX, 2)
	g.SetNum("chart", scene.AttrY, 0)
	g.Create("label", scene.KindText, "bar-label")
	g.SetNum("label", scene.AttrX, 3)
	g.SetNum("label", scene.AttrY, 3)
	g.SetNum("label", scene.AttrOpacity, 1)
	g.SetStr("label", scene.AttrText, "42")
	g.SetStr("label", scene.AttrAnchor, "middle")

	out := rasterize(g, 10, 4)
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("rasterize() has %d newlines, want 3", got)
	}
	if !strings.Contains(out, "42") {
		t.Error("rasterize() dropped the label")
	}

	if rasterize(g, 0, 4) != "" {
		t.Error("rasterize() with zero columns should be empty")
	}
}
