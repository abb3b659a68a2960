package scene

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestGraph(t *testing.T) {
	g := New(960, 500)

	if !g.Create("a", KindRect, "bar-box") {
		t.Fatal("Create(a) = false, want true")
	}
	if g.Create("a", KindText, "other") {
		t.Error("Create(a) twice = true, want false")
	}
	g.Create("b", KindText, "bar-label")

	g.SetNum("a", AttrX, 12)
	g.SetStr("a", AttrFill, "#ff0000")
	g.SetNum("ghost", AttrX, 1)

	if v, ok := g.Num("a", AttrX); !ok || v != 12 {
		t.Errorf("Num(a, x) = %v, %v, want 12, true", v, ok)
	}
	if _, ok := g.Num("a", AttrY); ok {
		t.Error("Num(a, y) ok for unset attribute")
	}
	if v, _ := g.Str("a", AttrFill); v != "#ff0000" {
		t.Errorf("Str(a, fill) = %q, want #ff0000", v)
	}
	if g.Has("ghost") {
		t.Error("SetNum created an element")
	}

	g.Remove("a")
	g.Remove("a")
	if g.Has("a") || g.Len() != 1 {
		t.Errorf("after Remove: Has(a) = %v, Len() = %d", g.Has("a"), g.Len())
	}
}

func TestGraphOrder(t *testing.T) {
	g := New(100, 100)
	for _, id := range []string{"x", "y", "z"} {
		g.Create(id, KindRect, "bar-box")
	}
	g.Create("t", KindText, "bar-label")
	g.Remove("y")
	g.Create("y", KindRect, "bar-box")

	var ids []string
	for _, e := range g.Elements() {
		ids = append(ids, e.ID)
	}
	if got := strings.Join(ids, ","); got != "x,z,t,y" {
		t.Errorf("Elements() order = %s, want x,z,t,y", got)
	}
	if got := len(g.ByClass("bar-box")); got != 3 {
		t.Errorf("len(ByClass(bar-box)) = %d, want 3", got)
	}
}

func TestElementCopy(t *testing.T) {
	g := New(100, 100)
	g.Create("a", KindAxis, "x-axis")
	g.SetTicks("a", []Tick{{Label: "0", Pos: 10}})

	e, _ := g.Element("a")
	e.Num[AttrX] = 99
	e.Ticks[0].Pos = 99

	if _, ok := g.Num("a", AttrX); ok {
		t.Error("mutating a copy changed the graph")
	}
	f, _ := g.Element("a")
	if f.Ticks[0].Pos != 10 {
		t.Errorf("Ticks[0].Pos = %v, want 10", f.Ticks[0].Pos)
	}
}

func TestWriteSVG(t *testing.T) {
	g := New(200, 100)
	g.Create("main", KindGroup, "main_chart")
	g.SetNum("main", AttrX, 60)
	g.SetNum("main", AttrY, 30)

	g.Create("bar1:0", KindRect, "bar-box")
	for attr, v := range map[string]float64{AttrX: 3.4, AttrY: 10, AttrWidth: 20, AttrHeight: 40.6, AttrFillOpacity: 0.5} {
		g.SetNum("bar1:0", attr, v)
	}
	g.SetStr("bar1:0", AttrFill, "#ff0000")
	g.SetStr("bar1:0", AttrValue, "10")

	g.Create("label", KindText, "bar-label")
	g.SetStr("label", AttrText, "1,000 & up")
	g.SetStr("label", AttrAnchor, "middle")

	g.Create("pic", KindImage, "bar-pic")
	g.SetNum("pic", AttrWidth, 20)

	g.Create("y", KindAxis, "y-axis")
	g.SetStr("y", AttrOrient, "left")
	g.SetStr("y", AttrLabel, "Value")
	g.SetTicks("y", []Tick{{Label: "0", Pos: 40}, {Label: "5", Pos: 20}})

	var buf bytes.Buffer
	if err := WriteSVG(&buf, g); err != nil {
		t.Fatalf("WriteSVG() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<svg`,
		`translate(60,30)`,
		`x="3" y="10" width="20" height="41"`,
		`fill:#ff0000;fill-opacity:0.5`,
		`data-value="10"`,
		`1,000 &amp; up`,
		`class="y-axis"`,
		`rotate(-90)`,
		`>Value<`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteSVG() missing %q", want)
		}
	}
	if strings.Contains(out, "bar-pic") {
		t.Error("WriteSVG() drew an image without href")
	}
}

func TestWriteJSON(t *testing.T) {
	g := New(300, 200)
	g.Create("t", KindText, "bar-label")
	g.SetStr("t", AttrText, "60")

	var buf bytes.Buffer
	if err := WriteJSON(&buf, g); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if snap.Width != 300 || len(snap.Elements) != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Elements[0].Str[AttrText] != "60" {
		t.Errorf("text = %q, want 60", snap.Elements[0].Str[AttrText])
	}
}
