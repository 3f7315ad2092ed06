package font

import (
	"os"
	"path/filepath"
	"testing"

	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
)

const workspaceYAML = `
family: Test
style: Regular
metrics:
  unitsPerEm: 1000
  ascender: 800
  descender: -200
  xHeight: 500
glyphs:
  A:
    width: 800
    codepoints: ["A"]
    leftGroup: public.kern1.A
    contours:
      - points:
          - {x: 100, y: 100}
          - {x: 700, y: 100}
          - {x: 700, y: 700, type: line}
          - {x: 100, y: 700, type: line}
  O:
    width: 700
    codepoints: ["O"]
    contours:
      - points:
          - {x: 350, y: 700, type: hyper}
          - {x: 650, y: 350, type: hyper}
          - {x: 350, y: 0, type: hyper}
          - {x: 50, y: 350, type: hyper}
  Aacute:
    width: 800
    codepoints: ["\u00C1"]
    components:
      - base: A
      - base: acute
        transform: [1, 0, 0, 1, 250, 200]
kerning:
  A:
    O: -40
groups:
  public.kern1.A: [A, Aacute]
`

func loadTestWorkspace(t *testing.T, yaml string) *Workspace {
	t.Helper()
	path := filepath.Join(t.TempDir(), "font.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	var counter entity.Counter
	ws, err := LoadWorkspace(path, &counter)
	if err != nil {
		t.Fatal(err)
	}
	return ws
}

func TestLoadWorkspace(t *testing.T) {
	ws := loadTestWorkspace(t, workspaceYAML)

	if ws.FamilyName() != "Test" || ws.StyleName() != "Regular" {
		t.Errorf("names = %q %q", ws.FamilyName(), ws.StyleName())
	}
	if m := ws.Metrics(); m.UnitsPerEm != 1000 || m.Descender != -200 || m.XHeight != 500 {
		t.Errorf("metrics = %+v", m)
	}

	a, ok := ws.Glyph("A")
	if !ok {
		t.Fatal("glyph A missing")
	}
	if a.Width != 800 || a.Codepoints[0] != 'A' || a.LeftGroup != "public.kern1.A" {
		t.Errorf("A = %+v", a)
	}
	// An omitted point type means a line point.
	if a.Contours[0].Points[0].Type != PointLine {
		t.Errorf("default point type = %v, want line", a.Contours[0].Points[0].Type)
	}

	o, _ := ws.Glyph("O")
	if o.Contours[0].Points[0].Type != PointHyper {
		t.Errorf("O point type = %v, want hyper", o.Contours[0].Points[0].Type)
	}

	ac, _ := ws.Glyph("Aacute")
	if len(ac.Components) != 2 {
		t.Fatalf("Aacute has %d components, want 2", len(ac.Components))
	}
	if !ac.Components[0].Transform.IsIdentity() {
		t.Error("omitted transform should load as identity")
	}
	got := ac.Components[1].Transform.TransformPoint(glyphed.Point{})
	if got != (glyphed.Point{X: 250, Y: 200}) {
		t.Errorf("acute offset = %v, want (250, 200)", got)
	}
	if ac.Components[0].ID.IsZero() || ac.Components[0].ID == ac.Components[1].ID {
		t.Error("components should get distinct fresh IDs")
	}

	if got := ws.KernValue("A", "", "O", ""); got != -40 {
		t.Errorf("KernValue(A, O) = %g, want -40", got)
	}
	// Group membership resolves through the loaded tables.
	if got := ws.KernValue("Aacute", "public.kern1.A", "O", ""); got != 0 {
		// No group pair is defined, only the exact A/O pair.
		t.Errorf("KernValue(Aacute, O) = %g, want 0", got)
	}
}

func TestLoadWorkspaceRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"multi-rune codepoint", "glyphs:\n  A:\n    codepoints: [\"ABC\"]\n"},
		{"unknown point type", "glyphs:\n  A:\n    contours:\n      - points:\n          - {x: 0, y: 0, type: wobble}\n"},
		{"short transform", "glyphs:\n  A:\n    components:\n      - base: B\n        transform: [1, 0]\n"},
		{"not yaml", "glyphs: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "font.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			var counter entity.Counter
			if _, err := LoadWorkspace(path, &counter); err == nil {
				t.Error("load should fail")
			}
		})
	}
}

func TestSaveWorkspaceRoundTrip(t *testing.T) {
	ws := loadTestWorkspace(t, workspaceYAML)
	path := filepath.Join(t.TempDir(), "saved.yaml")

	if err := SaveWorkspace(ws, path); err != nil {
		t.Fatal(err)
	}
	var counter entity.Counter
	back, err := LoadWorkspace(path, &counter)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := ws.Glyph("A")
	b, ok := back.Glyph("A")
	if !ok {
		t.Fatal("glyph A lost in round trip")
	}
	if b.Width != a.Width || len(b.Contours) != len(a.Contours) {
		t.Errorf("A drifted: %+v vs %+v", b, a)
	}
	for i, p := range b.Contours[0].Points {
		if p != a.Contours[0].Points[i] {
			t.Errorf("point %d = %+v, want %+v", i, p, a.Contours[0].Points[i])
		}
	}

	ac, _ := back.Glyph("Aacute")
	if len(ac.Components) != 2 {
		t.Fatalf("Aacute components lost: %d", len(ac.Components))
	}
	got := ac.Components[1].Transform.TransformPoint(glyphed.Point{})
	if got != (glyphed.Point{X: 250, Y: 200}) {
		t.Errorf("acute offset = %v after round trip", got)
	}

	if got := back.KernValue("A", "", "O", ""); got != -40 {
		t.Errorf("kerning lost in round trip: %g", got)
	}
	if back.Metrics() != ws.Metrics() {
		t.Error("metrics drifted in round trip")
	}
}
