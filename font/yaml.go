package font

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
	"github.com/gogpu/glyphed/kern"
)

// The YAML workspace dump is a flat, human-editable snapshot of a font: the
// metrics, every glyph with its contours and components, and the kerning
// tables. It is the interchange format the CLI reads and the watcher demo
// reloads; real font sources (UFO, designspace) are converted to it by
// external tooling.

type workspaceDoc struct {
	Family  string              `yaml:"family"`
	Style   string              `yaml:"style"`
	Metrics metricsDoc          `yaml:"metrics"`
	Glyphs  map[string]glyphDoc `yaml:"glyphs"`
	Kerning kern.Pairs          `yaml:"kerning,omitempty"`
	Groups  kern.Groups         `yaml:"groups,omitempty"`
}

type metricsDoc struct {
	UnitsPerEm float64 `yaml:"unitsPerEm"`
	Ascender   float64 `yaml:"ascender"`
	Descender  float64 `yaml:"descender"`
	XHeight    float64 `yaml:"xHeight,omitempty"`
	CapHeight  float64 `yaml:"capHeight,omitempty"`
}

type glyphDoc struct {
	Width      float64        `yaml:"width"`
	Codepoints []string       `yaml:"codepoints,omitempty"`
	LeftGroup  string         `yaml:"leftGroup,omitempty"`
	RightGroup string         `yaml:"rightGroup,omitempty"`
	Contours   []contourDoc   `yaml:"contours,omitempty"`
	Components []componentDoc `yaml:"components,omitempty"`
}

type contourDoc struct {
	Points []pointDoc `yaml:"points"`
}

type pointDoc struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Type string  `yaml:"type,omitempty"`
}

type componentDoc struct {
	Base      string    `yaml:"base"`
	Transform []float64 `yaml:"transform,omitempty"` // [a b c d e f], identity when omitted
}

var pointTypeNames = map[PointType]string{
	PointMove:        "move",
	PointLine:        "line",
	PointOffCurve:    "offcurve",
	PointCurve:       "curve",
	PointQCurve:      "qcurve",
	PointHyper:       "hyper",
	PointHyperCorner: "hyper-corner",
}

func pointTypeFromName(s string) (PointType, error) {
	for t, name := range pointTypeNames {
		if name == s {
			return t, nil
		}
	}
	if s == "" {
		return PointLine, nil
	}
	return 0, fmt.Errorf("font: unknown point type %q", s)
}

// LoadWorkspace reads a YAML workspace dump into a Workspace. Component IDs
// are issued from counter in file order, so repeated loads of the same file
// with a fresh counter produce identical IDs.
func LoadWorkspace(path string, counter *entity.Counter) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: read workspace: %w", err)
	}
	var doc workspaceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("font: parse workspace: %w", err)
	}

	ws := NewWorkspace(doc.Family, doc.Style, Metrics{
		UnitsPerEm: doc.Metrics.UnitsPerEm,
		Ascender:   doc.Metrics.Ascender,
		Descender:  doc.Metrics.Descender,
		XHeight:    doc.Metrics.XHeight,
		CapHeight:  doc.Metrics.CapHeight,
	})

	// Deterministic glyph order for ID issue.
	names := make([]string, 0, len(doc.Glyphs))
	for name := range doc.Glyphs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		gd := doc.Glyphs[name]
		g, err := glyphFromDoc(name, gd, counter)
		if err != nil {
			return nil, err
		}
		if err := ws.SetGlyph(g); err != nil {
			return nil, err
		}
	}
	ws.SetKerning(doc.Kerning)
	ws.SetGroups(doc.Groups)
	return ws, nil
}

func glyphFromDoc(name string, gd glyphDoc, counter *entity.Counter) (Glyph, error) {
	g := Glyph{
		Name:       name,
		Width:      gd.Width,
		LeftGroup:  gd.LeftGroup,
		RightGroup: gd.RightGroup,
	}
	for _, s := range gd.Codepoints {
		runes := []rune(s)
		if len(runes) != 1 {
			return Glyph{}, fmt.Errorf("font: glyph %s: codepoint %q is not a single rune", name, s)
		}
		g.Codepoints = append(g.Codepoints, runes[0])
	}
	for ci, cd := range gd.Contours {
		contour := Contour{Points: make([]ContourPoint, 0, len(cd.Points))}
		for _, pd := range cd.Points {
			t, err := pointTypeFromName(pd.Type)
			if err != nil {
				return Glyph{}, fmt.Errorf("font: glyph %s contour %d: %w", name, ci, err)
			}
			contour.Points = append(contour.Points, ContourPoint{X: pd.X, Y: pd.Y, Type: t})
		}
		g.Contours = append(g.Contours, contour)
	}
	for _, cd := range gd.Components {
		m, err := matrixFromDoc(cd.Transform)
		if err != nil {
			return Glyph{}, fmt.Errorf("font: glyph %s component %s: %w", name, cd.Base, err)
		}
		g.Components = append(g.Components, NewComponent(counter, cd.Base, m))
	}
	return g, nil
}

// SaveWorkspace writes the workspace as a YAML dump. Glyphs serialize in
// sorted name order so saves are diffable.
func SaveWorkspace(ws *Workspace, path string) error {
	doc := workspaceDoc{
		Family: ws.FamilyName(),
		Style:  ws.StyleName(),
		Glyphs: make(map[string]glyphDoc),
	}
	m := ws.Metrics()
	doc.Metrics = metricsDoc{
		UnitsPerEm: m.UnitsPerEm,
		Ascender:   m.Ascender,
		Descender:  m.Descender,
		XHeight:    m.XHeight,
		CapHeight:  m.CapHeight,
	}

	names := ws.GlyphNames()
	sort.Strings(names)
	for _, name := range names {
		g, ok := ws.Glyph(name)
		if !ok {
			continue
		}
		doc.Glyphs[name] = glyphToDoc(&g)
	}
	doc.Kerning, doc.Groups = ws.KerningTables()

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("font: marshal workspace: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("font: write workspace: %w", err)
	}
	return nil
}

func glyphToDoc(g *Glyph) glyphDoc {
	gd := glyphDoc{
		Width:      g.Width,
		LeftGroup:  g.LeftGroup,
		RightGroup: g.RightGroup,
	}
	for _, r := range g.Codepoints {
		gd.Codepoints = append(gd.Codepoints, string(r))
	}
	for _, c := range g.Contours {
		cd := contourDoc{Points: make([]pointDoc, 0, len(c.Points))}
		for _, p := range c.Points {
			cd.Points = append(cd.Points, pointDoc{X: p.X, Y: p.Y, Type: pointTypeNames[p.Type]})
		}
		gd.Contours = append(gd.Contours, cd)
	}
	for _, comp := range g.Components {
		cd := componentDoc{Base: comp.Base}
		if !comp.Transform.IsIdentity() {
			t := comp.Transform
			cd.Transform = []float64{t.A, t.B, t.C, t.D, t.E, t.F}
		}
		gd.Components = append(gd.Components, cd)
	}
	return gd
}

func matrixFromDoc(vals []float64) (glyphed.Matrix, error) {
	switch len(vals) {
	case 0:
		return glyphed.Identity(), nil
	case 6:
		return glyphed.Matrix{
			A: vals[0], B: vals[1], C: vals[2],
			D: vals[3], E: vals[4], F: vals[5],
		}, nil
	default:
		return glyphed.Matrix{}, fmt.Errorf("transform needs 6 values, got %d", len(vals))
	}
}
