// Command export tessellates all test cases and writes the resulting
// triangle meshes to JSON, for inspection with external tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/stroke"
	"seehuhn.de/go/stroke/testcases"
)

func main() {
	var out struct {
		Meshes []jsonMesh `json:"meshes"`
	}

	tess := stroke.NewTessellator()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			m, err := tess.Tessellate(tc.Path)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.Meshes = append(out.Meshes, toJSON(name, tc, m))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/meshes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonMesh struct {
	Name      string             `json:"name"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	LineWidth float64            `json:"line_width"`
	LineJoin  string             `json:"line_join"`
	CTM       [6]float64         `json:"ctm"`
	Color     [4]uint8           `json:"color"`
	Triangles [][3][2]float64    `json:"triangles"`
	Segments  []jsonSegment      `json:"segments"`
	Bounds    map[string]float64 `json:"bounds"`
}

type jsonSegment struct {
	Kind   string       `json:"kind"`
	Pts    [][2]float64 `json:"pts"`
	Weight float64      `json:"weight,omitempty"`
	Closed bool         `json:"closes_subpath,omitempty"`
}

// toJSON converts a mesh to its JSON form. Segments and triangles are in
// user space; the ctm field maps them to pixels.
func toJSON(name string, tc testcases.TestCase, m *stroke.Mesh) jsonMesh {
	c := m.Material.Color
	b := m.Bounds()
	jm := jsonMesh{
		Name:      name,
		Width:     tc.Width,
		Height:    tc.Height,
		LineWidth: tc.Path.Width,
		LineJoin:  tc.Path.Join.String(),
		CTM:       tc.Device(),
		Color:     [4]uint8{c.R, c.G, c.B, c.A},
		Bounds: map[string]float64{
			"llx": b.LLx, "lly": b.LLy, "urx": b.URx, "ury": b.URy,
		},
	}
	for _, t := range m.Triangles {
		jm.Triangles = append(jm.Triangles, [3][2]float64{
			{t[0].X, t[0].Y}, {t[1].X, t[1].Y}, {t[2].X, t[2].Y},
		})
	}
	for _, sp := range tc.Path.Subpaths {
		for i, seg := range sp.Segments {
			js := segmentToJSON(seg)
			js.Closed = sp.Closed && i == len(sp.Segments)-1
			jm.Segments = append(jm.Segments, js)
		}
	}
	return jm
}

func segmentToJSON(seg stroke.Segment) jsonSegment {
	switch s := seg.(type) {
	case stroke.Line:
		return jsonSegment{Kind: "line", Pts: [][2]float64{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}}}
	case stroke.Quad:
		return jsonSegment{Kind: "quad", Pts: [][2]float64{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}, {s.C.X, s.C.Y}}}
	case stroke.Cubic:
		return jsonSegment{Kind: "cubic", Pts: [][2]float64{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}, {s.C.X, s.C.Y}, {s.D.X, s.D.Y}}}
	case stroke.Conic:
		return jsonSegment{Kind: "conic", Pts: [][2]float64{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}, {s.C.X, s.C.Y}}, Weight: s.W}
	default:
		panic(fmt.Sprintf("unexpected segment type %T", seg))
	}
}
