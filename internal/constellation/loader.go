package constellation

import (
	"encoding/json"
	"fmt"
	"os"
)

// featureCollection matches the GeoJSON layout of
// constellations.lines.json: one MultiLineString feature per
// constellation, keyed by the IAU abbreviation.
type featureCollection struct {
	Features []struct {
		ID       string `json:"id"`
		Geometry struct {
			Type        string         `json:"type"`
			Coordinates [][][2]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// LoadFigures reads constellation stick figures from a GeoJSON file.
// Longitudes in the file run -180..180; they are normalized to 0..360
// right ascension. Features without line geometry are skipped.
func LoadFigures(path string) ([]Figure, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read constellation lines: %w", err)
	}

	var fc featureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("decode constellation lines %s: %w", path, err)
	}

	figs := make([]Figure, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.ID == "" || len(f.Geometry.Coordinates) == 0 {
			continue
		}
		fig := Figure{ID: f.ID, Lines: make([][]Vertex, 0, len(f.Geometry.Coordinates))}
		for _, line := range f.Geometry.Coordinates {
			verts := make([]Vertex, 0, len(line))
			for _, c := range line {
				ra := c[0]
				if ra < 0 {
					ra += 360
				}
				verts = append(verts, Vertex{RAdeg: ra, DecDeg: c[1]})
			}
			fig.Lines = append(fig.Lines, verts)
		}
		figs = append(figs, fig)
	}
	return figs, nil
}
