// Package constellation provides constellation line figures and naming.
package constellation

// Vertex is one point of a constellation line in equatorial coordinates.
type Vertex struct {
	RAdeg  float64
	DecDeg float64
}

// Figure is a constellation stick figure: an IAU abbreviation plus the
// polylines that draw it.
type Figure struct {
	ID    string
	Lines [][]Vertex
}

// Name returns the constellation's full name.
func (f Figure) Name() string {
	return FullName(f.ID)
}

// Filter applies the show-only list and the figure cap. An empty
// showOnly keeps everything; max <= 0 means no cap. Order is preserved,
// so the cap keeps the first figures in catalog order.
func Filter(figs []Figure, showOnly []string, max int) []Figure {
	out := figs
	if len(showOnly) > 0 {
		keep := make(map[string]bool, len(showOnly))
		for _, id := range showOnly {
			keep[id] = true
		}
		out = make([]Figure, 0, len(showOnly))
		for _, f := range figs {
			if keep[f.ID] {
				out = append(out, f)
			}
		}
	}
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// DefaultFigures returns the embedded stick figures for the most
// recognizable constellations. Vertex coordinates are J2000 positions of
// the member stars.
func DefaultFigures() []Figure {
	return []Figure{
		{ID: "Ori", Lines: [][]Vertex{
			{{88.793, 7.407}, {85.190, -1.943}, {84.053, -1.202}, {83.002, -0.299}, {78.634, -8.202}},
			{{81.283, 6.350}, {83.002, -0.299}},
			{{88.793, 7.407}, {81.283, 6.350}},
			{{85.190, -1.943}, {86.939, -9.670}},
		}},
		{ID: "UMa", Lines: [][]Vertex{
			{{165.932, 61.751}, {165.460, 56.382}, {178.458, 53.695}, {183.857, 57.033}, {193.507, 55.960}, {200.981, 54.926}, {206.885, 49.313}},
			{{183.857, 57.033}, {165.932, 61.751}},
		}},
		{ID: "UMi", Lines: [][]Vertex{
			{{37.954, 89.264}, {263.054, 86.586}, {251.492, 82.037}, {236.015, 77.794}, {222.676, 74.156}, {230.182, 71.834}},
		}},
		{ID: "Cas", Lines: [][]Vertex{
			{{2.295, 59.150}, {10.127, 56.537}, {14.177, 60.717}, {21.454, 60.235}, {28.599, 63.670}},
		}},
		{ID: "Cyg", Lines: [][]Vertex{
			{{310.358, 45.280}, {305.557, 40.257}, {292.680, 27.960}},
			{{311.553, 33.970}, {305.557, 40.257}, {296.244, 45.131}},
		}},
		{ID: "Lyr", Lines: [][]Vertex{
			{{279.235, 38.784}, {281.193, 37.605}, {282.520, 33.363}, {284.736, 32.690}, {283.626, 36.899}, {281.193, 37.605}},
		}},
		{ID: "Sco", Lines: [][]Vertex{
			{{241.359, -19.805}, {240.083, -22.622}, {247.352, -26.432}, {252.541, -34.293}, {263.402, -37.104}},
		}},
		{ID: "Cru", Lines: [][]Vertex{
			{{186.650, -63.099}, {187.791, -57.113}},
			{{191.930, -59.689}, {183.786, -58.749}},
		}},
		{ID: "CMa", Lines: [][]Vertex{
			{{95.675, -17.956}, {101.287, -16.716}, {107.098, -26.393}, {104.656, -28.972}},
		}},
		{ID: "Leo", Lines: [][]Vertex{
			{{152.093, 11.967}, {154.993, 19.842}, {168.527, 20.524}, {177.265, 14.572}},
		}},
		{ID: "Gem", Lines: [][]Vertex{
			{{113.650, 31.889}, {116.329, 28.026}, {99.428, 16.399}},
		}},
		{ID: "Tau", Lines: [][]Vertex{
			{{81.573, 28.608}, {68.980, 16.509}, {64.948, 15.628}},
		}},
		{ID: "Aql", Lines: [][]Vertex{
			{{296.565, 10.613}, {297.696, 8.868}, {298.828, 6.407}},
		}},
	}
}
