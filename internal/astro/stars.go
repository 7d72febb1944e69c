package astro

import "sort"

// Star represents a cataloged star with position, brightness and color data.
type Star struct {
	Name   string  // Common name (e.g., "Sirius", "Vega")
	RAdeg  float64 // Right Ascension in degrees (J2000)
	DecDeg float64 // Declination in degrees (J2000)
	Mag    float64 // Apparent visual magnitude (lower = brighter)
	TempK  float64 // Effective temperature in Kelvin (0 = unknown)
	Con    string  // IAU constellation abbreviation ("" = unknown)
}

// StarCatalog holds a collection of stars for rendering.
type StarCatalog struct {
	Stars []Star
}

// Brightest returns the stars brighter than magLimit, sorted brightest
// first. max <= 0 means no cap on the number returned.
func (c StarCatalog) Brightest(magLimit float64, max int) []Star {
	out := make([]Star, 0, len(c.Stars))
	for _, s := range c.Stars {
		if s.Mag <= magLimit {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mag < out[j].Mag })
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// DefaultStarCatalog returns an embedded catalog of bright stars.
// Coordinates are J2000 epoch; temperatures are approximate effective
// temperatures derived from spectral class.
// Data sourced from the Yale Bright Star Catalog and IAU star names.
func DefaultStarCatalog() StarCatalog {
	return StarCatalog{Stars: defaultStars}
}

// defaultStars contains bright stars visible from various latitudes.
// Ordered roughly by magnitude (brightest first).
var defaultStars = []Star{
	// Magnitude < 0 (exceptionally bright)
	{"Sirius", 101.287, -16.716, -1.46, 9940, "CMa"},
	{"Canopus", 95.988, -52.696, -0.74, 7350, "Car"},
	{"Arcturus", 213.915, 19.182, -0.05, 4286, "Boo"},
	{"Vega", 279.235, 38.784, 0.03, 9602, "Lyr"},
	{"Capella", 79.172, 45.998, 0.08, 4970, "Aur"},
	{"Rigel", 78.634, -8.202, 0.13, 12100, "Ori"},
	{"Procyon", 114.826, 5.225, 0.34, 6530, "CMi"},
	{"Achernar", 24.429, -57.237, 0.46, 15000, "Eri"},
	{"Betelgeuse", 88.793, 7.407, 0.50, 3600, "Ori"},
	{"Hadar", 210.956, -60.373, 0.61, 25400, "Cen"},

	// Magnitude 0.5-1.0
	{"Altair", 297.696, 8.868, 0.76, 7550, "Aql"},
	{"Acrux", 186.650, -63.099, 0.76, 24000, "Cru"},
	{"Aldebaran", 68.980, 16.509, 0.85, 3910, "Tau"},
	{"Antares", 247.352, -26.432, 0.96, 3570, "Sco"},
	{"Spica", 201.298, -11.161, 0.97, 22400, "Vir"},
	{"Pollux", 116.329, 28.026, 1.14, 4666, "Gem"},

	// Magnitude 1.0-1.5
	{"Fomalhaut", 344.413, -29.622, 1.16, 8590, "PsA"},
	{"Deneb", 310.358, 45.280, 1.25, 8525, "Cyg"},
	{"Mimosa", 191.930, -59.689, 1.25, 27000, "Cru"},
	{"Regulus", 152.093, 11.967, 1.35, 12460, "Leo"},
	{"Adhara", 104.656, -28.972, 1.50, 22900, "CMa"},
	{"Castor", 113.650, 31.889, 1.58, 10286, "Gem"},

	// Magnitude 1.5-2.0
	{"Gacrux", 187.791, -57.113, 1.63, 3626, "Cru"},
	{"Shaula", 263.402, -37.104, 1.63, 25000, "Sco"},
	{"Bellatrix", 81.283, 6.350, 1.64, 22000, "Ori"},
	{"Elnath", 81.573, 28.608, 1.65, 13824, "Tau"},
	{"Miaplacidus", 138.300, -69.717, 1.68, 8866, "Car"},
	{"Alnilam", 84.053, -1.202, 1.69, 27500, "Ori"},
	{"Alnair", 332.058, -46.961, 1.74, 13920, "Gru"},
	{"Alnitak", 85.190, -1.943, 1.77, 29500, "Ori"},
	{"Alioth", 193.507, 55.960, 1.77, 9020, "UMa"},
	{"Dubhe", 165.932, 61.751, 1.79, 5012, "UMa"},
	{"Mirfak", 51.081, 49.861, 1.79, 6350, "Per"},
	{"Wezen", 107.098, -26.393, 1.84, 6390, "CMa"},
	{"Sargas", 264.330, -42.998, 1.87, 7268, "Sco"},
	{"Kaus Australis", 276.043, -34.384, 1.85, 9960, "Sgr"},
	{"Avior", 125.629, -59.509, 1.86, 3523, "Car"},
	{"Alkaid", 206.885, 49.313, 1.86, 15540, "UMa"},
	{"Menkalinan", 89.882, 44.948, 1.90, 9350, "Aur"},
	{"Atria", 252.166, -69.028, 1.92, 4150, "TrA"},
	{"Alhena", 99.428, 16.399, 1.93, 9260, "Gem"},
	{"Peacock", 306.412, -56.735, 1.94, 17711, "Pav"},
	{"Alsephina", 131.176, -54.709, 1.96, 9440, "Vel"},
	{"Mirzam", 95.675, -17.956, 1.98, 23150, "CMa"},
	{"Polaris", 37.954, 89.264, 2.02, 6015, "UMi"},
	{"Alphard", 141.897, -8.659, 2.00, 4120, "Hya"},

	// Magnitude 2.0-2.5
	{"Hamal", 31.793, 23.463, 2.00, 4480, "Ari"},
	{"Algieba", 146.463, 19.842, 2.08, 4470, "Leo"},
	{"Diphda", 10.897, -17.987, 2.02, 4797, "Cet"},
	{"Nunki", 283.816, -26.297, 2.02, 18890, "Sgr"},
	{"Mizar", 200.981, 54.925, 2.04, 9000, "UMa"},
	{"Alpheratz", 2.097, 29.091, 2.06, 13800, "And"},
	{"Saiph", 86.939, -9.670, 2.09, 26500, "Ori"},
	{"Mirach", 17.433, 35.621, 2.05, 3842, "And"},
	{"Kochab", 222.676, 74.156, 2.08, 4030, "UMi"},
	{"Rasalhague", 263.734, 12.560, 2.08, 8000, "Oph"},
	{"Algol", 47.042, 40.957, 2.12, 13000, "Per"},
	{"Denebola", 177.265, 14.572, 2.13, 8500, "Leo"},
	{"Muhlifain", 190.379, -48.960, 2.17, 9082, "Cen"},
	{"Naos", 120.896, -40.003, 2.25, 40000, "Pup"},
	{"Aspidiske", 139.273, -59.275, 2.25, 7500, "Car"},
	{"Suhail", 136.999, -43.433, 2.21, 3900, "Vel"},
	{"Alphecca", 233.672, 26.715, 2.23, 9700, "CrB"},
	{"Mintaka", 83.002, -0.299, 2.23, 29500, "Ori"},
	{"Sadr", 305.557, 40.257, 2.23, 5790, "Cyg"},
	{"Eltanin", 269.152, 51.489, 2.23, 3930, "Dra"},
	{"Schedar", 10.127, 56.537, 2.23, 4530, "Cas"},
	{"Caph", 2.295, 59.150, 2.27, 7079, "Cas"},
	{"Dschubba", 240.083, -22.622, 2.32, 27400, "Sco"},
	{"Larawag", 254.655, -34.293, 2.29, 4560, "Sco"},
	{"Merak", 165.460, 56.382, 2.37, 9377, "UMa"},
	{"Izar", 221.247, 27.074, 2.37, 4550, "Boo"},

	// Magnitude 2.5-3.0
	{"Enif", 326.046, 9.875, 2.39, 4337, "Peg"},
	{"Ankaa", 6.571, -42.306, 2.38, 4436, "Phe"},
	{"Phecda", 178.458, 53.695, 2.44, 9355, "UMa"},
	{"Sabik", 257.595, -15.725, 2.43, 8900, "Oph"},
	{"Scheat", 345.944, 28.083, 2.42, 3689, "Peg"},
	{"Alderamin", 319.645, 62.586, 2.51, 7700, "Cep"},
	{"Aludra", 111.024, -29.303, 2.45, 15500, "CMa"},
	{"Markeb", 140.528, -55.011, 2.47, 10500, "Vel"},
	{"Navi", 14.177, 60.717, 2.47, 25000, "Cas"},
	{"Markab", 346.190, 15.205, 2.49, 10100, "Peg"},
	{"Aljanah", 311.553, 33.970, 2.48, 4710, "Cyg"},
	{"Acrab", 241.359, -19.805, 2.62, 28000, "Sco"},

	// Magnitude 3.0-3.5
	{"Gienah", 183.952, -17.542, 2.59, 8900, "Crv"},
	{"Zubeneschamali", 229.252, -9.383, 2.61, 12300, "Lib"},
	{"Unukalhai", 236.067, 6.426, 2.65, 4498, "Ser"},
	{"Sheratan", 28.660, 20.808, 2.64, 8200, "Ari"},
	{"Phact", 84.912, -34.074, 2.64, 12963, "Col"},
	{"Menkent", 211.671, -36.370, 2.06, 4980, "Cen"},
	{"Zosma", 168.527, 20.524, 2.56, 8296, "Leo"},
	{"Arneb", 83.183, -17.822, 2.58, 6850, "Lep"},
	{"Gomeisa", 111.788, 8.289, 2.90, 11772, "CMi"},
	{"Rastaban", 262.608, 52.301, 2.79, 5160, "Dra"},
	{"Cor Caroli", 194.007, 38.318, 2.81, 11600, "CVn"},
	{"Vindemiatrix", 195.544, 10.959, 2.83, 5086, "Vir"},
	{"Algorab", 187.466, -16.515, 2.95, 10400, "Crv"},
	{"Zubenelgenubi", 222.720, -16.042, 2.75, 8128, "Lib"},
	{"Porrima", 190.415, -1.449, 2.74, 6757, "Vir"},
	{"Kraz", 188.597, -23.397, 2.65, 5100, "Crv"},
	{"Cursa", 76.963, -5.086, 2.79, 8360, "Eri"},
	{"Alcyone", 56.871, 24.105, 2.87, 12753, "Tau"},
	{"Tarazed", 296.565, 10.613, 2.72, 4098, "Aql"},
	{"Nihal", 82.061, -20.759, 2.84, 5450, "Lep"},
	{"Sadalsuud", 322.890, -5.571, 2.91, 5608, "Aqr"},
	{"Sadalmelik", 331.446, -0.320, 2.96, 5383, "Aqr"},

	// Magnitude 3.0-4.0 (subtle stars)
	{"Albireo", 292.680, 27.960, 3.18, 4270, "Cyg"},
	{"Yed Prior", 243.586, -3.694, 2.75, 3679, "Oph"},
	{"Alshain", 298.828, 6.407, 3.71, 5950, "Aql"},
	{"Wazn", 90.399, -35.768, 3.85, 4545, "Col"},
	{"Muscida", 127.566, 60.718, 3.35, 5242, "UMa"},
	{"Talitha", 134.802, 48.042, 3.14, 8358, "UMa"},
	{"Tania Australis", 155.582, 41.499, 3.05, 3899, "UMa"},
	{"Megrez", 183.857, 57.033, 3.31, 9480, "UMa"},
	{"Alcor", 201.306, 54.988, 3.99, 8030, "UMa"},
	{"Minkar", 182.531, -22.620, 3.02, 4320, "Crv"},
	{"Hassaleh", 75.492, 33.166, 2.69, 4160, "Aur"},
	{"Thuban", 211.097, 64.376, 3.65, 10100, "Dra"},
	{"Aldhibah", 256.343, 65.715, 3.17, 13200, "Dra"},
	{"Pherkad", 230.182, 71.834, 3.00, 8280, "UMi"},
	{"Edasich", 231.232, 58.966, 3.29, 4445, "Dra"},
	{"Giausar", 175.942, 69.331, 3.85, 3958, "Dra"},
	{"Grumium", 268.382, 56.873, 3.75, 4445, "Dra"},
	{"Tania Borealis", 154.274, 42.914, 3.45, 9340, "UMa"},
	{"Alula Borealis", 169.620, 33.094, 3.49, 4140, "UMa"},
	{"Chertan", 168.560, 15.430, 3.33, 8279, "Leo"},
	{"Zavijava", 177.674, 1.765, 3.61, 6132, "Vir"},
	{"Auva", 192.855, 3.397, 3.38, 3999, "Vir"},
	{"Heze", 203.673, -0.596, 3.37, 8247, "Vir"},
	{"Wasat", 110.031, 21.982, 3.53, 6900, "Gem"},
	{"Mebsuta", 100.983, 25.131, 3.06, 4662, "Gem"},
	{"Propus", 93.719, 22.506, 3.28, 3460, "Gem"},
	{"Tejat", 95.740, 22.513, 2.88, 3460, "Gem"},
	{"Adhafera", 154.173, 23.417, 3.43, 6792, "Leo"},
	{"Subra", 148.191, 9.893, 3.52, 7380, "Leo"},
	{"Rasalas", 146.463, 26.007, 3.88, 4724, "Leo"},
	{"Furud", 95.078, -30.063, 3.96, 14600, "CMa"},
	{"Chara", 188.436, 41.357, 4.26, 5930, "CVn"},
	{"Diadem", 197.497, 17.529, 4.32, 6365, "Com"},
}
