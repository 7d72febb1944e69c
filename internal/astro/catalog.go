package astro

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// catalogEntry mirrors one record of the Yale BSC short-form JSON export.
// Numeric fields arrive as strings; RA/Dec are sexagesimal.
type catalogEntry struct {
	Name  string `json:"N"`
	RA    string `json:"RA"`
	Dec   string `json:"Dec"`
	VMag  string `json:"V"`
	TempK string `json:"K"`
	Con   string `json:"C"`
}

var (
	raPattern  = regexp.MustCompile(`([\d.]+)\s*[h:]\s*([\d.]+)\s*[m:]?\s*([\d.]*)s?`)
	decPattern = regexp.MustCompile(`([+-]?[\d.]+)\s*[°:]\s*([\d.]+)\s*['′:]?\s*([\d.]*)["″]?`)
)

// LoadCatalog reads a star catalog from a BSC short-form JSON file.
// Records without a parseable magnitude or position are skipped; unnamed
// stars get a synthetic name so labels stay unambiguous.
func LoadCatalog(path string) (StarCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return StarCatalog{}, fmt.Errorf("read star catalog: %w", err)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return StarCatalog{}, fmt.Errorf("decode star catalog %s: %w", path, err)
	}

	stars := make([]Star, 0, len(entries))
	for i, e := range entries {
		mag, err := strconv.ParseFloat(strings.TrimSpace(e.VMag), 64)
		if err != nil {
			continue
		}
		ra, raOK := parseRA(e.RA)
		dec, decOK := parseDec(e.Dec)
		if !raOK || !decOK {
			continue
		}

		name := e.Name
		if name == "" {
			name = fmt.Sprintf("Star_%d", i+1)
		}

		temp := 0.0
		if e.TempK != "" {
			if k, err := strconv.ParseFloat(strings.TrimSpace(e.TempK), 64); err == nil {
				temp = k
			}
		}

		stars = append(stars, Star{
			Name:   name,
			RAdeg:  ra,
			DecDeg: dec,
			Mag:    mag,
			TempK:  temp,
			Con:    e.Con,
		})
	}

	return StarCatalog{Stars: stars}, nil
}

// parseRA parses a sexagesimal right ascension ("12h 34m 56.7s" or
// "12:34:56.7") into degrees.
func parseRA(s string) (float64, bool) {
	m := raPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h := atof(m[1])
	min := atof(m[2])
	sec := atof(m[3])
	return (h + min/60 + sec/3600) * 15, true
}

// parseDec parses a sexagesimal declination ("+45° 30' 15.3\"" or
// "+45:30:15.3") into degrees.
func parseDec(s string) (float64, bool) {
	m := decPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	d := atof(m[1])
	min := atof(m[2])
	sec := atof(m[3])
	mag := d
	if mag < 0 {
		mag = -mag
	}
	val := mag + min/60 + sec/3600
	if strings.HasPrefix(strings.TrimSpace(s), "-") {
		val = -val
	}
	return val, true
}

func atof(s string) float64 {
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
