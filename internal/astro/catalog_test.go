package astro

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bsc.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"N": "Sirius", "RA": "06h 45m 08.9s", "Dec": "-16° 42' 58\"", "V": "-1.46", "K": "9940", "C": "CMa"},
		{"N": "Vega", "RA": "18:36:56.3", "Dec": "+38:47:01", "V": "0.03", "K": "9602", "C": "Lyr"},
		{"N": "", "RA": "01h 00m 00s", "Dec": "+10° 30' 00\"", "V": "5.2", "K": "", "C": ""},
		{"N": "NoMag", "RA": "02h 00m 00s", "Dec": "+20° 00' 00\"", "V": "", "K": "", "C": ""},
		{"N": "BadPos", "RA": "garbage", "Dec": "garbage", "V": "3.0", "K": "", "C": ""}
	]`)

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(cat.Stars) != 3 {
		t.Fatalf("len(Stars) = %d, want 3 (unparseable records skipped)", len(cat.Stars))
	}

	sirius := cat.Stars[0]
	if sirius.Name != "Sirius" || sirius.Con != "CMa" {
		t.Errorf("first star = %+v, want Sirius/CMa", sirius)
	}
	// 6h 45m 08.9s = 101.287 degrees
	if math.Abs(sirius.RAdeg-101.287) > 0.01 {
		t.Errorf("Sirius RA = %f, want 101.287", sirius.RAdeg)
	}
	if math.Abs(sirius.DecDeg-(-16.716)) > 0.01 {
		t.Errorf("Sirius Dec = %f, want -16.716", sirius.DecDeg)
	}
	if sirius.Mag != -1.46 || sirius.TempK != 9940 {
		t.Errorf("Sirius mag/temp = %f/%f", sirius.Mag, sirius.TempK)
	}

	vega := cat.Stars[1]
	if math.Abs(vega.RAdeg-279.235) > 0.01 {
		t.Errorf("Vega RA = %f, want 279.235 (colon form)", vega.RAdeg)
	}
	if math.Abs(vega.DecDeg-38.784) > 0.01 {
		t.Errorf("Vega Dec = %f, want 38.784", vega.DecDeg)
	}

	if cat.Stars[2].Name != "Star_3" {
		t.Errorf("unnamed star = %q, want synthetic Star_3", cat.Stars[2].Name)
	}
}

func TestLoadCatalogNegativeDecMinutes(t *testing.T) {
	// The sign must apply to the whole sexagesimal value, not just the
	// degree part.
	path := writeCatalogFile(t, `[
		{"N": "South", "RA": "00h 30m 00s", "Dec": "-0° 30' 00\"", "V": "2.0", "K": "", "C": ""}
	]`)

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cat.Stars) != 1 {
		t.Fatalf("len(Stars) = %d, want 1", len(cat.Stars))
	}
	if math.Abs(cat.Stars[0].DecDeg-(-0.5)) > 1e-9 {
		t.Errorf("Dec = %f, want -0.5", cat.Stars[0].DecDeg)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeCatalogFile(t, `{not json`)
	if _, err := LoadCatalog(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
