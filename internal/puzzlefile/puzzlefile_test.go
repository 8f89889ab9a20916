package puzzlefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kristofer84/star-battle-solver-sub000/pkg/starbattle"
)

const sample = `
size: 5
stars: 1
regions:
  - AABBB
  - AABBB
  - CCDDD
  - CCDEE
  - CCDEE
cells:
  - {row: 2, col: 2, state: star}
  - {row: 0, col: 4, state: excluded}
`

func TestParseSample(t *testing.T) {
	b, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Size() != 5 || b.LineQuota() != 1 {
		t.Fatalf("size=%d stars=%d, want 5 and 1", b.Size(), b.LineQuota())
	}
	if b.NumRegions() != 5 {
		t.Fatalf("NumRegions = %d, want 5", b.NumRegions())
	}
	// Region ids follow first appearance: A=0 ... E=4.
	if b.RegionOf(b.Index(0, 0)) != 0 || b.RegionOf(b.Index(4, 4)) != 4 {
		t.Fatalf("region ids not assigned by first appearance")
	}
	if b.State(b.Index(2, 2)) != starbattle.Star {
		t.Fatalf("committed star missing")
	}
	if b.State(b.Index(0, 4)) != starbattle.Excluded {
		t.Fatalf("committed exclusion missing")
	}
}

func TestParseQuotasOverride(t *testing.T) {
	doc := `
size: 4
stars: 1
regions:
  - AABB
  - AABB
  - CCDD
  - CCDD
quotas:
  A: 2
  D: 0
`
	b, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.RegionQuota(0) != 2 {
		t.Fatalf("quota A = %d, want 2", b.RegionQuota(0))
	}
	// Unlisted letters keep the uniform default.
	if b.RegionQuota(1) != 1 || b.RegionQuota(2) != 1 {
		t.Fatalf("unlisted quotas changed: B=%d C=%d", b.RegionQuota(1), b.RegionQuota(2))
	}
	if b.RegionQuota(3) != 0 {
		t.Fatalf("quota D = %d, want 0", b.RegionQuota(3))
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name, doc, want string
	}{
		{"bad yaml", "size: [", "parse"},
		{"zero size", "size: 0\nstars: 1\nregions: []", "size must be positive"},
		{"zero stars", "size: 2\nstars: 0\nregions: [AB, AB]", "stars must be positive"},
		{"row count", "size: 3\nstars: 1\nregions: [AAA, BBB]", "region rows"},
		{"row width", "size: 2\nstars: 1\nregions: [AB, ABB]", "has 3 cells"},
		{"cell off board", sample + "  - {row: 9, col: 0, state: star}", "outside the board"},
		{"cell bad state", sample + "  - {row: 4, col: 0, state: maybe}", "want star or excluded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatalf("Parse accepted %q", tc.doc)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestParseRejectsConflictingCells(t *testing.T) {
	doc := sample + "  - {row: 2, col: 2, state: excluded}\n"
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatalf("Parse accepted conflicting states for one cell")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Size() != 5 {
		t.Fatalf("Size = %d, want 5", b.Size())
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load accepted a missing file")
	}
}
