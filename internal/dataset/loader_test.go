package dataset_test

import (
	"path/filepath"
	"strings"
	"testing"

	"reelscore/internal/dataset"
	"reelscore/internal/testsupport"
)

const sampleCSV = `Name,Year,Duration,Genre,Rating,Votes,Director,Actor 1,Actor 2,Actor 3
Gadar,(2001),170 min,"Action, Drama",7.8,"95,238",Anil Sharma,Sunny Deol,Ameesha Patel,Amrish Puri
Lagaan,(2001),224 min,"Drama, Sport",8.1,"115,107",Ashutosh Gowariker,Aamir Khan,Gracy Singh,Rachel Shelley
Mystery,(2005),,Thriller,,N/A,Unknown Person,,,
`

func TestLoadReaderShapeAndInfo(t *testing.T) {
	raw, err := dataset.LoadReader(strings.NewReader(sampleCSV), []string{"", "N/A"})
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if raw.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", raw.Rows())
	}
	if raw.Cols() != 10 {
		t.Fatalf("expected 10 columns, got %d", raw.Cols())
	}

	infos := raw.Info()
	byName := make(map[string]dataset.ColumnInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}
	if byName["Rating"].Kind != "numeric" {
		t.Fatalf("expected Rating numeric, got %q", byName["Rating"].Kind)
	}
	if byName["Rating"].Missing != 1 {
		t.Fatalf("expected 1 missing rating, got %d", byName["Rating"].Missing)
	}
	if byName["Year"].Kind != "string" {
		t.Fatalf("expected raw Year to stay string, got %q", byName["Year"].Kind)
	}
	if byName["Votes"].Missing != 1 {
		t.Fatalf("expected N/A votes counted missing, got %d", byName["Votes"].Missing)
	}
}

func TestColumnLookupIsCaseInsensitive(t *testing.T) {
	raw, err := dataset.LoadReader(strings.NewReader(sampleCSV), nil)
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	col, ok := raw.Column("genre")
	if !ok {
		t.Fatal("expected genre column")
	}
	if col[0] != "Action, Drama" {
		t.Fatalf("unexpected genre cell: %q", col[0])
	}
	if _, ok := raw.Column("budget"); ok {
		t.Fatal("did not expect budget column")
	}
}

func TestLoadReaderRejectsEmptyData(t *testing.T) {
	if _, err := dataset.LoadReader(strings.NewReader("Name,Year\n"), nil); err == nil {
		t.Fatal("expected error for CSV without data rows")
	}
}

func TestHeadIncludesHeader(t *testing.T) {
	raw, err := dataset.LoadReader(strings.NewReader(sampleCSV), nil)
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	head := raw.Head(2)
	if len(head) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(head))
	}
	if head[0][0] != "Name" {
		t.Fatalf("expected header first, got %q", head[0][0])
	}
}

func TestLoadGeneratedFixtureParsesMultiGenreRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	testsupport.WriteMoviesCSV(t, path, 8)

	raw, err := dataset.Load(path, []string{"", "N/A"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if raw.Rows() != 8 {
		t.Fatalf("expected 8 rows, got %d", raw.Rows())
	}
	col, ok := raw.Column("Genre")
	if !ok {
		t.Fatal("expected Genre column")
	}
	found := false
	for _, cell := range col {
		if strings.Contains(cell, ",") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected at least one multi-genre cell")
	}
}
