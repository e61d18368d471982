package dataset

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Raw wraps the source dataframe before any cleaning has happened. Every cell
// is kept as a string; type coercion belongs to the cleaning stage.
type Raw struct {
	DF            dataframe.DataFrame
	Path          string
	missingTokens map[string]struct{}
}

// Load reads the CSV at path into a Raw dataset.
func Load(path string, missingTokens []string) (*Raw, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	raw, err := LoadReader(file, missingTokens)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", path, err)
	}
	raw.Path = path
	return raw, nil
}

// LoadReader reads CSV content from r. Used directly by tests and by Load.
func LoadReader(r io.Reader, missingTokens []string) (*Raw, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("read csv: no data rows")
	}

	tokens := make(map[string]struct{}, len(missingTokens))
	for _, token := range missingTokens {
		tokens[strings.ToLower(strings.TrimSpace(token))] = struct{}{}
	}
	if len(tokens) == 0 {
		tokens[""] = struct{}{}
	}

	return &Raw{DF: df, missingTokens: tokens}, nil
}

// Rows returns the number of data rows.
func (r *Raw) Rows() int { return r.DF.Nrow() }

// Cols returns the number of columns.
func (r *Raw) Cols() int { return r.DF.Ncol() }

// Missing reports whether a cell value counts as a missing value.
func (r *Raw) Missing(value string) bool {
	_, ok := r.missingTokens[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// Column returns the records of the named column, matched case-insensitively.
func (r *Raw) Column(name string) ([]string, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, col := range r.DF.Names() {
		if strings.ToLower(strings.TrimSpace(col)) == want {
			return r.DF.Col(col).Records(), true
		}
	}
	return nil, false
}

// ColumnInfo describes one raw column for the ingestion report.
type ColumnInfo struct {
	Name    string
	Kind    string // "numeric" or "string"
	Missing int
}

// Info summarizes shape, inferred column kinds, and missingness.
func (r *Raw) Info() []ColumnInfo {
	infos := make([]ColumnInfo, 0, r.Cols())
	for _, name := range r.DF.Names() {
		records := r.DF.Col(name).Records()
		info := ColumnInfo{Name: name, Kind: "numeric"}
		seen := 0
		for _, value := range records {
			if r.Missing(value) {
				info.Missing++
				continue
			}
			seen++
			if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
				info.Kind = "string"
			}
		}
		if seen == 0 {
			info.Kind = "string"
		}
		infos = append(infos, info)
	}
	return infos
}

// Head returns up to n raw data rows, preceded by the header row.
func (r *Raw) Head(n int) [][]string {
	records := r.DF.Records()
	if len(records) == 0 {
		return nil
	}
	if n+1 < len(records) {
		return records[:n+1]
	}
	return records
}
