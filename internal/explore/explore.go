package explore

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"reelscore/internal/config"
	"reelscore/internal/dataset"
)

// Descriptive holds summary statistics for one numeric column.
type Descriptive struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// YearStats aggregates ratings for one release year.
type YearStats struct {
	Year       int
	Count      int
	MeanRating float64
}

// GenreStats aggregates ratings for one genre; movies with several genres
// contribute to each of them.
type GenreStats struct {
	Genre      string
	Count      int
	MeanRating float64
}

// PersonStats aggregates ratings for one director or actor.
type PersonStats struct {
	Name       string
	Count      int
	MeanRating float64
}

// Correlation is a symmetric Pearson correlation matrix over numeric columns.
type Correlation struct {
	Columns []string
	Matrix  [][]float64
}

// Report is the full exploratory analysis consumed by the reporting stage.
type Report struct {
	Ratings      Descriptive
	Durations    Descriptive
	Votes        Descriptive
	Yearly       []YearStats
	Genres       []GenreStats
	TopDirectors []PersonStats
	TopActors    []PersonStats
	Correlations Correlation
}

// Analyze computes the exploration report for a cleaned table.
func Analyze(table *dataset.Table, cfg config.Explore) *Report {
	report := &Report{
		Ratings:   Describe(table.Ratings()),
		Durations: Describe(table.Durations()),
		Votes:     Describe(table.VoteCounts()),
		Yearly:    yearlyStats(table),
		Genres:    genreStats(table),
	}
	report.TopDirectors = personStats(table, cfg, func(m dataset.Movie) []string {
		if m.Director == "" {
			return nil
		}
		return []string{m.Director}
	})
	report.TopActors = personStats(table, cfg, func(m dataset.Movie) []string {
		return m.Actors
	})
	report.Correlations = correlations(table)
	return report
}

// Describe computes summary statistics for one numeric column.
func Describe(values []float64) Descriptive {
	if len(values) == 0 {
		return Descriptive{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return Descriptive{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Std:    stat.StdDev(values, nil),
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}

// BestYear returns the year with the highest mean rating.
func (r *Report) BestYear() (YearStats, bool) {
	var best YearStats
	found := false
	for _, ys := range r.Yearly {
		if !found || ys.MeanRating > best.MeanRating {
			best = ys
			found = true
		}
	}
	return best, found
}

// MostProductiveYear returns the year with the most releases.
func (r *Report) MostProductiveYear() (YearStats, bool) {
	var best YearStats
	found := false
	for _, ys := range r.Yearly {
		if !found || ys.Count > best.Count {
			best = ys
			found = true
		}
	}
	return best, found
}

// TopGenre returns the highest-rated genre, if any.
func (r *Report) TopGenre() (GenreStats, bool) {
	if len(r.Genres) == 0 {
		return GenreStats{}, false
	}
	return r.Genres[0], true
}

func yearlyStats(table *dataset.Table) []YearStats {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, m := range table.Movies {
		sums[m.Year] += m.Rating
		counts[m.Year]++
	}
	out := make([]YearStats, 0, len(counts))
	for year, count := range counts {
		out = append(out, YearStats{Year: year, Count: count, MeanRating: sums[year] / float64(count)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func genreStats(table *dataset.Table) []GenreStats {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, m := range table.Movies {
		for _, genre := range m.Genres {
			sums[genre] += m.Rating
			counts[genre]++
		}
	}
	out := make([]GenreStats, 0, len(counts))
	for genre, count := range counts {
		out = append(out, GenreStats{Genre: genre, Count: count, MeanRating: sums[genre] / float64(count)})
	}
	// Highest mean first; ties broken by popularity then name for stable output.
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanRating != out[j].MeanRating {
			return out[i].MeanRating > out[j].MeanRating
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

func personStats(table *dataset.Table, cfg config.Explore, credits func(dataset.Movie) []string) []PersonStats {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, m := range table.Movies {
		for _, person := range credits(m) {
			sums[person] += m.Rating
			counts[person]++
		}
	}
	out := make([]PersonStats, 0, len(counts))
	for person, count := range counts {
		if count < cfg.MinPersonMovies {
			continue
		}
		out = append(out, PersonStats{Name: person, Count: count, MeanRating: sums[person] / float64(count)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanRating != out[j].MeanRating {
			return out[i].MeanRating > out[j].MeanRating
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > cfg.TopN {
		out = out[:cfg.TopN]
	}
	return out
}

func correlations(table *dataset.Table) Correlation {
	columns := []string{"year", "duration", "votes", "rating"}
	series := [][]float64{table.Years(), table.Durations(), table.VoteCounts(), table.Ratings()}

	matrix := make([][]float64, len(columns))
	for i := range columns {
		matrix[i] = make([]float64, len(columns))
		for j := range columns {
			if i == j {
				matrix[i][j] = 1
				continue
			}
			matrix[i][j] = stat.Correlation(series[i], series[j], nil)
		}
	}
	return Correlation{Columns: columns, Matrix: matrix}
}
