package cleaning

import (
	"fmt"
	"sort"
	"strings"

	"reelscore/internal/config"
	"reelscore/internal/dataset"
	"reelscore/internal/services"
)

// Summary records what the cleaning stage dropped and imputed.
type Summary struct {
	RowsIn               int
	RowsOut              int
	DroppedMissingRating int
	DroppedDuplicates    int
	ImputedYears         int
	ImputedDurations     int
	ImputedVotes         int
	MissingDirectors     int
	MissingGenres        int
}

type pendingMovie struct {
	movie       dataset.Movie
	hasYear     bool
	hasDuration bool
	hasVotes    bool
}

// Clean converts the raw dataframe into a typed table, dropping rows without a
// rating and imputing missing numeric attributes per the configured strategy.
func Clean(raw *dataset.Raw, cfg config.Cleaning) (*dataset.Table, *Summary, error) {
	names, ok := raw.Column("name")
	if !ok {
		return nil, nil, services.Wrap(services.ErrData, "cleaning", "columns", "dataset has no name column", nil)
	}
	ratings, ok := raw.Column("rating")
	if !ok {
		return nil, nil, services.Wrap(services.ErrData, "cleaning", "columns", "dataset has no rating column", nil)
	}

	years := optionalColumn(raw, "year")
	durations := optionalColumn(raw, "duration")
	genres := optionalColumn(raw, "genre")
	votes := optionalColumn(raw, "votes")
	directors := optionalColumn(raw, "director")
	actorCols := [][]string{
		optionalColumn(raw, "actor 1"),
		optionalColumn(raw, "actor 2"),
		optionalColumn(raw, "actor 3"),
	}

	summary := &Summary{RowsIn: raw.Rows()}
	pending := make([]pendingMovie, 0, raw.Rows())
	seen := make(map[string]struct{}, raw.Rows())
	var yearValues, durationValues, voteValues []float64

	for i := 0; i < raw.Rows(); i++ {
		rating, ok := parseCell(raw, ratings, i, ParseRating)
		if !ok {
			summary.DroppedMissingRating++
			continue
		}

		p := pendingMovie{movie: dataset.Movie{
			Name:   NormalizeName(cell(names, i)),
			Rating: rating,
		}}

		if year, ok := parseCell(raw, years, i, ParseYear); ok && year >= cfg.MinYear && year <= cfg.MaxYear {
			p.movie.Year = year
			p.hasYear = true
		}
		if minutes, ok := parseCell(raw, durations, i, ParseDuration); ok {
			p.movie.Duration = minutes
			p.hasDuration = true
		}
		if count, ok := parseCell(raw, votes, i, ParseVotes); ok {
			p.movie.Votes = count
			p.hasVotes = true
		}

		if value := cell(directors, i); !raw.Missing(value) {
			p.movie.Director = NormalizeName(value)
		}

		// Drop duplicates before fitting imputation statistics so repeated
		// rows cannot skew the fill values.
		if cfg.DropDuplicates {
			key := fmt.Sprintf("%s|%d|%s", strings.ToLower(p.movie.Name), p.movie.Year, strings.ToLower(p.movie.Director))
			if _, dup := seen[key]; dup {
				summary.DroppedDuplicates++
				continue
			}
			seen[key] = struct{}{}
		}

		if p.hasYear {
			yearValues = append(yearValues, float64(p.movie.Year))
		}
		if p.hasDuration {
			durationValues = append(durationValues, float64(p.movie.Duration))
		}
		if p.hasVotes {
			voteValues = append(voteValues, float64(p.movie.Votes))
		}

		if value := cell(genres, i); !raw.Missing(value) {
			p.movie.Genres = SplitGenres(value)
		}
		if len(p.movie.Genres) == 0 {
			summary.MissingGenres++
		}

		if p.movie.Director == "" {
			summary.MissingDirectors++
		}

		for _, col := range actorCols {
			if value := cell(col, i); !raw.Missing(value) {
				if actor := NormalizeName(value); actor != "" {
					p.movie.Actors = append(p.movie.Actors, actor)
				}
			}
		}

		pending = append(pending, p)
	}

	if len(pending) == 0 {
		return nil, nil, services.Wrap(services.ErrValidation, "cleaning", "filter", "no rows with a rating survived cleaning", nil)
	}

	fillYear := int(impute(yearValues, cfg.ImputeStrategy))
	fillDuration := int(impute(durationValues, cfg.ImputeStrategy))
	fillVotes := int(impute(voteValues, cfg.ImputeStrategy))

	table := &dataset.Table{Source: raw.Path, Movies: make([]dataset.Movie, 0, len(pending))}
	for _, p := range pending {
		if !p.hasYear {
			p.movie.Year = fillYear
			summary.ImputedYears++
		}
		if !p.hasDuration {
			p.movie.Duration = fillDuration
			summary.ImputedDurations++
		}
		if !p.hasVotes {
			p.movie.Votes = fillVotes
			summary.ImputedVotes++
		}
		table.Movies = append(table.Movies, p.movie)
	}

	summary.RowsOut = len(table.Movies)
	return table, summary, nil
}

func optionalColumn(raw *dataset.Raw, name string) []string {
	col, _ := raw.Column(name)
	return col
}

func cell(col []string, i int) string {
	if i < 0 || i >= len(col) {
		return ""
	}
	return col[i]
}

func parseCell[T any](raw *dataset.Raw, col []string, i int, parse func(string) (T, bool)) (T, bool) {
	var zero T
	value := cell(col, i)
	if raw.Missing(value) {
		return zero, false
	}
	return parse(value)
}

// impute returns the median or mean of values, or 0 when none are present.
func impute(values []float64, strategy string) float64 {
	if len(values) == 0 {
		return 0
	}
	if strategy == "mean" {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
