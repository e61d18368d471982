package dataset

// Movie is one cleaned record. Every field is fully typed; the cleaning stage
// guarantees Rating is present and Year/Duration/Votes are imputed or dropped.
type Movie struct {
	Name     string
	Year     int
	Duration int // minutes
	Genres   []string
	Rating   float64
	Votes    int
	Director string
	Actors   []string // credited actors, lead first
}

// LeadActor returns the first credited actor, or "" when none survived cleaning.
func (m Movie) LeadActor() string {
	if len(m.Actors) == 0 {
		return ""
	}
	return m.Actors[0]
}

// PrimaryGenre returns the first listed genre, or "" when none is known.
func (m Movie) PrimaryGenre() string {
	if len(m.Genres) == 0 {
		return ""
	}
	return m.Genres[0]
}

// Table is the cleaned dataset consumed by exploration and feature engineering.
type Table struct {
	Movies []Movie
	Source string
}

// Len returns the number of cleaned movies.
func (t *Table) Len() int { return len(t.Movies) }

// Ratings returns the target column.
func (t *Table) Ratings() []float64 {
	out := make([]float64, len(t.Movies))
	for i, m := range t.Movies {
		out[i] = m.Rating
	}
	return out
}

// Years returns the release years as floats for numeric analysis.
func (t *Table) Years() []float64 {
	out := make([]float64, len(t.Movies))
	for i, m := range t.Movies {
		out[i] = float64(m.Year)
	}
	return out
}

// Durations returns runtimes in minutes as floats.
func (t *Table) Durations() []float64 {
	out := make([]float64, len(t.Movies))
	for i, m := range t.Movies {
		out[i] = float64(m.Duration)
	}
	return out
}

// VoteCounts returns vote totals as floats.
func (t *Table) VoteCounts() []float64 {
	out := make([]float64, len(t.Movies))
	for i, m := range t.Movies {
		out[i] = float64(m.Votes)
	}
	return out
}
