package features

import (
	"math"

	"reelscore/internal/config"
	"reelscore/internal/dataset"
	"reelscore/internal/services"
)

// minRows is the smallest dataset the split can meaningfully divide.
const minRows = 10

// Matrix pairs a feature matrix with its target vector.
type Matrix struct {
	X [][]float64
	Y []float64
}

// Split is the engineered dataset handed to the modeling stage.
type Split struct {
	Names []string
	Train Matrix
	Test  Matrix
}

// FeatureCount returns the width of the engineered matrix.
func (s *Split) FeatureCount() int { return len(s.Names) }

type aggregates struct {
	globalMean    float64
	directorMean  map[string]float64
	directorCount map[string]int
	actorMean     map[string]float64
	maxYear       int
}

// Prepare engineers features for the cleaned table and returns a seeded
// train/test split. Target aggregates and the genre encoder are fitted on the
// training rows only.
func Prepare(table *dataset.Table, cfg config.Features) (*Split, error) {
	n := table.Len()
	if n < minRows {
		return nil, services.Wrap(services.ErrValidation, "features", "prepare",
			"dataset too small for a train/test split", nil)
	}

	trainIdx, testIdx := TrainTestIndices(n, cfg.TestRatio, cfg.Seed)

	agg := fitAggregates(table, trainIdx)

	trainGenres := make([]string, 0, len(trainIdx))
	for _, i := range trainIdx {
		trainGenres = append(trainGenres, table.Movies[i].PrimaryGenre())
	}
	encoder, err := FitEncoder(cfg.Encoding, trainGenres)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "features", "encode", err.Error(), nil)
	}

	split := &Split{
		Names: append(numericNames(), encoder.Names("primary_genre")...),
		Train: buildMatrix(table, trainIdx, agg, encoder),
		Test:  buildMatrix(table, testIdx, agg, encoder),
	}

	if cfg.Scale {
		var scaler StandardScaler
		if err := scaler.Fit(split.Train.X); err != nil {
			return nil, services.Wrap(services.ErrData, "features", "scale", err.Error(), nil)
		}
		split.Train.X = scaler.Transform(split.Train.X)
		split.Test.X = scaler.Transform(split.Test.X)
	}

	return split, nil
}

func numericNames() []string {
	return []string{
		"year",
		"decade",
		"movie_age",
		"duration",
		"duration_bucket",
		"log_votes",
		"genre_count",
		"director_mean_rating",
		"director_movie_count",
		"lead_actor_mean_rating",
	}
}

// durationBucket groups runtimes into short/standard/long/epic ordinal bins.
func durationBucket(minutes int) float64 {
	switch {
	case minutes < 90:
		return 0
	case minutes < 120:
		return 1
	case minutes < 150:
		return 2
	case minutes < 180:
		return 3
	default:
		return 4
	}
}

func fitAggregates(table *dataset.Table, trainIdx []int) aggregates {
	agg := aggregates{
		directorMean:  make(map[string]float64),
		directorCount: make(map[string]int),
		actorMean:     make(map[string]float64),
	}

	directorSum := make(map[string]float64)
	actorSum := make(map[string]float64)
	actorCount := make(map[string]int)
	total := 0.0

	for _, i := range trainIdx {
		m := table.Movies[i]
		total += m.Rating
		if m.Year > agg.maxYear {
			agg.maxYear = m.Year
		}
		if m.Director != "" {
			directorSum[m.Director] += m.Rating
			agg.directorCount[m.Director]++
		}
		if lead := m.LeadActor(); lead != "" {
			actorSum[lead] += m.Rating
			actorCount[lead]++
		}
	}

	if len(trainIdx) > 0 {
		agg.globalMean = total / float64(len(trainIdx))
	}
	for director, sum := range directorSum {
		agg.directorMean[director] = sum / float64(agg.directorCount[director])
	}
	for actor, sum := range actorSum {
		agg.actorMean[actor] = sum / float64(actorCount[actor])
	}
	return agg
}

func buildMatrix(table *dataset.Table, indices []int, agg aggregates, encoder Encoder) Matrix {
	m := Matrix{
		X: make([][]float64, 0, len(indices)),
		Y: make([]float64, 0, len(indices)),
	}
	for _, i := range indices {
		movie := table.Movies[i]
		m.X = append(m.X, featureRow(movie, agg, encoder))
		m.Y = append(m.Y, movie.Rating)
	}
	return m
}

func featureRow(m dataset.Movie, agg aggregates, encoder Encoder) []float64 {
	directorMean := agg.globalMean
	if mean, ok := agg.directorMean[m.Director]; ok {
		directorMean = mean
	}
	actorMean := agg.globalMean
	if mean, ok := agg.actorMean[m.LeadActor()]; ok {
		actorMean = mean
	}

	row := []float64{
		float64(m.Year),
		float64((m.Year / 10) * 10),
		float64(agg.maxYear - m.Year),
		float64(m.Duration),
		durationBucket(m.Duration),
		math.Log10(float64(m.Votes) + 1),
		float64(len(m.Genres)),
		directorMean,
		float64(agg.directorCount[m.Director]),
		actorMean,
	}
	return append(row, encoder.Encode(m.PrimaryGenre())...)
}
