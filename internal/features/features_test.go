package features_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"reelscore/internal/config"
	"reelscore/internal/dataset"
	"reelscore/internal/features"
)

func fixtureTable(n int) *dataset.Table {
	table := &dataset.Table{}
	for i := 0; i < n; i++ {
		table.Movies = append(table.Movies, dataset.Movie{
			Name:     fmt.Sprintf("Movie %d", i),
			Year:     2000 + i%20,
			Duration: 90 + i%60,
			Genres:   []string{[]string{"Action", "Drama", "Comedy"}[i%3]},
			Rating:   4 + float64(i%6),
			Votes:    100 * (i + 1),
			Director: fmt.Sprintf("Director %d", i%5),
			Actors:   []string{fmt.Sprintf("Actor %d", i%7)},
		})
	}
	return table
}

func featureConfig() config.Features {
	return config.Features{Encoding: "frequency", Scale: false, TestRatio: 0.25, Seed: 42}
}

func TestFitEncoderWidths(t *testing.T) {
	values := []string{"Action", "Drama", "Action", "Comedy"}

	label, err := features.FitEncoder("label", values)
	if err != nil {
		t.Fatalf("label encoder: %v", err)
	}
	if len(label.Names("g")) != 1 || len(label.Encode("Drama")) != 1 {
		t.Fatal("label encoder must emit one feature")
	}

	onehot, err := features.FitEncoder("onehot", values)
	if err != nil {
		t.Fatalf("onehot encoder: %v", err)
	}
	names := onehot.Names("g")
	want := []string{"g=Action", "g=Comedy", "g=Drama"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("onehot names = %v; want %v", names, want)
	}
	vec := onehot.Encode("Comedy")
	if !reflect.DeepEqual(vec, []float64{0, 1, 0}) {
		t.Fatalf("onehot vector = %v", vec)
	}
	if sum(onehot.Encode("Unseen")) != 0 {
		t.Fatal("unseen category must encode to zeros")
	}

	freq, err := features.FitEncoder("frequency", values)
	if err != nil {
		t.Fatalf("frequency encoder: %v", err)
	}
	if got := freq.Encode("Action")[0]; math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("frequency of Action = %v; want 0.5", got)
	}
	if got := freq.Encode("Unseen")[0]; got != 0 {
		t.Fatalf("frequency of unseen = %v; want 0", got)
	}

	if _, err := features.FitEncoder("target", values); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestTrainTestIndicesDeterministic(t *testing.T) {
	trainA, testA := features.TrainTestIndices(100, 0.2, 7)
	trainB, testB := features.TrainTestIndices(100, 0.2, 7)
	if !reflect.DeepEqual(trainA, trainB) || !reflect.DeepEqual(testA, testB) {
		t.Fatal("same seed must produce the same split")
	}
	if len(testA) != 20 || len(trainA) != 80 {
		t.Fatalf("unexpected split sizes: %d/%d", len(trainA), len(testA))
	}

	seen := make(map[int]struct{}, 100)
	for _, i := range append(append([]int(nil), trainA...), testA...) {
		if _, dup := seen[i]; dup {
			t.Fatalf("index %d appears twice", i)
		}
		seen[i] = struct{}{}
	}
	if len(seen) != 100 {
		t.Fatalf("expected all 100 indices, got %d", len(seen))
	}
}

func TestPrepareShapes(t *testing.T) {
	split, err := features.Prepare(fixtureTable(40), featureConfig())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if len(split.Train.X) != 30 || len(split.Test.X) != 10 {
		t.Fatalf("unexpected split sizes: %d/%d", len(split.Train.X), len(split.Test.X))
	}
	if split.FeatureCount() == 0 {
		t.Fatal("expected features")
	}
	for _, row := range split.Train.X {
		if len(row) != split.FeatureCount() {
			t.Fatalf("row width %d != %d", len(row), split.FeatureCount())
		}
	}
	if len(split.Train.Y) != len(split.Train.X) {
		t.Fatal("train X/Y length mismatch")
	}
}

func TestPrepareRejectsTinyTable(t *testing.T) {
	if _, err := features.Prepare(fixtureTable(5), featureConfig()); err == nil {
		t.Fatal("expected error for tiny dataset")
	}
}

func TestPrepareAggregatesComeFromTrainRowsOnly(t *testing.T) {
	// Aggregates are fitted on train rows only, so every emitted value must
	// stay within the observed rating range (unseen credits fall back to the
	// global train mean).
	table := fixtureTable(40)
	split, err := features.Prepare(table, featureConfig())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	// director_mean_rating column index.
	col := -1
	for i, name := range split.Names {
		if name == "director_mean_rating" {
			col = i
		}
	}
	if col < 0 {
		t.Fatalf("director_mean_rating missing from %v", split.Names)
	}

	// All aggregate values must stay within the observed rating range.
	for _, row := range append(append([][]float64(nil), split.Train.X...), split.Test.X...) {
		if row[col] < 4 || row[col] > 9 {
			t.Fatalf("director mean %v outside rating range", row[col])
		}
	}
}

func TestPrepareScalesWhenEnabled(t *testing.T) {
	cfg := featureConfig()
	cfg.Scale = true
	split, err := features.Prepare(fixtureTable(40), cfg)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	// Each train column should be near zero mean.
	for j := 0; j < split.FeatureCount(); j++ {
		total := 0.0
		for _, row := range split.Train.X {
			total += row[j]
		}
		mean := total / float64(len(split.Train.X))
		if math.Abs(mean) > 1e-6 {
			t.Fatalf("column %d mean %v after scaling", j, mean)
		}
	}
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
