package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"reelscore/internal/explore"
	"reelscore/internal/model"
)

// ChartSet names the PNG files written for a run.
type ChartSet struct {
	RatingHistogram   string
	YearlyMeanRatings string
	ModelComparison   string
	PredictedActual   string
}

// WriteCharts renders the run's charts into dir and returns their paths.
// Charts with no backing data are skipped and left empty in the set.
func WriteCharts(dir string, ratings []float64, exp *explore.Report, results []model.Result, actual []float64) (*ChartSet, error) {
	set := &ChartSet{}

	if len(ratings) > 0 {
		path := filepath.Join(dir, "rating_histogram.png")
		if err := ratingHistogram(path, ratings); err != nil {
			return nil, fmt.Errorf("rating histogram: %w", err)
		}
		set.RatingHistogram = path
	}

	if exp != nil && len(exp.Yearly) > 1 {
		path := filepath.Join(dir, "yearly_mean_ratings.png")
		if err := yearlyMeanRatings(path, exp.Yearly); err != nil {
			return nil, fmt.Errorf("yearly ratings: %w", err)
		}
		set.YearlyMeanRatings = path
	}

	if len(results) > 0 {
		path := filepath.Join(dir, "model_comparison.png")
		if err := modelComparison(path, results); err != nil {
			return nil, fmt.Errorf("model comparison: %w", err)
		}
		set.ModelComparison = path

		if len(results[0].TestPredictions) > 0 && len(results[0].TestPredictions) == len(actual) {
			path = filepath.Join(dir, "predicted_vs_actual.png")
			if err := predictedVsActual(path, results[0], actual); err != nil {
				return nil, fmt.Errorf("predicted vs actual: %w", err)
			}
			set.PredictedActual = path
		}
	}

	return set, nil
}

func ratingHistogram(path string, ratings []float64) error {
	p := plot.New()
	p.Title.Text = "Rating Distribution"
	p.X.Label.Text = "Rating"
	p.Y.Label.Text = "Movies"

	values := make(plotter.Values, len(ratings))
	copy(values, ratings)
	hist, err := plotter.NewHist(values, 20)
	if err != nil {
		return err
	}
	p.Add(hist)
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func yearlyMeanRatings(path string, yearly []explore.YearStats) error {
	p := plot.New()
	p.Title.Text = "Mean Rating by Year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Mean rating"

	points := make(plotter.XYs, len(yearly))
	for i, ys := range yearly {
		points[i].X = float64(ys.Year)
		points[i].Y = ys.MeanRating
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.Width = vg.Points(2)
	p.Add(line, plotter.NewGrid())
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func modelComparison(path string, results []model.Result) error {
	p := plot.New()
	p.Title.Text = "Model Comparison (held-out R²)"
	p.Y.Label.Text = "Test R²"

	values := make(plotter.Values, len(results))
	names := make([]string, len(results))
	for i, r := range results {
		values[i] = r.TestR2
		names[i] = r.Model
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func predictedVsActual(path string, best model.Result, actual []float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Predicted vs Actual (%s)", best.Model)
	p.X.Label.Text = "Actual rating"
	p.Y.Label.Text = "Predicted rating"

	points := make(plotter.XYs, len(actual))
	for i := range actual {
		points[i].X = actual[i]
		points[i].Y = best.TestPredictions[i]
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(2)

	identity := plotter.NewFunction(func(x float64) float64 { return x })
	identity.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(scatter, identity, plotter.NewGrid())
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
