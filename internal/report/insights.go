package report

import (
	"fmt"

	"reelscore/internal/explore"
	"reelscore/internal/model"
)

// Insight is one plain-language finding from a completed run.
type Insight struct {
	Title string
	Text  string
}

// Insights derives the headline findings from the exploration report and the
// ranked model results.
func Insights(exp *explore.Report, results []model.Result, importance []model.Importance) []Insight {
	var out []Insight

	if best, ok := exp.BestYear(); ok {
		out = append(out, Insight{
			Title: "Best rated year",
			Text: fmt.Sprintf("%d has the highest mean rating (%.2f across %d movies).",
				best.Year, best.MeanRating, best.Count),
		})
	}
	if busy, ok := exp.MostProductiveYear(); ok {
		out = append(out, Insight{
			Title: "Most productive year",
			Text:  fmt.Sprintf("%d saw the most releases (%d movies).", busy.Year, busy.Count),
		})
	}
	if genre, ok := exp.TopGenre(); ok {
		out = append(out, Insight{
			Title: "Top genre",
			Text: fmt.Sprintf("%s leads on mean rating (%.2f across %d movies).",
				genre.Genre, genre.MeanRating, genre.Count),
		})
	}

	if len(results) > 0 {
		best := results[0]
		out = append(out, Insight{
			Title: "Best model",
			Text: fmt.Sprintf("%s explains %.1f%% of held-out rating variance; predictions land within about %.2f rating points (RMSE).",
				best.Model, best.TestR2*100, best.TestRMSE),
		})
	}
	if len(importance) > 0 && importance[0].Feature != "" {
		out = append(out, Insight{
			Title: "Strongest signal",
			Text: fmt.Sprintf("%s carries the most predictive weight (%.1f%% of importance).",
				importance[0].Feature, importance[0].Score*100),
		})
	}
	return out
}
