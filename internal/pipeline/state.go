package pipeline

import (
	"reelscore/internal/cleaning"
	"reelscore/internal/config"
	"reelscore/internal/dataset"
	"reelscore/internal/explore"
	"reelscore/internal/features"
	"reelscore/internal/model"
	"reelscore/internal/report"
	"reelscore/internal/runstore"
)

// State carries a run's artifacts between stages. Each stage reads what the
// previous stages produced and fills in its own slot.
type State struct {
	Cfg *config.Config
	Run *runstore.Run

	Raw     *dataset.Raw
	Table   *dataset.Table
	Summary *cleaning.Summary

	Explore *explore.Report

	Split *features.Split

	Results    []model.Result
	Importance []model.Importance

	Insights     []report.Insight
	Charts       *report.ChartSet
	WorkbookPath string
}

// Best returns the top-ranked model result, if any.
func (s *State) Best() (model.Result, bool) {
	if len(s.Results) == 0 {
		return model.Result{}, false
	}
	return s.Results[0], true
}
