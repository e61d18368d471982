package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"reelscore/internal/cleaning"
	"reelscore/internal/config"
	"reelscore/internal/dataset"
	"reelscore/internal/explore"
	"reelscore/internal/features"
	"reelscore/internal/model"
	"reelscore/internal/report"
	"reelscore/internal/runstore"
	"reelscore/internal/services"
)

type loadStage struct{}

func newLoadStage() *loadStage { return &loadStage{} }

func (s *loadStage) Name() string                { return "load" }
func (s *loadStage) Processing() runstore.Status { return runstore.StatusLoading }

func (s *loadStage) Execute(ctx context.Context, st *State) error {
	if st.Cfg.Paths.DataFile == "" {
		return services.Wrap(services.ErrConfiguration, s.Name(), "resolve path", "no data file configured", nil)
	}
	path, err := config.ExpandPath(st.Cfg.Paths.DataFile)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, s.Name(), "resolve path", "could not expand data file path", err)
	}
	raw, err := dataset.Load(path, st.Cfg.Dataset.MissingTokens)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return services.Wrap(services.ErrNotFound, s.Name(), "open", fmt.Sprintf("data file %s does not exist", path), err)
		}
		return services.Wrap(services.ErrData, s.Name(), "read", "could not parse CSV", err)
	}
	st.Raw = raw
	st.Run.RowsLoaded = raw.Rows()
	return nil
}

type cleanStage struct{}

func newCleanStage() *cleanStage { return &cleanStage{} }

func (s *cleanStage) Name() string                { return "clean" }
func (s *cleanStage) Processing() runstore.Status { return runstore.StatusCleaning }

func (s *cleanStage) Execute(ctx context.Context, st *State) error {
	table, summary, err := cleaning.Clean(st.Raw, st.Cfg.Cleaning)
	if err != nil {
		return err
	}
	if table.Len() == 0 {
		return services.Wrap(services.ErrData, s.Name(), "filter", "no rows with a rating survived cleaning", nil)
	}
	st.Table = table
	st.Summary = summary
	st.Run.RowsClean = table.Len()
	return nil
}

type exploreStage struct{}

func newExploreStage() *exploreStage { return &exploreStage{} }

func (s *exploreStage) Name() string                { return "explore" }
func (s *exploreStage) Processing() runstore.Status { return runstore.StatusExploring }

func (s *exploreStage) Execute(ctx context.Context, st *State) error {
	st.Explore = explore.Analyze(st.Table, st.Cfg.Explore)
	return nil
}

type engineerStage struct{}

func newEngineerStage() *engineerStage { return &engineerStage{} }

func (s *engineerStage) Name() string                { return "engineer" }
func (s *engineerStage) Processing() runstore.Status { return runstore.StatusEngineering }

func (s *engineerStage) Execute(ctx context.Context, st *State) error {
	split, err := features.Prepare(st.Table, st.Cfg.Features)
	if err != nil {
		return services.Wrap(services.ErrData, s.Name(), "prepare", "feature engineering failed", err)
	}
	st.Split = split
	st.Run.FeatureCount = split.FeatureCount()
	return nil
}

type modelStage struct {
	store *runstore.Store
}

func newModelStage(store *runstore.Store) *modelStage { return &modelStage{store: store} }

func (s *modelStage) Name() string                { return "model" }
func (s *modelStage) Processing() runstore.Status { return runstore.StatusModeling }

func (s *modelStage) Execute(ctx context.Context, st *State) error {
	suite := model.NewSuite(st.Cfg.Models, st.Cfg.Tuning, st.Cfg.Features.Seed)
	results, importance, err := suite.Evaluate(st.Split)
	if err != nil {
		return services.Wrap(services.ErrData, s.Name(), "evaluate", "model evaluation failed", err)
	}
	st.Results = results
	st.Importance = importance
	st.Run.BestModel = results[0].Model
	st.Run.BestTestR2 = results[0].TestR2

	stored := make([]runstore.ModelResult, 0, len(results))
	for i, r := range results {
		stored = append(stored, runstore.ModelResult{
			RunID:     st.Run.ID,
			Rank:      i + 1,
			Model:     r.Model,
			TrainR2:   r.TrainR2,
			TestR2:    r.TestR2,
			TrainRMSE: r.TrainRMSE,
			TestRMSE:  r.TestRMSE,
			TrainMAE:  r.TrainMAE,
			TestMAE:   r.TestMAE,
			Tuned:     r.Tuned,
		})
	}
	if err := s.store.ReplaceResults(ctx, st.Run.ID, stored); err != nil {
		return fmt.Errorf("persist model results: %w", err)
	}
	return nil
}

type reportStage struct{}

func newReportStage() *reportStage { return &reportStage{} }

func (s *reportStage) Name() string                { return "report" }
func (s *reportStage) Processing() runstore.Status { return runstore.StatusReporting }

func (s *reportStage) Execute(ctx context.Context, st *State) error {
	if err := st.Cfg.EnsureDirectories(); err != nil {
		return services.Wrap(services.ErrConfiguration, s.Name(), "prepare", "could not create output directories", err)
	}

	st.Insights = report.Insights(st.Explore, st.Results, st.Importance)

	if st.Cfg.Report.Charts {
		set, err := report.WriteCharts(st.Cfg.Paths.OutputDir, st.Table.Ratings(), st.Explore, st.Results, st.Split.Test.Y)
		if err != nil {
			return services.Wrap(services.ErrTransient, s.Name(), "charts", "chart rendering failed", err)
		}
		st.Charts = set
	}

	if st.Cfg.Report.Workbook {
		path := st.Cfg.WorkbookPath()
		data := &report.WorkbookData{
			SourcePath: st.Run.SourcePath,
			Summary:    st.Summary,
			Explore:    st.Explore,
			Results:    st.Results,
			Importance: st.Importance,
			Insights:   st.Insights,
		}
		if err := report.WriteWorkbook(path, data); err != nil {
			return services.Wrap(services.ErrTransient, s.Name(), "workbook", "workbook export failed", err)
		}
		st.WorkbookPath = path
	}
	return nil
}
