package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"reelscore/internal/config"
	"reelscore/internal/logging"
	"reelscore/internal/runstore"
	"reelscore/internal/services"
)

// Handler is the stage contract the runner executes.
type Handler interface {
	Name() string
	Processing() runstore.Status
	Execute(context.Context, *State) error
}

// Runner executes the full stage sequence for one analysis run.
type Runner struct {
	cfg    *config.Config
	store  *runstore.Store
	logger *slog.Logger
	stages []Handler
}

// New builds a runner with the standard stage sequence.
func New(cfg *config.Config, store *runstore.Store, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:    cfg,
		store:  store,
		logger: logger,
		stages: []Handler{
			newLoadStage(),
			newCleanStage(),
			newExploreStage(),
			newEngineerStage(),
			newModelStage(store),
			newReportStage(),
		},
	}
}

// Execute creates a run record for sourcePath and drives it through every
// stage. The returned state holds all artifacts even when a stage fails; the
// run record carries the failure status and message in that case.
func (r *Runner) Execute(ctx context.Context, sourcePath string) (*State, error) {
	run, err := r.store.NewRun(ctx, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("create run record: %w", err)
	}

	ctx = logging.WithRunID(ctx, run.ID)
	state := &State{Cfg: r.cfg, Run: run}

	for _, stage := range r.stages {
		if err := r.runStage(ctx, stage, state); err != nil {
			return state, err
		}
	}

	run.Status = runstore.StatusCompleted
	run.ErrorMessage = ""
	if err := r.store.Update(ctx, run); err != nil {
		return state, fmt.Errorf("persist completion: %w", err)
	}
	r.logger.Info("run completed",
		slog.String("run_id", run.ID),
		slog.String("best_model", run.BestModel),
		slog.Float64("best_test_r2", run.BestTestR2))
	return state, nil
}

func (r *Runner) runStage(ctx context.Context, stage Handler, state *State) error {
	stageCtx := logging.WithStage(ctx, stage.Name())
	logger := logging.WithContext(stageCtx, r.logger)

	state.Run.Status = stage.Processing()
	state.Run.ErrorMessage = ""
	if err := r.store.Update(stageCtx, state.Run); err != nil {
		return fmt.Errorf("persist %s transition: %w", stage.Name(), err)
	}
	logger.Info("stage started")

	if err := stage.Execute(stageCtx, state); err != nil {
		return r.failStage(stageCtx, logger, stage, state, err)
	}

	if err := r.store.Update(stageCtx, state.Run); err != nil {
		return fmt.Errorf("persist %s result: %w", stage.Name(), err)
	}
	logger.Info("stage completed")
	return nil
}

func (r *Runner) failStage(ctx context.Context, logger *slog.Logger, stage Handler, state *State, stageErr error) error {
	status := services.FailureStatus(stageErr)
	state.Run.Status = status
	state.Run.ErrorMessage = strings.TrimSpace(stageErr.Error())

	logger.Error("stage failed",
		slog.String("resolved_status", string(status)),
		slog.Any("error", stageErr))
	if err := r.store.Update(ctx, state.Run); err != nil {
		logger.Error("failed to persist stage failure", slog.Any("error", err))
	}
	return stageErr
}
