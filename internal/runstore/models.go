package runstore

import "time"

// Status represents the lifecycle of an analysis run.
type Status string

const (
	StatusPending     Status = "pending"
	StatusLoading     Status = "loading"
	StatusCleaning    Status = "cleaning"
	StatusExploring   Status = "exploring"
	StatusEngineering Status = "engineering"
	StatusModeling    Status = "modeling"
	StatusReporting   Status = "reporting"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusReview      Status = "review"
)

var allStatuses = []Status{
	StatusPending,
	StatusLoading,
	StatusCleaning,
	StatusExploring,
	StatusEngineering,
	StatusModeling,
	StatusReporting,
	StatusCompleted,
	StatusFailed,
	StatusReview,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// ValidStatus reports whether the value is a known run status.
func ValidStatus(status Status) bool {
	_, ok := statusSet[status]
	return ok
}

// Terminal reports whether a run in this status will not progress further.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusReview:
		return true
	default:
		return false
	}
}

// Run captures one pipeline execution over a source CSV.
type Run struct {
	ID           string
	SourcePath   string
	Status       Status
	RowsLoaded   int
	RowsClean    int
	FeatureCount int
	BestModel    string
	BestTestR2   float64
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ModelResult is one scored regressor within a run, ranked by test R².
type ModelResult struct {
	RunID     string
	Rank      int
	Model     string
	TrainR2   float64
	TestR2    float64
	TrainRMSE float64
	TestRMSE  float64
	TrainMAE  float64
	TestMAE   float64
	Tuned     bool
}
