package config

const (
	defaultOutputDir            = "~/.local/share/reelscore/output"
	defaultLogDir               = "~/.local/share/reelscore/logs"
	defaultImputeStrategy       = "median"
	defaultMinYear              = 1900
	defaultMaxYear              = 2100
	defaultExploreTopN          = 10
	defaultMinPersonMovies      = 5
	defaultEncoding             = "frequency"
	defaultTestRatio            = 0.2
	defaultSeed                 = 42
	defaultRidgeLambda          = 1.0
	defaultTreeMaxDepth         = 8
	defaultTreeMinSamplesSplit  = 20
	defaultForestTrees          = 100
	defaultForestMaxDepth       = 12
	defaultBoostingRounds       = 100
	defaultBoostingMaxDepth     = 3
	defaultBoostingLearningRate = 0.1
	defaultTuningFolds          = 5
	defaultWorkbookName         = "reelscore_report.xlsx"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Dataset: Dataset{
			MissingTokens: []string{"", "NA", "N/A", "null"},
		},
		Cleaning: Cleaning{
			ImputeStrategy: defaultImputeStrategy,
			DropDuplicates: true,
			MinYear:        defaultMinYear,
			MaxYear:        defaultMaxYear,
		},
		Explore: Explore{
			TopN:            defaultExploreTopN,
			MinPersonMovies: defaultMinPersonMovies,
		},
		Features: Features{
			Encoding:  defaultEncoding,
			Scale:     true,
			TestRatio: defaultTestRatio,
			Seed:      defaultSeed,
		},
		Models: Models{
			RidgeLambda:          defaultRidgeLambda,
			TreeMaxDepth:         defaultTreeMaxDepth,
			TreeMinSamplesSplit:  defaultTreeMinSamplesSplit,
			ForestTrees:          defaultForestTrees,
			ForestMaxDepth:       defaultForestMaxDepth,
			BoostingRounds:       defaultBoostingRounds,
			BoostingMaxDepth:     defaultBoostingMaxDepth,
			BoostingLearningRate: defaultBoostingLearningRate,
		},
		Tuning: Tuning{
			Enabled:           true,
			Folds:             defaultTuningFolds,
			ForestTreeGrid:    []int{50, 100, 200},
			ForestDepthGrid:   []int{8, 12, 16},
			BoostingRateGrid:  []float64{0.05, 0.1, 0.2},
			BoostingDepthGrid: []int{2, 3, 4},
		},
		Report: Report{
			Charts:       true,
			Workbook:     true,
			WorkbookName: defaultWorkbookName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
