package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDataset()
	c.normalizeCleaning()
	c.normalizeExplore()
	c.normalizeFeatures()
	c.normalizeModels()
	c.normalizeTuning()
	c.normalizeReport()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataFile == "" {
		if value, ok := os.LookupEnv("REELSCORE_DATA_FILE"); ok {
			c.Paths.DataFile = strings.TrimSpace(value)
		}
	}
	if c.Paths.DataFile != "" {
		if c.Paths.DataFile, err = expandPath(c.Paths.DataFile); err != nil {
			return fmt.Errorf("paths.data_file: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		if value, ok := os.LookupEnv("REELSCORE_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
			c.Paths.OutputDir = strings.TrimSpace(value)
		} else {
			c.Paths.OutputDir = defaultOutputDir
		}
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDataset() {
	tokens := make([]string, 0, len(c.Dataset.MissingTokens))
	seen := make(map[string]struct{}, len(c.Dataset.MissingTokens))
	for _, token := range c.Dataset.MissingTokens {
		token = strings.TrimSpace(token)
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	if len(tokens) == 0 {
		tokens = Default().Dataset.MissingTokens
	}
	c.Dataset.MissingTokens = tokens
}

func (c *Config) normalizeCleaning() {
	c.Cleaning.ImputeStrategy = strings.ToLower(strings.TrimSpace(c.Cleaning.ImputeStrategy))
	if c.Cleaning.ImputeStrategy == "" {
		c.Cleaning.ImputeStrategy = defaultImputeStrategy
	}
	if c.Cleaning.MinYear <= 0 {
		c.Cleaning.MinYear = defaultMinYear
	}
	if c.Cleaning.MaxYear <= 0 {
		c.Cleaning.MaxYear = defaultMaxYear
	}
}

func (c *Config) normalizeExplore() {
	if c.Explore.TopN <= 0 {
		c.Explore.TopN = defaultExploreTopN
	}
	if c.Explore.MinPersonMovies <= 0 {
		c.Explore.MinPersonMovies = defaultMinPersonMovies
	}
}

func (c *Config) normalizeFeatures() {
	c.Features.Encoding = strings.ToLower(strings.TrimSpace(c.Features.Encoding))
	if c.Features.Encoding == "" {
		c.Features.Encoding = defaultEncoding
	}
	if c.Features.TestRatio <= 0 || c.Features.TestRatio >= 1 {
		c.Features.TestRatio = defaultTestRatio
	}
	if c.Features.Seed == 0 {
		c.Features.Seed = defaultSeed
	}
}

func (c *Config) normalizeModels() {
	if c.Models.RidgeLambda < 0 {
		c.Models.RidgeLambda = defaultRidgeLambda
	}
	if c.Models.TreeMaxDepth <= 0 {
		c.Models.TreeMaxDepth = defaultTreeMaxDepth
	}
	if c.Models.TreeMinSamplesSplit <= 1 {
		c.Models.TreeMinSamplesSplit = defaultTreeMinSamplesSplit
	}
	if c.Models.ForestTrees <= 0 {
		c.Models.ForestTrees = defaultForestTrees
	}
	if c.Models.ForestMaxDepth <= 0 {
		c.Models.ForestMaxDepth = defaultForestMaxDepth
	}
	if c.Models.BoostingRounds <= 0 {
		c.Models.BoostingRounds = defaultBoostingRounds
	}
	if c.Models.BoostingMaxDepth <= 0 {
		c.Models.BoostingMaxDepth = defaultBoostingMaxDepth
	}
	if c.Models.BoostingLearningRate <= 0 {
		c.Models.BoostingLearningRate = defaultBoostingLearningRate
	}
}

func (c *Config) normalizeTuning() {
	if c.Tuning.Folds <= 1 {
		c.Tuning.Folds = defaultTuningFolds
	}
	if len(c.Tuning.ForestTreeGrid) == 0 {
		c.Tuning.ForestTreeGrid = Default().Tuning.ForestTreeGrid
	}
	if len(c.Tuning.ForestDepthGrid) == 0 {
		c.Tuning.ForestDepthGrid = Default().Tuning.ForestDepthGrid
	}
	if len(c.Tuning.BoostingRateGrid) == 0 {
		c.Tuning.BoostingRateGrid = Default().Tuning.BoostingRateGrid
	}
	if len(c.Tuning.BoostingDepthGrid) == 0 {
		c.Tuning.BoostingDepthGrid = Default().Tuning.BoostingDepthGrid
	}
}

func (c *Config) normalizeReport() {
	c.Report.WorkbookName = strings.TrimSpace(c.Report.WorkbookName)
	if c.Report.WorkbookName == "" {
		c.Report.WorkbookName = defaultWorkbookName
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
