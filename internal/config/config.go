package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and input file configuration.
type Paths struct {
	DataFile  string `toml:"data_file"`
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Dataset contains CSV ingestion settings.
type Dataset struct {
	// MissingTokens are cell values treated as missing in addition to the
	// empty string.
	MissingTokens []string `toml:"missing_tokens"`
}

// Cleaning contains settings for the cleaning stage.
type Cleaning struct {
	// ImputeStrategy selects how missing duration and vote counts are
	// filled: "median" or "mean".
	ImputeStrategy string `toml:"impute_strategy"`
	DropDuplicates bool   `toml:"drop_duplicates"`
	MinYear        int    `toml:"min_year"`
	MaxYear        int    `toml:"max_year"`
}

// Explore contains settings for the exploratory analysis stage.
type Explore struct {
	// TopN bounds the director/actor leaderboards.
	TopN int `toml:"top_n"`
	// MinPersonMovies is the minimum credited movies before a director or
	// actor appears in a leaderboard.
	MinPersonMovies int `toml:"min_person_movies"`
}

// Features contains settings for feature engineering and the train/test split.
type Features struct {
	// Encoding selects the categorical encoding: "label", "onehot", or
	// "frequency".
	Encoding  string  `toml:"encoding"`
	Scale     bool    `toml:"scale"`
	TestRatio float64 `toml:"test_ratio"`
	Seed      int64   `toml:"seed"`
}

// Models contains regressor hyperparameters.
type Models struct {
	RidgeLambda          float64 `toml:"ridge_lambda"`
	TreeMaxDepth         int     `toml:"tree_max_depth"`
	TreeMinSamplesSplit  int     `toml:"tree_min_samples_split"`
	ForestTrees          int     `toml:"forest_trees"`
	ForestMaxDepth       int     `toml:"forest_max_depth"`
	BoostingRounds       int     `toml:"boosting_rounds"`
	BoostingMaxDepth     int     `toml:"boosting_max_depth"`
	BoostingLearningRate float64 `toml:"boosting_learning_rate"`
}

// Tuning contains cross-validated grid-search settings for the tree ensembles.
type Tuning struct {
	Enabled           bool      `toml:"enabled"`
	Folds             int       `toml:"folds"`
	ForestTreeGrid    []int     `toml:"forest_tree_grid"`
	ForestDepthGrid   []int     `toml:"forest_depth_grid"`
	BoostingRateGrid  []float64 `toml:"boosting_rate_grid"`
	BoostingDepthGrid []int     `toml:"boosting_depth_grid"`
}

// Report contains settings for chart, workbook, and console output.
type Report struct {
	Charts   bool `toml:"charts"`
	Workbook bool `toml:"workbook"`
	// WorkbookName is the Excel file written under the output directory.
	WorkbookName string `toml:"workbook_name"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for reelscore.
//
// Configuration sections by subsystem:
//   - Paths: input CSV, output directory, log directory
//   - Dataset: CSV ingestion missing-value tokens
//   - Cleaning: imputation strategy and plausibility bounds
//   - Explore: leaderboard sizes and thresholds
//   - Features: encoding, scaling, and the train/test split
//   - Models: per-regressor hyperparameters
//   - Tuning: cross-validated grid search for forest and boosting
//   - Report: chart/workbook toggles
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Dataset  Dataset  `toml:"dataset"`
	Cleaning Cleaning `toml:"cleaning"`
	Explore  Explore  `toml:"explore"`
	Features Features `toml:"features"`
	Models   Models   `toml:"models"`
	Tuning   Tuning   `toml:"tuning"`
	Report   Report   `toml:"report"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/reelscore/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("reelscore.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// WorkbookPath returns the full path of the Excel report workbook.
func (c *Config) WorkbookPath() string {
	return filepath.Join(c.Paths.OutputDir, c.Report.WorkbookName)
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
