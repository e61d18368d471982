package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCleaning(); err != nil {
		return err
	}
	if err := c.validateFeatures(); err != nil {
		return err
	}
	if err := c.validateTuning(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCleaning() error {
	switch c.Cleaning.ImputeStrategy {
	case "median", "mean":
	default:
		return fmt.Errorf("cleaning.impute_strategy must be \"median\" or \"mean\", got %q", c.Cleaning.ImputeStrategy)
	}
	if c.Cleaning.MinYear >= c.Cleaning.MaxYear {
		return errors.New("cleaning.min_year must be below cleaning.max_year")
	}
	return nil
}

func (c *Config) validateFeatures() error {
	switch c.Features.Encoding {
	case "label", "onehot", "frequency":
	default:
		return fmt.Errorf("features.encoding must be \"label\", \"onehot\", or \"frequency\", got %q", c.Features.Encoding)
	}
	if c.Features.TestRatio <= 0 || c.Features.TestRatio >= 1 {
		return errors.New("features.test_ratio must be between 0 and 1 exclusive")
	}
	return nil
}

func (c *Config) validateTuning() error {
	if !c.Tuning.Enabled {
		return nil
	}
	if c.Tuning.Folds < 2 {
		return errors.New("tuning.folds must be at least 2")
	}
	for _, depth := range c.Tuning.ForestDepthGrid {
		if depth <= 0 {
			return errors.New("tuning.forest_depth_grid values must be positive")
		}
	}
	for _, rate := range c.Tuning.BoostingRateGrid {
		if rate <= 0 || rate > 1 {
			return errors.New("tuning.boosting_rate_grid values must be in (0, 1]")
		}
	}
	return nil
}
