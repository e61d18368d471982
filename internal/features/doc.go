// Package features turns the cleaned movie table into the numeric matrices the
// regressors consume.
//
// Derived columns (decade, movie age, genre count, log votes) and the
// target-aggregate columns (director and lead-actor mean ratings) are computed
// here. Aggregates and encoders are fitted on training rows only, so the test
// split never leaks its ratings into its own features. The split is seeded and
// fully deterministic for a given dataset and configuration.
package features
