// Package explore computes the exploratory analysis over the cleaned table:
// descriptive statistics, per-year and per-genre aggregations, director and
// actor leaderboards, and the numeric correlation matrix.
//
// All numeric work goes through gonum/stat. The Report is a plain value the
// reporting stage renders into tables, charts, and workbook sheets; nothing
// here writes output.
package explore
