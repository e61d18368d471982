// Package cleaning turns the raw string dataframe into the typed movie table.
//
// It owns every type coercion in the pipeline: bracketed years, "NNN min"
// durations, comma-grouped vote counts, multi-genre cells, and person name
// whitespace. Rows without a rating are dropped (rating is the target);
// missing duration, votes, and year are imputed with the configured strategy.
// The Summary records exactly what was dropped and imputed so the report can
// print a cleaning audit.
package cleaning
