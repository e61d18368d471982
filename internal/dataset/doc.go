// Package dataset ingests the source CSV and defines the typed movie table
// shared by every later pipeline stage.
//
// Ingestion keeps every cell as a string inside a gota dataframe so the
// cleaning stage owns all type coercion; this package only reports shape,
// per-column missingness, and raw samples. The Table/Movie types are the
// cleaned, typed view the exploration and feature stages consume.
package dataset
