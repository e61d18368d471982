// Package pipeline drives an analysis run through its stages: load, clean,
// explore, engineer, model, and report. Each stage persists a status
// transition to the run store so interrupted or failed runs are inspectable
// afterwards.
package pipeline
