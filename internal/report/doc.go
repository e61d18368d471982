// Package report turns pipeline results into charts, an Excel workbook, and
// the plain-language insight summary printed at the end of a run.
package report
