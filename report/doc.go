// Package report consumes benchmark tables.
//
// Summarize condenses a bench.Table into one Summary per (algorithm, city
// count) with replicate count, mean and standard deviation of build time and
// tour length, and the best length seen. The writers export either the raw
// rows or the summaries:
//
//	WriteCSV       raw rows, columns algorithm,n_city,replicate,time,length
//	WriteXLSX      workbook with a "runs" sheet and a "summary" sheet
//	WriteText      aligned plain-text summary table for terminals
//	WriteTourJSON  one tour as ordered coordinates, for external plotting
//
// Times are always reported in seconds.
package report
