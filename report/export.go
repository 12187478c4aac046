package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/tspbench/bench"
	"github.com/katalvlaran/tspbench/citymap"
	"github.com/katalvlaran/tspbench/tsp"
)

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

// WriteCSV writes the raw rows of t with a header line. Time is in seconds.
func WriteCSV(w io.Writer, t *bench.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(runColumns); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	for _, r := range t.Rows() {
		rec := []string{
			r.Algorithm,
			strconv.Itoa(r.NCity),
			strconv.Itoa(r.Replicate),
			formatFloat(r.Seconds()),
			formatFloat(r.Length),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: write csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteText renders summaries as an aligned table.
func WriteText(w io.Writer, summaries []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, c := range summaryColumns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw, "\t")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.6f\t%.6f\t%.2f\t%.2f\t%.2f\t\n",
			s.Algorithm, s.NCity, s.Count,
			s.MeanTime, s.StdTime, s.MeanLength, s.StdLength, s.MinLength)
	}

	return tw.Flush()
}

// WriteXLSX saves a workbook at path with the raw rows of t on the "runs"
// sheet and summaries on the "summary" sheet.
//
// Errors: ErrEmptyTable, excelize I/O errors.
func WriteXLSX(path string, t *bench.Table, summaries []Summary) (err error) {
	if t.Len() == 0 {
		return ErrEmptyTable
	}
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err = f.SetSheetName("Sheet1", RunsSheet); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}
	if _, err = f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("report: add sheet: %w", err)
	}

	runs := make([][]any, 0, t.Len())
	for _, r := range t.Rows() {
		runs = append(runs, []any{r.Algorithm, r.NCity, r.Replicate, r.Seconds(), r.Length})
	}
	if err = writeSheet(f, RunsSheet, runColumns, runs); err != nil {
		return err
	}

	sums := make([][]any, 0, len(summaries))
	for _, s := range summaries {
		sums = append(sums, []any{
			s.Algorithm, s.NCity, s.Count,
			s.MeanTime, s.StdTime, s.MeanLength, s.StdLength, s.MinLength,
		})
	}
	if err = writeSheet(f, SummarySheet, summaryColumns, sums); err != nil {
		return err
	}

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}

// writeSheet fills sheet with a header row followed by rows.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	for j, h := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("report: %s!%s: %w", sheet, cell, err)
		}
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("report: %s!%s: %w", sheet, cell, err)
			}
		}
	}

	return nil
}

// tourPoint is one stop of an exported tour.
type tourPoint struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// tourDocument is the JSON shape written by WriteTourJSON. Points follow the
// tour order and end with the starting city again, closing the polyline.
type tourDocument struct {
	Algorithm string      `json:"algorithm,omitempty"`
	NCity     int         `json:"n_city"`
	Length    float64     `json:"length"`
	Points    []tourPoint `json:"points"`
}

// WriteTourJSON writes tour t over map m as indented JSON for plotting.
// algorithm is an optional label.
//
// Errors: tsp.ErrTourMismatch when t does not belong to m.
func WriteTourJSON(w io.Writer, m *citymap.Map, t tsp.Tour, algorithm string) error {
	length, err := tsp.Length(m, t)
	if err != nil {
		return err
	}
	doc := tourDocument{
		Algorithm: algorithm,
		NCity:     m.Len(),
		Length:    length,
		Points:    make([]tourPoint, 0, len(t)+1),
	}
	for _, id := range append(t.Clone(), t[0]) {
		i, _ := m.IndexOf(id)
		c := m.City(i)
		doc.Points = append(doc.Points, tourPoint{ID: c.ID, X: c.X, Y: c.Y})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
