package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nozzle/nprand"
	"github.com/nozzle/nprand/ndarray"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gonum.org/v1/gonum/mat"
)

// emit writes a sample to --output, or to the root command's writer.
func emit(cmd *cli.Command, s nprand.Sample) error {
	if s.IsScalar() {
		if path := cmd.String("output"); path != "" {
			return saveCSV(path, [][]string{{formatValue(s.Scalar())}})
		}
		_, err := fmt.Fprintln(cmd.Root().Writer, formatValue(s.Scalar()))
		return err
	}
	return emitArray(cmd, s.Array())
}

func emitArray(cmd *cli.Command, a ndarray.Interface) error {
	if path := cmd.String("output"); path != "" {
		if err := saveCSV(path, records(a)); err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		log.Infof("Saved %d values to %s", a.Len(), path)
		return nil
	}

	w := cmd.Root().Writer
	if isTerminal(w) {
		if f, ok := a.(*ndarray.Array[float64]); ok && f.Ndim() == 2 {
			if d, err := ndarray.Dense(f); err == nil {
				_, err := fmt.Fprintf(w, "%v\n", mat.Formatted(d, mat.Squeeze()))
				return err
			}
		}
	}
	return writeCSV(w, records(a))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// records lays an array out as CSV rows: the last axis runs along a row and
// every leading index combination is one row.  Zero-rank arrays are one
// cell.
func records(a ndarray.Interface) [][]string {
	dims := a.Shape()
	cols := 1
	if len(dims) > 0 {
		cols = dims[len(dims)-1]
	}
	if cols == 0 {
		return nil
	}
	rows := a.Len() / cols
	out := make([][]string, rows)
	for r := range rows {
		record := make([]string, cols)
		for c := range cols {
			record[c] = formatValue(a.Flat(r*cols + c))
		}
		out[r] = record
	}
	return out
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}

// saveCSV saves rows to a CSV file.
func saveCSV(filename string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeCSV(file, rows)
}

func writeCSV(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
