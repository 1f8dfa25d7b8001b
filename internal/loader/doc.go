// Package loader reads tabular regression data into tensors.
//
// Each row holds the feature values followed by the target value:
//
//	x1,x2,y
//	1.0,0.5,3.2
//	2.0,1.5,5.9
//
// A header row is detected and skipped when its first cell is not a number.
// The delimiter follows the file extension (.csv, .tsv) and can be overridden
// with WithComma.
//
// Example:
//
//	ds, err := loader.LoadCSV("data.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ds.Features.Shape(), ds.Targets.Shape()) // (4, 1) (4, 1)
//
// Design principles:
//   - Whole-file reads; datasets are expected to fit in memory
//   - Every cell is parsed as float64
//   - Errors carry the 1-based line and column of the offending cell
package loader
