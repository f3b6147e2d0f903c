// Package dataprep provides small, independent data-cleaning and
// transformation helpers: missing-value handling, numeric normalization,
// text tokenization, and list utilities.
//
// Every function is a pure, single-pass transformation: it takes its
// input by value, returns a freshly allocated result, and never mutates
// or retains what it was given. Heterogeneous data (numbers, strings,
// missing entries) is modeled with the [Value] tagged union rather than
// runtime type inspection:
//
//	cleaned := dataprep.Clean([]dataprep.Value{
//	    dataprep.Number(1),
//	    dataprep.Missing(),
//	    dataprep.Text("ok"),
//	})
//
// Malformed elements are filtered or defaulted per function, never
// reported as errors: [ToInts] drops non-digit tokens, [LogTransform]
// drops non-positive values, and so on. Only [Shuffle] is
// non-deterministic; [ShuffleSeeded] exists for reproducible runs.
//
// The dataprep command under cmd/dataprep wraps each helper as a CLI
// subcommand.
package dataprep
