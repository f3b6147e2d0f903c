package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Gobd/dataprep"
)

// coerceValue maps a raw CLI argument to a library Value: empty or an
// explicit null spelling becomes Missing, anything that parses as a
// float becomes Number, and the rest stays Text. "nan" parses as a
// float, so it arrives as a NaN Number and is treated as missing by the
// cleaning transforms.
func coerceValue(s string) dataprep.Value {
	switch strings.ToLower(s) {
	case "", "none", "null":
		return dataprep.Missing()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return dataprep.Number(f)
	}
	return dataprep.Text(s)
}

func coerceValues(args []string) []dataprep.Value {
	values := make([]dataprep.Value, len(args))
	for i, a := range args {
		values[i] = coerceValue(a)
	}
	return values
}

// coerceFloats requires every argument to be a float; numeric commands
// fail fast on anything else.
func coerceFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not a number", a)
		}
		values[i] = f
	}
	return values, nil
}

// coerceLists parses each argument as a JSON array literal, e.g.
// "[1,2]" or `["a",["b"]]`. Elements keep their JSON types, so nested
// arrays survive one level of flattening intact.
func coerceLists(args []string) ([][]any, error) {
	lists := make([][]any, len(args))
	for i, a := range args {
		var inner []any
		if err := json.Unmarshal([]byte(a), &inner); err != nil {
			return nil, fmt.Errorf("argument %q is not a list literal: %w", a, err)
		}
		lists[i] = inner
	}
	return lists, nil
}
