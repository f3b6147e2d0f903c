package dataprep

// Clean returns a new slice omitting every element that counts as
// missing (see [Value.IsMissing]): the absent sentinel, empty strings,
// and NaN numbers. All other elements pass through unchanged, in order.
func Clean(values []Value) []Value {
	cleaned := make([]Value, 0, len(values))
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		cleaned = append(cleaned, v)
	}
	return cleaned
}

// Fill classifies elements exactly like [Clean] but replaces missing
// entries with fill instead of dropping them, so the output always has
// the same length as the input.
func Fill(values []Value, fill Value) []Value {
	filled := make([]Value, len(values))
	for i, v := range values {
		if v.IsMissing() {
			filled[i] = fill
		} else {
			filled[i] = v
		}
	}
	return filled
}
