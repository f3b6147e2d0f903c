package dataprep

import (
	"math"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindMissing marks an absent entry (the None/null sentinel).
	KindMissing Kind = iota
	// KindNumber marks a float64 payload.
	KindNumber
	// KindText marks a string payload.
	KindText
)

// Value is a comparable tagged union over the element types a dataset
// may mix: a number, a piece of text, or a missing entry. The zero
// Value is Missing.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Number returns a Value holding f.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text returns a Value holding s.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Missing returns the absent-entry sentinel.
func Missing() Value {
	return Value{}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Number returns the numeric payload and whether v holds one.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Text returns the string payload and whether v holds one.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// IsMissing reports whether v counts as a missing entry for cleaning
// purposes: the Missing sentinel, an empty string, or a NaN number.
func (v Value) IsMissing() bool {
	switch v.kind {
	case KindNumber:
		return math.IsNaN(v.num)
	case KindText:
		return v.text == ""
	default:
		return true
	}
}

// String renders v in its display form. Numbers use the shortest
// representation that round-trips; the missing sentinel renders as
// <missing>.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	default:
		return "<missing>"
	}
}
