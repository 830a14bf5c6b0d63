package lookup

import (
	"encoding/json"
	"strings"
	"time"
)

// WHOIS servers disagree about field shapes: the same field comes back as a
// single value from one registrar and as a list from another. The tagged
// unions below carry that distinction explicitly so the normalizers can
// handle each shape exhaustively instead of downstream code guessing.

type shape uint8

const (
	shapeAbsent shape = iota
	shapeScalar
	shapeSequence
)

// Text is a string-valued field that is either absent, a single string, or
// an ordered sequence of strings. The zero value is absent.
//
// Text marshals to JSON as null, a string, or an array, preserving the
// upstream shape for consumers.
type Text struct {
	s    shape
	one  string
	many []string
}

// TextOf returns a scalar Text.
func TextOf(v string) Text {
	return Text{s: shapeScalar, one: v}
}

// TextList returns a sequence Text. An empty or nil slice is still a
// sequence, distinct from absent.
func TextList(vals []string) Text {
	return Text{s: shapeSequence, many: vals}
}

// Absent reports whether no value is present.
func (t Text) Absent() bool { return t.s == shapeAbsent }

// Scalar returns the single value, if the shape is scalar.
func (t Text) Scalar() (string, bool) {
	return t.one, t.s == shapeScalar
}

// Sequence returns the ordered values, if the shape is a sequence.
func (t Text) Sequence() ([]string, bool) {
	return t.many, t.s == shapeSequence
}

// String renders the value for display: the scalar itself, or the sequence
// joined with ", ". Absent renders as the empty string.
func (t Text) String() string {
	switch t.s {
	case shapeScalar:
		return t.one
	case shapeSequence:
		return strings.Join(t.many, ", ")
	default:
		return ""
	}
}

// MarshalJSON emits null, a string, or an array depending on shape.
func (t Text) MarshalJSON() ([]byte, error) {
	switch t.s {
	case shapeScalar:
		return json.Marshal(t.one)
	case shapeSequence:
		if t.many == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(t.many)
	default:
		return []byte("null"), nil
	}
}

// DateValue is a timestamp-valued field that is either absent, a single
// timestamp, or an ordered sequence of timestamps. The zero value is absent.
type DateValue struct {
	s    shape
	one  time.Time
	many []time.Time
}

// DateOf returns a scalar DateValue.
func DateOf(v time.Time) DateValue {
	return DateValue{s: shapeScalar, one: v}
}

// DateList returns a sequence DateValue.
func DateList(vals []time.Time) DateValue {
	return DateValue{s: shapeSequence, many: vals}
}

// Absent reports whether no value is present.
func (d DateValue) Absent() bool { return d.s == shapeAbsent }

// Scalar returns the single timestamp, if the shape is scalar.
func (d DateValue) Scalar() (time.Time, bool) {
	return d.one, d.s == shapeScalar
}

// Sequence returns the ordered timestamps, if the shape is a sequence.
func (d DateValue) Sequence() ([]time.Time, bool) {
	return d.many, d.s == shapeSequence
}
