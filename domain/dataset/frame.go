package dataset

import (
	"fmt"
	"sort"
	"strconv"

	"goxtab/domain/core"
)

// ValueKind classifies a single cell value.
type ValueKind string

const (
	KindNumeric     ValueKind = "numeric"
	KindCategorical ValueKind = "categorical"
	KindMissing     ValueKind = "missing"
)

// Value is one cell of a column: a number, a category label, or a missing marker.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

// Number wraps a numeric cell value.
func Number(f float64) Value {
	return Value{Kind: KindNumeric, Num: f}
}

// Category wraps a categorical cell value.
func Category(s string) Value {
	return Value{Kind: KindCategorical, Str: s}
}

// Missing is the missing-value marker.
func Missing() Value {
	return Value{Kind: KindMissing}
}

// IsMissing reports whether the value is the missing marker.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// IsNumeric reports whether the value carries a number.
func (v Value) IsNumeric() bool {
	return v.Kind == KindNumeric
}

// Label renders the value as a category label. Numeric values use the shortest
// round-trip formatting so 1.0 and 1 name the same category.
func (v Value) Label() string {
	switch v.Kind {
	case KindNumeric:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindCategorical:
		return v.Str
	default:
		return ""
	}
}

// Column is a named, ordered sequence of values of mixed kind.
type Column struct {
	Name   string
	Values []Value
}

// AllMissing reports whether every value in the column is the missing marker.
func (c *Column) AllMissing() bool {
	for _, v := range c.Values {
		if !v.IsMissing() {
			return false
		}
	}
	return true
}

// DistinctValues returns the distinct non-missing values in ascending order:
// numeric when every non-missing value is numeric, lexicographic by label
// otherwise. The ordering is stable across repeated calls on the same data.
func (c *Column) DistinctValues() []Value {
	seen := make(map[string]Value)
	numeric := true
	for _, v := range c.Values {
		if v.IsMissing() {
			continue
		}
		if !v.IsNumeric() {
			numeric = false
		}
		seen[v.Label()] = v
	}

	out := make([]Value, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	if numeric {
		sort.Slice(out, func(i, j int) bool { return out[i].Num < out[j].Num })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].Label() < out[j].Label() })
	}
	return out
}

// Frame is the dataset abstraction consumed by the engine: an ordered collection
// of named columns of equal length, immutable for the duration of an analysis.
type Frame struct {
	columns []Column
	index   map[string]int
	rows    int
}

// NewFrame builds a frame from columns. All columns must share one length and
// carry distinct names.
func NewFrame(columns ...Column) (*Frame, error) {
	if len(columns) == 0 {
		return nil, core.ErrEmptyFrame
	}
	f := &Frame{
		columns: columns,
		index:   make(map[string]int, len(columns)),
		rows:    len(columns[0].Values),
	}
	for i, col := range columns {
		if len(col.Values) != f.rows {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d", core.ErrValidation, col.Name, len(col.Values), f.rows)
		}
		if _, dup := f.index[col.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", core.ErrValidation, col.Name)
		}
		f.index[col.Name] = i
	}
	return f, nil
}

// ColumnNames returns the column names in declaration order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the named column, or a ValidationError naming the variable.
func (f *Frame) Column(name string) (*Column, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, core.NewVariableNotFoundError(name)
	}
	return &f.columns[i], nil
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// RowCount returns the number of rows in the frame.
func (f *Frame) RowCount() int {
	return f.rows
}
