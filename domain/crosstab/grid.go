package crosstab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"goxtab/domain/core"
)

// Grid is the rendered, margin-inclusive form of a table or percentage view:
// a labeled real-valued matrix in the pandas split orientation.
type Grid struct {
	Index   []string    `json:"index"`
	Columns []string    `json:"columns"`
	Data    [][]float64 `json:"data"`
}

func errMarginMismatch(variable, category string, want, got int) error {
	return fmt.Errorf("%w: margin for %s[%s] is %d, cells sum to %d",
		core.ErrValidation, variable, category, want, got)
}

// MarshalJSON encodes NaN cells (absent outer-join cells in combined banner
// grids) as null, which encoding/json cannot do for float64 on its own.
func (g *Grid) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"index":`)
	if err := writeStrings(&buf, g.Index); err != nil {
		return nil, err
	}
	buf.WriteString(`,"columns":`)
	if err := writeStrings(&buf, g.Columns); err != nil {
		return nil, err
	}
	buf.WriteString(`,"data":[`)
	for i, row := range g.Data {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				buf.WriteByte(',')
			}
			if math.IsNaN(v) {
				buf.WriteString("null")
			} else {
				b, err := json.Marshal(v)
				if err != nil {
					return nil, err
				}
				buf.Write(b)
			}
		}
		buf.WriteByte(']')
	}
	buf.WriteString("]}")
	return buf.Bytes(), nil
}

func writeStrings(buf *bytes.Buffer, ss []string) error {
	b, err := json.Marshal(ss)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
