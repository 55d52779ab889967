package engine

import (
	"goxtab/domain/dataset"
)

// group is one partition of the measure variable keyed by a grouping category.
type group struct {
	label  string
	values []float64
}

// extractGroups partitions the numeric values of measureVar by the categories
// of groupVar, in order of first appearance. Rows where either value is
// missing, or the measure is non-numeric, are skipped; groups left empty by
// that filtering are dropped.
func extractGroups(frame *dataset.Frame, groupVar, measureVar string) ([]group, error) {
	groupCol, err := frame.Column(groupVar)
	if err != nil {
		return nil, err
	}
	measureCol, err := frame.Column(measureVar)
	if err != nil {
		return nil, err
	}

	at := make(map[string]int)
	var groups []group
	for k := 0; k < frame.RowCount(); k++ {
		gv := groupCol.Values[k]
		mv := measureCol.Values[k]
		if gv.IsMissing() || !mv.IsNumeric() {
			continue
		}
		label := gv.Label()
		i, ok := at[label]
		if !ok {
			i = len(groups)
			at[label] = i
			groups = append(groups, group{label: label})
		}
		groups[i].values = append(groups[i].values, mv.Num)
	}
	return groups, nil
}
