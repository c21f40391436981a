package census

// Table holds the counts of one pass: one column per registered classifier
// and one row per compared layer (observed layers 1..K-1). It is filled once
// by Count and only read afterwards.
type Table struct {
	classifiers []Classifier
	counts      [][]int64 // [layer-1][classifier]
}

// Row is one projected (classifier, layer) count.
type Row struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Layer int    `json:"layer"`
	Value int64  `json:"value"`
}

func newTable(classifiers []Classifier, pairs int) *Table {
	counts := make([][]int64, pairs)
	for i := range counts {
		counts[i] = make([]int64, len(classifiers))
	}
	return &Table{classifiers: classifiers, counts: counts}
}

// Rows projects the table classifier by classifier in registration order,
// each followed by its compared layers. IDs number the rows from 0. A graph
// with a single layer has nothing to compare; each classifier then gets one
// zero row with Layer 0.
func (t *Table) Rows() []Row {
	if t == nil {
		return []Row{}
	}
	if len(t.counts) == 0 {
		rows := make([]Row, len(t.classifiers))
		for c, cl := range t.classifiers {
			rows[c] = Row{ID: c, Name: cl.Name, Label: cl.Label}
		}
		return rows
	}
	rows := make([]Row, 0, len(t.classifiers)*len(t.counts))
	for c, cl := range t.classifiers {
		for k, counts := range t.counts {
			rows = append(rows, Row{
				ID:    len(rows),
				Name:  cl.Name,
				Label: cl.Label,
				Layer: k + 1,
				Value: counts[c],
			})
		}
	}
	return rows
}
