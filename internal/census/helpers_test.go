package census

// Read accessors over a counted table, used by the tests in this package.

// layers returns the number of compared layers.
func (t *Table) layers() int {
	if t == nil {
		return 0
	}
	return len(t.counts)
}

// names returns the classifier names in registration order.
func (t *Table) names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.classifiers))
	for i, c := range t.classifiers {
		names[i] = c.Name
	}
	return names
}

// at returns the count of a classifier against observed layer k (k ≥ 1).
func (t *Table) at(name string, layer int) (int64, bool) {
	c := t.column(name)
	if c < 0 || layer < 1 || layer > len(t.counts) {
		return 0, false
	}
	return t.counts[layer-1][c], true
}

// total returns a classifier's count summed over every compared layer.
func (t *Table) total(name string) int64 {
	c := t.column(name)
	if c < 0 {
		return 0
	}
	var sum int64
	for _, row := range t.counts {
		sum += row[c]
	}
	return sum
}

// familySum adds up the counts of one family against observed layer k.
func (t *Table) familySum(f Family, layer int) int64 {
	if t == nil || layer < 1 || layer > len(t.counts) {
		return 0
	}
	var sum int64
	for c, cl := range t.classifiers {
		if cl.Family == f {
			sum += t.counts[layer-1][c]
		}
	}
	return sum
}

func (t *Table) column(name string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.classifiers {
		if c.Name == name {
			return i
		}
	}
	return -1
}
