package census

import (
	"fmt"
	"slices"
)

// Family groups classifiers that are reported together.
type Family string

const (
	FamilyCensus Family = "census"
	FamilyRecip  Family = "recip"
)

// Classifier maps a dyad to a single named outcome. Match must be pure.
type Classifier struct {
	Name   string
	Label  string
	Family Family
	Match  func(Dyad) bool
}

// The ten census outcomes partition every (reference, observed) pair of
// tie-states; asymmetric pairs are split by whether the direction agrees.
var censusClassifiers = []Classifier{
	{
		Name: "census01", Label: "(01) Accurate null", Family: FamilyCensus,
		Match: func(d Dyad) bool { return d.Ref == Null && d.Obs == Null },
	},
	{
		Name: "census02", Label: "(02) Partial false positive (null)", Family: FamilyCensus,
		Match: func(d Dyad) bool { return d.Ref == Null && d.Obs.Asymmetric() },
	},
	{
		Name: "census03", Label: "(03) Complete false positive (null)", Family: FamilyCensus,
		Match: func(d Dyad) bool { return d.Ref == Null && d.Obs == Mutual },
	},
	{
		Name: "census04", Label: "(04) Partial false negative (assym)", Family: FamilyCensus,
		Match: func(d Dyad) bool { return d.Ref.Asymmetric() && d.Obs == Null },
	},
	{
		Name: "census05", Label: "(05) Accurate assym", Family: FamilyCensus,
		Match: func(d Dyad) bool { return d.Ref.Asymmetric() && d.Obs == d.Ref },
	},
	{
		Name: "census06", Label: "(06) Mixed assym", Family: FamilyCensus,
		Match: func(d Dyad) bool { return d.Ref.Asymmetric() && d.Obs.Asymmetric() && d.Obs != d.Ref },
	},
	{
		Name: "census07", Label: "(07) Partial false positive (assym)", Family: FamilyCensus,
		Match: func(d Dyad) bool { return d.Ref.Asymmetric() && d.Obs == Mutual },
	},
	{
		Name: "census08", Label: "(08) Complete false negative (full)", Family: FamilyCensus,
		Match: func(d Dyad) bool { return d.Ref == Mutual && d.Obs == Null },
	},
	{
		Name: "census09", Label: "(09) Partial false negative (full)", Family: FamilyCensus,
		Match: func(d Dyad) bool { return d.Ref == Mutual && d.Obs.Asymmetric() },
	},
	{
		Name: "census10", Label: "(10) Accurate full", Family: FamilyCensus,
		Match: func(d Dyad) bool { return d.Ref == Mutual && d.Obs == Mutual },
	},
}

// Reciprocity errors are stated in terms of which directed ties were dropped
// (omission) or added (commission) relative to the reference.
var recipClassifiers = []Classifier{
	{
		Name: "partially_false_recip_omission", Label: "Partially false recip (omission)", Family: FamilyRecip,
		Match: func(d Dyad) bool { return d.Ref == Mutual && d.Omitted() == 1 && d.Committed() == 0 },
	},
	{
		Name: "partially_false_recip_commission", Label: "Partially false recip (commission)", Family: FamilyRecip,
		Match: func(d Dyad) bool { return d.Obs == Mutual && d.Committed() == 1 && d.Omitted() == 0 },
	},
	{
		Name: "completely_false_recip_omission", Label: "Completely false recip (omission)", Family: FamilyRecip,
		Match: func(d Dyad) bool { return d.Ref == Mutual && d.Omitted() == 2 },
	},
	{
		Name: "completely_false_recip_commission", Label: "Completely false recip (commission)", Family: FamilyRecip,
		Match: func(d Dyad) bool { return d.Obs == Mutual && d.Committed() == 2 },
	},
	{
		Name: "mixed_recip", Label: "Mixed reciprocity", Family: FamilyRecip,
		Match: func(d Dyad) bool { return d.Ref.Asymmetric() && d.Omitted() == 1 && d.Committed() == 1 },
	},
}

// CensusClassifiers returns the ten census classifiers in report order.
func CensusClassifiers() []Classifier {
	return slices.Clone(censusClassifiers)
}

// RecipClassifiers returns the five reciprocity-error classifiers.
func RecipClassifiers() []Classifier {
	return slices.Clone(recipClassifiers)
}

// AllClassifiers returns the reciprocity classifiers followed by the census,
// so both families are counted in a single pass.
func AllClassifiers() []Classifier {
	return slices.Concat(recipClassifiers, censusClassifiers)
}

// Lookup returns the named classifiers in the order given.
func Lookup(names ...string) ([]Classifier, error) {
	all := AllClassifiers()
	out := make([]Classifier, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(all, func(c Classifier) bool { return c.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownClassifier, name)
		}
		out = append(out, all[i])
	}
	return out, nil
}

// ForFamily returns the registered classifiers of a family. An empty family
// selects both.
func ForFamily(f Family) ([]Classifier, error) {
	switch f {
	case FamilyCensus:
		return CensusClassifiers(), nil
	case FamilyRecip:
		return RecipClassifiers(), nil
	case "":
		return AllClassifiers(), nil
	}
	return nil, fmt.Errorf("%w: family %q", ErrUnknownClassifier, f)
}

// fullCensus reports whether every census classifier is registered, in
// which case each dyad must match exactly one of them.
func fullCensus(cs []Classifier) bool {
	for _, want := range censusClassifiers {
		if !slices.ContainsFunc(cs, func(c Classifier) bool { return c.Name == want.Name }) {
			return false
		}
	}
	return true
}
