// ABOUTME: Letter-grade classifier for percentage metrics.
// ABOUTME: Two fixed tier tables; pure function of percent and scheme.
package models

// Grade is a letter grade derived from a percentage.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Scheme selects a grading tier table.
type Scheme string

const (
	// SchemePrimary grades 85/75/65/55 and below.
	SchemePrimary Scheme = "primary"
	// SchemeAlternate grades 82/72/62/52 and below.
	SchemeAlternate Scheme = "alternate"
)

type tier struct {
	threshold float64
	grade     Grade
}

var schemeTiers = map[Scheme][]tier{
	SchemePrimary: {
		{85, GradeA}, {75, GradeB}, {65, GradeC}, {55, GradeD},
	},
	SchemeAlternate: {
		{82, GradeA}, {72, GradeB}, {62, GradeC}, {52, GradeD},
	},
}

// IsValidScheme checks if a string names a grading scheme.
func IsValidScheme(s string) bool {
	_, ok := schemeTiers[Scheme(s)]
	return ok
}

// GradeFor maps a percentage to a letter grade under the given scheme.
// Tiers are evaluated top-down, first match wins, else F. The function is
// total over the real line; callers only invoke it for computed percentages.
func GradeFor(percent float64, scheme Scheme) Grade {
	tiers, ok := schemeTiers[scheme]
	if !ok {
		tiers = schemeTiers[SchemePrimary]
	}
	for _, t := range tiers {
		if percent >= t.threshold {
			return t.grade
		}
	}
	return GradeF
}
