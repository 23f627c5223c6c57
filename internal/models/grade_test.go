// ABOUTME: Tests for the letter-grade classifier.
// ABOUTME: Verifies tier boundaries for both schemes.
package models

import "testing"

func TestGradeForPrimary(t *testing.T) {
	tests := []struct {
		percent float64
		want    Grade
	}{
		{100, GradeA},
		{85, GradeA},
		{84.9, GradeB},
		{75, GradeB},
		{74.9, GradeC},
		{65, GradeC},
		{64.9, GradeD},
		{55, GradeD},
		{54.9, GradeF},
		{0, GradeF},
	}

	for _, tt := range tests {
		if got := GradeFor(tt.percent, SchemePrimary); got != tt.want {
			t.Errorf("GradeFor(%v, primary) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestGradeForAlternate(t *testing.T) {
	tests := []struct {
		percent float64
		want    Grade
	}{
		{82, GradeA},
		{81.9, GradeB},
		{72, GradeB},
		{62, GradeC},
		{52, GradeD},
		{51.9, GradeF},
	}

	for _, tt := range tests {
		if got := GradeFor(tt.percent, SchemeAlternate); got != tt.want {
			t.Errorf("GradeFor(%v, alternate) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestGradeForUnknownSchemeFallsBackToPrimary(t *testing.T) {
	if got := GradeFor(85, Scheme("bogus")); got != GradeA {
		t.Errorf("expected primary tiers for unknown scheme, got %v", got)
	}
}

func TestGradeForOutOfRangeIsTotal(t *testing.T) {
	if got := GradeFor(130, SchemePrimary); got != GradeA {
		t.Errorf("GradeFor(130) = %v, want A", got)
	}
	if got := GradeFor(-10, SchemePrimary); got != GradeF {
		t.Errorf("GradeFor(-10) = %v, want F", got)
	}
}
