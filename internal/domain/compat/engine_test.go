package compat

import (
	"testing"

	"github.com/google/uuid"
)

func skillSet(ids ...uuid.UUID) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func TestScore_NoQualifyingSkills(t *testing.T) {
	careerID := uuid.New()
	res := Score(careerID, "Data Engineer", skillSet(uuid.New()), nil, DefaultParams())
	if res.Percentage != 0 {
		t.Fatalf("expected percentage 0, got %v", res.Percentage)
	}
	if res.TotalConsidered != 0 || res.CoveredWeight != 0 {
		t.Fatalf("expected empty totals, got covered=%d total=%d", res.CoveredWeight, res.TotalConsidered)
	}
}

func TestScore_MinFrequencyFilter(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	demand := []SkillWeight{
		{SkillID: a, SkillName: "A", Frequency: 5},
		{SkillID: b, SkillName: "B", Frequency: 2},
	}

	res := Score(uuid.New(), "Backend", skillSet(a), demand, Params{MinFrequency: 3, CoreRatio: 1.0})
	if res.TotalConsidered != 5 {
		t.Fatalf("expected totalConsidered 5, got %d", res.TotalConsidered)
	}
	if res.CoveredWeight != 5 {
		t.Fatalf("expected coveredWeight 5, got %d", res.CoveredWeight)
	}
	if res.Percentage != 100.0 {
		t.Fatalf("expected percentage 100, got %v", res.Percentage)
	}
	if len(res.CoveredSkills) != 1 || res.CoveredSkills[0] != "A" {
		t.Fatalf("expected covered skills [A], got %v", res.CoveredSkills)
	}
}

func TestScore_FilteredSkillNeverCounts(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	demand := []SkillWeight{
		{SkillID: a, SkillName: "A", Frequency: 5},
		{SkillID: b, SkillName: "B", Frequency: 2},
	}

	// User has only the filtered-out skill; nothing should be covered.
	res := Score(uuid.New(), "Backend", skillSet(b), demand, Params{MinFrequency: 3, CoreRatio: 1.0})
	if res.CoveredWeight != 0 {
		t.Fatalf("expected coveredWeight 0, got %d", res.CoveredWeight)
	}
	if res.Percentage != 0 {
		t.Fatalf("expected percentage 0, got %v", res.Percentage)
	}
}

func TestScore_CoreRatio(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	demand := []SkillWeight{
		{SkillID: a, SkillName: "A", Frequency: 10},
		{SkillID: b, SkillName: "B", Frequency: 6},
		{SkillID: c, SkillName: "C", Frequency: 4},
	}

	res := Score(uuid.New(), "Fullstack", skillSet(b), demand, Params{MinFrequency: 1, CoreRatio: 0.6})
	if res.TotalConsidered != 16 {
		t.Fatalf("expected denominator 16, got %d", res.TotalConsidered)
	}
	if res.CoveredWeight != 6 {
		t.Fatalf("expected coveredWeight 6, got %d", res.CoveredWeight)
	}
	if res.Percentage != 37.5 {
		t.Fatalf("expected percentage 37.5, got %v", res.Percentage)
	}
}

func TestScore_CoreRatioOneUsesFullSet(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	demand := []SkillWeight{
		{SkillID: a, SkillName: "A", Frequency: 10},
		{SkillID: b, SkillName: "B", Frequency: 3},
	}

	res := Score(uuid.New(), "Backend", skillSet(a, b), demand, Params{MinFrequency: 3, CoreRatio: 1.0})
	if res.TotalConsidered != 13 {
		t.Fatalf("expected denominator 13, got %d", res.TotalConsidered)
	}
	if res.Percentage != 100.0 {
		t.Fatalf("expected percentage 100, got %v", res.Percentage)
	}
}

func TestScore_RoundsToTwoDecimals(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	demand := []SkillWeight{
		{SkillID: a, SkillName: "A", Frequency: 3},
		{SkillID: b, SkillName: "B", Frequency: 3},
		{SkillID: c, SkillName: "C", Frequency: 3},
	}

	res := Score(uuid.New(), "Backend", skillSet(a), demand, Params{MinFrequency: 1, CoreRatio: 1.0})
	if res.Percentage != 33.33 {
		t.Fatalf("expected percentage 33.33, got %v", res.Percentage)
	}
}

func TestSortResults(t *testing.T) {
	results := []Result{
		{CareerName: "zeta", Percentage: 50, CoveredWeight: 5, TotalConsidered: 10},
		{CareerName: "Alpha", Percentage: 50, CoveredWeight: 5, TotalConsidered: 10},
		{CareerName: "beta", Percentage: 80, CoveredWeight: 8, TotalConsidered: 10},
		{CareerName: "gamma", Percentage: 50, CoveredWeight: 6, TotalConsidered: 12},
	}

	SortResults(results)

	wantOrder := []string{"beta", "gamma", "Alpha", "zeta"}
	for i, want := range wantOrder {
		if results[i].CareerName != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, results[i].CareerName)
		}
	}
}
