// Package compat computes how well a person's skill set covers a career's
// weighted skill demand.
package compat

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// SkillWeight is one career demand entry: a skill and the accumulated
// frequency signal behind it.
type SkillWeight struct {
	SkillID   uuid.UUID
	SkillName string
	Frequency int
}

type Params struct {
	// MinFrequency discards demand pairs below this frequency.
	MinFrequency int
	// CoreRatio in (0,1) restricts scoring to the highest-weight subset
	// whose cumulative weight reaches this share of the total. Any other
	// value scores against the full filtered set.
	CoreRatio float64
}

func DefaultParams() Params {
	return Params{MinFrequency: 3, CoreRatio: 1.0}
}

type Result struct {
	CareerID        uuid.UUID
	CareerName      string
	Percentage      float64
	CoveredWeight   int
	TotalConsidered int
	CoveredSkills   []string
}

// weightOf maps a stored frequency to a scoring weight. Kept as its own
// function so damping strategies can replace it without touching the
// accumulation below.
func weightOf(frequency int) int {
	return frequency
}

// Score computes the user's weighted coverage of the career's demand.
// Careers with no qualifying demand score 0 rather than erroring.
func Score(careerID uuid.UUID, careerName string, userSkillIDs map[uuid.UUID]struct{}, demand []SkillWeight, p Params) Result {
	filtered := make([]SkillWeight, 0, len(demand))
	totalWeight := 0
	for _, d := range demand {
		if d.Frequency < p.MinFrequency {
			continue
		}
		filtered = append(filtered, d)
		totalWeight += weightOf(d.Frequency)
	}

	core := filtered
	denominator := totalWeight
	if p.CoreRatio > 0 && p.CoreRatio < 1 && totalWeight > 0 {
		sorted := make([]SkillWeight, len(filtered))
		copy(sorted, filtered)
		sort.SliceStable(sorted, func(i, j int) bool {
			wi, wj := weightOf(sorted[i].Frequency), weightOf(sorted[j].Frequency)
			if wi != wj {
				return wi > wj
			}
			return sorted[i].SkillName < sorted[j].SkillName
		})

		target := p.CoreRatio * float64(totalWeight)
		core = make([]SkillWeight, 0, len(sorted))
		denominator = 0
		for _, d := range sorted {
			core = append(core, d)
			denominator += weightOf(d.Frequency)
			if float64(denominator) >= target {
				break
			}
		}
	}

	coveredWeight := 0
	coveredSkills := make([]string, 0, len(core))
	for _, d := range core {
		if _, ok := userSkillIDs[d.SkillID]; !ok {
			continue
		}
		coveredWeight += weightOf(d.Frequency)
		coveredSkills = append(coveredSkills, d.SkillName)
	}

	percentage := 0.0
	if denominator > 0 {
		percentage = round2(100 * float64(coveredWeight) / float64(denominator))
	}

	return Result{
		CareerID:        careerID,
		CareerName:      careerName,
		Percentage:      percentage,
		CoveredWeight:   coveredWeight,
		TotalConsidered: denominator,
		CoveredSkills:   coveredSkills,
	}
}

// SortResults orders results best-first: percentage, covered weight and
// total considered descending, career name ascending as the final tie
// break.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Percentage != b.Percentage {
			return a.Percentage > b.Percentage
		}
		if a.CoveredWeight != b.CoveredWeight {
			return a.CoveredWeight > b.CoveredWeight
		}
		if a.TotalConsidered != b.TotalConsidered {
			return a.TotalConsidered > b.TotalConsidered
		}
		return strings.ToLower(a.CareerName) < strings.ToLower(b.CareerName)
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
