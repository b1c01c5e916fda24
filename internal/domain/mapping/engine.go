// Package mapping scores course↔career relevance through the categories
// both sides share: courses supply category weight through the knowledge
// units they teach, careers demand it through the skills they require.
package mapping

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

type Course struct {
	ID   uuid.UUID
	Name string
}

type Career struct {
	ID   uuid.UUID
	Name string
}

// SupplyRow is one aggregated (course, category) weight, summed over the
// knowledge units the course teaches.
type SupplyRow struct {
	CourseID   uuid.UUID
	CategoryID uuid.UUID
	Weight     int
}

// DemandRow is one aggregated (career, category) frequency, summed over
// the skills the career requires in that category.
type DemandRow struct {
	CareerID   uuid.UUID
	CategoryID uuid.UUID
	Frequency  int
}

// Entry is one scored neighbor in an adjacency list.
type Entry struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Score float64   `json:"score"`
}

// Matrix holds both adjacency directions. Only strictly-positive scores
// are kept; entries are sorted descending by score, courses and careers
// ascending by name.
type Matrix struct {
	Courses        []Course
	Careers        []Career
	CourseToCareer map[uuid.UUID][]Entry
	CareerToCourse map[uuid.UUID][]Entry
}

// ScorePair computes demand-weighted relevance between one course's supply
// and one career's demand. The sum ranges over the categories the career
// demands; zero total demand scores 0 regardless of supply.
func ScorePair(supply map[uuid.UUID]int, demand map[uuid.UUID]int) float64 {
	denom := 0
	num := 0
	for cat, d := range demand {
		denom += d
		num += supply[cat] * d
	}
	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

// Build precomputes both adjacency maps in one pass over the aggregated
// rows, with no per-pair queries.
func Build(courses []Course, careers []Career, supply []SupplyRow, demand []DemandRow) Matrix {
	supplyByCourse := make(map[uuid.UUID]map[uuid.UUID]int, len(courses))
	for _, row := range supply {
		m, ok := supplyByCourse[row.CourseID]
		if !ok {
			m = make(map[uuid.UUID]int)
			supplyByCourse[row.CourseID] = m
		}
		m[row.CategoryID] += row.Weight
	}

	demandByCareer := make(map[uuid.UUID]map[uuid.UUID]int, len(careers))
	for _, row := range demand {
		m, ok := demandByCareer[row.CareerID]
		if !ok {
			m = make(map[uuid.UUID]int)
			demandByCareer[row.CareerID] = m
		}
		m[row.CategoryID] += row.Frequency
	}

	sortedCourses := make([]Course, len(courses))
	copy(sortedCourses, courses)
	sort.SliceStable(sortedCourses, func(i, j int) bool {
		return strings.ToLower(sortedCourses[i].Name) < strings.ToLower(sortedCourses[j].Name)
	})

	sortedCareers := make([]Career, len(careers))
	copy(sortedCareers, careers)
	sort.SliceStable(sortedCareers, func(i, j int) bool {
		return strings.ToLower(sortedCareers[i].Name) < strings.ToLower(sortedCareers[j].Name)
	})

	courseToCareer := make(map[uuid.UUID][]Entry, len(courses))
	careerToCourse := make(map[uuid.UUID][]Entry, len(careers))

	for _, course := range sortedCourses {
		for _, career := range sortedCareers {
			score := ScorePair(supplyByCourse[course.ID], demandByCareer[career.ID])
			if score <= 0 {
				continue
			}
			courseToCareer[course.ID] = append(courseToCareer[course.ID], Entry{ID: career.ID, Name: career.Name, Score: score})
			careerToCourse[career.ID] = append(careerToCourse[career.ID], Entry{ID: course.ID, Name: course.Name, Score: score})
		}
	}

	for _, entries := range courseToCareer {
		sortEntries(entries)
	}
	for _, entries := range careerToCourse {
		sortEntries(entries)
	}

	return Matrix{
		Courses:        sortedCourses,
		Careers:        sortedCareers,
		CourseToCareer: courseToCareer,
		CareerToCourse: careerToCourse,
	}
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
