package mapping

import (
	"testing"

	"github.com/google/uuid"
)

func TestScorePair(t *testing.T) {
	backend, data := uuid.New(), uuid.New()

	supply := map[uuid.UUID]int{backend: 3, data: 1}
	demand := map[uuid.UUID]int{backend: 10, data: 5}

	// (3*10 + 1*5) / (10 + 5)
	want := 35.0 / 15.0
	if got := ScorePair(supply, demand); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestScorePair_ZeroDemand(t *testing.T) {
	cat := uuid.New()
	if got := ScorePair(map[uuid.UUID]int{cat: 3}, nil); got != 0 {
		t.Fatalf("expected 0 with no demand, got %v", got)
	}
	if got := ScorePair(map[uuid.UUID]int{cat: 3}, map[uuid.UUID]int{}); got != 0 {
		t.Fatalf("expected 0 with empty demand, got %v", got)
	}
}

func TestScorePair_DemandOutsideSupply(t *testing.T) {
	supplied, demanded := uuid.New(), uuid.New()
	got := ScorePair(map[uuid.UUID]int{supplied: 3}, map[uuid.UUID]int{demanded: 10})
	if got != 0 {
		t.Fatalf("expected 0 when categories do not overlap, got %v", got)
	}
}

func TestBuild(t *testing.T) {
	backendCat, dataCat := uuid.New(), uuid.New()

	courseA := Course{ID: uuid.New(), Name: "Web Development"}
	courseB := Course{ID: uuid.New(), Name: "Algorithms"}
	careerX := Career{ID: uuid.New(), Name: "Backend Developer"}
	careerY := Career{ID: uuid.New(), Name: "Data Analyst"}

	supply := []SupplyRow{
		{CourseID: courseA.ID, CategoryID: backendCat, Weight: 3},
		{CourseID: courseB.ID, CategoryID: dataCat, Weight: 2},
	}
	demand := []DemandRow{
		{CareerID: careerX.ID, CategoryID: backendCat, Frequency: 8},
		{CareerID: careerY.ID, CategoryID: dataCat, Frequency: 4},
	}

	m := Build([]Course{courseA, courseB}, []Career{careerX, careerY}, supply, demand)

	if len(m.Courses) != 2 || m.Courses[0].Name != "Algorithms" {
		t.Fatalf("expected courses sorted by name, got %+v", m.Courses)
	}
	if len(m.Careers) != 2 || m.Careers[0].Name != "Backend Developer" {
		t.Fatalf("expected careers sorted by name, got %+v", m.Careers)
	}

	entries := m.CourseToCareer[courseA.ID]
	if len(entries) != 1 || entries[0].ID != careerX.ID {
		t.Fatalf("expected Web Development to map only to Backend Developer, got %+v", entries)
	}
	if entries[0].Score != 3.0 {
		t.Fatalf("expected score 3.0, got %v", entries[0].Score)
	}

	reverse := m.CareerToCourse[careerY.ID]
	if len(reverse) != 1 || reverse[0].ID != courseB.ID {
		t.Fatalf("expected Data Analyst to map only to Algorithms, got %+v", reverse)
	}
}

func TestBuild_DropsNonPositiveScores(t *testing.T) {
	cat := uuid.New()
	course := Course{ID: uuid.New(), Name: "Unrelated Course"}
	career := Career{ID: uuid.New(), Name: "Backend Developer"}

	demand := []DemandRow{{CareerID: career.ID, CategoryID: cat, Frequency: 5}}

	m := Build([]Course{course}, []Career{career}, nil, demand)
	if len(m.CourseToCareer[course.ID]) != 0 {
		t.Fatalf("expected no entries for zero-supply course, got %+v", m.CourseToCareer[course.ID])
	}
}

func TestBuild_SortsEntriesByScoreDesc(t *testing.T) {
	cat := uuid.New()
	course := Course{ID: uuid.New(), Name: "Programming 101"}
	strong := Career{ID: uuid.New(), Name: "Strong Match"}
	weak := Career{ID: uuid.New(), Name: "Weak Match"}

	supply := []SupplyRow{{CourseID: course.ID, CategoryID: cat, Weight: 2}}
	demand := []DemandRow{
		{CareerID: strong.ID, CategoryID: cat, Frequency: 10},
		{CareerID: weak.ID, CategoryID: cat, Frequency: 10},
		{CareerID: weak.ID, CategoryID: uuid.New(), Frequency: 10},
	}

	m := Build([]Course{course}, []Career{strong, weak}, supply, demand)
	entries := m.CourseToCareer[course.ID]
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != strong.ID {
		t.Fatalf("expected strongest match first, got %+v", entries)
	}
	if entries[0].Score <= entries[1].Score {
		t.Fatalf("expected descending scores, got %v then %v", entries[0].Score, entries[1].Score)
	}
}
