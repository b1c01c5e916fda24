package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-bridge/internal/repository"

	"github.com/google/uuid"
)

type fakeCourseRepo struct {
	courses  []repository.Course
	supply   []repository.CourseSupplyRow
	listHits int
}

func (r *fakeCourseRepo) ListAll(ctx context.Context) ([]repository.Course, error) {
	r.listHits++
	return r.courses, nil
}

func (r *fakeCourseRepo) SupplyByCategory(ctx context.Context) ([]repository.CourseSupplyRow, error) {
	return r.supply, nil
}

func TestCareersForCourseScoresByDemandWeight(t *testing.T) {
	courseID := uuid.New()
	careerID := uuid.New()
	catA := uuid.New()
	catB := uuid.New()

	courses := &fakeCourseRepo{
		courses: []repository.Course{{ID: courseID, Name: "Systems Programming"}},
		supply: []repository.CourseSupplyRow{
			{CourseID: courseID, CategoryID: catA, Weight: 3},
			{CourseID: courseID, CategoryID: catB, Weight: 1},
		},
	}
	careers := &fakeCareerRepo{
		careers: []repository.Career{{ID: careerID, Name: "Backend Developer"}},
		demand: []repository.CareerDemandRow{
			{CareerID: careerID, CategoryID: catA, Frequency: 8},
			{CareerID: careerID, CategoryID: catB, Frequency: 2},
		},
	}

	uc := NewMappingUsecase(courses, careers, nil, nil)

	entries, err := uc.CareersForCourse(context.Background(), courseID)
	if err != nil {
		t.Fatalf("CareersForCourse: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	// (3*8 + 1*2) / (8 + 2) = 2.6
	if entries[0].ID != careerID || entries[0].Score != 2.6 {
		t.Fatalf("entry = %+v, want career at 2.6", entries[0])
	}
}

func TestCareersForCourseUnknownCourse(t *testing.T) {
	uc := NewMappingUsecase(&fakeCourseRepo{}, &fakeCareerRepo{}, nil, nil)

	_, err := uc.CareersForCourse(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCoursesForCareerDropsZeroDemandCareers(t *testing.T) {
	courseID := uuid.New()
	careerID := uuid.New()
	catA := uuid.New()

	courses := &fakeCourseRepo{
		courses: []repository.Course{{ID: courseID, Name: "Systems Programming"}},
		supply:  []repository.CourseSupplyRow{{CourseID: courseID, CategoryID: catA, Weight: 3}},
	}
	// Career exists but has accumulated no demand.
	careers := &fakeCareerRepo{
		careers: []repository.Career{{ID: careerID, Name: "Backend Developer"}},
	}

	uc := NewMappingUsecase(courses, careers, nil, nil)

	entries, err := uc.CoursesForCareer(context.Background(), careerID)
	if err != nil {
		t.Fatalf("CoursesForCareer: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %v, want none for zero-demand career", entries)
	}
}

func TestMatrixServedFromCacheOnSecondCall(t *testing.T) {
	courseID := uuid.New()
	careerID := uuid.New()
	catA := uuid.New()

	courses := &fakeCourseRepo{
		courses: []repository.Course{{ID: courseID, Name: "Systems Programming"}},
		supply:  []repository.CourseSupplyRow{{CourseID: courseID, CategoryID: catA, Weight: 2}},
	}
	careers := &fakeCareerRepo{
		careers: []repository.Career{{ID: careerID, Name: "Backend Developer"}},
		demand:  []repository.CareerDemandRow{{CareerID: careerID, CategoryID: catA, Frequency: 4}},
	}

	uc := NewMappingUsecase(courses, careers, newMemoryCache(), nil)

	ctx := context.Background()
	first, err := uc.Matrix(ctx)
	if err != nil {
		t.Fatalf("first Matrix: %v", err)
	}
	second, err := uc.Matrix(ctx)
	if err != nil {
		t.Fatalf("second Matrix: %v", err)
	}

	if courses.listHits != 1 {
		t.Fatalf("store hits = %d, want 1 (second call cached)", courses.listHits)
	}
	if len(second.CourseToCareer[courseID]) != len(first.CourseToCareer[courseID]) {
		t.Fatal("cached matrix differs from computed matrix")
	}
}
