package usecase

import (
	"context"

	"skill-bridge/internal/domain/mapping"
	"skill-bridge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MappingUsecase interface {
	CareersForCourse(ctx context.Context, courseID uuid.UUID) ([]mapping.Entry, error)
	CoursesForCareer(ctx context.Context, careerID uuid.UUID) ([]mapping.Entry, error)
	Matrix(ctx context.Context) (mapping.Matrix, error)
	// Refresh recomputes the matrix from the store and rewrites the cache.
	Refresh(ctx context.Context) (mapping.Matrix, error)
}

type Mapping struct {
	courses repository.CourseRepository
	careers repository.CareerRepository
	cache   Cache
	logger  *zap.Logger
}

func NewMappingUsecase(
	courses repository.CourseRepository,
	careers repository.CareerRepository,
	cache Cache,
	logger *zap.Logger,
) *Mapping {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mapping{courses: courses, careers: careers, cache: cache, logger: logger}
}

func (u *Mapping) CareersForCourse(ctx context.Context, courseID uuid.UUID) ([]mapping.Entry, error) {
	matrix, err := u.Matrix(ctx)
	if err != nil {
		return nil, err
	}
	if !containsCourse(matrix.Courses, courseID) {
		return nil, ErrNotFound
	}

	entries := matrix.CourseToCareer[courseID]
	if entries == nil {
		entries = make([]mapping.Entry, 0)
	}
	return entries, nil
}

func (u *Mapping) CoursesForCareer(ctx context.Context, careerID uuid.UUID) ([]mapping.Entry, error) {
	matrix, err := u.Matrix(ctx)
	if err != nil {
		return nil, err
	}
	if !containsCareer(matrix.Careers, careerID) {
		return nil, ErrNotFound
	}

	entries := matrix.CareerToCourse[careerID]
	if entries == nil {
		entries = make([]mapping.Entry, 0)
	}
	return entries, nil
}

func (u *Mapping) Matrix(ctx context.Context) (mapping.Matrix, error) {
	if u.cache != nil {
		var cached mapping.Matrix
		if hit, err := u.cache.GetJSON(ctx, mappingMatrixKey, &cached); err == nil && hit {
			return cached, nil
		}
	}
	return u.Refresh(ctx)
}

func (u *Mapping) Refresh(ctx context.Context) (mapping.Matrix, error) {
	courses, err := u.courses.ListAll(ctx)
	if err != nil {
		return mapping.Matrix{}, ErrInternal
	}
	careers, err := u.careers.ListAll(ctx)
	if err != nil {
		return mapping.Matrix{}, ErrInternal
	}
	supplyRows, err := u.courses.SupplyByCategory(ctx)
	if err != nil {
		return mapping.Matrix{}, ErrInternal
	}
	demandRows, err := u.careers.DemandByCategory(ctx)
	if err != nil {
		return mapping.Matrix{}, ErrInternal
	}

	mCourses := make([]mapping.Course, 0, len(courses))
	for _, c := range courses {
		mCourses = append(mCourses, mapping.Course{ID: c.ID, Name: c.Name})
	}
	mCareers := make([]mapping.Career, 0, len(careers))
	for _, c := range careers {
		mCareers = append(mCareers, mapping.Career{ID: c.ID, Name: c.Name})
	}
	supply := make([]mapping.SupplyRow, 0, len(supplyRows))
	for _, row := range supplyRows {
		supply = append(supply, mapping.SupplyRow{CourseID: row.CourseID, CategoryID: row.CategoryID, Weight: row.Weight})
	}
	demand := make([]mapping.DemandRow, 0, len(demandRows))
	for _, row := range demandRows {
		demand = append(demand, mapping.DemandRow{CareerID: row.CareerID, CategoryID: row.CategoryID, Frequency: row.Frequency})
	}

	matrix := mapping.Build(mCourses, mCareers, supply, demand)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, mappingMatrixKey, matrix, 0); err != nil {
			u.logger.Warn("mapping cache write failed", zap.Error(err))
		}
	}
	return matrix, nil
}

func containsCourse(courses []mapping.Course, id uuid.UUID) bool {
	for _, c := range courses {
		if c.ID == id {
			return true
		}
	}
	return false
}

func containsCareer(careers []mapping.Career, id uuid.UUID) bool {
	for _, c := range careers {
		if c.ID == id {
			return true
		}
	}
	return false
}
