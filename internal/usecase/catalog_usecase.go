package usecase

import (
	"context"

	"skill-bridge/internal/repository"

	"github.com/google/uuid"
)

type CategoryItem struct {
	ID   uuid.UUID
	Name string
}

type CareerItem struct {
	ID          uuid.UUID
	Name        string
	Description string
}

type CourseItem struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// CatalogUsecase exposes the read-only reference lists the editing UI
// needs: skills, categories, careers and courses.
type CatalogUsecase interface {
	ListSkills(ctx context.Context) ([]SkillDetail, error)
	ListCategories(ctx context.Context) ([]CategoryItem, error)
	ListCareers(ctx context.Context) ([]CareerItem, error)
	ListCourses(ctx context.Context) ([]CourseItem, error)
}

type Catalog struct {
	skills     repository.SkillRepository
	categories repository.CategoryRepository
	careers    repository.CareerRepository
	courses    repository.CourseRepository
}

func NewCatalogUsecase(
	skills repository.SkillRepository,
	categories repository.CategoryRepository,
	careers repository.CareerRepository,
	courses repository.CourseRepository,
) *Catalog {
	return &Catalog{skills: skills, categories: categories, careers: careers, courses: courses}
}

func (u *Catalog) ListSkills(ctx context.Context) ([]SkillDetail, error) {
	skills, err := u.skills.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillDetail, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillDetail{
			ID:           s.ID,
			Name:         s.Name,
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
		})
	}
	return out, nil
}

func (u *Catalog) ListCategories(ctx context.Context) ([]CategoryItem, error) {
	categories, err := u.categories.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]CategoryItem, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryItem{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (u *Catalog) ListCareers(ctx context.Context) ([]CareerItem, error) {
	careers, err := u.careers.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]CareerItem, 0, len(careers))
	for _, c := range careers {
		out = append(out, CareerItem{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out, nil
}

func (u *Catalog) ListCourses(ctx context.Context) ([]CourseItem, error) {
	courses, err := u.courses.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]CourseItem, 0, len(courses))
	for _, c := range courses {
		out = append(out, CourseItem{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out, nil
}
