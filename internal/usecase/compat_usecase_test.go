package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"skill-bridge/internal/domain/compat"
	"skill-bridge/internal/repository"

	"github.com/google/uuid"
)

type fakeCareerRepo struct {
	careers  []repository.Career
	weights  map[uuid.UUID][]repository.CareerSkillRow
	demand   []repository.CareerDemandRow
	listHits int
	findHits int
}

func (r *fakeCareerRepo) ListAll(ctx context.Context) ([]repository.Career, error) {
	r.listHits++
	return r.careers, nil
}

func (r *fakeCareerRepo) FindByID(ctx context.Context, id uuid.UUID) (repository.Career, error) {
	r.findHits++
	for _, c := range r.careers {
		if c.ID == id {
			return c, nil
		}
	}
	return repository.Career{}, repository.ErrCareerNotFound
}

func (r *fakeCareerRepo) SkillWeights(ctx context.Context, careerID uuid.UUID) ([]repository.CareerSkillRow, error) {
	return r.weights[careerID], nil
}

func (r *fakeCareerRepo) DemandByCategory(ctx context.Context) ([]repository.CareerDemandRow, error) {
	return r.demand, nil
}

type fakeUserSkillRepo struct {
	bySkillUser map[uuid.UUID][]uuid.UUID
}

func (r *fakeUserSkillRepo) SkillIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.bySkillUser[userID], nil
}

func (r *fakeUserSkillRepo) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(r.bySkillUser))
	for id := range r.bySkillUser {
		out = append(out, id)
	}
	return out, nil
}

// memoryCache is a real storing cache so cache-aside behavior is
// observable.
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *memoryCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
	return nil
}

func TestScoreCareerFiltersByMinFrequency(t *testing.T) {
	careerID := uuid.New()
	userID := uuid.New()
	skillA := uuid.New()
	skillB := uuid.New()

	careers := &fakeCareerRepo{
		careers: []repository.Career{{ID: careerID, Name: "Backend Developer"}},
		weights: map[uuid.UUID][]repository.CareerSkillRow{
			careerID: {
				{SkillID: skillA, SkillName: "Go", Frequency: 5},
				{SkillID: skillB, SkillName: "Docker", Frequency: 2},
			},
		},
	}
	users := &fakeUserSkillRepo{bySkillUser: map[uuid.UUID][]uuid.UUID{userID: {skillA}}}

	uc := NewCompatUsecase(careers, users, newMemoryCache(), compat.DefaultParams(), nil)

	result, err := uc.ScoreCareer(context.Background(), userID, careerID)
	if err != nil {
		t.Fatalf("ScoreCareer: %v", err)
	}
	if result.Percentage != 100.0 {
		t.Fatalf("percentage = %v, want 100", result.Percentage)
	}
	if result.TotalConsidered != 5 {
		t.Fatalf("totalConsidered = %d, want 5 (Docker filtered out)", result.TotalConsidered)
	}
	if len(result.CoveredSkills) != 1 || result.CoveredSkills[0] != "Go" {
		t.Fatalf("coveredSkills = %v", result.CoveredSkills)
	}
}

func TestScoreCareerServedFromCacheOnSecondCall(t *testing.T) {
	careerID := uuid.New()
	userID := uuid.New()

	careers := &fakeCareerRepo{
		careers: []repository.Career{{ID: careerID, Name: "Backend Developer"}},
		weights: map[uuid.UUID][]repository.CareerSkillRow{},
	}
	users := &fakeUserSkillRepo{bySkillUser: map[uuid.UUID][]uuid.UUID{}}

	uc := NewCompatUsecase(careers, users, newMemoryCache(), compat.DefaultParams(), nil)

	ctx := context.Background()
	if _, err := uc.ScoreCareer(ctx, userID, careerID); err != nil {
		t.Fatalf("first ScoreCareer: %v", err)
	}
	if _, err := uc.ScoreCareer(ctx, userID, careerID); err != nil {
		t.Fatalf("second ScoreCareer: %v", err)
	}
	if careers.findHits != 1 {
		t.Fatalf("store hits = %d, want 1 (second call cached)", careers.findHits)
	}
}

func TestScoreCareerUnknownCareer(t *testing.T) {
	uc := NewCompatUsecase(&fakeCareerRepo{}, &fakeUserSkillRepo{}, nil, compat.DefaultParams(), nil)

	_, err := uc.ScoreCareer(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestScoreAllCareersSortsBestFirst(t *testing.T) {
	backend := uuid.New()
	data := uuid.New()
	userID := uuid.New()
	skillGo := uuid.New()
	skillSQL := uuid.New()

	careers := &fakeCareerRepo{
		careers: []repository.Career{
			{ID: backend, Name: "Backend Developer"},
			{ID: data, Name: "Data Engineer"},
		},
		weights: map[uuid.UUID][]repository.CareerSkillRow{
			backend: {{SkillID: skillGo, SkillName: "Go", Frequency: 10}},
			data: {
				{SkillID: skillSQL, SkillName: "SQL", Frequency: 10},
				{SkillID: skillGo, SkillName: "Go", Frequency: 10},
			},
		},
	}
	users := &fakeUserSkillRepo{bySkillUser: map[uuid.UUID][]uuid.UUID{userID: {skillGo}}}

	uc := NewCompatUsecase(careers, users, nil, compat.DefaultParams(), nil)

	results, err := uc.ScoreAllCareers(context.Background(), userID)
	if err != nil {
		t.Fatalf("ScoreAllCareers: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].CareerName != "Backend Developer" || results[0].Percentage != 100.0 {
		t.Fatalf("first = %+v, want Backend Developer at 100", results[0])
	}
	if results[1].CareerName != "Data Engineer" || results[1].Percentage != 50.0 {
		t.Fatalf("second = %+v, want Data Engineer at 50", results[1])
	}
}
