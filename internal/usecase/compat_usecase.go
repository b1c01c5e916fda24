package usecase

import (
	"context"
	"errors"
	"fmt"

	"skill-bridge/internal/domain/compat"
	"skill-bridge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CompatUsecase interface {
	ScoreCareer(ctx context.Context, userID, careerID uuid.UUID) (compat.Result, error)
	ScoreAllCareers(ctx context.Context, userID uuid.UUID) ([]compat.Result, error)
}

type Compat struct {
	careers    repository.CareerRepository
	userSkills repository.UserSkillRepository
	cache      Cache
	params     compat.Params
	logger     *zap.Logger
}

func NewCompatUsecase(
	careers repository.CareerRepository,
	userSkills repository.UserSkillRepository,
	cache Cache,
	params compat.Params,
	logger *zap.Logger,
) *Compat {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compat{careers: careers, userSkills: userSkills, cache: cache, params: params, logger: logger}
}

func (u *Compat) ScoreCareer(ctx context.Context, userID, careerID uuid.UUID) (compat.Result, error) {
	key := fmt.Sprintf("%s%s:career:%s", compatCacheKeyPrefix, userID, careerID)

	var cached compat.Result
	if hit, err := u.cacheGet(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	career, err := u.careers.FindByID(ctx, careerID)
	if err != nil {
		if errors.Is(err, repository.ErrCareerNotFound) {
			return compat.Result{}, ErrNotFound
		}
		return compat.Result{}, ErrInternal
	}

	owned, err := u.userSkillSet(ctx, userID)
	if err != nil {
		return compat.Result{}, ErrInternal
	}

	demand, err := u.careerDemand(ctx, careerID)
	if err != nil {
		return compat.Result{}, ErrInternal
	}

	result := compat.Score(career.ID, career.Name, owned, demand, u.params)
	u.cacheSet(ctx, key, result)
	return result, nil
}

func (u *Compat) ScoreAllCareers(ctx context.Context, userID uuid.UUID) ([]compat.Result, error) {
	key := compatCacheKeyPrefix + userID.String()

	var cached []compat.Result
	if hit, err := u.cacheGet(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	careers, err := u.careers.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	owned, err := u.userSkillSet(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	results := make([]compat.Result, 0, len(careers))
	for _, career := range careers {
		demand, err := u.careerDemand(ctx, career.ID)
		if err != nil {
			return nil, ErrInternal
		}
		results = append(results, compat.Score(career.ID, career.Name, owned, demand, u.params))
	}
	compat.SortResults(results)

	u.cacheSet(ctx, key, results)
	return results, nil
}

func (u *Compat) userSkillSet(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	ids, err := u.userSkills.SkillIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		owned[id] = struct{}{}
	}
	return owned, nil
}

func (u *Compat) careerDemand(ctx context.Context, careerID uuid.UUID) ([]compat.SkillWeight, error) {
	rows, err := u.careers.SkillWeights(ctx, careerID)
	if err != nil {
		return nil, err
	}
	demand := make([]compat.SkillWeight, 0, len(rows))
	for _, row := range rows {
		demand = append(demand, compat.SkillWeight{
			SkillID:   row.SkillID,
			SkillName: row.SkillName,
			Frequency: row.Frequency,
		})
	}
	return demand, nil
}

func (u *Compat) cacheGet(ctx context.Context, key string, out any) (bool, error) {
	if u.cache == nil {
		return false, nil
	}
	return u.cache.GetJSON(ctx, key, out)
}

func (u *Compat) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, 0); err != nil {
		u.logger.Warn("compatibility cache write failed", zap.String("key", key), zap.Error(err))
	}
}
