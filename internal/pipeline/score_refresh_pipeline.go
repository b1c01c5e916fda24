package pipeline

import (
	"context"
	"time"

	"skill-bridge/internal/repository"
	"skill-bridge/internal/usecase"

	"go.uber.org/zap"
)

// ScoreRefreshPipeline recomputes the course↔career matrix and re-warms
// every user's compatibility scores after reconciliation activity has
// shifted career frequencies.
type ScoreRefreshPipeline struct {
	mapping usecase.MappingUsecase
	compat  usecase.CompatUsecase
	users   repository.UserSkillRepository

	logger *zap.Logger
}

type RefreshParams struct {
	Workers int
}

func NewScoreRefreshPipeline(
	mapping usecase.MappingUsecase,
	compat usecase.CompatUsecase,
	users repository.UserSkillRepository,
	logger *zap.Logger,
) *ScoreRefreshPipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreRefreshPipeline{mapping: mapping, compat: compat, users: users, logger: logger}
}

func (p *ScoreRefreshPipeline) Run(ctx context.Context, params RefreshParams) error {
	if p == nil {
		return nil
	}
	start := time.Now()

	p.logger.Info("score refresh started")
	defer func() {
		p.logger.Info("score refresh finished", zap.Duration("duration", time.Since(start)))
	}()

	if err := p.RunMappingRefresh(ctx); err != nil {
		p.logger.Error("mapping refresh failed", zap.Error(err))
	}
	if err := p.RunCompatWarmup(ctx, params); err != nil {
		p.logger.Error("compatibility warmup failed", zap.Error(err))
	}
	return nil
}

func (p *ScoreRefreshPipeline) RunMappingRefresh(ctx context.Context) error {
	if p == nil || p.mapping == nil {
		return nil
	}

	stepStart := time.Now()
	matrix, err := p.mapping.Refresh(ctx)
	if err != nil {
		return err
	}
	p.logger.Info("mapping matrix refreshed",
		zap.Int("courses", len(matrix.Courses)),
		zap.Int("careers", len(matrix.Careers)),
		zap.Duration("duration", time.Since(stepStart)),
	)
	return nil
}

func (p *ScoreRefreshPipeline) RunCompatWarmup(ctx context.Context, params RefreshParams) error {
	if p == nil || p.compat == nil || p.users == nil {
		return nil
	}

	userIDs, err := p.users.ListUserIDs(ctx)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}

	workers := params.Workers
	if workers <= 0 {
		workers = 4
	}

	stepStart := time.Now()
	pool := NewWorkerPool(workers, workers*2)
	results := pool.Run(ctx)

	go func() {
		for _, uid := range userIDs {
			uid := uid
			pool.Submit(func(ctx context.Context) Result {
				_, err := p.compat.ScoreAllCareers(ctx, uid)
				return Result{Err: err}
			})
		}
		pool.Close()
	}()

	var failed int
	for r := range results {
		if r.Err != nil {
			failed++
		}
	}

	p.logger.Info("compatibility warmup finished",
		zap.Int("users", len(userIDs)),
		zap.Int("failed", failed),
		zap.Duration("duration", time.Since(stepStart)),
	)
	return nil
}
