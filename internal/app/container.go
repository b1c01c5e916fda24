package app

import (
	"context"
	"time"

	"skill-bridge/internal/config"
	"skill-bridge/internal/database"
	dbpostgres "skill-bridge/internal/database/postgres"
	"skill-bridge/internal/database/seeder"
	"skill-bridge/internal/domain/compat"
	"skill-bridge/internal/domain/normalize"
	"skill-bridge/internal/extraction"
	"skill-bridge/internal/infrastructure/cache"
	"skill-bridge/internal/infrastructure/classifier"
	"skill-bridge/internal/pipeline"
	"skill-bridge/internal/repository"
	"skill-bridge/internal/usecase"
	"skill-bridge/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Postings usecase.PostingUsecase
	Compat   usecase.CompatUsecase
	Mapping  usecase.MappingUsecase
	Catalog  usecase.CatalogUsecase

	Refresh *pipeline.ScoreRefreshPipeline
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.SchemaSeeder{},
		seeder.CategoriesSeeder{},
		seeder.RulesSeeder{},
	}}
	if err := runner.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	rules, err := loadRules(ctx, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	// Extraction stays best effort: without a Gemini key the pipeline
	// simply yields no candidates.
	var extractorClassifier extraction.Classifier
	if gemini, err := classifier.NewGemini(context.Background(), cfg.Gemini); err != nil {
		logger.Warn("gemini classifier unavailable, extraction disabled", zap.Error(err))
	} else {
		extractorClassifier = gemini
	}
	extractor := extraction.NewPipeline(extractorClassifier, rules, logger)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	postingRepo := repository.NewPostgresPostingRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	careerRepo := repository.NewPostgresCareerRepository(db)
	courseRepo := repository.NewPostgresCourseRepository(db)
	userSkillRepo := repository.NewPostgresUserSkillRepository(db)
	store := repository.NewPostgresReconcileStore(db)

	params := compat.Params{
		MinFrequency: cfg.Scoring.MinFrequency,
		CoreRatio:    cfg.Scoring.CoreRatio,
	}

	postingUC := usecase.NewPostingUsecase(postingRepo, skillRepo, categoryRepo, store, extractor, redisCache, notifier, logger)
	compatUC := usecase.NewCompatUsecase(careerRepo, userSkillRepo, redisCache, params, logger)
	mappingUC := usecase.NewMappingUsecase(courseRepo, careerRepo, redisCache, logger)
	catalogUC := usecase.NewCatalogUsecase(skillRepo, categoryRepo, careerRepo, courseRepo)

	refresh := pipeline.NewScoreRefreshPipeline(mappingUC, compatUC, userSkillRepo, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Hub:      hub,
		Postings: postingUC,
		Compat:   compatUC,
		Mapping:  mappingUC,
		Catalog:  catalogUC,
		Refresh:  refresh,
	}, nil
}

// loadRules builds the immutable normalization snapshot from the store,
// falling back to the built-in defaults when the table is empty.
func loadRules(ctx context.Context, db database.DB, logger *zap.Logger) (normalize.Rules, error) {
	specs, err := repository.NewPostgresRuleRepository(db).ListOrdered(ctx)
	if err != nil || len(specs) == 0 {
		if err != nil {
			logger.Warn("loading normalization rules failed, using defaults", zap.Error(err))
		}
		specs = normalize.DefaultRuleSpecs()
	}
	return normalize.NewRules(specs)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
