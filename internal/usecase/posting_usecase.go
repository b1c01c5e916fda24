package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skill-bridge/internal/domain/normalize"
	"skill-bridge/internal/extraction"
	"skill-bridge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PostingItem struct {
	ID          uuid.UUID
	Title       string
	Description string
	CareerID    *uuid.UUID
	CreatedAt   time.Time
}

type PostingDetail struct {
	PostingItem
	Skills []SkillDetail
}

type SkillDetail struct {
	ID           uuid.UUID
	Name         string
	CategoryID   uuid.UUID
	CategoryName string
}

// PreviewCandidate is one extraction result resolved against the catalog:
// SkillID is set when a skill with the same name already exists.
type PreviewCandidate struct {
	Name         string
	SkillID      *uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
}

// ConfirmSkill is one entry of the user-edited final skill list.
type ConfirmSkill struct {
	Name       string
	SkillID    *uuid.UUID
	CategoryID *uuid.UUID
}

type ConfirmResult struct {
	CreatedSkillNames         []string
	AlreadyExistingSkillNames []string
}

// Extractor yields candidate skills for a description. Best effort: an
// empty result is a valid outcome, never an error.
type Extractor interface {
	Extract(ctx context.Context, description string, allowedCategories []string) []extraction.Candidate
}

// ReconcileNotifier receives posting lifecycle events after a
// reconciliation transaction commits.
type ReconcileNotifier interface {
	PostingConfirmed(postingID uuid.UUID, created, alreadyExisting []string)
	PostingDeleted(postingID uuid.UUID)
}

type PostingUsecase interface {
	Create(ctx context.Context, title, description string, careerID *uuid.UUID) (PostingItem, error)
	Get(ctx context.Context, id uuid.UUID) (PostingDetail, error)
	List(ctx context.Context) ([]PostingItem, error)
	Preview(ctx context.Context, id uuid.UUID) ([]PreviewCandidate, error)
	Confirm(ctx context.Context, id uuid.UUID, skills []ConfirmSkill) (ConfirmResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UnlinkSkill(ctx context.Context, id, skillID uuid.UUID) error
}

type Posting struct {
	postings   repository.PostingRepository
	skills     repository.SkillRepository
	categories repository.CategoryRepository
	store      repository.ReconcileStore
	extractor  Extractor
	cache      Cache
	notifier   ReconcileNotifier
	logger     *zap.Logger
}

func NewPostingUsecase(
	postings repository.PostingRepository,
	skills repository.SkillRepository,
	categories repository.CategoryRepository,
	store repository.ReconcileStore,
	extractor Extractor,
	cache Cache,
	notifier ReconcileNotifier,
	logger *zap.Logger,
) *Posting {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Posting{
		postings:   postings,
		skills:     skills,
		categories: categories,
		store:      store,
		extractor:  extractor,
		cache:      cache,
		notifier:   notifier,
		logger:     logger,
	}
}

func (u *Posting) Create(ctx context.Context, title, description string, careerID *uuid.UUID) (PostingItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return PostingItem{}, ErrInvalidInput
	}

	sanitized := normalize.SanitizeText(description)
	if sanitized == "" {
		return PostingItem{}, ErrInvalidInput
	}

	created, err := u.postings.Create(ctx, repository.JobPosting{
		Title:       title,
		Description: sanitized,
		CareerID:    careerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateDescription):
			return PostingItem{}, NewConflictError(CodeDuplicatePostingDescription, "a posting with this description already exists")
		case errors.Is(err, repository.ErrCareerNotFound):
			return PostingItem{}, ErrNotFound
		default:
			return PostingItem{}, ErrInternal
		}
	}
	return toPostingItem(created), nil
}

func (u *Posting) Get(ctx context.Context, id uuid.UUID) (PostingDetail, error) {
	posting, err := u.postings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return PostingDetail{}, ErrNotFound
		}
		return PostingDetail{}, ErrInternal
	}

	linked, err := u.postings.LinkedSkills(ctx, id)
	if err != nil {
		return PostingDetail{}, ErrInternal
	}

	detail := PostingDetail{PostingItem: toPostingItem(posting), Skills: make([]SkillDetail, 0, len(linked))}
	for _, s := range linked {
		detail.Skills = append(detail.Skills, SkillDetail{
			ID:           s.ID,
			Name:         s.Name,
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
		})
	}
	return detail, nil
}

func (u *Posting) List(ctx context.Context) ([]PostingItem, error) {
	postings, err := u.postings.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]PostingItem, 0, len(postings))
	for _, p := range postings {
		out = append(out, toPostingItem(p))
	}
	return out, nil
}

func (u *Posting) Preview(ctx context.Context, id uuid.UUID) ([]PreviewCandidate, error) {
	posting, err := u.postings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrInternal
	}

	cats, err := u.categories.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	names := make([]string, 0, len(cats))
	byLower := make(map[string]repository.Category, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
		byLower[strings.ToLower(c.Name)] = c
	}

	candidates := u.extractor.Extract(ctx, posting.Description, names)

	var pending *repository.Category
	out := make([]PreviewCandidate, 0, len(candidates))
	for _, cand := range candidates {
		existing, err := u.skills.FindByName(ctx, cand.Name)
		switch {
		case err == nil:
			out = append(out, PreviewCandidate{
				Name:         existing.Name,
				SkillID:      &existing.ID,
				CategoryID:   existing.CategoryID,
				CategoryName: existing.CategoryName,
			})
			continue
		case !errors.Is(err, repository.ErrSkillNotFound):
			return nil, ErrInternal
		}

		category, ok := byLower[strings.ToLower(cand.SuggestedCategory)]
		if !ok || cand.SuggestedCategory == "" {
			if pending == nil {
				ensured, err := u.categories.EnsureByName(ctx, repository.PendingCategoryName)
				if err != nil {
					return nil, ErrInternal
				}
				pending = &ensured
			}
			category = *pending
		}

		out = append(out, PreviewCandidate{
			Name:         cand.Name,
			CategoryID:   category.ID,
			CategoryName: category.Name,
		})
	}
	return out, nil
}

func (u *Posting) Confirm(ctx context.Context, id uuid.UUID, skills []ConfirmSkill) (ConfirmResult, error) {
	for _, s := range skills {
		if strings.TrimSpace(s.Name) == "" {
			return ConfirmResult{}, ErrInvalidInput
		}
	}

	result := ConfirmResult{
		CreatedSkillNames:         make([]string, 0, len(skills)),
		AlreadyExistingSkillNames: make([]string, 0, len(skills)),
	}

	err := u.store.InTx(ctx, func(tx repository.ReconcileTx) error {
		posting, err := tx.FindPosting(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPostingNotFound) {
				return ErrNotFound
			}
			return err
		}

		for _, in := range skills {
			skill, createdNew, err := u.resolveSkill(ctx, tx, in)
			if err != nil {
				return err
			}

			inserted, err := tx.LinkSkill(ctx, posting.ID, skill.ID)
			if err != nil {
				return err
			}
			// Only a new link counts as posting evidence; re-confirming
			// must not double-increment.
			if inserted && posting.CareerID != nil {
				if err := tx.IncrementCareerSkill(ctx, *posting.CareerID, skill.ID); err != nil {
					return err
				}
			}

			if createdNew {
				result.CreatedSkillNames = append(result.CreatedSkillNames, skill.Name)
			} else {
				result.AlreadyExistingSkillNames = append(result.AlreadyExistingSkillNames, skill.Name)
			}
		}
		return nil
	})
	if err != nil {
		return ConfirmResult{}, mapReconcileErr(err)
	}

	u.invalidateScores(ctx)
	if u.notifier != nil {
		u.notifier.PostingConfirmed(id, result.CreatedSkillNames, result.AlreadyExistingSkillNames)
	}
	return result, nil
}

// resolveSkill turns one confirm entry into a persisted skill row,
// renaming or recategorizing existing skills and creating missing ones.
func (u *Posting) resolveSkill(ctx context.Context, tx repository.ReconcileTx, in ConfirmSkill) (repository.Skill, bool, error) {
	name := strings.TrimSpace(in.Name)

	if in.SkillID != nil {
		skill, err := tx.FindSkillByID(ctx, *in.SkillID)
		if err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return repository.Skill{}, false, ErrNotFound
			}
			return repository.Skill{}, false, err
		}

		if name != skill.Name {
			other, err := tx.FindSkillByName(ctx, name)
			switch {
			case err == nil && other.ID != skill.ID:
				return repository.Skill{}, false, NewConflictError(CodeSkillNameConflict, "another skill already owns this name")
			case err != nil && !errors.Is(err, repository.ErrSkillNotFound):
				return repository.Skill{}, false, err
			}
			if err := tx.RenameSkill(ctx, skill.ID, name); err != nil {
				if errors.Is(err, repository.ErrSkillNameTaken) {
					return repository.Skill{}, false, NewConflictError(CodeSkillNameConflict, "another skill already owns this name")
				}
				return repository.Skill{}, false, err
			}
			skill.Name = name
		}

		if in.CategoryID != nil && *in.CategoryID != skill.CategoryID {
			if err := tx.UpdateSkillCategory(ctx, skill.ID, *in.CategoryID); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return repository.Skill{}, false, ErrNotFound
				}
				return repository.Skill{}, false, err
			}
			skill.CategoryID = *in.CategoryID
		}
		return skill, false, nil
	}

	// No id: the skill may have appeared since preview, check by name
	// before creating.
	skill, err := tx.FindSkillByName(ctx, name)
	if err == nil {
		return skill, false, nil
	}
	if !errors.Is(err, repository.ErrSkillNotFound) {
		return repository.Skill{}, false, err
	}

	categoryID := uuid.Nil
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
	} else {
		pending, err := tx.EnsureCategory(ctx, repository.PendingCategoryName)
		if err != nil {
			return repository.Skill{}, false, err
		}
		categoryID = pending.ID
	}

	created, err := tx.CreateSkill(ctx, name, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSkillNameTaken):
			return repository.Skill{}, false, NewConflictError(CodeSkillNameConflict, "another skill already owns this name")
		case errors.Is(err, repository.ErrCategoryNotFound):
			return repository.Skill{}, false, ErrNotFound
		default:
			return repository.Skill{}, false, err
		}
	}
	return created, true, nil
}

func (u *Posting) Delete(ctx context.Context, id uuid.UUID) error {
	err := u.store.InTx(ctx, func(tx repository.ReconcileTx) error {
		posting, err := tx.FindPosting(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPostingNotFound) {
				return ErrNotFound
			}
			return err
		}

		skillIDs, err := tx.LinkedSkillIDs(ctx, posting.ID)
		if err != nil {
			return err
		}

		if posting.CareerID != nil {
			for _, skillID := range skillIDs {
				if err := tx.DecrementCareerSkill(ctx, *posting.CareerID, skillID); err != nil {
					return err
				}
			}
		}

		if err := tx.DeleteLinks(ctx, posting.ID); err != nil {
			return err
		}
		return tx.DeletePosting(ctx, posting.ID)
	})
	if err != nil {
		return mapReconcileErr(err)
	}

	u.invalidateScores(ctx)
	if u.notifier != nil {
		u.notifier.PostingDeleted(id)
	}
	return nil
}

// UnlinkSkill removes a single posting-skill link. Career frequency
// counters are left untouched; only full posting deletion reverses them.
func (u *Posting) UnlinkSkill(ctx context.Context, id, skillID uuid.UUID) error {
	err := u.store.InTx(ctx, func(tx repository.ReconcileTx) error {
		if _, err := tx.FindPosting(ctx, id); err != nil {
			if errors.Is(err, repository.ErrPostingNotFound) {
				return ErrNotFound
			}
			return err
		}

		removed, err := tx.UnlinkSkill(ctx, id, skillID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrNotFound
		}
		return nil
	})
	return mapReconcileErr(err)
}

func (u *Posting) invalidateScores(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, compatCacheKeyPrefix+"*"); err != nil {
		u.logger.Warn("compatibility cache invalidation failed", zap.Error(err))
	}
	if err := u.cache.Delete(ctx, mappingMatrixKey); err != nil {
		u.logger.Warn("mapping cache invalidation failed", zap.Error(err))
	}
}

// mapReconcileErr keeps domain errors intact and hides everything else
// behind ErrInternal.
func mapReconcileErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsConflict(err); ok {
		return err
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
		return err
	}
	return ErrInternal
}

func toPostingItem(p repository.JobPosting) PostingItem {
	return PostingItem{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CareerID:    p.CareerID,
		CreatedAt:   p.CreatedAt,
	}
}
