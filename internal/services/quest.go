package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yungbote/questline-backend/internal/data/repos"
	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/platform/apierr"
	"github.com/yungbote/questline-backend/internal/platform/cache"
	"github.com/yungbote/questline-backend/internal/platform/dbctx"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

// QuestService serves one quest variant: catalog reads (cached) and the
// user progress transitions enroll, claim and complete.
type QuestService interface {
	Variant() quest.Variant
	ListQuests(ctx context.Context) ([]*quest.Definition, error)
	GetQuest(ctx context.Context, questID int64) (*quest.Definition, error)
	GetCoinReward(ctx context.Context, questID int64) (int64, error)
	ListUserProgress(ctx context.Context, userID int64) ([]*quest.Progress, error)
	GetUserProgress(ctx context.Context, userID, questID int64) (*quest.Progress, error)
	Enroll(ctx context.Context, userID, questID int64) error
	Claim(ctx context.Context, userID, questID int64) error
	Complete(ctx context.Context, userID, questID int64) error
}

type questService struct {
	log      *logger.Logger
	variant  quest.Variant
	catalog  repos.CatalogRepo
	progress repos.ProgressRepo
	cache    cache.Cache
}

func NewQuestService(log *logger.Logger, catalog repos.CatalogRepo, progress repos.ProgressRepo, c cache.Cache) QuestService {
	variant := catalog.Variant()
	if c == nil {
		c = cache.NewNop()
	}
	return &questService{
		log:      log.With("service", "QuestService", "variant", variant.Name),
		variant:  variant,
		catalog:  catalog,
		progress: progress,
		cache:    c,
	}
}

func (s *questService) Variant() quest.Variant { return s.variant }

func (s *questService) notFound() error {
	return apierr.NotFound(s.variant.Label + " not found")
}

func (s *questService) progressNotFound() error {
	return apierr.NotFound("User " + s.variant.Label + " not found")
}

func (s *questService) cacheKey(parts ...interface{}) string {
	key := "catalog:" + s.variant.Name
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}

// cached runs load on a miss and stores its result. Cache failures are
// logged and never fail the request.
func cached[T any](ctx context.Context, s *questService, key string, load func() (T, bool, error)) (T, bool, error) {
	var out T
	hit, err := cache.GetJSON(ctx, s.cache, key, &out)
	if err != nil {
		s.log.Warn("catalog cache read failed", "key", key, "error", err)
	}
	if hit {
		return out, true, nil
	}
	out, found, err := load()
	if err != nil || !found {
		return out, found, err
	}
	if err := cache.SetJSON(ctx, s.cache, key, out); err != nil {
		s.log.Warn("catalog cache write failed", "key", key, "error", err)
	}
	return out, true, nil
}

func (s *questService) ListQuests(ctx context.Context) ([]*quest.Definition, error) {
	defs, _, err := cached(ctx, s, s.cacheKey("list"), func() ([]*quest.Definition, bool, error) {
		defs, err := s.catalog.List(dbctx.Context{Ctx: ctx})
		return defs, true, err
	})
	if err != nil {
		return nil, internalErr(s.log, "list quests", err)
	}
	if defs == nil {
		defs = []*quest.Definition{}
	}
	return defs, nil
}

func (s *questService) GetQuest(ctx context.Context, questID int64) (*quest.Definition, error) {
	def, found, err := cached(ctx, s, s.cacheKey("quest", questID), func() (*quest.Definition, bool, error) {
		def, err := s.catalog.GetByID(dbctx.Context{Ctx: ctx}, questID)
		return def, def != nil, err
	})
	if err != nil {
		return nil, internalErr(s.log, "get quest", err)
	}
	if !found {
		return nil, s.notFound()
	}
	return def, nil
}

func (s *questService) GetCoinReward(ctx context.Context, questID int64) (int64, error) {
	reward, found, err := cached(ctx, s, s.cacheKey("reward", questID), func() (int64, bool, error) {
		r, err := s.catalog.GetCoinReward(dbctx.Context{Ctx: ctx}, questID)
		if err != nil || r == nil {
			return 0, false, err
		}
		return *r, true, nil
	})
	if err != nil {
		return 0, internalErr(s.log, "get coin reward", err)
	}
	if !found {
		return 0, s.notFound()
	}
	return reward, nil
}

func (s *questService) ListUserProgress(ctx context.Context, userID int64) ([]*quest.Progress, error) {
	rows, err := s.progress.ListForUser(dbctx.Context{Ctx: ctx}, userID)
	if err != nil {
		return nil, internalErr(s.log, "list user progress", err)
	}
	if rows == nil {
		rows = []*quest.Progress{}
	}
	return rows, nil
}

func (s *questService) GetUserProgress(ctx context.Context, userID, questID int64) (*quest.Progress, error) {
	row, err := s.progress.Get(dbctx.Context{Ctx: ctx}, userID, questID)
	if err != nil {
		return nil, internalErr(s.log, "get user progress", err)
	}
	if row == nil {
		return nil, s.progressNotFound()
	}
	return row, nil
}

func (s *questService) Enroll(ctx context.Context, userID, questID int64) error {
	err := s.progress.Enroll(dbctx.Context{Ctx: ctx}, userID, questID)
	if err != nil {
		return classifyWrite(s.log, "enroll", err,
			s.variant.Label+" already added to user", "User or quest not found")
	}
	s.log.Debug("user enrolled", "user_id", userID, "quest_id", questID)
	return nil
}

// Claim is idempotent: claiming an already claimed quest still matches the
// row and succeeds. Claiming before completion is permitted.
func (s *questService) Claim(ctx context.Context, userID, questID int64) error {
	n, err := s.progress.Claim(dbctx.Context{Ctx: ctx}, userID, questID)
	if err != nil {
		return internalErr(s.log, "claim", err)
	}
	if n == 0 {
		return s.progressNotFound()
	}
	s.log.Debug("quest claimed", "user_id", userID, "quest_id", questID)
	return nil
}

func (s *questService) Complete(ctx context.Context, userID, questID int64) error {
	n, err := s.progress.MarkCompleted(dbctx.Context{Ctx: ctx}, userID, questID)
	if errors.Is(err, quest.ErrCompletionUnsupported) {
		return apierr.BadRequest(s.variant.Label + " has no completion state")
	}
	if err != nil {
		return internalErr(s.log, "complete", err)
	}
	if n == 0 {
		return s.progressNotFound()
	}
	s.log.Debug("quest completed", "user_id", userID, "quest_id", questID)
	return nil
}
