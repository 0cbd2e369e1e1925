package quest

import (
	"gorm.io/gorm"

	store "github.com/yungbote/questline-backend/internal/data/db"
	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/platform/dbctx"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

// CatalogRepo reads one variant's quest definitions. The catalog is reference
// data; nothing in the server writes to it.
type CatalogRepo interface {
	Variant() quest.Variant
	List(dbc dbctx.Context) ([]*quest.Definition, error)
	GetByID(dbc dbctx.Context, questID int64) (*quest.Definition, error)
	GetCoinReward(dbc dbctx.Context, questID int64) (*int64, error)
	ListIDs(dbc dbctx.Context) ([]int64, error)
}

type catalogRepo struct {
	db      *gorm.DB
	log     *logger.Logger
	variant quest.Variant
}

func NewCatalogRepo(db *gorm.DB, baseLog *logger.Logger, variant quest.Variant) CatalogRepo {
	repoLog := baseLog.With("repo", "CatalogRepo", "variant", variant.Name)
	return &catalogRepo{db: db, log: repoLog, variant: variant}
}

func (r *catalogRepo) Variant() quest.Variant { return r.variant }

func (r *catalogRepo) columns() string {
	return "quest_id, quest_name, coin_reward, " + r.variant.GoalColumn
}

func (r *catalogRepo) List(dbc dbctx.Context) ([]*quest.Definition, error) {
	results := []*quest.Definition{}
	if err := dbc.Resolve(r.db).
		Table(r.variant.CatalogTable).
		Select(r.columns()).
		Order("quest_id").
		Find(&results).Error; err != nil {
		return nil, store.Classify(err, "list catalog", r.variant.CatalogTable)
	}
	return results, nil
}

func (r *catalogRepo) GetByID(dbc dbctx.Context, questID int64) (*quest.Definition, error) {
	var results []*quest.Definition
	if err := dbc.Resolve(r.db).
		Table(r.variant.CatalogTable).
		Select(r.columns()).
		Where("quest_id = ?", questID).
		Find(&results).Error; err != nil {
		return nil, store.Classify(err, "get quest", r.variant.CatalogTable)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *catalogRepo) GetCoinReward(dbc dbctx.Context, questID int64) (*int64, error) {
	var rewards []int64
	if err := dbc.Resolve(r.db).
		Table(r.variant.CatalogTable).
		Where("quest_id = ?", questID).
		Pluck("coin_reward", &rewards).Error; err != nil {
		return nil, store.Classify(err, "get coin reward", r.variant.CatalogTable)
	}
	if len(rewards) == 0 {
		return nil, nil
	}
	reward := rewards[0]
	return &reward, nil
}

func (r *catalogRepo) ListIDs(dbc dbctx.Context) ([]int64, error) {
	ids := []int64{}
	if err := dbc.Resolve(r.db).
		Table(r.variant.CatalogTable).
		Order("quest_id").
		Pluck("quest_id", &ids).Error; err != nil {
		return nil, store.Classify(err, "list quest ids", r.variant.CatalogTable)
	}
	return ids, nil
}
