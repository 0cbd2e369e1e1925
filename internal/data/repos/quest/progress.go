package quest

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	store "github.com/yungbote/questline-backend/internal/data/db"
	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/platform/dbctx"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

// ProgressRepo manages (user, quest) progress rows for one variant.
// Mutations report the number of rows they matched so callers can tell a
// missing pair from a successful write.
type ProgressRepo interface {
	Variant() quest.Variant
	ListForUser(dbc dbctx.Context, userID int64) ([]*quest.Progress, error)
	Get(dbc dbctx.Context, userID, questID int64) (*quest.Progress, error)
	Enroll(dbc dbctx.Context, userID, questID int64) error
	EnrollMany(dbc dbctx.Context, userID int64, questIDs []int64) error
	Claim(dbc dbctx.Context, userID, questID int64) (int64, error)
	MarkCompleted(dbc dbctx.Context, userID, questID int64) (int64, error)
	DeleteForUser(dbc dbctx.Context, userID int64) (int64, error)
}

type progressRepo struct {
	db      *gorm.DB
	log     *logger.Logger
	variant quest.Variant
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger, variant quest.Variant) ProgressRepo {
	repoLog := baseLog.With("repo", "ProgressRepo", "variant", variant.Name)
	return &progressRepo{db: db, log: repoLog, variant: variant}
}

func (r *progressRepo) Variant() quest.Variant { return r.variant }

func (r *progressRepo) columns() []string {
	cols := []string{"user_id", "quest_id", "claimed"}
	if r.variant.TracksCompletion {
		cols = append(cols, "completed")
	}
	return cols
}

func (r *progressRepo) ListForUser(dbc dbctx.Context, userID int64) ([]*quest.Progress, error) {
	results := []*quest.Progress{}
	if err := dbc.Resolve(r.db).
		Table(r.variant.ProgressTable).
		Select(strings.Join(r.columns(), ", ")).
		Where("user_id = ?", userID).
		Order("quest_id").
		Find(&results).Error; err != nil {
		return nil, store.Classify(err, "list progress", r.variant.ProgressTable)
	}
	return results, nil
}

func (r *progressRepo) Get(dbc dbctx.Context, userID, questID int64) (*quest.Progress, error) {
	var results []*quest.Progress
	if err := dbc.Resolve(r.db).
		Table(r.variant.ProgressTable).
		Select(strings.Join(r.columns(), ", ")).
		Where("user_id = ? AND quest_id = ?", userID, questID).
		Find(&results).Error; err != nil {
		return nil, store.Classify(err, "get progress", r.variant.ProgressTable)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// insertSQL builds a multi-row insert of fresh (unclaimed, uncompleted) rows.
func (r *progressRepo) insertSQL(userID int64, questIDs []int64) (string, []interface{}) {
	cols := r.columns()
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"

	rows := make([]string, 0, len(questIDs))
	args := make([]interface{}, 0, len(questIDs)*len(cols))
	for _, qid := range questIDs {
		rows = append(rows, placeholder)
		args = append(args, userID, qid, false)
		if r.variant.TracksCompletion {
			args = append(args, false)
		}
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		r.variant.ProgressTable, strings.Join(cols, ", "), strings.Join(rows, ", "))
	return q, args
}

func (r *progressRepo) Enroll(dbc dbctx.Context, userID, questID int64) error {
	q, args := r.insertSQL(userID, []int64{questID})
	if err := dbc.Resolve(r.db).Exec(q, args...).Error; err != nil {
		return store.Classify(err, "enroll", r.variant.ProgressTable)
	}
	return nil
}

func (r *progressRepo) EnrollMany(dbc dbctx.Context, userID int64, questIDs []int64) error {
	if len(questIDs) == 0 {
		return nil
	}
	q, args := r.insertSQL(userID, questIDs)
	if err := dbc.Resolve(r.db).Exec(q, args...).Error; err != nil {
		return store.Classify(err, "enroll many", r.variant.ProgressTable)
	}
	return nil
}

func (r *progressRepo) Claim(dbc dbctx.Context, userID, questID int64) (int64, error) {
	res := dbc.Resolve(r.db).
		Table(r.variant.ProgressTable).
		Where("user_id = ? AND quest_id = ?", userID, questID).
		Update("claimed", true)
	if res.Error != nil {
		return 0, store.Classify(res.Error, "claim", r.variant.ProgressTable)
	}
	return res.RowsAffected, nil
}

// MarkCompleted sets completed only; claimed is left untouched.
func (r *progressRepo) MarkCompleted(dbc dbctx.Context, userID, questID int64) (int64, error) {
	if !r.variant.TracksCompletion {
		return 0, quest.ErrCompletionUnsupported
	}
	res := dbc.Resolve(r.db).
		Table(r.variant.ProgressTable).
		Where("user_id = ? AND quest_id = ?", userID, questID).
		Update("completed", true)
	if res.Error != nil {
		return 0, store.Classify(res.Error, "complete", r.variant.ProgressTable)
	}
	return res.RowsAffected, nil
}

func (r *progressRepo) DeleteForUser(dbc dbctx.Context, userID int64) (int64, error) {
	res := dbc.Resolve(r.db).Exec(
		fmt.Sprintf("DELETE FROM %s WHERE user_id = ?", r.variant.ProgressTable), userID)
	if res.Error != nil {
		return 0, store.Classify(res.Error, "delete progress", r.variant.ProgressTable)
	}
	return res.RowsAffected, nil
}
