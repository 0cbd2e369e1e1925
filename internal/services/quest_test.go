package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	store "github.com/yungbote/questline-backend/internal/data/db"
	"github.com/yungbote/questline-backend/internal/data/repos"
	"github.com/yungbote/questline-backend/internal/data/repos/testutil"
	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/platform/apierr"
	"github.com/yungbote/questline-backend/internal/platform/cache"
	"github.com/yungbote/questline-backend/internal/platform/dbctx"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

type countingCatalog struct {
	variant quest.Variant
	defs    map[int64]*quest.Definition
	err     error
	calls   int
}

func (c *countingCatalog) Variant() quest.Variant { return c.variant }

func (c *countingCatalog) List(dbctx.Context) ([]*quest.Definition, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	out := []*quest.Definition{}
	for _, d := range c.defs {
		out = append(out, d)
	}
	return out, nil
}

func (c *countingCatalog) GetByID(_ dbctx.Context, id int64) (*quest.Definition, error) {
	c.calls++
	return c.defs[id], c.err
}

func (c *countingCatalog) GetCoinReward(_ dbctx.Context, id int64) (*int64, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	d, ok := c.defs[id]
	if !ok {
		return nil, nil
	}
	r := d.CoinReward
	return &r, nil
}

func (c *countingCatalog) ListIDs(dbctx.Context) ([]int64, error) {
	c.calls++
	ids := []int64{}
	for id := range c.defs {
		ids = append(ids, id)
	}
	return ids, c.err
}

func newCatalogFixture(v quest.Variant) *countingCatalog {
	goal := 2.5
	return &countingCatalog{
		variant: v,
		defs: map[int64]*quest.Definition{
			1: {QuestID: 1, QuestName: "First steps", CoinReward: 10, DistanceGoal: &goal},
		},
	}
}

func TestGetQuestIsCached(t *testing.T) {
	lru, err := cache.NewLRU(16, time.Minute)
	require.NoError(t, err)
	catalog := newCatalogFixture(quest.Distance)
	svc := NewQuestService(logger.NewNop(), catalog, nil, lru)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		def, err := svc.GetQuest(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "First steps", def.QuestName)
	}
	assert.Equal(t, 1, catalog.calls)

	reward, err := svc.GetCoinReward(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), reward)
	_, err = svc.GetCoinReward(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.calls)
}

func TestGetQuestMissingIsNotCached(t *testing.T) {
	lru, err := cache.NewLRU(16, time.Minute)
	require.NoError(t, err)
	catalog := newCatalogFixture(quest.Image)
	svc := NewQuestService(logger.NewNop(), catalog, nil, lru)

	for i := 0; i < 2; i++ {
		_, err := svc.GetQuest(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, apierr.IsNotFound(err))
		assert.Equal(t, "Image Quest not found", err.Error())
	}
	assert.Equal(t, 2, catalog.calls)

	_, err = svc.GetCoinReward(context.Background(), 99)
	assert.Equal(t, "Image Quest not found", err.Error())
}

func TestListQuestsStoreFailureIsInternal(t *testing.T) {
	catalog := newCatalogFixture(quest.Distance)
	catalog.err = errors.New("db down")
	svc := NewQuestService(logger.NewNop(), catalog, nil, nil)

	_, err := svc.ListQuests(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, statusOf(err))
}

func newMockQuestService(t *testing.T, v quest.Variant) (QuestService, sqlmock.Sqlmock) {
	t.Helper()
	gdb, mock := testutil.MockDB(t)
	log := logger.NewNop()
	return NewQuestService(log, repos.NewCatalogRepo(gdb, log, v), repos.NewProgressRepo(gdb, log, v), cache.NewNop()), mock
}

func TestClaimTwiceIsIdempotent(t *testing.T) {
	svc, mock := newMockQuestService(t, quest.Distance)

	for i := 0; i < 2; i++ {
		mock.ExpectExec(`UPDATE "userquests" SET "claimed"=\$1 WHERE user_id = \$2 AND quest_id = \$3`).
			WithArgs(true, 1, 5).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	require.NoError(t, svc.Claim(context.Background(), 1, 5))
	require.NoError(t, svc.Claim(context.Background(), 1, 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimMissingPairIsNotFound(t *testing.T) {
	svc, mock := newMockQuestService(t, quest.Image)

	mock.ExpectExec(`UPDATE "userimagequests" SET "claimed"`).
		WithArgs(true, 1, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Claim(context.Background(), 1, 5)
	require.Error(t, err)
	assert.Equal(t, "User Image Quest not found", err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollErrors(t *testing.T) {
	t.Run("duplicate is a conflict", func(t *testing.T) {
		svc, mock := newMockQuestService(t, quest.Distance)
		mock.ExpectExec(`INSERT INTO userquests`).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := svc.Enroll(context.Background(), 1, 5)
		assert.Equal(t, http.StatusConflict, statusOf(err))
		assert.True(t, errors.Is(err, store.ErrDuplicateKey))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user or quest is not found", func(t *testing.T) {
		svc, mock := newMockQuestService(t, quest.Image)
		mock.ExpectExec(`INSERT INTO userimagequests`).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err := svc.Enroll(context.Background(), 1, 999)
		assert.True(t, apierr.IsNotFound(err))
		assert.Equal(t, "User or quest not found", err.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompleteOnDistanceIsRejected(t *testing.T) {
	svc, mock := newMockQuestService(t, quest.Distance)
	err := svc.Complete(context.Background(), 1, 5)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserProgressMissing(t *testing.T) {
	svc, mock := newMockQuestService(t, quest.Image)
	mock.ExpectQuery(`FROM "userimagequests" WHERE user_id = \$1 AND quest_id = \$2`).
		WithArgs(1, 5).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "quest_id", "claimed", "completed"}))

	_, err := svc.GetUserProgress(context.Background(), 1, 5)
	assert.Equal(t, "User Image Quest not found", err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
