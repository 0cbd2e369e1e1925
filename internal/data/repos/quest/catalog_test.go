package quest

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/questline-backend/internal/data/repos/testutil"
	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/platform/dbctx"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

func TestCatalogList(t *testing.T) {
	gdb, mock := testutil.MockDB(t)
	repo := NewCatalogRepo(gdb, logger.NewNop(), quest.Distance)

	mock.ExpectQuery(`SELECT quest_id, quest_name, coin_reward, distance_goal FROM "quests" ORDER BY quest_id`).
		WillReturnRows(sqlmock.NewRows([]string{"quest_id", "quest_name", "coin_reward", "distance_goal"}).
			AddRow(1, "First steps", 10, 1.5).
			AddRow(2, "Long walk", 50, 10.0))

	defs, err := repo.List(dbctx.Context{Ctx: context.Background()})
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, int64(1), defs[0].QuestID)
	require.NotNil(t, defs[1].DistanceGoal)
	assert.Equal(t, 10.0, *defs[1].DistanceGoal)
	assert.Nil(t, defs[0].ImageGoal)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogListEmptyIsNotNil(t *testing.T) {
	gdb, mock := testutil.MockDB(t)
	repo := NewCatalogRepo(gdb, logger.NewNop(), quest.Image)

	mock.ExpectQuery(`SELECT quest_id, quest_name, coin_reward, image_goal FROM "imagequests"`).
		WillReturnRows(sqlmock.NewRows([]string{"quest_id", "quest_name", "coin_reward", "image_goal"}))

	defs, err := repo.List(dbctx.Context{Ctx: context.Background()})
	require.NoError(t, err)
	require.NotNil(t, defs)
	assert.Empty(t, defs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogGetByID(t *testing.T) {
	gdb, mock := testutil.MockDB(t)
	repo := NewCatalogRepo(gdb, logger.NewNop(), quest.Image)
	dbc := dbctx.Context{Ctx: context.Background()}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT quest_id, quest_name, coin_reward, image_goal FROM "imagequests" WHERE quest_id = \$1`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"quest_id", "quest_name", "coin_reward", "image_goal"}).
				AddRow(5, "Find a tree", 20, "tree"))

		def, err := repo.GetByID(dbc, 5)
		require.NoError(t, err)
		require.NotNil(t, def)
		require.NotNil(t, def.ImageGoal)
		assert.Equal(t, "tree", *def.ImageGoal)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(`FROM "imagequests" WHERE quest_id = \$1`).
			WithArgs(999).
			WillReturnRows(sqlmock.NewRows([]string{"quest_id", "quest_name", "coin_reward", "image_goal"}))

		def, err := repo.GetByID(dbc, 999)
		require.NoError(t, err)
		assert.Nil(t, def)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store failure propagates", func(t *testing.T) {
		mock.ExpectQuery(`FROM "imagequests" WHERE quest_id = \$1`).
			WithArgs(1).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetByID(dbc, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogGetCoinReward(t *testing.T) {
	gdb, mock := testutil.MockDB(t)
	repo := NewCatalogRepo(gdb, logger.NewNop(), quest.Distance)
	dbc := dbctx.Context{Ctx: context.Background()}

	mock.ExpectQuery(`SELECT .*coin_reward.* FROM "quests" WHERE quest_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"coin_reward"}).AddRow(75))

	reward, err := repo.GetCoinReward(dbc, 3)
	require.NoError(t, err)
	require.NotNil(t, reward)
	assert.Equal(t, int64(75), *reward)

	mock.ExpectQuery(`SELECT .*coin_reward.* FROM "quests" WHERE quest_id = \$1`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"coin_reward"}))

	reward, err = repo.GetCoinReward(dbc, 4)
	require.NoError(t, err)
	assert.Nil(t, reward)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogListIDs(t *testing.T) {
	gdb, mock := testutil.MockDB(t)
	repo := NewCatalogRepo(gdb, logger.NewNop(), quest.Distance)

	mock.ExpectQuery(`SELECT .*quest_id.* FROM "quests" ORDER BY quest_id`).
		WillReturnRows(sqlmock.NewRows([]string{"quest_id"}).AddRow(1).AddRow(2).AddRow(3))

	ids, err := repo.ListIDs(dbctx.Context{Ctx: context.Background()})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}
