package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	store "github.com/yungbote/questline-backend/internal/data/db"
	types "github.com/yungbote/questline-backend/internal/domain"
	"github.com/yungbote/questline-backend/internal/domain/user"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

func openMigrated(t *testing.T) *gorm.DB {
	t.Helper()
	svc, err := store.Open(store.Config{
		Driver: store.DriverSQLite,
		SQLite: store.SQLiteConfig{Path: filepath.Join(t.TempDir(), "migrate.db")},
	}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	require.NoError(t, store.Migrate(svc.DB()))
	return svc.DB()
}

func count(t *testing.T, db *gorm.DB, table, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Where(where, args...).Count(&n).Error)
	return n
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := openMigrated(t)
	require.NoError(t, store.Migrate(db))
	assert.Equal(t, int64(len(user.Levels)), count(t, db, "userlevels", "1 = 1"))
}

func TestMigrateForeignKeysPointAtOwners(t *testing.T) {
	db := openMigrated(t)

	u := &types.User{Username: "fk", Password: "hash", Email: "fk@example.com", UserLevelID: user.DefaultLevelID}
	require.NoError(t, db.Create(u).Error)
	dq := &types.DistanceQuest{QuestName: "Walk", CoinReward: 5, DistanceGoal: 1}
	require.NoError(t, db.Create(dq).Error)
	iq := &types.ImageQuest{QuestName: "Snap", CoinReward: 5, ImageGoal: "tree"}
	require.NoError(t, db.Create(iq).Error)

	require.NoError(t, db.Exec("INSERT INTO userquests (user_id, quest_id, claimed) VALUES (?, ?, ?)", u.UserID, dq.QuestID, false).Error)
	require.NoError(t, db.Exec("INSERT INTO userimagequests (user_id, quest_id, claimed, completed) VALUES (?, ?, ?, ?)", u.UserID, iq.QuestID, false, false).Error)

	orphans := []struct {
		table string
		query string
		args  []interface{}
	}{
		{"userquests", "INSERT INTO userquests (user_id, quest_id, claimed) VALUES (?, ?, ?)", []interface{}{u.UserID, 999, false}},
		{"userquests", "INSERT INTO userquests (user_id, quest_id, claimed) VALUES (?, ?, ?)", []interface{}{999, dq.QuestID, false}},
		{"userimagequests", "INSERT INTO userimagequests (user_id, quest_id, claimed, completed) VALUES (?, ?, ?, ?)", []interface{}{u.UserID, 999, false, false}},
		{"users", "INSERT INTO users (username, password, email, user_level_id) VALUES (?, ?, ?, ?)", []interface{}{"lvl", "hash", "lvl@example.com", 99}},
		{"comments", "INSERT INTO comments (media_id, user_id, comment_text) VALUES (?, ?, ?)", []interface{}{999, u.UserID, "x"}},
		{"mediaitemtags", "INSERT INTO mediaitemtags (media_id, tag_id) VALUES (?, ?)", []interface{}{999, 999}},
	}
	for _, o := range orphans {
		err := db.Exec(o.query, o.args...).Error
		require.Error(t, err, o.table)
		assert.True(t, store.IsForeignKey(store.Classify(err, "insert", o.table)), "%s: %v", o.table, err)
	}
}

func TestMigrateUserDeleteCascades(t *testing.T) {
	db := openMigrated(t)

	mk := func(name string) *types.User {
		u := &types.User{Username: name, Password: "hash", Email: name + "@example.com", UserLevelID: user.DefaultLevelID}
		require.NoError(t, db.Create(u).Error)
		return u
	}
	victim, other := mk("victim"), mk("other")

	dq := &types.DistanceQuest{QuestName: "Walk", CoinReward: 5, DistanceGoal: 1}
	require.NoError(t, db.Create(dq).Error)
	iq := &types.ImageQuest{QuestName: "Snap", CoinReward: 5, ImageGoal: "tree"}
	require.NoError(t, db.Create(iq).Error)
	for _, uid := range []int64{victim.UserID, other.UserID} {
		require.NoError(t, db.Create(&types.UserQuest{UserID: uid, QuestID: dq.QuestID}).Error)
		require.NoError(t, db.Create(&types.UserImageQuest{UserID: uid, QuestID: iq.QuestID}).Error)
	}

	own := &types.MediaItem{UserID: victim.UserID, Filename: "a.jpg"}
	theirs := &types.MediaItem{UserID: other.UserID, Filename: "b.jpg"}
	require.NoError(t, db.Create(own).Error)
	require.NoError(t, db.Create(theirs).Error)
	tag := &types.Tag{TagName: "walk"}
	require.NoError(t, db.Create(tag).Error)
	require.NoError(t, db.Create(&types.MediaItemTag{MediaID: own.MediaID, TagID: tag.TagID}).Error)
	require.NoError(t, db.Create(&types.MediaItemTag{MediaID: theirs.MediaID, TagID: tag.TagID}).Error)

	// other reacts to the victim's media, the victim reacts to other's.
	for _, pair := range [][2]int64{{own.MediaID, other.UserID}, {theirs.MediaID, victim.UserID}} {
		require.NoError(t, db.Create(&types.Comment{MediaID: pair[0], UserID: pair[1], CommentText: "nice"}).Error)
		require.NoError(t, db.Create(&types.Like{MediaID: pair[0], UserID: pair[1]}).Error)
		require.NoError(t, db.Create(&types.Rating{MediaID: pair[0], UserID: pair[1], RatingValue: 4}).Error)
	}

	res := db.Exec("DELETE FROM users WHERE user_id = ?", victim.UserID)
	require.NoError(t, res.Error)
	require.Equal(t, int64(1), res.RowsAffected)

	residual := []struct {
		table string
		where string
		args  []interface{}
	}{
		{"users", "user_id = ?", []interface{}{victim.UserID}},
		{"userquests", "user_id = ?", []interface{}{victim.UserID}},
		{"userimagequests", "user_id = ?", []interface{}{victim.UserID}},
		{"mediaitems", "user_id = ?", []interface{}{victim.UserID}},
		{"mediaitemtags", "media_id = ?", []interface{}{own.MediaID}},
		{"comments", "user_id = ? OR media_id = ?", []interface{}{victim.UserID, own.MediaID}},
		{"likes", "user_id = ? OR media_id = ?", []interface{}{victim.UserID, own.MediaID}},
		{"ratings", "user_id = ? OR media_id = ?", []interface{}{victim.UserID, own.MediaID}},
	}
	for _, r := range residual {
		assert.Zero(t, count(t, db, r.table, r.where, r.args...), r.table)
	}

	assert.Equal(t, int64(1), count(t, db, "userquests", "user_id = ?", other.UserID))
	assert.Equal(t, int64(1), count(t, db, "userimagequests", "user_id = ?", other.UserID))
	assert.Equal(t, int64(1), count(t, db, "mediaitemtags", "media_id = ?", theirs.MediaID))
	assert.Equal(t, int64(1), count(t, db, "tags", "tag_id = ?", tag.TagID))
}

func TestMigrateQuestDeleteCascadesProgress(t *testing.T) {
	db := openMigrated(t)

	u := &types.User{Username: "q", Password: "hash", Email: "q@example.com", UserLevelID: user.DefaultLevelID}
	require.NoError(t, db.Create(u).Error)
	dq := &types.DistanceQuest{QuestName: "Walk", CoinReward: 5, DistanceGoal: 1}
	require.NoError(t, db.Create(dq).Error)
	require.NoError(t, db.Create(&types.UserQuest{UserID: u.UserID, QuestID: dq.QuestID}).Error)

	require.NoError(t, db.Exec("DELETE FROM quests WHERE quest_id = ?", dq.QuestID).Error)
	assert.Zero(t, count(t, db, "userquests", "quest_id = ?", dq.QuestID))
	assert.Equal(t, int64(1), count(t, db, "users", "user_id = ?", u.UserID))
}
