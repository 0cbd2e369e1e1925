package testutil

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/questline-backend/internal/domain"
	"github.com/yungbote/questline-backend/internal/domain/user"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username string) *types.User {
	tb.Helper()
	u := &types.User{
		Username:    username,
		Password:    "hash",
		Email:       fmt.Sprintf("%s@example.com", username),
		UserLevelID: user.DefaultLevelID,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedDistanceQuest(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, reward int64, goal float64) *types.DistanceQuest {
	tb.Helper()
	q := &types.DistanceQuest{QuestName: name, CoinReward: reward, DistanceGoal: goal}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed distance quest: %v", err)
	}
	return q
}

func SeedImageQuest(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, reward int64, goal string) *types.ImageQuest {
	tb.Helper()
	q := &types.ImageQuest{QuestName: name, CoinReward: reward, ImageGoal: goal}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed image quest: %v", err)
	}
	return q
}

// MediaFixture is one row in every media table, all tied to a single owner.
type MediaFixture struct {
	Media   *types.MediaItem
	Tag     *types.Tag
	Comment *types.Comment
	Like    *types.Like
	Rating  *types.Rating
}

// SeedMedia gives owner a media item with a tag, and has actor comment on,
// like and rate it.
func SeedMedia(tb testing.TB, ctx context.Context, tx *gorm.DB, owner, actor int64) *MediaFixture {
	tb.Helper()
	conn := tx.WithContext(ctx)
	f := &MediaFixture{
		Media: &types.MediaItem{UserID: owner, Filename: "walk.jpg", Title: "walk"},
		Tag:   &types.Tag{TagName: fmt.Sprintf("tag-%d-%d", owner, actor)},
	}
	if err := conn.Create(f.Media).Error; err != nil {
		tb.Fatalf("seed media: %v", err)
	}
	if err := conn.Create(f.Tag).Error; err != nil {
		tb.Fatalf("seed tag: %v", err)
	}
	if err := conn.Create(&types.MediaItemTag{MediaID: f.Media.MediaID, TagID: f.Tag.TagID}).Error; err != nil {
		tb.Fatalf("seed media tag: %v", err)
	}
	f.Comment = &types.Comment{MediaID: f.Media.MediaID, UserID: actor, CommentText: "nice"}
	f.Like = &types.Like{MediaID: f.Media.MediaID, UserID: actor}
	f.Rating = &types.Rating{MediaID: f.Media.MediaID, UserID: actor, RatingValue: 5}
	for _, row := range []interface{}{f.Comment, f.Like, f.Rating} {
		if err := conn.Create(row).Error; err != nil {
			tb.Fatalf("seed %T: %v", row, err)
		}
	}
	return f
}

// Count returns the number of rows in table matching where.
func Count(tb testing.TB, ctx context.Context, tx *gorm.DB, table, where string, args ...interface{}) int64 {
	tb.Helper()
	var n int64
	if err := tx.WithContext(ctx).Table(table).Where(where, args...).Count(&n).Error; err != nil {
		tb.Fatalf("count %s: %v", table, err)
	}
	return n
}
