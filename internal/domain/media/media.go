// Package media holds the tables owned by the media service that share the
// database with users. This server only deletes from them when a user is
// removed; the models exist so development databases can be migrated.
package media

import "time"

type MediaItem struct {
	MediaID   int64     `gorm:"column:media_id;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Filename  string    `gorm:"column:filename;not null"`
	Title     string    `gorm:"column:title"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`

	Comments []Comment      `gorm:"foreignKey:MediaID;references:MediaID;constraint:OnDelete:CASCADE" json:"-"`
	Likes    []Like         `gorm:"foreignKey:MediaID;references:MediaID;constraint:OnDelete:CASCADE" json:"-"`
	Ratings  []Rating       `gorm:"foreignKey:MediaID;references:MediaID;constraint:OnDelete:CASCADE" json:"-"`
	ItemTags []MediaItemTag `gorm:"foreignKey:MediaID;references:MediaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MediaItem) TableName() string { return "mediaitems" }

type Comment struct {
	CommentID   int64     `gorm:"column:comment_id;primaryKey;autoIncrement"`
	MediaID     int64     `gorm:"column:media_id;not null;index"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	CommentText string    `gorm:"column:comment_text;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Comment) TableName() string { return "comments" }

type Like struct {
	LikeID    int64     `gorm:"column:like_id;primaryKey;autoIncrement"`
	MediaID   int64     `gorm:"column:media_id;not null;index"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Like) TableName() string { return "likes" }

type Rating struct {
	RatingID    int64     `gorm:"column:rating_id;primaryKey;autoIncrement"`
	MediaID     int64     `gorm:"column:media_id;not null;index"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	RatingValue int       `gorm:"column:rating_value;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Rating) TableName() string { return "ratings" }

type Tag struct {
	TagID   int64  `gorm:"column:tag_id;primaryKey;autoIncrement"`
	TagName string `gorm:"column:tag_name;uniqueIndex;not null"`

	ItemTags []MediaItemTag `gorm:"foreignKey:TagID;references:TagID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Tag) TableName() string { return "tags" }

// MediaItemTag is created unquoted upstream, so Postgres folds the name.
type MediaItemTag struct {
	MediaID int64 `gorm:"column:media_id;primaryKey;autoIncrement:false"`
	TagID   int64 `gorm:"column:tag_id;primaryKey;autoIncrement:false"`
}

func (MediaItemTag) TableName() string { return "mediaitemtags" }
