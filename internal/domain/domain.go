package domain

import (
	"github.com/yungbote/questline-backend/internal/domain/media"
	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/domain/user"
)

type (
	User         = user.User
	UserLevel    = user.Level
	PublicUser   = user.PublicUser
	NewUser      = user.NewUser
	UserUpdate   = user.Update
	DeleteResult = user.DeleteResult

	QuestVariant    = quest.Variant
	QuestDefinition = quest.Definition
	QuestProgress   = quest.Progress
	DistanceQuest   = quest.DistanceQuest
	ImageQuest      = quest.ImageQuest
	UserQuest       = quest.UserQuest
	UserImageQuest  = quest.UserImageQuest

	MediaItem    = media.MediaItem
	Comment      = media.Comment
	Like         = media.Like
	Rating       = media.Rating
	Tag          = media.Tag
	MediaItemTag = media.MediaItemTag
)
