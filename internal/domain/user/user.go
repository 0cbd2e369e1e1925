package user

import (
	"strings"
	"time"

	"github.com/yungbote/questline-backend/internal/domain/media"
	"github.com/yungbote/questline-backend/internal/domain/quest"
)

// DefaultLevelID is the userlevels row assigned at registration ("User").
const DefaultLevelID int64 = 2

type User struct {
	UserID           int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username         string    `gorm:"column:username;uniqueIndex;not null" json:"username"`
	Password         string    `gorm:"column:password;not null" json:"-"`
	Email            string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	UserLevelID      int64     `gorm:"column:user_level_id;not null;default:2" json:"user_level_id"`
	DistanceTraveled float64   `gorm:"column:distance_traveled;not null;default:0" json:"distance_traveled"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Level *Level `gorm:"foreignKey:UserLevelID;references:LevelID" json:"-"`

	// Rows owned by the user.
	DistanceProgress []quest.UserQuest      `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ImageProgress    []quest.UserImageQuest `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	MediaItems       []media.MediaItem      `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comments         []media.Comment        `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Likes            []media.Like           `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Ratings          []media.Rating         `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

type Level struct {
	LevelID   int64  `gorm:"column:level_id;primaryKey;autoIncrement:false" json:"level_id"`
	LevelName string `gorm:"column:level_name;uniqueIndex;not null" json:"level_name"`
}

func (Level) TableName() string { return "userlevels" }

// Levels seeded by the migrator.
var Levels = []Level{
	{LevelID: 1, LevelName: "Admin"},
	{LevelID: 2, LevelName: "User"},
	{LevelID: 3, LevelName: "Guest"},
}

// PublicUser is the projection returned to clients; it never carries the
// password hash.
type PublicUser struct {
	UserID    int64     `gorm:"column:user_id" json:"user_id"`
	Username  string    `gorm:"column:username" json:"username"`
	Email     string    `gorm:"column:email" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	LevelName string    `gorm:"column:level_name" json:"level_name"`
}

// WithPassword is the login-time projection.
type WithPassword struct {
	PublicUser
	Password string `gorm:"column:password" json:"-"`
}

type NewUser struct {
	Username string
	Password string
	Email    string
}

// Update holds the fields a caller wants to change. Nil fields are left as is.
type Update struct {
	Username *string
	Password *string
	Email    *string
}

func (u Update) IsEmpty() bool {
	return u.Username == nil && u.Password == nil && u.Email == nil
}

// Columns maps the supplied fields onto users columns.
func (u Update) Columns() map[string]any {
	out := map[string]any{}
	if u.Username != nil {
		out["username"] = strings.TrimSpace(*u.Username)
	}
	if u.Password != nil {
		out["password"] = *u.Password
	}
	if u.Email != nil {
		out["email"] = strings.TrimSpace(*u.Email)
	}
	return out
}

type DeletedRef struct {
	UserID int64 `json:"user_id"`
}

type DeleteResult struct {
	Message string     `json:"message"`
	User    DeletedRef `json:"user"`
}
