package quest

// Definition is a catalog row. Exactly one of DistanceGoal / ImageGoal is set,
// depending on the variant it was read from.
type Definition struct {
	QuestID      int64    `gorm:"column:quest_id" json:"quest_id"`
	QuestName    string   `gorm:"column:quest_name" json:"quest_name"`
	CoinReward   int64    `gorm:"column:coin_reward" json:"coin_reward"`
	DistanceGoal *float64 `gorm:"column:distance_goal" json:"distance_goal,omitempty"`
	ImageGoal    *string  `gorm:"column:image_goal" json:"image_goal,omitempty"`
}

// Progress is one user's state on one quest. Completed is nil for variants
// without a completion state.
type Progress struct {
	UserID    int64 `gorm:"column:user_id" json:"user_id"`
	QuestID   int64 `gorm:"column:quest_id" json:"quest_id"`
	Claimed   bool  `gorm:"column:claimed" json:"claimed"`
	Completed *bool `gorm:"column:completed" json:"completed,omitempty"`
}

// Table models, used by the migrator and the catalog seeder. Foreign keys are
// declared on the owning side so gorm puts the constraint on the child table.

type DistanceQuest struct {
	QuestID      int64   `gorm:"column:quest_id;primaryKey;autoIncrement"`
	QuestName    string  `gorm:"column:quest_name;not null"`
	CoinReward   int64   `gorm:"column:coin_reward;not null;default:0"`
	DistanceGoal float64 `gorm:"column:distance_goal;not null"`

	Progress []UserQuest `gorm:"foreignKey:QuestID;references:QuestID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DistanceQuest) TableName() string { return Distance.CatalogTable }

type ImageQuest struct {
	QuestID    int64  `gorm:"column:quest_id;primaryKey;autoIncrement"`
	QuestName  string `gorm:"column:quest_name;not null"`
	CoinReward int64  `gorm:"column:coin_reward;not null;default:0"`
	ImageGoal  string `gorm:"column:image_goal;not null"`

	Progress []UserImageQuest `gorm:"foreignKey:QuestID;references:QuestID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ImageQuest) TableName() string { return Image.CatalogTable }

type UserQuest struct {
	UserID  int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	QuestID int64 `gorm:"column:quest_id;primaryKey;autoIncrement:false"`
	Claimed bool  `gorm:"column:claimed;not null;default:false"`
}

func (UserQuest) TableName() string { return Distance.ProgressTable }

type UserImageQuest struct {
	UserID    int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	QuestID   int64 `gorm:"column:quest_id;primaryKey;autoIncrement:false"`
	Claimed   bool  `gorm:"column:claimed;not null;default:false"`
	Completed bool  `gorm:"column:completed;not null;default:false"`
}

func (UserImageQuest) TableName() string { return Image.ProgressTable }
