// Package seed loads quest catalogs from YAML and upserts them. Catalog rows
// are managed out of band; the server itself only reads them.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

type DistanceQuest struct {
	QuestID      int64   `yaml:"quest_id" validate:"required,gt=0"`
	QuestName    string  `yaml:"quest_name" validate:"required"`
	CoinReward   int64   `yaml:"coin_reward" validate:"gte=0"`
	DistanceGoal float64 `yaml:"distance_goal" validate:"gt=0"`
}

type ImageQuest struct {
	QuestID    int64  `yaml:"quest_id" validate:"required,gt=0"`
	QuestName  string `yaml:"quest_name" validate:"required"`
	CoinReward int64  `yaml:"coin_reward" validate:"gte=0"`
	ImageGoal  string `yaml:"image_goal" validate:"required"`
}

type Catalog struct {
	DistanceQuests []DistanceQuest `yaml:"distance_quests" validate:"dive"`
	ImageQuests    []ImageQuest    `yaml:"image_quests" validate:"dive"`
}

type Result struct {
	Distance int
	Image    int
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a catalog. Unknown keys are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	seen := map[int64]bool{}
	for _, q := range c.DistanceQuests {
		if seen[q.QuestID] {
			return fmt.Errorf("invalid catalog: duplicate distance quest_id %d", q.QuestID)
		}
		seen[q.QuestID] = true
	}
	seen = map[int64]bool{}
	for _, q := range c.ImageQuests {
		if seen[q.QuestID] {
			return fmt.Errorf("invalid catalog: duplicate image quest_id %d", q.QuestID)
		}
		seen[q.QuestID] = true
	}
	return nil
}

// Apply upserts both catalogs in one transaction, keyed by quest_id.
// Existing progress rows are untouched.
func Apply(ctx context.Context, db *gorm.DB, log *logger.Logger, c *Catalog) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(c.DistanceQuests) > 0 {
			rows := make([]quest.DistanceQuest, 0, len(c.DistanceQuests))
			for _, q := range c.DistanceQuests {
				rows = append(rows, quest.DistanceQuest{
					QuestID:      q.QuestID,
					QuestName:    q.QuestName,
					CoinReward:   q.CoinReward,
					DistanceGoal: q.DistanceGoal,
				})
			}
			if err := tx.Clauses(upsert(quest.Distance)).Create(&rows).Error; err != nil {
				return fmt.Errorf("upsert %s: %w", quest.Distance.CatalogTable, err)
			}
			res.Distance = len(rows)
		}
		if len(c.ImageQuests) > 0 {
			rows := make([]quest.ImageQuest, 0, len(c.ImageQuests))
			for _, q := range c.ImageQuests {
				rows = append(rows, quest.ImageQuest{
					QuestID:    q.QuestID,
					QuestName:  q.QuestName,
					CoinReward: q.CoinReward,
					ImageGoal:  q.ImageGoal,
				})
			}
			if err := tx.Clauses(upsert(quest.Image)).Create(&rows).Error; err != nil {
				return fmt.Errorf("upsert %s: %w", quest.Image.CatalogTable, err)
			}
			res.Image = len(rows)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	if log != nil {
		log.Info("catalog seeded", "distance_quests", res.Distance, "image_quests", res.Image)
	}
	return res, nil
}

func upsert(v quest.Variant) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "quest_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quest_name", "coin_reward", v.GoalColumn}),
	}
}
