package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/questline-backend/internal/data/repos/testutil"
	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

const sampleCatalog = `
distance_quests:
  - quest_id: 1
    quest_name: First Steps
    coin_reward: 10
    distance_goal: 1000
  - quest_id: 2
    quest_name: Long Walk
    coin_reward: 50
    distance_goal: 10000
image_quests:
  - quest_id: 5
    quest_name: Find a Tree
    coin_reward: 20
    image_goal: tree
`

func TestLoadValidCatalog(t *testing.T) {
	c, err := Load(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, c.DistanceQuests, 2)
	require.Len(t, c.ImageQuests, 1)
	require.Equal(t, "tree", c.ImageQuests[0].ImageGoal)
	require.Equal(t, 10000.0, c.DistanceQuests[1].DistanceGoal)
}

func TestLoadRejectsInvalidCatalogs(t *testing.T) {
	cases := map[string]string{
		"missing name": `
distance_quests:
  - quest_id: 1
    distance_goal: 5
`,
		"zero id": `
image_quests:
  - quest_id: 0
    quest_name: x
    image_goal: tree
`,
		"negative reward": `
distance_quests:
  - quest_id: 1
    quest_name: x
    coin_reward: -1
    distance_goal: 5
`,
		"duplicate id": `
image_quests:
  - {quest_id: 3, quest_name: a, image_goal: tree}
  - {quest_id: 3, quest_name: b, image_goal: cat}
`,
		"unknown key": `
distance_quests:
  - {quest_id: 1, quest_name: a, distance_goal: 5, goal: 6}
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestApplyUpsertsByQuestID(t *testing.T) {
	db := testutil.SQLite(t)
	ctx := context.Background()

	c, err := Load(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	res, err := Apply(ctx, db, logger.NewNop(), c)
	require.NoError(t, err)
	require.Equal(t, Result{Distance: 2, Image: 1}, res)

	c.DistanceQuests[0].CoinReward = 15
	c.DistanceQuests = c.DistanceQuests[:1]
	c.ImageQuests = nil
	res, err = Apply(ctx, db, logger.NewNop(), c)
	require.NoError(t, err)
	require.Equal(t, Result{Distance: 1}, res)

	var rows []quest.DistanceQuest
	require.NoError(t, db.Order("quest_id").Find(&rows).Error)
	require.Len(t, rows, 2)
	require.Equal(t, int64(15), rows[0].CoinReward)
	require.Equal(t, int64(50), rows[1].CoinReward)

	var images int64
	require.NoError(t, db.Model(&quest.ImageQuest{}).Count(&images).Error)
	require.Equal(t, int64(1), images)
}
