package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/questline-backend/internal/platform/apierr"
)

type idParam struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

type userQuestParams struct {
	UserID  int64 `uri:"id" binding:"required,gt=0"`
	QuestID int64 `uri:"questId" binding:"required,gt=0"`
}

type questBody struct {
	QuestID int64 `json:"quest_id" binding:"required,gt=0"`
}

// bindID parses the :id path segment, rejecting anything that is not a
// positive integer.
func bindID(c *gin.Context) (int64, error) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		return 0, apierr.BadRequest("id must be a positive integer")
	}
	return p.ID, nil
}

func bindUserQuest(c *gin.Context) (userQuestParams, error) {
	var p userQuestParams
	if err := c.ShouldBindUri(&p); err != nil {
		return p, apierr.BadRequest("user id and quest id must be positive integers")
	}
	return p, nil
}

func bindQuestBody(c *gin.Context) (int64, error) {
	var b questBody
	if err := c.ShouldBindJSON(&b); err != nil {
		return 0, apierr.BadRequest("quest_id is required")
	}
	return b.QuestID, nil
}
