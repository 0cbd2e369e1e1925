package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/questline-backend/internal/domain/quest"
	"github.com/yungbote/questline-backend/internal/http/response"
	"github.com/yungbote/questline-backend/internal/services"
)

// QuestHandler serves one quest variant; the router mounts one per variant.
type QuestHandler struct {
	questService services.QuestService
}

func NewQuestHandler(questService services.QuestService) *QuestHandler {
	return &QuestHandler{questService: questService}
}

// Variant reports which quest family this handler serves.
func (qh *QuestHandler) Variant() quest.Variant { return qh.questService.Variant() }

func (qh *QuestHandler) label() string { return qh.questService.Variant().Label }

// GET /
func (qh *QuestHandler) List(c *gin.Context) {
	defs, err := qh.questService.ListQuests(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, defs)
}

// GET /:id
func (qh *QuestHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	def, err := qh.questService.GetQuest(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, def)
}

// GET /:id/coin_reward
func (qh *QuestHandler) CoinReward(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	reward, err := qh.questService.GetCoinReward(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"coin_reward": reward})
}

// GET /user/:id
func (qh *QuestHandler) ListUserProgress(c *gin.Context) {
	userID, err := bindID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	rows, err := qh.questService.ListUserProgress(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// POST /user/:id
// body: { "quest_id": n }
func (qh *QuestHandler) Enroll(c *gin.Context) {
	userID, err := bindID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	questID, err := bindQuestBody(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	if err := qh.questService.Enroll(c.Request.Context(), userID, questID); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, qh.label()+" added to user")
}

// PUT /user/:id
// body: { "quest_id": n }
func (qh *QuestHandler) Claim(c *gin.Context) {
	userID, err := bindID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	questID, err := bindQuestBody(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	if err := qh.questService.Claim(c.Request.Context(), userID, questID); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, qh.label()+" claimed")
}

// GET /user/:id/quest/:questId
func (qh *QuestHandler) GetUserProgress(c *gin.Context) {
	p, err := bindUserQuest(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	row, err := qh.questService.GetUserProgress(c.Request.Context(), p.UserID, p.QuestID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT /user/:id/quest/:questId
func (qh *QuestHandler) Complete(c *gin.Context) {
	p, err := bindUserQuest(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	if err := qh.questService.Complete(c.Request.Context(), p.UserID, p.QuestID); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, "User "+qh.label()+" completed")
}
