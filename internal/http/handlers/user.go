package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/questline-backend/internal/domain/user"
	"github.com/yungbote/questline-backend/internal/http/response"
	"github.com/yungbote/questline-backend/internal/platform/apierr"
	"github.com/yungbote/questline-backend/internal/platform/ctxutil"
	"github.com/yungbote/questline-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type updateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,max=255"`
	Password *string `json:"password"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

type distanceRequest struct {
	Distance *float64 `json:"distance" binding:"required,gte=0"`
}

// callerID reads the authenticated user id set by AuthMiddleware.
func callerID(c *gin.Context) (int64, error) {
	id := ctxutil.UserID(c.Request.Context())
	if id <= 0 {
		return 0, apierr.Unauthorized("missing or invalid token")
	}
	return id, nil
}

// GET /users
func (uh *UserHandler) List(c *gin.Context) {
	users, err := uh.userService.List(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, users)
}

// GET /users/:id
func (uh *UserHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	u, err := uh.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, u)
}

// POST /users
// body: { "username": "...", "password": "...", "email": "..." }
func (uh *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, apierr.BadRequest("username, password and a valid email are required"))
		return
	}
	u, err := uh.userService.Create(c.Request.Context(), user.NewUser{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": u})
}

// PUT /users
func (uh *UserHandler) Update(c *gin.Context) {
	id, err := callerID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, apierr.BadRequest("invalid user fields"))
		return
	}
	u, err := uh.userService.Update(c.Request.Context(), id, user.Update{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "User updated", "user": u})
}

// DELETE /users
func (uh *UserHandler) Delete(c *gin.Context) {
	id, err := callerID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	res, err := uh.userService.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /users/:id/distance
func (uh *UserHandler) GetDistance(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	d, err := uh.userService.GetDistanceTraveled(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"distance_traveled": d})
}

// PUT /users/distance
// body: { "distance": x }
func (uh *UserHandler) UpdateDistance(c *gin.Context) {
	id, err := callerID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	var req distanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, apierr.BadRequest("distance must be a non-negative number"))
		return
	}
	if err := uh.userService.UpdateDistanceTraveled(c.Request.Context(), id, *req.Distance); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, "Distance updated")
}
