package controller

import (
	"errors"
	"net/http"
	"strconv"

	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=100"`
	About    string `json:"about" binding:"max=2000"`
}

// UpdateProfile godoc
// @Summary Eigenes Profil bearbeiten
// @Tags Benutzer
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateProfileRequest true "Profilfelder"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req.Username, req.About)
	if errors.Is(err, util.ErrUsernameTaken) {
		util.Error(ctx, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// GetUser godoc
// @Summary Profil eines Mitglieds abrufen
// @Tags Benutzer
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Benutzer-ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige Benutzer-ID")
		return
	}

	user, err := c.UserService.GetProfile(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}

// ListUsers godoc
// @Summary Mitgliederliste (Admin)
// @Tags Benutzer
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "Seite"
// @Param   limit query int false "Einträge pro Seite"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.UserService.ListUsers(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

type SetDisabledRequest struct {
	Disabled bool `json:"disabled"`
}

// SetDisabled godoc
// @Summary Konto sperren oder entsperren (Admin)
// @Tags Benutzer
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Benutzer-ID"
// @Param   body body SetDisabledRequest true "Sperrstatus"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/disabled [put]
func (c *UserController) SetDisabled(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige Benutzer-ID")
		return
	}

	var req SetDisabledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetDisabled(uint(id), req.Disabled); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}
