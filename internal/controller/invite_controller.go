package controller

import (
	"strconv"
	"time"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InviteController struct {
	InviteService *service.InviteService
}

func NewInviteController(inviteService *service.InviteService) *InviteController {
	return &InviteController{InviteService: inviteService}
}

type CreateInviteRequest struct {
	Label     string     `json:"label" binding:"required,max=255"`
	Role      string     `json:"role" binding:"omitempty,oneof=student admin"`
	MaxUses   int        `json:"maxUses" binding:"min=0"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// CreateInvite godoc
// @Summary Einladungscode erzeugen (Admin)
// @Description Der Klartextcode erscheint nur in dieser Antwort, gespeichert wird ein Hash
// @Tags Einladungen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateInviteRequest true "Code-Eigenschaften"
// @Success 201 {object} util.Response{data=object} "Code im Klartext"
// @Router /api/admin/invites [post]
func (c *InviteController) CreateInvite(ctx *gin.Context) {
	var req CreateInviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	invite, code, err := c.InviteService.CreateInvite(req.Label, model.UserRole(req.Role), req.MaxUses, req.ExpiresAt)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"invite": invite, "code": code})
}

// ListInvites godoc
// @Summary Einladungscodes auflisten (Admin)
// @Tags Einladungen
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.InviteCode}
// @Router /api/admin/invites [get]
func (c *InviteController) ListInvites(ctx *gin.Context) {
	invites, err := c.InviteService.ListInvites()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, invites)
}

// DeleteInvite godoc
// @Summary Einladungscode löschen (Admin)
// @Tags Einladungen
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Code-ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/invites/{id} [delete]
func (c *InviteController) DeleteInvite(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	if err := c.InviteService.DeleteInvite(uint(id)); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}
