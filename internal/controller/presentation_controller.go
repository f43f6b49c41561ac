package controller

import (
	"errors"
	"strconv"
	"time"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PresentationController struct {
	PresentationService *service.PresentationService
}

func NewPresentationController(presentationService *service.PresentationService) *PresentationController {
	return &PresentationController{PresentationService: presentationService}
}

type SlotRequest struct {
	PresenterName    string    `json:"presenterName" binding:"required,max=255"`
	Topic            string    `json:"topic" binding:"required,max=255"`
	PresentationDate time.Time `json:"presentationDate" binding:"required"`
	GroupMembers     *string   `json:"groupMembers"`
}

// CreateSlot godoc
// @Summary Präsentationstermin eintragen
// @Tags Präsentationen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SlotRequest true "Termin"
// @Success 201 {object} util.Response{data=model.PresentationSlot}
// @Router /api/presentations [post]
func (c *PresentationController) CreateSlot(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req SlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	slot := &model.PresentationSlot{
		PresenterName:    req.PresenterName,
		Topic:            req.Topic,
		PresentationDate: req.PresentationDate,
		GroupMembers:     req.GroupMembers,
		CreatorID:        claims.UserID,
	}
	if err := c.PresentationService.CreateSlot(slot); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, slot)
}

// ListSlots godoc
// @Summary Präsentationstermine auflisten
// @Tags Präsentationen
// @Produce  json
// @Security BearerAuth
// @Param   upcoming query bool false "Nur kommende Termine"
// @Success 200 {object} util.Response{data=[]model.PresentationSlot}
// @Router /api/presentations [get]
func (c *PresentationController) ListSlots(ctx *gin.Context) {
	upcoming, _ := strconv.ParseBool(ctx.DefaultQuery("upcoming", "false"))

	slots, err := c.PresentationService.ListSlots(upcoming)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, slots)
}

// UpdateSlot godoc
// @Summary Termin bearbeiten
// @Tags Präsentationen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Termin-ID"
// @Param   body body SlotRequest true "Termin"
// @Success 200 {object} util.Response{data=model.PresentationSlot}
// @Failure 403 {object} util.Response
// @Router /api/presentations/{id} [put]
func (c *PresentationController) UpdateSlot(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	var req SlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	slot := &model.PresentationSlot{
		PresenterName:    req.PresenterName,
		Topic:            req.Topic,
		PresentationDate: req.PresentationDate,
		GroupMembers:     req.GroupMembers,
	}
	slot.ID = ctx.Param("id")

	if err := c.PresentationService.UpdateSlot(slot, claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, slot)
}

// DeleteSlot godoc
// @Summary Termin löschen
// @Tags Präsentationen
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Termin-ID"
// @Success 200 {object} util.Response
// @Router /api/presentations/{id} [delete]
func (c *PresentationController) DeleteSlot(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	if err := c.PresentationService.DeleteSlot(ctx.Param("id"), claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}
