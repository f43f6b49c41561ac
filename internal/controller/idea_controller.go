package controller

import (
	"errors"

	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type IdeaController struct {
	IdeaService *service.IdeaService
}

func NewIdeaController(ideaService *service.IdeaService) *IdeaController {
	return &IdeaController{IdeaService: ideaService}
}

type GenerateIdeaRequest struct {
	Difficulty int `json:"difficulty" binding:"omitempty,min=1,max=5"`
}

// GenerateIdea godoc
// @Summary Projektidee generieren
// @Description Liefert eine KI-generierte Projektidee für den gewählten Schwierigkeitsgrad (1-5)
// @Tags Ideen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body GenerateIdeaRequest true "Schwierigkeitsgrad"
// @Success 200 {object} util.Response{data=object} "Generierte Idee"
// @Failure 429 {object} util.Response "Tageslimit erreicht"
// @Failure 503 {object} util.Response "Generator nicht konfiguriert"
// @Router /api/ideas/generate [post]
func (c *IdeaController) GenerateIdea(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req GenerateIdeaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Difficulty == 0 {
		req.Difficulty = 3
	}

	idea, err := c.IdeaService.GenerateIdea(ctx.Request.Context(), claims.UserID, req.Difficulty)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrIdeasNotSet):
			util.Error(ctx, 503, err.Error())
		case errors.Is(err, util.ErrIdeaQuotaExceeded):
			util.Error(ctx, 429, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"idea": idea})
}
