package controller

import (
	"errors"
	"strconv"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QAController struct {
	QAService *service.QAService
	Views     *service.ViewCounterService
}

func NewQAController(qaService *service.QAService, views *service.ViewCounterService) *QAController {
	return &QAController{QAService: qaService, Views: views}
}

type AttachmentInput struct {
	FileName string `json:"fileName" binding:"required,max=255"`
	FileURL  string `json:"fileUrl" binding:"required,max=255"`
	FileType string `json:"fileType" binding:"max=100"`
}

type QuestionRequest struct {
	Title       string            `json:"title" binding:"required,max=255"`
	Body        string            `json:"body" binding:"required"`
	Attachments []AttachmentInput `json:"attachments"`
}

func toAttachments(inputs []AttachmentInput) []model.QAAttachment {
	attachments := make([]model.QAAttachment, 0, len(inputs))
	for _, in := range inputs {
		attachments = append(attachments, model.QAAttachment{
			FileName: in.FileName,
			FileURL:  in.FileURL,
			FileType: in.FileType,
		})
	}
	return attachments
}

// CreateQuestion godoc
// @Summary Frage stellen
// @Tags Fragen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body QuestionRequest true "Frage mit optionalen Anhängen"
// @Success 201 {object} util.Response{data=model.QAQuestion}
// @Router /api/questions [post]
func (c *QAController) CreateQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.QAQuestion{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: claims.UserID,
	}
	if err := c.QAService.CreateQuestion(question, toAttachments(req.Attachments)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// ListQuestions godoc
// @Summary Fragen auflisten
// @Tags Fragen
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "Seite"
// @Param   limit query int false "Einträge pro Seite"
// @Param   resolved query bool false "Nach Status filtern"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/questions [get]
func (c *QAController) ListQuestions(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	var resolved *bool
	if v := ctx.Query("resolved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			resolved = &b
		}
	}

	questions, total, err := c.QAService.ListQuestions(page, limit, resolved)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: questions, Total: total, Page: page, Limit: limit})
}

// GetQuestion godoc
// @Summary Frage mit Antwortbaum abrufen
// @Tags Fragen
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Fragen-ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QAController) GetQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	question, answers, err := c.QAService.GetQuestion(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{
		"question": question,
		"answers":  answers,
		"views":    c.Views.Hit(ctx.Request.Context(), "question", strconv.FormatUint(id, 10)),
	})
}

type AnswerRequest struct {
	Body           string            `json:"body" binding:"required"`
	ParentAnswerID *uint             `json:"parentAnswerId"`
	Attachments    []AttachmentInput `json:"attachments"`
}

// CreateAnswer godoc
// @Summary Frage beantworten
// @Description Mit parentAnswerId wird auf eine bestehende Antwort geantwortet
// @Tags Fragen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Fragen-ID"
// @Param   body body AnswerRequest true "Antwort"
// @Success 201 {object} util.Response{data=model.QAAnswer}
// @Router /api/questions/{id}/answers [post]
func (c *QAController) CreateAnswer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	claims := util.GetUserFromContext(ctx)

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer := &model.QAAnswer{
		QuestionID:     uint(id),
		ParentAnswerID: req.ParentAnswerID,
		AuthorID:       claims.UserID,
		Body:           req.Body,
	}
	if err := c.QAService.CreateAnswer(answer, toAttachments(req.Attachments)); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Created(ctx, answer)
}

type ResolvedRequest struct {
	Resolved bool `json:"resolved"`
}

// SetResolved godoc
// @Summary Frage als gelöst markieren
// @Description Nur die fragende Person oder ein Admin
// @Tags Fragen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Fragen-ID"
// @Param   body body ResolvedRequest true "Status"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/questions/{id}/resolved [put]
func (c *QAController) SetResolved(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	var req ResolvedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.QAService.SetResolved(uint(id), claims.UserID, isAdmin, req.Resolved); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}

// DeleteQuestion godoc
// @Summary Frage löschen
// @Tags Fragen
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Fragen-ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QAController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	if err := c.QAService.DeleteQuestion(uint(id), claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}

// DeleteAnswer godoc
// @Summary Antwort löschen
// @Tags Fragen
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Antwort-ID"
// @Success 200 {object} util.Response
// @Router /api/answers/{id} [delete]
func (c *QAController) DeleteAnswer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	if err := c.QAService.DeleteAnswer(uint(id), claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}
