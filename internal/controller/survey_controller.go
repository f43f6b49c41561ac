package controller

import (
	"encoding/json"
	"errors"
	"strconv"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SurveyController struct {
	SurveyService *service.SurveyService
}

func NewSurveyController(surveyService *service.SurveyService) *SurveyController {
	return &SurveyController{SurveyService: surveyService}
}

// GetByToken godoc
// @Summary Umfrage zum Einbetten abrufen
// @Description Inaktive und unbekannte Tokens liefern identisch 404
// @Tags Umfragen
// @Produce  json
// @Param   token path string true "Umfrage-Token"
// @Success 200 {object} util.Response{data=model.Survey}
// @Failure 404 {object} util.Response "Umfrage nicht verfügbar"
// @Router /api/surveys/{token} [get]
func (c *SurveyController) GetByToken(ctx *gin.Context) {
	survey, err := c.SurveyService.GetSurveyByToken(ctx.Param("token"))
	if err != nil {
		if errors.Is(err, util.ErrSurveyNotFound) || errors.Is(err, util.ErrSurveyInactive) {
			util.Error(ctx, 404, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, survey)
}

// SubmitRequest Antworten, Schlüssel ist die Fragen-ID
type SubmitRequest struct {
	Answers map[uint]json.RawMessage `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Umfrage abgeben
// @Description Validiert alle Antworten und speichert die Abgabe in einer Transaktion; bei nicht-anonymen Umfragen ist ein Login Pflicht
// @Tags Umfragen
// @Accept  json
// @Produce  json
// @Param   token path string true "Umfrage-Token"
// @Param   body body SubmitRequest true "Antworten pro Frage"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Pflichtfrage unbeantwortet oder ungültige Antwort"
// @Failure 401 {object} util.Response "Login erforderlich"
// @Failure 404 {object} util.Response "Umfrage nicht verfügbar"
// @Router /api/surveys/{token}/responses [post]
func (c *SurveyController) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var userID *uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = &claims.UserID
	}

	response, err := c.SurveyService.Submit(ctx.Param("token"), userID, req.Answers)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, util.ErrSurveyNotFound), errors.Is(err, util.ErrSurveyInactive):
			util.Error(ctx, 404, err.Error())
		case errors.Is(err, util.ErrLoginRequired):
			util.Error(ctx, 401, err.Error())
		case errors.As(err, &validationErr):
			util.BadRequest(ctx, validationErr.Error())
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Created(ctx, gin.H{"responseId": response.ID})
}

type SurveyQuestionInput struct {
	Type        string          `json:"type" binding:"required,oneof=short_text long_text single_choice multiple_choice scale"`
	Label       string          `json:"label" binding:"required,max=255"`
	Description string          `json:"description"`
	Required    bool            `json:"required"`
	Options     json.RawMessage `json:"options"`
	MinValue    *int            `json:"minValue"`
	MaxValue    *int            `json:"maxValue"`
	AllowOther  bool            `json:"allowOther"`
}

type SurveyRequest struct {
	Title       string                `json:"title" binding:"required,max=255"`
	Description string                `json:"description"`
	IsAnonymous bool                  `json:"isAnonymous"`
	IsActive    bool                  `json:"isActive"`
	Questions   []SurveyQuestionInput `json:"questions" binding:"required,min=1,dive"`
}

func toQuestions(inputs []SurveyQuestionInput) []model.SurveyQuestion {
	questions := make([]model.SurveyQuestion, 0, len(inputs))
	for _, in := range inputs {
		questions = append(questions, model.SurveyQuestion{
			Type:        model.QuestionType(in.Type),
			Label:       in.Label,
			Description: in.Description,
			Required:    in.Required,
			Options:     in.Options,
			MinValue:    in.MinValue,
			MaxValue:    in.MaxValue,
			AllowOther:  in.AllowOther,
		})
	}
	return questions
}

// CreateSurvey godoc
// @Summary Umfrage anlegen (Admin)
// @Description Der Token wird generiert und als <Survey{token}> in Inhalte eingebettet
// @Tags Umfragen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SurveyRequest true "Umfrage mit Fragen"
// @Success 201 {object} util.Response{data=model.Survey}
// @Router /api/admin/surveys [post]
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	var req SurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	survey := &model.Survey{
		Title:       req.Title,
		Description: req.Description,
		IsAnonymous: req.IsAnonymous,
		IsActive:    req.IsActive,
		Questions:   toQuestions(req.Questions),
	}
	if err := c.SurveyService.CreateSurvey(survey); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, survey)
}

// ListSurveys godoc
// @Summary Umfragen auflisten (Admin)
// @Tags Umfragen
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Survey}
// @Router /api/admin/surveys [get]
func (c *SurveyController) ListSurveys(ctx *gin.Context) {
	surveys, err := c.SurveyService.ListSurveys()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, surveys)
}

// GetSurvey godoc
// @Summary Umfrage mit Fragen abrufen (Admin)
// @Tags Umfragen
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Umfrage-ID"
// @Success 200 {object} util.Response{data=model.Survey}
// @Failure 404 {object} util.Response
// @Router /api/admin/surveys/{id} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	survey, err := c.SurveyService.GetSurvey(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, survey)
}

// UpdateSurvey godoc
// @Summary Umfrage bearbeiten (Admin)
// @Description Ersetzt Kopfdaten und den kompletten Fragenkatalog; der Token bleibt stabil
// @Tags Umfragen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Umfrage-ID"
// @Param   body body SurveyRequest true "Umfrage mit Fragen"
// @Success 200 {object} util.Response{data=model.Survey}
// @Router /api/admin/surveys/{id} [put]
func (c *SurveyController) UpdateSurvey(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	var req SurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	survey := &model.Survey{
		Title:       req.Title,
		Description: req.Description,
		IsAnonymous: req.IsAnonymous,
		IsActive:    req.IsActive,
		Questions:   toQuestions(req.Questions),
	}
	survey.ID = uint(id)

	if err := c.SurveyService.UpdateSurvey(survey); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, survey)
}

type ActiveRequest struct {
	Active bool `json:"active"`
}

// SetActive godoc
// @Summary Umfrage aktivieren oder deaktivieren (Admin)
// @Tags Umfragen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Umfrage-ID"
// @Param   body body ActiveRequest true "Neuer Zustand"
// @Success 200 {object} util.Response
// @Router /api/admin/surveys/{id}/active [put]
func (c *SurveyController) SetActive(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	var req ActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SurveyService.SetActive(uint(id), req.Active); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// DeleteSurvey godoc
// @Summary Umfrage löschen (Admin)
// @Description Löscht Fragen, Teilnahmen und Antworten mit
// @Tags Umfragen
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Umfrage-ID"
// @Success 200 {object} util.Response
// @Router /api/admin/surveys/{id} [delete]
func (c *SurveyController) DeleteSurvey(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	if err := c.SurveyService.DeleteSurvey(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Results godoc
// @Summary Auswertung einer Umfrage (Admin)
// @Description Zählt Antworten pro Option, sammelt Freitexte und berechnet Skalen-Statistiken
// @Tags Umfragen
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Umfrage-ID"
// @Success 200 {object} util.Response{data=service.SurveyResults}
// @Failure 404 {object} util.Response
// @Router /api/admin/surveys/{id}/results [get]
func (c *SurveyController) Results(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	results, err := c.SurveyService.Results(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, results)
}

// ExportCSV godoc
// @Summary Ergebnisse als CSV exportieren (Admin)
// @Tags Umfragen
// @Produce  text/csv
// @Security BearerAuth
// @Param   id path int true "Umfrage-ID"
// @Success 200 {string} string "CSV-Datei"
// @Failure 404 {object} util.Response
// @Router /api/admin/surveys/{id}/export [get]
func (c *SurveyController) ExportCSV(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	data, err := c.SurveyService.ExportCSV(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="survey_results.csv"`)
	ctx.Data(200, "text/csv; charset=utf-8", data)
}

// AddQuestion godoc
// @Summary Frage an eine Umfrage anhängen (Admin)
// @Tags Umfragen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Umfrage-ID"
// @Param   body body SurveyQuestionInput true "Frage"
// @Success 201 {object} util.Response{data=model.SurveyQuestion}
// @Router /api/admin/surveys/{id}/questions [post]
func (c *SurveyController) AddQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	var req SurveyQuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions := toQuestions([]SurveyQuestionInput{req})
	question := &questions[0]
	if err := c.SurveyService.AddQuestion(uint(id), question); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary Frage einer Umfrage bearbeiten (Admin)
// @Tags Umfragen
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Umfrage-ID"
// @Param   questionId path int true "Fragen-ID"
// @Param   body body SurveyQuestionInput true "Frage"
// @Success 200 {object} util.Response{data=model.SurveyQuestion}
// @Router /api/admin/surveys/{id}/questions/{questionId} [put]
func (c *SurveyController) UpdateQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}
	questionID, err := strconv.ParseUint(ctx.Param("questionId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	var req SurveyQuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions := toQuestions([]SurveyQuestionInput{req})
	question := &questions[0]
	question.ID = uint(questionID)
	if err := c.SurveyService.UpdateQuestion(uint(id), question); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary Frage aus einer Umfrage löschen (Admin)
// @Tags Umfragen
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Umfrage-ID"
// @Param   questionId path int true "Fragen-ID"
// @Success 200 {object} util.Response
// @Router /api/admin/surveys/{id}/questions/{questionId} [delete]
func (c *SurveyController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}
	questionID, err := strconv.ParseUint(ctx.Param("questionId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	if err := c.SurveyService.DeleteQuestion(uint(id), uint(questionID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
