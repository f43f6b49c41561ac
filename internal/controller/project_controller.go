package controller

import (
	"encoding/json"
	"errors"
	"strconv"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectService *service.ProjectService
}

func NewProjectController(projectService *service.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

// resolveID löst den Slug aus der URL in die Projekt-ID auf.
func (c *ProjectController) resolveID(ctx *gin.Context) (string, bool) {
	project, err := c.ProjectService.GetProject(ctx.Param("slug"))
	if err != nil {
		util.NotFound(ctx)
		return "", false
	}
	return project.ID, true
}

type ProjectRequest struct {
	Title             string          `json:"title" binding:"required,max=255"`
	Slug              string          `json:"slug" binding:"omitempty,max=255"`
	Description       string          `json:"description"`
	Content           string          `json:"content"`
	ImageURL          string          `json:"imageUrl"`
	AllowParticipants bool            `json:"allowParticipants"`
	MaxParticipants   *int            `json:"maxParticipants"`
	ExternalLinks     json.RawMessage `json:"externalLinks"`
}

// CreateProject godoc
// @Summary Projekt vorstellen
// @Tags Projekte
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ProjectRequest true "Projekt"
// @Success 201 {object} util.Response{data=model.Project}
// @Router /api/projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	project := &model.Project{
		Title:             req.Title,
		Slug:              req.Slug,
		Description:       req.Description,
		Content:           req.Content,
		ImageURL:          req.ImageURL,
		CreatorID:         claims.UserID,
		AllowParticipants: req.AllowParticipants,
		MaxParticipants:   req.MaxParticipants,
		ExternalLinks:     req.ExternalLinks,
	}
	if err := c.ProjectService.CreateProject(project); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, project)
}

// ListProjects godoc
// @Summary Projekte auflisten
// @Tags Projekte
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "Seite"
// @Param   limit query int false "Einträge pro Seite"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	projects, total, err := c.ProjectService.ListProjects(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: projects, Total: total, Page: page, Limit: limit})
}

// GetProject godoc
// @Summary Projekt abrufen
// @Tags Projekte
// @Produce  json
// @Security BearerAuth
// @Param   slug path string true "Slug"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/projects/{slug} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, err := c.ProjectService.GetProject(ctx.Param("slug"))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	comments, err := c.ProjectService.ListComments(project.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"project":  project,
		"comments": comments,
		"segments": service.SplitMarkdownSurveys(project.Content),
	})
}

// UpdateProject godoc
// @Summary Projekt bearbeiten
// @Tags Projekte
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   slug path string true "Slug"
// @Param   body body ProjectRequest true "Projekt"
// @Success 200 {object} util.Response{data=model.Project}
// @Failure 403 {object} util.Response
// @Router /api/projects/{slug} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	project, err := c.ProjectService.ProjectRepo.FindBySlug(ctx.Param("slug"))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Content = req.Content
	project.ImageURL = req.ImageURL
	project.AllowParticipants = req.AllowParticipants
	project.MaxParticipants = req.MaxParticipants
	project.ExternalLinks = req.ExternalLinks

	if err := c.ProjectService.UpdateProject(project, claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, project)
}

// DeleteProject godoc
// @Summary Projekt löschen
// @Tags Projekte
// @Produce  json
// @Security BearerAuth
// @Param   slug path string true "Slug"
// @Success 200 {object} util.Response
// @Router /api/projects/{slug} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	id, ok := c.resolveID(ctx)
	if !ok {
		return
	}

	if err := c.ProjectService.DeleteProject(id, claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}

// Join godoc
// @Summary Projekt beitreten
// @Tags Projekte
// @Produce  json
// @Security BearerAuth
// @Param   slug path string true "Slug"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "Voll oder bereits beigetreten"
// @Router /api/projects/{slug}/join [post]
func (c *ProjectController) Join(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	id, ok := c.resolveID(ctx)
	if !ok {
		return
	}

	if err := c.ProjectService.Join(id, claims.UserID); err != nil {
		switch {
		case errors.Is(err, util.ErrProjectFull), errors.Is(err, util.ErrAlreadyJoined):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}

// Leave godoc
// @Summary Projekt verlassen
// @Tags Projekte
// @Produce  json
// @Security BearerAuth
// @Param   slug path string true "Slug"
// @Success 200 {object} util.Response
// @Router /api/projects/{slug}/join [delete]
func (c *ProjectController) Leave(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	id, ok := c.resolveID(ctx)
	if !ok {
		return
	}

	if err := c.ProjectService.Leave(id, claims.UserID); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

type CommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// AddComment godoc
// @Summary Projekt kommentieren
// @Tags Projekte
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   slug path string true "Slug"
// @Param   body body CommentRequest true "Kommentar"
// @Success 201 {object} util.Response{data=model.ProjectComment}
// @Router /api/projects/{slug}/comments [post]
func (c *ProjectController) AddComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, ok := c.resolveID(ctx)
	if !ok {
		return
	}

	comment := &model.ProjectComment{
		ProjectID: id,
		AuthorID:  claims.UserID,
		Body:      req.Body,
	}
	if err := c.ProjectService.AddComment(comment); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Created(ctx, comment)
}

// DeleteComment godoc
// @Summary Kommentar löschen
// @Tags Projekte
// @Produce  json
// @Security BearerAuth
// @Param   commentId path int true "Kommentar-ID"
// @Success 200 {object} util.Response
// @Router /api/projects/comments/{commentId} [delete]
func (c *ProjectController) DeleteComment(ctx *gin.Context) {
	commentID, err := strconv.ParseUint(ctx.Param("commentId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	if err := c.ProjectService.DeleteComment(uint(commentID), claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}
