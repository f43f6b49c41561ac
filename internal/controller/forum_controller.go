package controller

import (
	"errors"
	"strconv"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ForumController struct {
	ForumService *service.ForumService
}

func NewForumController(forumService *service.ForumService) *ForumController {
	return &ForumController{ForumService: forumService}
}

// ListCategories godoc
// @Summary Forenkategorien auflisten
// @Tags Forum
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ForumCategory}
// @Router /api/forum/categories [get]
func (c *ForumController) ListCategories(ctx *gin.Context) {
	categories, err := c.ForumService.ListCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Slug        string `json:"slug" binding:"omitempty,max=255"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

// CreateCategory godoc
// @Summary Kategorie anlegen (Admin)
// @Tags Forum
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CategoryRequest true "Kategorie"
// @Success 201 {object} util.Response{data=model.ForumCategory}
// @Router /api/admin/forum/categories [post]
func (c *ForumController) CreateCategory(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category := &model.ForumCategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := c.ForumService.CreateCategory(category); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// ListTopics godoc
// @Summary Themen einer Kategorie auflisten
// @Description Angepinnte Themen zuerst, danach nach letzter Aktivität
// @Tags Forum
// @Produce  json
// @Security BearerAuth
// @Param   slug path string true "Kategorie-Slug"
// @Param   page query int false "Seite"
// @Param   limit query int false "Einträge pro Seite"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/forum/categories/{slug}/topics [get]
func (c *ForumController) ListTopics(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	topics, total, err := c.ForumService.ListTopics(ctx.Param("slug"), page, limit)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, util.PageResponse{List: topics, Total: total, Page: page, Limit: limit})
}

type TopicRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Body  string `json:"body" binding:"required"`
}

// CreateTopic godoc
// @Summary Thema eröffnen
// @Tags Forum
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   slug path string true "Kategorie-Slug"
// @Param   body body TopicRequest true "Thema mit Eröffnungsbeitrag"
// @Success 201 {object} util.Response{data=model.ForumTopic}
// @Router /api/forum/categories/{slug}/topics [post]
func (c *ForumController) CreateTopic(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req TopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic := &model.ForumTopic{
		Title:    req.Title,
		AuthorID: claims.UserID,
	}
	if err := c.ForumService.CreateTopic(ctx.Param("slug"), topic); err != nil {
		util.NotFound(ctx)
		return
	}

	// Eröffnungsbeitrag gehört zum Thema
	post := &model.ForumPost{
		TopicID:  topic.ID,
		AuthorID: claims.UserID,
		Body:     req.Body,
	}
	if err := c.ForumService.CreatePost(post); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, topic)
}

// GetTopic godoc
// @Summary Thema mit Beiträgen abrufen
// @Tags Forum
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Themen-ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/forum/topics/{id} [get]
func (c *ForumController) GetTopic(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	topic, posts, err := c.ForumService.GetTopic(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"topic": topic, "posts": posts})
}

type PostRequest struct {
	Body     string `json:"body" binding:"required"`
	ParentID *uint  `json:"parentId"`
}

// CreatePost godoc
// @Summary Auf ein Thema antworten
// @Tags Forum
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Themen-ID"
// @Param   body body PostRequest true "Beitrag"
// @Success 201 {object} util.Response{data=model.ForumPost}
// @Failure 403 {object} util.Response "Thema ist gesperrt"
// @Router /api/forum/topics/{id}/posts [post]
func (c *ForumController) CreatePost(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	claims := util.GetUserFromContext(ctx)

	var req PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post := &model.ForumPost{
		TopicID:  uint(id),
		AuthorID: claims.UserID,
		Body:     req.Body,
		ParentID: req.ParentID,
	}
	if err := c.ForumService.CreatePost(post); err != nil {
		if errors.Is(err, util.ErrTopicLocked) {
			util.Error(ctx, 403, err.Error())
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Created(ctx, post)
}

// DeletePost godoc
// @Summary Beitrag löschen
// @Tags Forum
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Beitrags-ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/forum/posts/{id} [delete]
func (c *ForumController) DeletePost(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	if err := c.ForumService.DeletePost(uint(id), claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}

type ModerationRequest struct {
	Value bool `json:"value"`
}

// SetPinned godoc
// @Summary Thema anpinnen oder lösen (Admin)
// @Tags Forum
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Themen-ID"
// @Param   body body ModerationRequest true "Neuer Zustand"
// @Success 200 {object} util.Response
// @Router /api/admin/forum/topics/{id}/pinned [put]
func (c *ForumController) SetPinned(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	var req ModerationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ForumService.SetPinned(uint(id), req.Value); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// SetLocked godoc
// @Summary Thema sperren oder entsperren (Admin)
// @Tags Forum
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Themen-ID"
// @Param   body body ModerationRequest true "Neuer Zustand"
// @Success 200 {object} util.Response
// @Router /api/admin/forum/topics/{id}/locked [put]
func (c *ForumController) SetLocked(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	var req ModerationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ForumService.SetLocked(uint(id), req.Value); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// DeleteTopic godoc
// @Summary Thema löschen
// @Tags Forum
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Themen-ID"
// @Success 200 {object} util.Response
// @Router /api/forum/topics/{id} [delete]
func (c *ForumController) DeleteTopic(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	if err := c.ForumService.DeleteTopic(uint(id), claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}
