package controller

import (
	"strconv"
	"time"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NewsController struct {
	NewsService *service.NewsService
	Views       *service.ViewCounterService
}

func NewNewsController(newsService *service.NewsService, views *service.ViewCounterService) *NewsController {
	return &NewsController{NewsService: newsService, Views: views}
}

// ListNews godoc
// @Summary Neuigkeiten auflisten
// @Description Gäste sehen nur öffentliche Beiträge, Mitglieder auch interne, Admins zusätzlich Entwürfe
// @Tags Neuigkeiten
// @Produce  json
// @Param   page query int false "Seite"
// @Param   limit query int false "Einträge pro Seite"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	claims := util.GetUserFromContext(ctx)
	isMember := claims != nil
	isAdmin := claims != nil && claims.Role == model.Admin

	items, total, err := c.NewsService.ListNews(page, limit, isMember, isAdmin)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: items, Total: total, Page: page, Limit: limit})
}

// GetNews godoc
// @Summary Einzelnen Beitrag abrufen
// @Description Liefert den Beitrag samt Markdown-Segmenten; eingebettete Umfragen erscheinen als eigene Segmente
// @Tags Neuigkeiten
// @Produce  json
// @Param   slug path string true "Slug"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/news/{slug} [get]
func (c *NewsController) GetNews(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	news, err := c.NewsService.GetNews(ctx.Param("slug"), claims != nil)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"news":     news,
		"segments": service.SplitMarkdownSurveys(news.Body),
		"views":    c.Views.Hit(ctx.Request.Context(), "news", news.Slug),
	})
}

type NewsRequest struct {
	Title      string `json:"title" binding:"required,max=255"`
	Slug       string `json:"slug" binding:"omitempty,max=255"`
	Excerpt    string `json:"excerpt"`
	Body       string `json:"body" binding:"required"`
	IsHTML     bool   `json:"isHtml"`
	YouTubeURL string `json:"youtubeUrl"`
	IsPublic   bool   `json:"isPublic"`
	Publish    bool   `json:"publish"`
}

// CreateNews godoc
// @Summary Beitrag anlegen (Admin)
// @Tags Neuigkeiten
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body NewsRequest true "Beitrag"
// @Success 201 {object} util.Response{data=model.News}
// @Router /api/admin/news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req NewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	news := &model.News{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		IsHTML:     req.IsHTML,
		YouTubeURL: req.YouTubeURL,
		IsPublic:   req.IsPublic,
		AuthorID:   claims.UserID,
	}
	if req.Publish {
		now := time.Now()
		news.PublishedAt = &now
	}

	if err := c.NewsService.CreateNews(news); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, news)
}

// UpdateNews godoc
// @Summary Beitrag bearbeiten (Admin)
// @Tags Neuigkeiten
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Beitrags-ID"
// @Param   body body NewsRequest true "Beitrag"
// @Success 200 {object} util.Response{data=model.News}
// @Router /api/admin/news/{id} [put]
func (c *NewsController) UpdateNews(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	news, err := c.NewsService.GetNewsByID(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req NewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	news.Title = req.Title
	if req.Slug != "" {
		news.Slug = req.Slug
	}
	news.Excerpt = req.Excerpt
	news.Body = req.Body
	news.IsHTML = req.IsHTML
	news.YouTubeURL = req.YouTubeURL
	news.IsPublic = req.IsPublic
	if req.Publish && news.PublishedAt == nil {
		now := time.Now()
		news.PublishedAt = &now
	}

	if err := c.NewsService.UpdateNews(news); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, news)
}

// DeleteNews godoc
// @Summary Beitrag löschen (Admin)
// @Tags Neuigkeiten
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Beitrags-ID"
// @Success 200 {object} util.Response
// @Router /api/admin/news/{id} [delete]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	if err := c.NewsService.DeleteNews(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
