package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ToolController struct {
	ToolService    *service.ToolService
	StorageService *service.StorageService
}

func NewToolController(toolService *service.ToolService, storageService *service.StorageService) *ToolController {
	return &ToolController{ToolService: toolService, StorageService: storageService}
}

type ToolRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	URL         string `json:"url" binding:"required,url,max=255"`
	Description string `json:"description"`
}

// CreateTool godoc
// @Summary Tool einreichen
// @Tags Tools
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ToolRequest true "Tool"
// @Success 201 {object} util.Response{data=model.Tool}
// @Router /api/tools [post]
func (c *ToolController) CreateTool(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req ToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tool := &model.Tool{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		CreatorID:   claims.UserID,
	}
	if err := c.ToolService.CreateTool(tool); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, tool)
}

// ListTools godoc
// @Summary Tools auflisten
// @Description Inklusive Like-Zahl und eigenem Like-Status
// @Tags Tools
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.ToolView}
// @Router /api/tools [get]
func (c *ToolController) ListTools(ctx *gin.Context) {
	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	tools, err := c.ToolService.ListTools(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tools)
}

// ToggleLike godoc
// @Summary Like setzen oder entfernen
// @Tags Tools
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Tool-ID"
// @Success 200 {object} util.Response{data=object} "Neuer Zustand und Zähler"
// @Router /api/tools/{id}/like [post]
func (c *ToolController) ToggleLike(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	liked, count, err := c.ToolService.ToggleLike(ctx.Param("id"), claims.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"liked": liked, "likeCount": count})
}

type ToolCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// AddComment godoc
// @Summary Tool kommentieren
// @Tags Tools
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Tool-ID"
// @Param   body body ToolCommentRequest true "Kommentar"
// @Success 201 {object} util.Response{data=model.ToolComment}
// @Router /api/tools/{id}/comments [post]
func (c *ToolController) AddComment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req ToolCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment := &model.ToolComment{
		ToolID:  ctx.Param("id"),
		UserID:  claims.UserID,
		Comment: req.Comment,
	}
	if err := c.ToolService.AddComment(comment); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Created(ctx, comment)
}

// ListComments godoc
// @Summary Kommentare eines Tools
// @Tags Tools
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Tool-ID"
// @Success 200 {object} util.Response{data=[]model.ToolComment}
// @Router /api/tools/{id}/comments [get]
func (c *ToolController) ListComments(ctx *gin.Context) {
	comments, err := c.ToolService.ListComments(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// DeleteTool godoc
// @Summary Tool löschen
// @Tags Tools
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Tool-ID"
// @Success 200 {object} util.Response
// @Router /api/tools/{id} [delete]
func (c *ToolController) DeleteTool(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	if err := c.ToolService.DeleteTool(ctx.Param("id"), claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}

// DeleteComment godoc
// @Summary Tool-Kommentar löschen
// @Tags Tools
// @Produce  json
// @Security BearerAuth
// @Param   commentId path int true "Kommentar-ID"
// @Success 200 {object} util.Response
// @Router /api/tools/comments/{commentId} [delete]
func (c *ToolController) DeleteComment(ctx *gin.Context) {
	commentID, err := strconv.ParseUint(ctx.Param("commentId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims.Role == model.Admin

	if err := c.ToolService.DeleteComment(uint(commentID), claims.UserID, isAdmin); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}
	util.Success(ctx, nil)
}

// ListFeatured godoc
// @Summary Empfohlene Tools (Karussell)
// @Tags Tools
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.FeaturedTool}
// @Router /api/tools/featured [get]
func (c *ToolController) ListFeatured(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	isAdmin := claims != nil && claims.Role == model.Admin

	featured, err := c.ToolService.ListFeatured(isAdmin)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, featured)
}

type FeaturedToolRequest struct {
	Title           string          `json:"title" binding:"required,max=255"`
	Description     string          `json:"description"`
	LongDescription string          `json:"longDescription"`
	YouTubeURL      string          `json:"youtubeUrl"`
	Links           json.RawMessage `json:"links"`
	ImageURL        string          `json:"imageUrl"`
	SortOrder       int             `json:"sortOrder"`
	IsActive        bool            `json:"isActive"`
}

// CreateFeatured godoc
// @Summary Empfohlenes Tool anlegen (Admin)
// @Tags Tools
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body FeaturedToolRequest true "Empfohlenes Tool"
// @Success 201 {object} util.Response{data=model.FeaturedTool}
// @Router /api/admin/tools/featured [post]
func (c *ToolController) CreateFeatured(ctx *gin.Context) {
	var req FeaturedToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ft := &model.FeaturedTool{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		YouTubeURL:      req.YouTubeURL,
		Links:           req.Links,
		ImageURL:        req.ImageURL,
		SortOrder:       req.SortOrder,
		IsActive:        req.IsActive,
	}
	if err := c.ToolService.CreateFeatured(ft); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, ft)
}

// UpdateFeatured godoc
// @Summary Empfohlenes Tool bearbeiten (Admin)
// @Tags Tools
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "ID"
// @Param   body body FeaturedToolRequest true "Empfohlenes Tool"
// @Success 200 {object} util.Response{data=model.FeaturedTool}
// @Router /api/admin/tools/featured/{id} [put]
func (c *ToolController) UpdateFeatured(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	var req FeaturedToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ft := &model.FeaturedTool{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		YouTubeURL:      req.YouTubeURL,
		Links:           req.Links,
		ImageURL:        req.ImageURL,
		SortOrder:       req.SortOrder,
		IsActive:        req.IsActive,
	}
	ft.ID = uint(id)

	if err := c.ToolService.UpdateFeatured(ft); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, ft)
}

// DeleteFeatured godoc
// @Summary Empfohlenes Tool löschen (Admin)
// @Tags Tools
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "ID"
// @Success 200 {object} util.Response
// @Router /api/admin/tools/featured/{id} [delete]
func (c *ToolController) DeleteFeatured(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	if err := c.ToolService.DeleteFeatured(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadFeaturedImage godoc
// @Summary Bild für ein empfohlenes Tool hochladen (Admin)
// @Tags Tools
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "ID"
// @Param   file formData file true "Bild"
// @Success 200 {object} util.Response{data=model.FeaturedTool}
// @Router /api/admin/tools/featured/{id}/image [post]
func (c *ToolController) UploadFeaturedImage(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	ft, err := c.ToolService.GetFeatured(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "Keine Datei übermittelt")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	storedName := fmt.Sprintf("featured/%d/%d%s", id, time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), storedName, src, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ft.ImageURL = url
	if err := c.ToolService.UpdateFeatured(ft); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ft)
}
