package controller

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WeekController struct {
	WeekService    *service.WeekService
	StorageService *service.StorageService
}

func NewWeekController(weekService *service.WeekService, storageService *service.StorageService) *WeekController {
	return &WeekController{
		WeekService:    weekService,
		StorageService: storageService,
	}
}

// ListWeeks godoc
// @Summary Lehrplan-Wochen auflisten
// @Description Mitglieder sehen veröffentlichte Wochen, Admins auch Entwürfe
// @Tags Lehrplan
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Week}
// @Router /api/weeks [get]
func (c *WeekController) ListWeeks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	isAdmin := claims != nil && claims.Role == model.Admin

	weeks, err := c.WeekService.ListWeeks(isAdmin)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, weeks)
}

// GetWeek godoc
// @Summary Eine Woche abrufen
// @Description Liefert die Woche samt Markdown-Segmenten und Materialien
// @Tags Lehrplan
// @Produce  json
// @Security BearerAuth
// @Param   number path int true "Wochennummer"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/weeks/{number} [get]
func (c *WeekController) GetWeek(ctx *gin.Context) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		util.BadRequest(ctx, "Ungültige Wochennummer")
		return
	}

	claims := util.GetUserFromContext(ctx)
	isAdmin := claims != nil && claims.Role == model.Admin

	week, err := c.WeekService.GetWeek(number, isAdmin)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"week":     week,
		"segments": service.SplitMarkdownSurveys(week.Body),
	})
}

// CurrentWeek godoc
// @Summary Aktuelle Woche abrufen
// @Tags Lehrplan
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Week}
// @Failure 404 {object} util.Response "Noch keine Woche veröffentlicht"
// @Router /api/weeks/current [get]
func (c *WeekController) CurrentWeek(ctx *gin.Context) {
	week, err := c.WeekService.CurrentWeek()
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, week)
}

type WeekRequest struct {
	WeekNumber  int        `json:"weekNumber" binding:"required,min=1"`
	Date        *time.Time `json:"date"`
	Title       string     `json:"title" binding:"required,max=255"`
	Summary     string     `json:"summary"`
	Body        string     `json:"body"`
	IsPublished bool       `json:"isPublished"`
}

// CreateWeek godoc
// @Summary Woche anlegen (Admin)
// @Tags Lehrplan
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body WeekRequest true "Woche"
// @Success 201 {object} util.Response{data=model.Week}
// @Failure 400 {object} util.Response "Wochennummer bereits vergeben"
// @Router /api/admin/weeks [post]
func (c *WeekController) CreateWeek(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req WeekRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	week := &model.Week{
		WeekNumber:  req.WeekNumber,
		Date:        req.Date,
		Title:       req.Title,
		Summary:     req.Summary,
		Body:        req.Body,
		IsPublished: req.IsPublished,
		CreatedBy:   claims.UserID,
	}

	if err := c.WeekService.CreateWeek(week); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, week)
}

// UpdateWeek godoc
// @Summary Woche bearbeiten (Admin)
// @Tags Lehrplan
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Wochen-ID"
// @Param   body body WeekRequest true "Woche"
// @Success 200 {object} util.Response{data=model.Week}
// @Router /api/admin/weeks/{id} [put]
func (c *WeekController) UpdateWeek(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	week, err := c.WeekService.WeekRepo.FindByID(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req WeekRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	week.WeekNumber = req.WeekNumber
	week.Date = req.Date
	week.Title = req.Title
	week.Summary = req.Summary
	week.Body = req.Body
	week.IsPublished = req.IsPublished

	if err := c.WeekService.UpdateWeek(week); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, week)
}

// DeleteWeek godoc
// @Summary Woche löschen (Admin)
// @Tags Lehrplan
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Wochen-ID"
// @Success 200 {object} util.Response
// @Router /api/admin/weeks/{id} [delete]
func (c *WeekController) DeleteWeek(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	if err := c.WeekService.DeleteWeek(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadFile godoc
// @Summary Material zu einer Woche hochladen (Admin)
// @Tags Lehrplan
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Wochen-ID"
// @Param   file formData file true "Datei"
// @Success 201 {object} util.Response{data=model.WeekFile}
// @Router /api/admin/weeks/{id}/files [post]
func (c *WeekController) UploadFile(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
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

	storedName := fmt.Sprintf("weeks/%d/%d%s", id, time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), storedName, src, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	file := &model.WeekFile{
		WeekID:   uint(id),
		FileName: fileHeader.Filename,
		FileURL:  url,
		FileType: fileHeader.Header.Get("Content-Type"),
	}
	if err := c.WeekService.AddFile(file); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, file)
}

// DeleteFile godoc
// @Summary Material löschen (Admin)
// @Tags Lehrplan
// @Produce  json
// @Security BearerAuth
// @Param   fileId path int true "Datei-ID"
// @Success 200 {object} util.Response
// @Router /api/admin/weeks/files/{fileId} [delete]
func (c *WeekController) DeleteFile(ctx *gin.Context) {
	fileID, err := strconv.ParseUint(ctx.Param("fileId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Ungültige ID")
		return
	}

	if err := c.WeekService.RemoveFile(uint(fileID)); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}
