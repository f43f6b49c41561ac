package controller

import (
	"fmt"
	"path/filepath"
	"time"

	"lernraum_backend/internal/service"
	"lernraum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FileController struct {
	StorageService *service.StorageService
}

func NewFileController(storageService *service.StorageService) *FileController {
	return &FileController{StorageService: storageService}
}

// Upload godoc
// @Summary Datei hochladen
// @Description Lädt eine Datei hoch und liefert die URL zurück, z.B. für Anhänge an Fragen und Antworten
// @Tags Dateien
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "Datei"
// @Success 201 {object} util.Response
// @Router /api/files [post]
func (c *FileController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
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

	storedName := fmt.Sprintf("attachments/%d/%d%s", claims.UserID, time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), storedName, src, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"fileName": fileHeader.Filename,
		"fileUrl":  url,
		"fileType": fileHeader.Header.Get("Content-Type"),
	})
}
