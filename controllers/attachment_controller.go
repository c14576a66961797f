package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/DHANUSH-web/commercial-catalog/entity"
	"github.com/DHANUSH-web/commercial-catalog/pkg/resp"
	"github.com/DHANUSH-web/commercial-catalog/repository"
	"github.com/DHANUSH-web/commercial-catalog/services"
	"github.com/DHANUSH-web/commercial-catalog/utils"

	"github.com/gin-gonic/gin"
)

// RecordAttachmentRequest registers metadata for an already-hosted
// file (no upload through this server).
type RecordAttachmentRequest struct {
	EstablishmentID uint   `json:"establishmentId" binding:"required"`
	FileName        string `json:"fileName" binding:"required"`
	FilePath        string `json:"filePath" binding:"required"`
	FileType        string `json:"fileType"`
	FileSize        string `json:"fileSize"`
}

type AttachmentResponse struct {
	ID              string    `json:"id"`
	FileName        string    `json:"fileName"`
	FileType        string    `json:"fileType,omitempty"`
	FileSize        string    `json:"fileSize,omitempty"`
	FilePath        string    `json:"filePath"`
	EstablishmentID string    `json:"establishmentId"`
	UserID          string    `json:"userId"`
	CreatedAt       time.Time `json:"createdAt"`
}

type AttachmentController struct {
	Service *services.AttachmentService
}

func NewAttachmentController(s *services.AttachmentService) *AttachmentController {
	return &AttachmentController{Service: s}
}

// POST /api/attachments — multipart uploads the blob first; a JSON
// body records already-hosted metadata. Either way the establishment
// must exist or nothing is written.
func (ctl *AttachmentController) Create(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		ctl.createFromUpload(c)
		return
	}

	var req RecordAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	att, err := ctl.Service.Record(c.Request.Context(), utils.CurrentUserID(c), &entity.Attachment{
		FileName:        req.FileName,
		FileType:        req.FileType,
		FileSize:        req.FileSize,
		FilePath:        req.FilePath,
		EstablishmentID: req.EstablishmentID,
	})
	if err != nil {
		ctl.writeError(c, err)
		return
	}

	resp.Created(c, mapToAttachmentResponse(att))
}

func (ctl *AttachmentController) createFromUpload(c *gin.Context) {
	var form struct {
		EstablishmentID uint `form:"establishmentId" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		resp.ValidationError(c, err)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	att, err := ctl.Service.Upload(
		c.Request.Context(),
		utils.CurrentUserID(c),
		form.EstablishmentID,
		fh.Filename,
		fh.Header.Get("Content-Type"),
		fh.Size,
		f,
	)
	if err != nil {
		ctl.writeError(c, err)
		return
	}

	resp.Created(c, mapToAttachmentResponse(att))
}

// GET /api/attachments/:id
func (ctl *AttachmentController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	att, err := ctl.Service.Get(c.Request.Context(), id)
	if err != nil {
		ctl.writeError(c, err)
		return
	}

	resp.OK(c, mapToAttachmentResponse(att))
}

// GET /api/establishments/:id/attachments
func (ctl *AttachmentController) ListForEstablishment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	atts, err := ctl.Service.ListByEstablishment(c.Request.Context(), id)
	if err != nil {
		ctl.writeError(c, err)
		return
	}

	out := make([]AttachmentResponse, 0, len(atts))
	for i := range atts {
		out = append(out, mapToAttachmentResponse(&atts[i]))
	}
	resp.OK(c, out)
}

// DELETE /api/attachments/:id
func (ctl *AttachmentController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctl.Service.Delete(c.Request.Context(), id); err != nil {
		ctl.writeError(c, err)
		return
	}

	resp.Success(c, true)
}

func (ctl *AttachmentController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrNoActor):
		resp.Unauthorized(c, "authentication required")
	default:
		resp.ServerError(c, err)
	}
}

func mapToAttachmentResponse(a *entity.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:              strconv.FormatUint(uint64(a.ID), 10),
		FileName:        a.FileName,
		FileType:        a.FileType,
		FileSize:        a.FileSize,
		FilePath:        a.FilePath,
		EstablishmentID: strconv.FormatUint(uint64(a.EstablishmentID), 10),
		UserID:          strconv.FormatUint(uint64(a.UserID), 10),
		CreatedAt:       a.CreatedAt,
	}
}
