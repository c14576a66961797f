package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/DHANUSH-web/commercial-catalog/entity"
	"github.com/DHANUSH-web/commercial-catalog/pkg/resp"
	"github.com/DHANUSH-web/commercial-catalog/repository"
	"github.com/DHANUSH-web/commercial-catalog/services"
	"github.com/DHANUSH-web/commercial-catalog/utils"

	"github.com/gin-gonic/gin"
)

type CreateEstablishmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=Restaurant Retail Services Entertainment"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
	Rating      string `json:"rating" binding:"omitempty,oneof=5 4.5 4 3.5 3 2.5 2"`
	CoverImage  string `json:"coverImage"`
}

type UpdateEstablishmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Category    *string `json:"category" binding:"omitempty,oneof=Restaurant Retail Services Entertainment"`
	Location    *string `json:"location" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Rating      *string `json:"rating" binding:"omitempty,oneof=5 4.5 4 3.5 3 2.5 2"`
	CoverImage  *string `json:"coverImage"`
}

// EstablishmentResponse is the canonical client shape regardless of
// which store produced the record.
type EstablishmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Rating      string    `json:"rating"`
	CoverImage  string    `json:"coverImage,omitempty"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type EstablishmentController struct {
	Service *services.EstablishmentService
}

func NewEstablishmentController(s *services.EstablishmentService) *EstablishmentController {
	return &EstablishmentController{Service: s}
}

// GET /api/establishments?category=&location=&rating=&sortBy=
func (ctl *EstablishmentController) List(c *gin.Context) {
	filter := repository.EstablishmentFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Rating:   c.Query("rating"),
		SortBy:   c.Query("sortBy"),
	}

	ests, err := ctl.Service.List(c.Request.Context(), filter)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]EstablishmentResponse, 0, len(ests))
	for i := range ests {
		out = append(out, mapToEstablishmentResponse(&ests[i]))
	}
	resp.OK(c, out)
}

// GET /api/establishments/:id
func (ctl *EstablishmentController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	est, err := ctl.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "establishment not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, mapToEstablishmentResponse(est))
}

// POST /api/establishments — the owner is the authenticated actor.
func (ctl *EstablishmentController) Create(c *gin.Context) {
	var req CreateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	est, err := ctl.Service.Create(c.Request.Context(), utils.CurrentUserID(c), services.CreateEstablishmentInput{
		Name:        req.Name,
		Category:    req.Category,
		Location:    req.Location,
		Description: req.Description,
		Rating:      req.Rating,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		if errors.Is(err, services.ErrNoActor) {
			resp.Unauthorized(c, "authentication required")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, mapToEstablishmentResponse(est))
}

// PATCH /api/establishments/:id
func (ctl *EstablishmentController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	err := ctl.Service.Update(c.Request.Context(), id, services.UpdateEstablishmentInput{
		Name:        req.Name,
		Category:    req.Category,
		Location:    req.Location,
		Description: req.Description,
		Rating:      req.Rating,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "establishment not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Success(c, true)
}

// DELETE /api/establishments/:id — cascades to attachments.
func (ctl *EstablishmentController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctl.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "establishment not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Success(c, true)
}

func mapToEstablishmentResponse(e *entity.Establishment) EstablishmentResponse {
	return EstablishmentResponse{
		ID:          strconv.FormatUint(uint64(e.ID), 10),
		Name:        e.Name,
		Category:    e.Category,
		Location:    e.Location,
		Description: e.Description,
		Rating:      e.Rating,
		CoverImage:  e.CoverImage,
		UserID:      strconv.FormatUint(uint64(e.UserID), 10),
		CreatedAt:   e.CreatedAt,
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
