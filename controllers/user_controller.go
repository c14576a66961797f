package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/DHANUSH-web/commercial-catalog/entity"
	"github.com/DHANUSH-web/commercial-catalog/pkg/resp"
	"github.com/DHANUSH-web/commercial-catalog/repository"
	"github.com/DHANUSH-web/commercial-catalog/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Name            string `json:"name"`
	PhotoURL        string `json:"photoUrl"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the canonical client shape: string id, RFC3339
// timestamp, optional fields omitted when empty.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserController struct {
	Service *services.AuthService
}

func NewUserController(s *services.AuthService) *UserController {
	return &UserController{Service: s}
}

// POST /api/users/register
func (ctl *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	user, err := ctl.Service.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Name, req.PhotoURL)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			resp.BadRequest(c, "username or email already taken")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, mapToUserResponse(user))
}

// POST /api/users/login
func (ctl *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	token, user, err := ctl.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	resp.OK(c, gin.H{"token": token, "user": mapToUserResponse(user)})
}

// GET /api/users/:id
func (ctl *UserController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	user, err := ctl.Service.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, mapToUserResponse(user))
}

func mapToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        strconv.FormatUint(uint64(u.ID), 10),
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
	}
}
