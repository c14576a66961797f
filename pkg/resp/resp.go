package resp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// FieldError is one entry of a structured validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Success is the body shape of update/delete results.
func Success(c *gin.Context, ok bool) {
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// ValidationError turns binding failures into the structured field
// error list; anything else degrades to a plain 400 message.
func ValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": fields})
		return
	}
	BadRequest(c, err.Error())
}

// ServerError logs the cause and returns a generic message; the
// original error never reaches the client.
func ServerError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "eqfield":
		return "must match " + fe.Param()
	default:
		return "is invalid"
	}
}
