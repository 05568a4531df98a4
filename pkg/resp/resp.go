package resp

import (
	"errors"
	"net/http"

	"github.com/eddietapia/reservations/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps a service error to its HTTP shape by kind. Conflict responses
// carry the blocking eater/reservation when the guard identified them, and a
// capacity miss keeps its own code so clients can tell "never fits" apart from
// "taken right now".
func Error(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		ServerError(c, err)
		return
	}

	body := gin.H{"ok": false, "error": e.Msg, "code": e.Kind.String()}

	switch e.Kind {
	case apperr.Validation:
		c.JSON(http.StatusBadRequest, body)
	case apperr.NotFound:
		c.JSON(http.StatusNotFound, body)
	case apperr.Conflict:
		if e.EaterID != 0 {
			body["conflictingEaterId"] = e.EaterID
			body["conflictingReservationId"] = e.ReservationID
		}
		c.JSON(http.StatusConflict, body)
	case apperr.Capacity:
		c.JSON(http.StatusConflict, body)
	default:
		c.JSON(http.StatusInternalServerError, body)
	}
}
