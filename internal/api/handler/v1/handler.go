package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gallerist/gallery-api/internal/api/middleware"
	"github.com/gallerist/gallery-api/internal/domain"
)

var (
	errMissingUserID = errors.New("user ID not found in context")
	errMissingUser   = errors.New("user not found in context")
)

func getUserIDFromContext(ctx *gin.Context) (uint, error) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return 0, errMissingUserID
	}

	userID, ok := value.(uint)
	if !ok {
		return 0, errMissingUserID
	}

	return userID, nil
}

func getUserFromContext(ctx *gin.Context) (domain.User, error) {
	value, exists := ctx.Get(middleware.ContextKeyUser)
	if !exists {
		return domain.User{}, errMissingUser
	}

	user, ok := value.(domain.User)
	if !ok {
		return domain.User{}, errMissingUser
	}

	return user, nil
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
