package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gallerist/gallery-api/internal/domain"
)

// ContextKeyUser holds the loaded domain user once a role gate has run.
const ContextKeyUser = "user"

type UserFinder interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// RoleGate loads the authenticated user and enforces role membership.
// It must be mounted after the JWT verifier.
type RoleGate struct {
	users UserFinder
}

func NewRoleGate(users UserFinder) *RoleGate {
	return &RoleGate{
		users: users,
	}
}

func (g *RoleGate) Require(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get(ContextKeyUserID)
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		id, ok := userID.(uint)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := g.users.GetUser(ctx.Request.Context(), id)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, role := range roles {
			if user.Role == role {
				ctx.Set(ContextKeyUser, user)
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatus(http.StatusForbidden)
	}
}
