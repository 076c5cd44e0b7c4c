package auth

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathumitha-create/BeautyHub-Backend/internal/models"
)

// Context keys set by Middleware.
const (
	CtxUserID = "userId"
	CtxEmail  = "email"
	CtxRole   = "role"
)

type UserStore interface {
	ByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Middleware verifies the bearer token and stores userId/email/role on the
// request context. Role and email are enriched from a live user lookup when
// possible, falling back to the token claims; that lookup is best effort and
// never fails the request.
func Middleware(tokens *TokenManager, users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if tokenStr == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}
		tokenStr = strings.TrimSpace(strings.TrimPrefix(tokenStr, "Bearer "))

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized", "message": err.Error()})
			return
		}

		email := claims.Email
		role := "user"
		if uid, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
			if user, err := users.ByID(c.Request.Context(), uid); err == nil && user != nil {
				if user.Email != "" {
					email = user.Email
				}
				if user.Role != "" {
					role = user.Role
				}
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, email)
		c.Set(CtxRole, role)
		c.Next()
	}
}
