package middleware

import (
	"errors"
	"net/http"
	"strings"

	"event-ticketing/internal/model"
	"event-ticketing/internal/service"
	apperrors "event-ticketing/pkg/app_errors"
	"event-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// CookieName 登入後存放 JWT 的 http-only cookie
	CookieName = "jwt"

	userKey = "user"
)

// TokenParser 驗證 token 並回傳使用者 id
type TokenParser interface {
	Parse(raw string) (int, error)
}

// Authenticate 從 cookie 或 Authorization: Bearer 取出 token，驗證後將使用者放入 context
func Authenticate(tokens TokenParser, users service.UserService) gin.HandlerFunc {
	log := logger.WithComponent("middleware")

	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			abort(c, http.StatusForbidden, apperrors.ErrMissingToken)
			return
		}

		userID, err := tokens.Parse(raw)
		if err != nil {
			abort(c, http.StatusUnauthorized, apperrors.ErrInvalidToken)
			return
		}

		user, err := users.GetByID(c, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				// token 有效但帳號已不存在
				abort(c, http.StatusUnauthorized, apperrors.ErrInvalidToken)
				return
			}
			log.Error("failed to resolve user", zap.Int("user_id", userID), zap.Error(err))
			abort(c, http.StatusInternalServerError, apperrors.ErrInternalServerError)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin 必須在 Authenticate 之後
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			abort(c, http.StatusForbidden, apperrors.ErrAdminOnly)
			return
		}
		c.Next()
	}
}

// CurrentUser 取得 Authenticate 放入的使用者
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok && user != nil
}

// SetCurrentUser 測試或其他 middleware 直接注入使用者
func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(userKey, user)
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func abort(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
