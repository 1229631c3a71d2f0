package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Destoh2020/iesrform/internal/app/models/dto"
)

// AdminHeader carries the shared admin secret.
const AdminHeader = "X-Admin-Password"

// AdminMiddleware gates administrative endpoints behind a shared secret.
type AdminMiddleware struct {
	password     string
	passwordHash string
}

// NewAdminMiddleware creates an AdminMiddleware. When passwordHash is set it
// must be a bcrypt hash and takes precedence over the plain password.
func NewAdminMiddleware(password, passwordHash string) *AdminMiddleware {
	return &AdminMiddleware{
		password:     password,
		passwordHash: passwordHash,
	}
}

// RequireAdmin verifies the admin secret header and aborts with 401 when it
// does not match.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminHeader)
		if !m.verify(provided) {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid admin password")))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *AdminMiddleware) verify(provided string) bool {
	if provided == "" {
		return false
	}
	if m.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(provided)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(m.password), []byte(provided)) == 1
}
