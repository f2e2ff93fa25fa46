package authorization

import (
	"github.com/gin-gonic/gin"
)

// ContextKeyRealAdmin marks requests whose authenticated user is a real
// super admin, even while impersonating a customer. Admin surfaces key
// off this flag, data visibility keys off the effective role.
const ContextKeyRealAdmin = "is_real_admin"

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextKeyRealAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
