package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminRequired verifies the Bearer session token and checks the admin still
// exists. It does not attach the admin to the context; handlers only need the
// gate.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortFail(c, http.StatusUnauthorized, "Authorization header missing or malformed")
			return
		}

		claims, err := s.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortFail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if _, err := s.adminSvc.GetByID(c.Request.Context(), claims.AdminID); err != nil {
			abortFail(c, http.StatusForbidden, "Admin not found.")
			return
		}

		c.Next()
	}
}
