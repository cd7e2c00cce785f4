package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spellworks/grimoire/internal/plan"
	userdomain "github.com/spellworks/grimoire/internal/user/domain"
	"go.uber.org/zap"
)

const currentUserKey = "current_user"

// APIKeyRequired authenticates metered requests via the x-api-key header and
// stores the resolved user on the gin context.
func (s *Server) APIKeyRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" {
			abortFail(c, http.StatusUnauthorized, "API key missing")
			return
		}

		u, err := s.userSvc.FindByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			if errors.Is(err, userdomain.ErrNotFound) {
				abortFail(c, http.StatusForbidden, "Invalid API key")
				return
			}
			s.log.Error("api key lookup failed", zap.Error(err))
			abortFail(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// QuotaRequired enforces the per-plan daily cap and records one usage event
// for every admitted request. Must run after APIKeyRequired.
func (s *Server) QuotaRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(currentUserKey)
		if !ok {
			abortFail(c, http.StatusUnauthorized, "API key missing")
			return
		}
		u := v.(userdomain.User)

		// Unlimited plans pass through unmetered: no count, no record.
		limit := u.Plan.DailyLimit()
		if limit == plan.Unlimited {
			c.Next()
			return
		}

		now := s.clock.Now()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		count, err := s.usageSvc.CountSince(c.Request.Context(), u.ID, midnight)
		if err != nil {
			s.log.Error("usage count failed", zap.Error(err))
			abortFail(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if count >= int64(limit) {
			abortFail(c, http.StatusTooManyRequests, "Daily API limit exceeded")
			return
		}

		if _, err := s.usageSvc.Record(c.Request.Context(), u.ID, c.Request.URL.RequestURI()); err != nil {
			s.log.Error("usage record failed", zap.Error(err))
			abortFail(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Next()
	}
}
