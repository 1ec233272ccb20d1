package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio-dashboard/internal/dashboard"
)

const (
	sessionCookie = "dashboard_session"
	visitorCookie = "dashboard_visitor"
	stateKey      = "dashboard_state"
	visitorKey    = "dashboard_visitor"

	visitorMaxAge = 3600 * 24 * 365
)

// sessionMiddleware attaches the visitor's dashboard state, issuing a cookie on first visit.
// The visitor cookie outlives the session and keys the stored theme.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(sessionCookie)
		id, st := s.Sessions.Get(cookie)
		if id != cookie {
			c.SetCookie(sessionCookie, id, 3600*24, "/", "", false, true)
		}

		visitor, _ := c.Cookie(visitorCookie)
		if _, err := uuid.Parse(visitor); err != nil {
			visitor = uuid.NewString()
			c.SetCookie(visitorCookie, visitor, visitorMaxAge, "/", "", false, true)
		}

		c.Set(stateKey, st)
		c.Set(visitorKey, visitor)
		c.Next()
	}
}

func stateFrom(c *gin.Context) *dashboard.State {
	return c.MustGet(stateKey).(*dashboard.State)
}

func visitorFrom(c *gin.Context) string {
	return c.GetString(visitorKey)
}
