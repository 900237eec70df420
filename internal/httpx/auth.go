package httpx

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
	"github.com/MikeMC777/vidros-portal/internal/session"
)

const ctxSession = "session"

// SessionParser turns a bearer token into a session.
type SessionParser interface {
	Parse(ctx context.Context, raw string) (*session.Session, error)
}

// Auth requires a valid portal session. The session is stored on the gin
// context and on the request context so the backend client can forward the
// caller's token.
func Auth(p SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		scheme, raw, ok := strings.Cut(h, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			AbortError(c, apperr.ErrUnauthorized)
			return
		}
		s, err := p.Parse(c.Request.Context(), strings.TrimSpace(raw))
		if err != nil {
			AbortError(c, err)
			return
		}
		c.Set(ctxSession, s)
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), s))
		c.Next()
	}
}

// RequireRole lets through only sessions with one of roles.
func RequireRole(roles ...pedido.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			AbortError(c, apperr.ErrUnauthorized)
			return
		}
		for _, r := range roles {
			if s.Role == r {
				c.Next()
				return
			}
		}
		AbortError(c, apperr.ErrForbidden)
	}
}

// CurrentSession returns the session set by Auth.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok && s != nil
}
