package middleware

import (
	"net/http"

	"atelier-store/internal/handler/httperr"
	"atelier-store/internal/pkg/config"
	"atelier-store/internal/pkg/errs"
	"atelier-store/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "cart_session"
	sessionContextKey = "cart_session_id"
)

// Cookie lifetime caps how long an abandoned browser can keep minting holds;
// the hold's own expiry is enforced server-side regardless.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

type SessionMiddleware struct {
	cfg config.SessionConfig
}

func NewSessionMiddleware(cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{cfg: cfg.Session}
}

// EnsureSession mints an opaque session id on first touch and reuses it for
// every later reservation call from the same browser.
func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if err != nil || !session.IsValidID(id) {
			newID, genErr := session.NewID()
			if genErr != nil {
				httperr.AbortWithError(c, http.StatusInternalServerError,
					errs.Wrap(genErr, "session id generation failed"), "Internal server error", nil)
				return
			}
			id = newID

			c.SetSameSite(m.sameSite())
			c.SetCookie(
				SessionCookieName,
				id,
				sessionCookieMaxAge,
				"/",
				m.cfg.CookieDomain,
				m.cfg.CookieSecure,
				true, // HttpOnly
			)
		}

		c.Set(sessionContextKey, id)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	if v, exists := c.Get(sessionContextKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func (m *SessionMiddleware) sameSite() http.SameSite {
	switch m.cfg.SameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
